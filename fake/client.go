// Package fake provides the simulated runtime objects the harness builds
// contexts over: a client with a message cache and action ledger, a
// REST-level transport, guild fixtures, and interaction contexts that
// record every outbound effect instead of performing it.
package fake

import (
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/soyeahso/interactest/action"
	"github.com/soyeahso/interactest/internal/logging"
)

// Client simulates the bot client. It owns the action ledger and the
// message cache; contexts and the transport share both by reference, so
// every effect recorded during an invocation lands in one log.
//
// A client may be reused across invocations. The harness filters the ledger
// by invocation start time, so earlier actions never leak into later
// results. Concurrent invocations against one shared client are the
// caller's responsibility to serialize.
type Client struct {
	ID string

	log    *logging.Logger
	ledger *action.Ledger
	rest   *Transport

	mu           sync.RWMutex
	cache        map[int64]map[string]any
	guilds       []*Guild
	interactions map[string]map[string]any
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogging makes the client log intercepted effects to w at the given
// level. A nil writer means pretty console output on stderr. The default
// client is silent.
func WithLogging(w io.Writer, level string) ClientOption {
	return func(c *Client) {
		c.log = logging.New(w, level)
	}
}

// NewClient creates a fresh simulated client with an empty cache and ledger.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		log:          logging.Nop(),
		ledger:       action.NewLedger(),
		cache:        make(map[int64]map[string]any),
		interactions: make(map[string]map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rest = &Transport{client: c, log: c.log.Sub("transport")}
	return c
}

// Ledger returns the shared action ledger.
func (c *Client) Ledger() *action.Ledger { return c.ledger }

// Actions returns every recorded action sorted by creation time.
func (c *Client) Actions() []action.Action { return c.ledger.All() }

// Rest returns the REST-level transport substitute.
func (c *Client) Rest() *Transport { return c.rest }

// Guilds returns the guild fixtures attached to this client.
func (c *Client) Guilds() []*Guild {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Guild, len(c.guilds))
	copy(out, c.guilds)
	return out
}

// Message returns the message-like value for a cached message id.
func (c *Client) Message(id int64) (*Message, error) {
	rec, err := c.cachedRecord(id)
	if err != nil {
		return nil, err
	}
	return newMessage(c, rec), nil
}

// CachedMessages reports how many messages the cache currently holds.
func (c *Client) CachedMessages() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Reset clears the message cache and guild fixtures. Call it when a
// long-lived client is handed to a new, unrelated test to avoid unbounded
// cache growth. The ledger is kept; results are already scoped by start
// time.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[int64]map[string]any)
	c.guilds = nil
}

// AddInteraction registers a handler under a scope and resolved name.
func (c *Client) AddInteraction(scope, name string, h any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interactions[scope] == nil {
		c.interactions[scope] = make(map[string]any)
	}
	c.interactions[scope][name] = h
	c.log.Debug().Str("scope", scope).Str("command", name).Msg("interaction registered")
}

// Interaction looks up a registered handler by scope and name.
func (c *Client) Interaction(scope, name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.interactions[scope][name]
	return h, ok
}

// HasInteraction reports whether a handler is registered under the scope.
func (c *Client) HasInteraction(scope, name string) bool {
	_, ok := c.Interaction(scope, name)
	return ok
}

func (c *Client) attachGuild(g *Guild) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guilds = append(c.guilds, g)
}

// cachedRecord returns a deep copy of the cached record for id.
func (c *Client) cachedRecord(id int64) (map[string]any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.cache[id]
	if !ok {
		return nil, &NotCachedError{MessageID: id}
	}
	return cloneRecord(rec), nil
}

// storeRecord caches a deep copy of rec under id, replacing any prior state.
func (c *Client) storeRecord(id int64, rec map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[id] = cloneRecord(rec)
}

// removeRecord drops id from the cache. Removing an unknown id is a lookup
// failure so redundant deletes surface instead of being masked.
func (c *Client) removeRecord(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.cache[id]; !ok {
		return &NotCachedError{MessageID: id}
	}
	delete(c.cache, id)
	return nil
}

// applyEdit overlays payload onto the cached record for id and re-stores
// it under the same id. Fields present in payload replace the cached
// values; omitted fields are preserved, never cleared. Returns a copy of
// the updated record.
func (c *Client) applyEdit(id int64, payload map[string]any) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.cache[id]
	if !ok {
		return nil, &NotCachedError{MessageID: id}
	}
	updated := cloneRecord(rec)
	for k, v := range payload {
		updated[k] = cloneValue(v)
	}
	updated["id"] = id
	c.cache[id] = updated
	return cloneRecord(updated), nil
}

// record appends an action to the shared ledger.
func (c *Client) record(a action.Action) {
	c.ledger.Append(a)
	c.log.Debug().Str("action", string(a.Kind())).Msg("action recorded")
}
