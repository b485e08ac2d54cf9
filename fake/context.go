package fake

import (
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/soyeahso/interactest/action"
	"github.com/soyeahso/interactest/internal/logging"
	"github.com/soyeahso/interactest/snowflake"
)

// responseState tracks the interaction lifecycle: a context starts fresh,
// may be deferred once, becomes responded on the first send, and closes
// when the original response is deleted.
type responseState int

const (
	stateFresh responseState = iota
	stateDeferred
	stateResponded
	stateClosed
)

// SlashContext is the contract-compatible substitute for a slash command
// context. Every mutating call computes the canonical payload, updates the
// client's message cache, and appends a record to the shared ledger instead
// of touching the network.
//
// Guild, Channel, Author and Locale are mutable fixture fields; the harness
// sets them from invocation overrides before the handler runs.
type SlashContext struct {
	Token         string
	InteractionID int64
	Locale        discordgo.Locale

	Guild   *Guild
	Channel *Channel
	Author  *Member

	// Args and Options mirror what the harness forwarded to the handler.
	Args    []any
	Options map[string]any

	client *Client
	log    *logging.Logger

	state      responseState
	ephemeral  bool
	originalID int64
}

// NewSlashContext builds a fresh context over the client.
func NewSlashContext(c *Client) *SlashContext {
	return &SlashContext{
		Token:         uuid.NewString(),
		InteractionID: snowflake.New(),
		Locale:        discordgo.EnglishUS,
		client:        c,
		log:           c.log.Sub("ctx"),
	}
}

// Client returns the simulated client the context was built over.
func (c *SlashContext) Client() *Client { return c.client }

// GuildID returns the fixture guild's id, or zero when none is set.
func (c *SlashContext) GuildID() int64 {
	if c.Guild == nil {
		return 0
	}
	return c.Guild.ID
}

// ChannelID returns the fixture channel's id, or zero when none is set.
func (c *SlashContext) ChannelID() int64 {
	if c.Channel == nil {
		return 0
	}
	return c.Channel.ID
}

// AuthorID returns the fixture author's id, or zero when none is set.
func (c *SlashContext) AuthorID() int64 {
	if c.Author == nil {
		return 0
	}
	return c.Author.ID
}

// Deferred reports whether the interaction was acknowledged with Defer.
func (c *SlashContext) Deferred() bool { return c.state == stateDeferred }

// Responded reports whether at least one response has been sent.
func (c *SlashContext) Responded() bool { return c.state == stateResponded || c.state == stateClosed }

// Ephemeral reports the sticky ephemeral flag.
func (c *SlashContext) Ephemeral() bool { return c.ephemeral }

// OriginalID returns the id of the first response, or zero before one is
// sent.
func (c *SlashContext) OriginalID() int64 { return c.originalID }

// Defer acknowledges the interaction, reserving the right to respond later.
// Valid only before any acknowledgment or response. A deferred ephemeral
// acknowledgment makes every subsequent send on this context ephemeral.
func (c *SlashContext) Defer(ephemeral bool) error {
	if c.state != stateFresh {
		return &StateError{Message: "cannot defer after acknowledging or responding"}
	}
	c.state = stateDeferred
	if ephemeral {
		c.ephemeral = true
	}
	c.client.record(action.NewDefer(ephemeral))
	return nil
}

// Send normalizes the payload, assigns a fresh message id, stores the
// canonical record in the cache, records a Send action, and returns the
// message reconstructed from the cached record. The first send becomes the
// interaction's original response.
func (c *SlashContext) Send(opts SendOptions) (*Message, error) {
	if c.state == stateClosed {
		return nil, &StateError{Message: "cannot send after the original response was deleted"}
	}
	if err := checkFiles(opts.Files); err != nil {
		return nil, err
	}

	flags, sticky := effectiveFlags(opts, c.ephemeral)
	c.ephemeral = sticky

	payload, err := buildSendPayload(opts, flags)
	if err != nil {
		return nil, err
	}

	id := snowflake.New()
	payload["id"] = id
	if chID := c.ChannelID(); chID != 0 {
		payload["channel_id"] = chID
	}

	c.client.storeRecord(id, payload)
	c.client.record(action.NewSend(cloneRecord(payload)))

	if c.state != stateResponded {
		c.originalID = id
	}
	c.state = stateResponded
	return newMessage(c.client, cloneRecord(payload)), nil
}

// SendContent sends a plain text response.
func (c *SlashContext) SendContent(content string) (*Message, error) {
	return c.Send(SendOptions{Content: content})
}

// Edit overlays opts onto the original response.
func (c *SlashContext) Edit(opts EditOptions) (*Message, error) {
	id, err := c.original()
	if err != nil {
		return nil, err
	}
	return c.EditMessage(id, opts)
}

// EditMessage overlays opts onto the cached record for id: set fields
// replace the cached values, everything else is preserved. The updated
// record is re-stored under the same id and an Edit action is recorded.
func (c *SlashContext) EditMessage(id int64, opts EditOptions) (*Message, error) {
	if err := checkFiles(opts.Files); err != nil {
		return nil, err
	}
	payload, err := buildEditPayload(opts)
	if err != nil {
		return nil, err
	}
	updated, err := c.client.applyEdit(id, payload)
	if err != nil {
		return nil, err
	}
	c.client.record(action.NewEdit(cloneRecord(updated), 0))
	return newMessage(c.client, updated), nil
}

// Delete removes the original response. The context closes: further
// operations against the original response fail with a lookup error.
func (c *SlashContext) Delete() error {
	id, err := c.original()
	if err != nil {
		return err
	}
	return c.DeleteMessage(id)
}

// DeleteMessage removes a message sent in response to this interaction.
// Deleting an id the cache does not hold, including a redundant double
// delete, is a lookup failure.
func (c *SlashContext) DeleteMessage(id int64) error {
	if err := c.client.removeRecord(id); err != nil {
		return err
	}
	c.client.record(action.NewDelete(id, 0, ""))
	if id == c.originalID && c.state == stateResponded {
		c.state = stateClosed
	}
	return nil
}

// SendModal records a modal prompt. The modal is either a structured
// *discordgo.InteractionResponseData or a raw record; it is canonicalized
// into map form. Modals can only open before any response has been
// produced.
func (c *SlashContext) SendModal(modal any) error {
	if c.Responded() {
		return &StateError{Message: "cannot send modal after responding"}
	}

	var rec map[string]any
	switch m := modal.(type) {
	case *discordgo.InteractionResponseData:
		var err error
		rec, err = toRecord(m)
		if err != nil {
			return err
		}
	case map[string]any:
		rec = cloneRecord(m)
	default:
		return &ValidationError{Message: "modal must be *discordgo.InteractionResponseData or a raw record"}
	}

	c.client.record(action.NewSendModal(rec))
	return nil
}

// original resolves the implicit first-response identifier. Before any
// response exists there is nothing to resolve, which is a lookup failure.
func (c *SlashContext) original() (int64, error) {
	if c.originalID == 0 {
		return 0, &NotCachedError{}
	}
	return c.originalID, nil
}
