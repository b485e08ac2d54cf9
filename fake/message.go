package fake

import "github.com/bwmarrin/discordgo"

// Message is a message-like value reconstructed from a cached canonical
// record. It is a snapshot: the underlying record lives in the client's
// cache and later edits produce new snapshots.
type Message struct {
	ID        int64
	ChannelID int64

	client *Client
	data   map[string]any
}

// newMessage builds a Message from a canonical record. The record is
// expected to carry an "id" field; "channel_id" is optional.
func newMessage(c *Client, rec map[string]any) *Message {
	return &Message{
		ID:        asInt64(rec["id"]),
		ChannelID: asInt64(rec["channel_id"]),
		client:    c,
		data:      rec,
	}
}

// MessageFromRecord reconstitutes a message-like value from a raw record,
// e.g. the originating message handed to a component invocation as literal
// test data. The record is not inserted into the cache.
func MessageFromRecord(c *Client, rec map[string]any) *Message {
	return newMessage(c, cloneRecord(rec))
}

// Record returns a deep copy of the canonical record.
func (m *Message) Record() map[string]any { return cloneRecord(m.data) }

// Content returns the message text content.
func (m *Message) Content() string {
	s, _ := m.data["content"].(string)
	return s
}

// Flags returns the message flag bits.
func (m *Message) Flags() discordgo.MessageFlags {
	return discordgo.MessageFlags(asInt64(m.data["flags"]))
}

// Embeds returns the normalized embed records.
func (m *Message) Embeds() []map[string]any { return recordSlice(m.data["embeds"]) }

// Components returns the normalized component records.
func (m *Message) Components() []map[string]any { return recordSlice(m.data["components"]) }

// Reactions returns the emoji appended by CreateReaction calls.
func (m *Message) Reactions() []string {
	raw, _ := m.data["reactions"].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Edit overlays opts onto the cached record through the transport and
// returns the updated message.
func (m *Message) Edit(opts EditOptions) (*Message, error) {
	return m.client.rest.EditMessage(m.ChannelID, m.ID, opts)
}

// Delete removes the message from the cache through the transport.
func (m *Message) Delete(reason string) error {
	return m.client.rest.DeleteMessage(m.ChannelID, m.ID, reason)
}

// React appends an emoji reaction through the transport.
func (m *Message) React(emoji string) error {
	return m.client.rest.CreateReaction(m.ChannelID, m.ID, emoji)
}

// asInt64 reads an integer that may have passed through a JSON round trip.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func recordSlice(v any) []map[string]any {
	raw, _ := v.([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if rec, ok := e.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out
}

// cloneRecord deep-copies a canonical record so cached state never aliases
// values handed to handlers or stored in actions.
func cloneRecord(rec map[string]any) map[string]any {
	if rec == nil {
		return nil
	}
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneRecord(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
