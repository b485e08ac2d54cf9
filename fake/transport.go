package fake

import (
	"github.com/soyeahso/interactest/action"
	"github.com/soyeahso/interactest/internal/logging"
)

// Transport stands in for the REST layer beneath the client. Unlike the
// context, its operations address messages by channel and id, the way the
// real API does; they mutate the same cache and append to the same ledger.
type Transport struct {
	client *Client
	log    *logging.Logger
}

// DeleteMessage removes a cached message and records a Delete action
// carrying the channel and reason.
func (t *Transport) DeleteMessage(channelID, messageID int64, reason string) error {
	if err := t.client.removeRecord(messageID); err != nil {
		return err
	}
	t.client.record(action.NewDelete(messageID, channelID, reason))
	return nil
}

// EditMessage overlays opts onto the cached record and records an Edit
// action carrying the channel.
func (t *Transport) EditMessage(channelID, messageID int64, opts EditOptions) (*Message, error) {
	if err := checkFiles(opts.Files); err != nil {
		return nil, err
	}
	payload, err := buildEditPayload(opts)
	if err != nil {
		return nil, err
	}
	updated, err := t.client.applyEdit(messageID, payload)
	if err != nil {
		return nil, err
	}
	t.client.record(action.NewEdit(cloneRecord(updated), channelID))
	return newMessage(t.client, updated), nil
}

// CreateReaction appends an emoji to the cached message's reaction list and
// records a CreateReaction action. Reacting to an uncached message is a
// lookup failure.
func (t *Transport) CreateReaction(channelID, messageID int64, emoji string) error {
	rec, err := t.client.cachedRecord(messageID)
	if err != nil {
		return err
	}
	reactions, _ := rec["reactions"].([]any)
	rec["reactions"] = append(reactions, emoji)
	t.client.storeRecord(messageID, rec)
	t.client.record(action.NewCreateReaction(messageID, emoji, channelID))
	return nil
}
