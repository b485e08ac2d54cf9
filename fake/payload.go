package fake

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bwmarrin/discordgo"
)

// SendOptions describe an outgoing message. Embed and component entries are
// either structured discordgo values or raw map records; the mix is resolved
// once, here at the boundary, into canonical map form.
//
// Zero values mean "not set".
type SendOptions struct {
	Content    string
	Embeds     []any // *discordgo.MessageEmbed or map[string]any
	Components []any // discordgo.MessageComponent or map[string]any
	StickerIDs []int64
	ReplyTo    int64

	AllowedMentions *discordgo.MessageAllowedMentions

	// Files accepts a path, raw bytes, an io.Reader, or *discordgo.File.
	// A *discordgo.MessageAttachment is rejected: attachments carry only
	// metadata and must be fetched from their URL before resending.
	Files []any

	TTS            bool
	SuppressEmbeds bool
	Silent         bool
	Ephemeral      bool
	Flags          discordgo.MessageFlags
}

// EditOptions describe a message edit. Set fields replace the cached value;
// zero-valued fields are preserved from the cached record, never cleared.
type EditOptions struct {
	Content    string
	Embeds     []any
	Components []any

	// Attachments is existing attachment metadata to keep on the message,
	// as *discordgo.MessageAttachment or raw records.
	Attachments []any

	AllowedMentions *discordgo.MessageAllowedMentions
	Files           []any
	TTS             bool
}

// effectiveFlags composes the flag set for a send. The ephemeral bit is set
// if the call requests it or the context's sticky flag is already set;
// suppress-embeds and silent are independent. Returns the flags and the new
// sticky-ephemeral state.
func effectiveFlags(opts SendOptions, sticky bool) (discordgo.MessageFlags, bool) {
	flags := opts.Flags
	if opts.Ephemeral || sticky || flags&discordgo.MessageFlagsEphemeral != 0 {
		flags |= discordgo.MessageFlagsEphemeral
		sticky = true
	}
	if opts.SuppressEmbeds {
		flags |= discordgo.MessageFlagsSuppressEmbeds
	}
	if opts.Silent {
		flags |= discordgo.MessageFlagsSuppressNotifications
	}
	return flags, sticky
}

// checkFiles rejects attachment objects and unknown types in file
// arguments. Attachments only contain metadata about a file, not the file
// itself; to resend one, download it first via MessageAttachment.URL.
func checkFiles(files []any) error {
	for _, f := range files {
		switch f.(type) {
		case *discordgo.MessageAttachment, discordgo.MessageAttachment:
			return &ValidationError{Message: "attachments are not files: an attachment only carries metadata, download it via MessageAttachment.URL first"}
		case string, []byte, io.Reader, *discordgo.File:
		default:
			return &ValidationError{Message: fmt.Sprintf("unsupported file argument type %T", f)}
		}
	}
	return nil
}

// buildSendPayload computes the canonical record for a send, minus the
// message id. Returns a ValidationError when the payload is empty.
func buildSendPayload(opts SendOptions, flags discordgo.MessageFlags) (map[string]any, error) {
	payload := map[string]any{}

	if opts.Content != "" {
		payload["content"] = opts.Content
	}
	embeds, err := normalizeEmbeds(opts.Embeds)
	if err != nil {
		return nil, err
	}
	if len(embeds) > 0 {
		payload["embeds"] = embeds
	}
	components, err := normalizeComponents(opts.Components)
	if err != nil {
		return nil, err
	}
	if len(components) > 0 {
		payload["components"] = components
	}
	if len(opts.StickerIDs) > 0 {
		ids := make([]any, len(opts.StickerIDs))
		for i, id := range opts.StickerIDs {
			ids[i] = id
		}
		payload["sticker_ids"] = ids
	}
	if empty(payload) {
		return nil, &ValidationError{Message: "cannot send an empty message"}
	}

	if opts.AllowedMentions != nil {
		rec, err := toRecord(opts.AllowedMentions)
		if err != nil {
			return nil, err
		}
		payload["allowed_mentions"] = rec
	}
	if opts.ReplyTo != 0 {
		payload["message_reference"] = map[string]any{"message_id": opts.ReplyTo}
	}
	if opts.TTS {
		payload["tts"] = true
	}
	payload["flags"] = int64(flags)
	return payload, nil
}

// buildEditPayload computes the overlay record for an edit. Only set fields
// are included so the cached record keeps everything else.
func buildEditPayload(opts EditOptions) (map[string]any, error) {
	payload := map[string]any{}

	if opts.Content != "" {
		payload["content"] = opts.Content
	}
	embeds, err := normalizeEmbeds(opts.Embeds)
	if err != nil {
		return nil, err
	}
	if len(embeds) > 0 {
		payload["embeds"] = embeds
	}
	components, err := normalizeComponents(opts.Components)
	if err != nil {
		return nil, err
	}
	if len(components) > 0 {
		payload["components"] = components
	}
	if len(opts.Attachments) > 0 {
		attachments := make([]any, 0, len(opts.Attachments))
		for _, a := range opts.Attachments {
			switch att := a.(type) {
			case *discordgo.MessageAttachment:
				rec, err := toRecord(att)
				if err != nil {
					return nil, err
				}
				attachments = append(attachments, rec)
			case map[string]any:
				attachments = append(attachments, cloneRecord(att))
			default:
				return nil, &ValidationError{Message: fmt.Sprintf("unsupported attachment type %T", a)}
			}
		}
		payload["attachments"] = attachments
	}
	if opts.AllowedMentions != nil {
		rec, err := toRecord(opts.AllowedMentions)
		if err != nil {
			return nil, err
		}
		payload["allowed_mentions"] = rec
	}
	if opts.TTS {
		payload["tts"] = true
	}
	return payload, nil
}

// empty reports whether a send payload carries no user-visible content.
// Flags, mentions and references alone do not make a message.
func empty(payload map[string]any) bool {
	for _, key := range []string{"content", "embeds", "components", "sticker_ids"} {
		if _, ok := payload[key]; ok {
			return false
		}
	}
	return true
}

// normalizeEmbeds converts a mix of structured embeds and raw records into
// canonical map form. Structured values canonicalize through their own JSON
// representation; raw records pass through unchanged.
func normalizeEmbeds(in []any) ([]any, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]any, 0, len(in))
	for _, e := range in {
		switch embed := e.(type) {
		case *discordgo.MessageEmbed:
			rec, err := toRecord(embed)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		case map[string]any:
			out = append(out, cloneRecord(embed))
		default:
			return nil, &ValidationError{Message: fmt.Sprintf("unsupported embed type %T", e)}
		}
	}
	return out, nil
}

// normalizeComponents converts component rows to canonical map form.
func normalizeComponents(in []any) ([]any, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]any, 0, len(in))
	for _, c := range in {
		switch component := c.(type) {
		case discordgo.MessageComponent:
			rec, err := toRecord(component)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		case map[string]any:
			out = append(out, cloneRecord(component))
		default:
			return nil, &ValidationError{Message: fmt.Sprintf("unsupported component type %T", c)}
		}
	}
	return out, nil
}

// toRecord canonicalizes a structured value through its JSON form.
func toRecord(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonicalize %T: %w", v, err)
	}
	var rec map[string]any
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("canonicalize %T: %w", v, err)
	}
	return rec, nil
}
