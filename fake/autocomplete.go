package fake

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/soyeahso/interactest/action"
)

// MaxChoices is the choice limit per autocomplete response.
const MaxChoices = 25

// AutocompleteContext simulates an autocomplete interaction. InputText is
// the partial text the user has typed so far.
type AutocompleteContext struct {
	SlashContext
	InputText string
}

// NewAutocompleteContext builds an autocomplete context over the client.
func NewAutocompleteContext(c *Client, inputText string) *AutocompleteContext {
	return &AutocompleteContext{
		SlashContext: *NewSlashContext(c),
		InputText:    inputText,
	}
}

// SendChoices records the autocomplete choices shown to the user. A choice
// is a raw string or number (name and value are the literal), a record with
// explicit "name" and "value" keys, or a declared
// *discordgo.ApplicationCommandOptionChoice whose name resolves through the
// context's locale. At most MaxChoices may be sent; nothing is recorded
// when the limit is exceeded or any choice fails to normalize.
func (c *AutocompleteContext) SendChoices(choices ...any) error {
	if len(choices) > MaxChoices {
		return &ValidationError{Message: fmt.Sprintf("cannot send more than %d choices at a time", MaxChoices)}
	}

	normalized := make([]map[string]any, 0, len(choices))
	for _, choice := range choices {
		rec, err := normalizeChoice(choice, c.Locale)
		if err != nil {
			return err
		}
		normalized = append(normalized, rec)
	}

	c.client.record(action.NewSendChoices(normalized))
	return nil
}

func normalizeChoice(v any, locale discordgo.Locale) (map[string]any, error) {
	switch choice := v.(type) {
	case string:
		return map[string]any{"name": choice, "value": choice}, nil
	case int:
		return map[string]any{"name": strconv.Itoa(choice), "value": choice}, nil
	case int64:
		return map[string]any{"name": strconv.FormatInt(choice, 10), "value": choice}, nil
	case float64:
		return map[string]any{"name": strconv.FormatFloat(choice, 'f', -1, 64), "value": choice}, nil
	case map[string]any:
		name, nameOK := choice["name"]
		value, valueOK := choice["value"]
		if !nameOK || !valueOK {
			return nil, &ValidationError{Message: "choice record needs name and value"}
		}
		return map[string]any{"name": name, "value": value}, nil
	case *discordgo.ApplicationCommandOptionChoice:
		name := choice.Name
		if localized, ok := choice.NameLocalizations[locale]; ok {
			name = localized
		}
		return map[string]any{"name": name, "value": choice.Value}, nil
	default:
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported choice type %T", v)}
	}
}
