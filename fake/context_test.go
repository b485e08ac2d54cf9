package fake

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyeahso/interactest/action"
)

func TestDefer_RecordsAndSetsState(t *testing.T) {
	c := NewClient()
	ctx := NewSlashContext(c)

	require.NoError(t, ctx.Defer(true))
	assert.True(t, ctx.Deferred())
	assert.True(t, ctx.Ephemeral())

	actions := c.Actions()
	require.Len(t, actions, 1)
	deferred, ok := actions[0].(action.Defer)
	require.True(t, ok)
	assert.True(t, deferred.Ephemeral)
}

func TestDefer_TwiceIsStateError(t *testing.T) {
	ctx := NewSlashContext(NewClient())
	require.NoError(t, ctx.Defer(false))

	err := ctx.Defer(false)
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
}

func TestSend_CachesAndRecords(t *testing.T) {
	c := NewClient()
	ctx := NewSlashContext(c)

	msg, err := ctx.SendContent("hello")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.NotZero(t, msg.ID)
	assert.Equal(t, "hello", msg.Content())
	assert.True(t, ctx.Responded())
	assert.Equal(t, msg.ID, ctx.OriginalID())
	assert.Equal(t, 1, c.CachedMessages())

	actions := c.Actions()
	require.Len(t, actions, 1)
	sent, ok := actions[0].(action.Send)
	require.True(t, ok)
	assert.Equal(t, "hello", sent.Message["content"])
	assert.Equal(t, msg.ID, sent.Message["id"])
}

func TestSend_EmptyPayloadIsValidationError(t *testing.T) {
	c := NewClient()
	ctx := NewSlashContext(c)

	_, err := ctx.Send(SendOptions{Silent: true})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Message, "empty message")
	assert.Zero(t, c.Ledger().Len())
	assert.False(t, ctx.Responded())
}

func TestSend_EphemeralIsSticky(t *testing.T) {
	c := NewClient()
	ctx := NewSlashContext(c)
	require.NoError(t, ctx.Defer(true))

	msg, err := ctx.SendContent("visible to you only")
	require.NoError(t, err)
	assert.NotZero(t, msg.Flags()&discordgo.MessageFlagsEphemeral)
	assert.True(t, ctx.Ephemeral())

	// Once set, every later send carries the bit too.
	msg2, err := ctx.SendContent("still ephemeral")
	require.NoError(t, err)
	assert.NotZero(t, msg2.Flags()&discordgo.MessageFlagsEphemeral)
}

func TestSend_FlagComposition(t *testing.T) {
	ctx := NewSlashContext(NewClient())

	msg, err := ctx.Send(SendOptions{
		Content:        "quiet",
		SuppressEmbeds: true,
		Silent:         true,
	})
	require.NoError(t, err)
	flags := msg.Flags()
	assert.NotZero(t, flags&discordgo.MessageFlagsSuppressEmbeds)
	assert.NotZero(t, flags&discordgo.MessageFlagsSuppressNotifications)
	assert.Zero(t, flags&discordgo.MessageFlagsEphemeral)
	assert.False(t, ctx.Ephemeral())
}

func TestSend_NormalizesEmbeds(t *testing.T) {
	ctx := NewSlashContext(NewClient())

	msg, err := ctx.Send(SendOptions{
		Embeds: []any{
			&discordgo.MessageEmbed{Title: "structured", Color: 0x00ff00},
			map[string]any{"title": "raw"},
		},
	})
	require.NoError(t, err)

	embeds := msg.Embeds()
	require.Len(t, embeds, 2)
	assert.Equal(t, "structured", embeds[0]["title"])
	assert.EqualValues(t, 0x00ff00, embeds[0]["color"])
	assert.Equal(t, "raw", embeds[1]["title"])
}

func TestSend_RejectsAttachmentAsFile(t *testing.T) {
	ctx := NewSlashContext(NewClient())

	_, err := ctx.Send(SendOptions{
		Content: "here you go",
		Files:   []any{&discordgo.MessageAttachment{ID: "1", URL: "https://cdn.example/file.png"}},
	})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Message, "attachments are not files")
}

func TestSend_AcceptsRealFileArguments(t *testing.T) {
	ctx := NewSlashContext(NewClient())

	_, err := ctx.Send(SendOptions{
		Content: "uploads",
		Files:   []any{"testdata/cat.png", []byte{0x89, 0x50}, &discordgo.File{Name: "dog.png"}},
	})
	require.NoError(t, err)
}

func TestSend_AfterOriginalDeletedIsStateError(t *testing.T) {
	ctx := NewSlashContext(NewClient())
	_, err := ctx.SendContent("short lived")
	require.NoError(t, err)
	require.NoError(t, ctx.Delete())

	_, err = ctx.SendContent("too late")
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
}

func TestEdit_OverlayPreservesOmittedFields(t *testing.T) {
	c := NewClient()
	ctx := NewSlashContext(c)

	_, err := ctx.Send(SendOptions{
		Content: "original",
		Embeds:  []any{&discordgo.MessageEmbed{Title: "kept"}},
	})
	require.NoError(t, err)

	edited, err := ctx.Edit(EditOptions{Content: "changed"})
	require.NoError(t, err)
	assert.Equal(t, "changed", edited.Content())
	require.Len(t, edited.Embeds(), 1)
	assert.Equal(t, "kept", edited.Embeds()[0]["title"])

	// The cache holds the overlaid record under the same id.
	cached, err := c.Message(ctx.OriginalID())
	require.NoError(t, err)
	assert.Equal(t, "changed", cached.Content())
	require.Len(t, cached.Embeds(), 1)

	actions := c.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, action.TypeEdit, actions[1].Kind())
}

func TestEdit_BeforeRespondingIsLookupError(t *testing.T) {
	ctx := NewSlashContext(NewClient())

	_, err := ctx.Edit(EditOptions{Content: "nothing to edit"})
	var notCached *NotCachedError
	require.ErrorAs(t, err, &notCached)
}

func TestEdit_UnknownIDIsLookupError(t *testing.T) {
	ctx := NewSlashContext(NewClient())
	_, err := ctx.SendContent("exists")
	require.NoError(t, err)

	_, err = ctx.EditMessage(12345, EditOptions{Content: "who?"})
	var notCached *NotCachedError
	require.ErrorAs(t, err, &notCached)
	assert.EqualValues(t, 12345, notCached.MessageID)
}

func TestDelete_RemovesFromCacheAndCloses(t *testing.T) {
	c := NewClient()
	ctx := NewSlashContext(c)
	msg, err := ctx.SendContent("doomed")
	require.NoError(t, err)

	require.NoError(t, ctx.Delete())
	assert.Zero(t, c.CachedMessages())

	actions := c.Actions()
	require.Len(t, actions, 2)
	deleted, ok := actions[1].(action.Delete)
	require.True(t, ok)
	assert.Equal(t, msg.ID, deleted.MessageID)

	// Double delete surfaces as a lookup failure, not a silent no-op.
	err = ctx.Delete()
	var notCached *NotCachedError
	require.ErrorAs(t, err, &notCached)
}

func TestDelete_BeforeRespondingIsLookupError(t *testing.T) {
	ctx := NewSlashContext(NewClient())

	err := ctx.Delete()
	var notCached *NotCachedError
	require.ErrorAs(t, err, &notCached)
}

func TestSendModal_OnlyBeforeResponding(t *testing.T) {
	c := NewClient()
	ctx := NewSlashContext(c)

	require.NoError(t, ctx.SendModal(&discordgo.InteractionResponseData{
		CustomID: "modal-1",
		Title:    "Hello",
	}))

	actions := c.Actions()
	require.Len(t, actions, 1)
	modal, ok := actions[0].(action.SendModal)
	require.True(t, ok)
	assert.Equal(t, "modal-1", modal.Modal["custom_id"])
	assert.Equal(t, "Hello", modal.Modal["title"])
}

func TestSendModal_AfterRespondingIsStateError(t *testing.T) {
	ctx := NewSlashContext(NewClient())
	_, err := ctx.SendContent("responded")
	require.NoError(t, err)

	err = ctx.SendModal(map[string]any{"custom_id": "late", "title": "Late"})
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Contains(t, stateErr.Message, "cannot send modal after responding")
}

func TestSendModal_AllowedWhileDeferred(t *testing.T) {
	ctx := NewSlashContext(NewClient())
	require.NoError(t, ctx.Defer(false))
	assert.NoError(t, ctx.SendModal(map[string]any{"custom_id": "ok"}))
}

func TestSendChoices_Normalization(t *testing.T) {
	c := NewClient()
	ctx := NewAutocompleteContext(c, "da")
	ctx.Locale = discordgo.German

	err := ctx.SendChoices(
		"daily",
		7,
		map[string]any{"name": "weekly", "value": "weekly"},
		&discordgo.ApplicationCommandOptionChoice{
			Name:              "daily",
			Value:             "daily",
			NameLocalizations: map[discordgo.Locale]string{discordgo.German: "täglich"},
		},
	)
	require.NoError(t, err)

	actions := c.Actions()
	require.Len(t, actions, 1)
	choices, ok := actions[0].(action.SendChoices)
	require.True(t, ok)
	require.Len(t, choices.Choices, 4)
	assert.Equal(t, map[string]any{"name": "daily", "value": "daily"}, choices.Choices[0])
	assert.Equal(t, map[string]any{"name": "7", "value": 7}, choices.Choices[1])
	assert.Equal(t, map[string]any{"name": "weekly", "value": "weekly"}, choices.Choices[2])
	assert.Equal(t, "täglich", choices.Choices[3]["name"])
}

func TestSendChoices_TooManyIsValidationError(t *testing.T) {
	c := NewClient()
	ctx := NewAutocompleteContext(c, "x")

	choices := make([]any, MaxChoices+1)
	for i := range choices {
		choices[i] = "choice"
	}
	err := ctx.SendChoices(choices...)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Zero(t, c.Ledger().Len(), "nothing may be recorded past the limit")
}

func TestSendChoices_MalformedRecordIsValidationError(t *testing.T) {
	c := NewClient()
	ctx := NewAutocompleteContext(c, "x")

	err := ctx.SendChoices(map[string]any{"name": "missing value"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Zero(t, c.Ledger().Len())
}

func TestComponentContext_CarriesCustomIDAndMessage(t *testing.T) {
	c := NewClient()
	ctx := NewSlashContext(c)
	msg, err := ctx.SendContent("press the button")
	require.NoError(t, err)

	comp := NewComponentContext(c, "confirm-button", msg)
	assert.Equal(t, "confirm-button", comp.CustomID)
	assert.Same(t, msg, comp.Message)
	assert.Same(t, c, comp.Client())
}

func TestContext_FixtureAccessors(t *testing.T) {
	c := NewClient()
	ctx := NewSlashContext(c)
	assert.Zero(t, ctx.GuildID())
	assert.Zero(t, ctx.ChannelID())
	assert.Zero(t, ctx.AuthorID())
	assert.NotEmpty(t, ctx.Token)
	assert.NotZero(t, ctx.InteractionID)

	g := NewGuild(c, map[string][]string{"general": {}}, []string{"admin"}, map[string][]string{"alice": {"admin"}})
	ctx.Guild = g
	ctx.Channel = g.ChannelByName("general")
	ctx.Author = g.MemberByNick("alice")

	assert.Equal(t, g.ID, ctx.GuildID())
	assert.Equal(t, ctx.Channel.ID, ctx.ChannelID())
	assert.Equal(t, ctx.Author.ID, ctx.AuthorID())
}

func TestSend_RecordsChannelID(t *testing.T) {
	c := NewClient()
	g := NewGuild(c, map[string][]string{"general": {}}, nil, nil)
	ctx := NewSlashContext(c)
	ctx.Guild = g
	ctx.Channel = g.ChannelByName("general")

	msg, err := ctx.SendContent("where am I")
	require.NoError(t, err)
	assert.Equal(t, ctx.Channel.ID, msg.ChannelID)
}
