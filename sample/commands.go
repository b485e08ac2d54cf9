// Package sample holds example commands exercised by the harness's
// end-to-end tests and the demo CLI. They are written the way a bot would
// write them; nothing in here knows it is being simulated.
package sample

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/soyeahso/interactest"
	"github.com/soyeahso/interactest/fake"
)

// Ping defers ephemerally, sends a greeting with an embed, edits it, then
// deletes it.
var Ping = &interactest.Command{
	Name:   "ping",
	Scopes: []string{"guild-main"},
	Definition: &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Replies, edits the reply, then cleans up",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "option",
				Description: "Free-form text echoed back",
				Required:    true,
			},
		},
	},
	Handler: func(ctx *fake.SlashContext, opts interactest.Options) error {
		if err := ctx.Defer(true); err != nil {
			return err
		}
		option := opts.String("option")

		embed := &discordgo.MessageEmbed{
			Title:       "Test",
			Description: fmt.Sprintf("Hello, World! You chose %s as your option.", option),
			Color:       0x00ff00,
		}
		msg, err := ctx.Send(fake.SendOptions{
			Content: fmt.Sprintf("Hello, World! You chose %s as your option.", option),
			Embeds:  []any{embed},
		})
		if err != nil {
			return err
		}

		if _, err := msg.Edit(fake.EditOptions{
			Content: fmt.Sprintf("The message has changed! You chose %s as your option.", option),
		}); err != nil {
			return err
		}

		return msg.Delete("")
	},
}

// ListChannels replies with one line per channel in the context's guild.
var ListChannels = interactest.SlashHandlerFunc(func(ctx *fake.SlashContext, _ interactest.Options) error {
	if err := ctx.Defer(true); err != nil {
		return err
	}

	var b strings.Builder
	for _, ch := range ctx.Guild.Channels {
		fmt.Fprintf(&b, "%s (%d)\n", ch.Name, ch.ID)
	}
	_, err := ctx.Send(fake.SendOptions{
		Content: fmt.Sprintf("Channels in %d %s:\n%s", ctx.GuildID(), ctx.Guild.Name, b.String()),
	})
	return err
})

// ListCategories replies with each category and its nested channels.
var ListCategories = interactest.SlashHandlerFunc(func(ctx *fake.SlashContext, _ interactest.Options) error {
	if err := ctx.Defer(true); err != nil {
		return err
	}

	var b strings.Builder
	for _, category := range ctx.Guild.Categories() {
		fmt.Fprintf(&b, "%s (%d)\n", category.Name, category.ID)
		for _, ch := range category.Children {
			fmt.Fprintf(&b, "    %s (%d)\n", ch.Name, ch.ID)
		}
	}
	_, err := ctx.Send(fake.SendOptions{
		Content: fmt.Sprintf("Categories in %d %s:\n%s", ctx.GuildID(), ctx.Guild.Name, b.String()),
	})
	return err
})

// ListRoles replies with the guild's roles in rank order.
var ListRoles = interactest.SlashHandlerFunc(func(ctx *fake.SlashContext, _ interactest.Options) error {
	if err := ctx.Defer(true); err != nil {
		return err
	}

	var b strings.Builder
	for _, role := range ctx.Guild.Roles {
		fmt.Fprintf(&b, "%s (%d)\n", role.Name, role.ID)
	}
	_, err := ctx.Send(fake.SendOptions{Content: "Roles:\n" + b.String()})
	return err
})

// ListMembers replies with the guild's members.
var ListMembers = interactest.SlashHandlerFunc(func(ctx *fake.SlashContext, _ interactest.Options) error {
	if err := ctx.Defer(true); err != nil {
		return err
	}

	var b strings.Builder
	for _, member := range ctx.Guild.Members {
		fmt.Fprintf(&b, "%s (%d)\n", member.DisplayName(), member.ID)
	}
	_, err := ctx.Send(fake.SendOptions{Content: "Members:\n" + b.String()})
	return err
})

// scheduleChoices are the declared schedule choices, localized the way a
// published command would declare them.
var scheduleChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "once", Value: "once", NameLocalizations: map[discordgo.Locale]string{discordgo.German: "einmalig"}},
	{Name: "hourly", Value: "hourly", NameLocalizations: map[discordgo.Locale]string{discordgo.German: "stündlich"}},
	{Name: "daily", Value: "daily", NameLocalizations: map[discordgo.Locale]string{discordgo.German: "täglich"}},
}

// ScheduleAutocomplete suggests schedule values matching the typed prefix.
var ScheduleAutocomplete = interactest.AutocompleteHandlerFunc(func(ctx *fake.AutocompleteContext, _ interactest.Options) error {
	var matches []any
	for _, choice := range scheduleChoices {
		if strings.HasPrefix(choice.Name, strings.ToLower(ctx.InputText)) {
			matches = append(matches, choice)
		}
	}
	return ctx.SendChoices(matches...)
})

// ConfirmButton acknowledges a confirm button press: it reacts to the
// originating message and replies ephemerally.
var ConfirmButton = interactest.ComponentHandlerFunc(func(ctx *fake.ComponentContext, _ interactest.Options) error {
	if ctx.Message != nil {
		if err := ctx.Message.React("✅"); err != nil {
			return err
		}
	}
	_, err := ctx.Send(fake.SendOptions{
		Content:   fmt.Sprintf("Confirmed via %s.", ctx.CustomID),
		Ephemeral: true,
	})
	return err
})

// Feedback opens a modal prompting for feedback text.
var Feedback = interactest.SlashHandlerFunc(func(ctx *fake.SlashContext, _ interactest.Options) error {
	return ctx.SendModal(&discordgo.InteractionResponseData{
		CustomID: "feedback-modal",
		Title:    "Feedback",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "feedback-text",
						Label:       "What should we improve?",
						Style:       discordgo.TextInputParagraph,
						Required:    true,
						Placeholder: "Tell us everything",
					},
				},
			},
		},
	})
})
