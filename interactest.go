// Package interactest invokes chat command handlers against simulated
// runtime objects, so a bot's commands can be unit tested without a
// network. Every outbound side effect the handler attempts — deferring,
// sending, editing, deleting, reacting, opening a modal, sending
// autocomplete choices — is intercepted and returned as an ordered slice of
// action records for assertions.
package interactest

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/soyeahso/interactest/fake"
)

// Options carries the declared keyword arguments forwarded to a handler.
type Options map[string]any

// Has reports whether a key was supplied.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String returns the option as a string, or "" when absent or mistyped.
func (o Options) String(key string) string {
	s, _ := o[key].(string)
	return s
}

// Int returns the option as an int64, tolerating untyped literals.
func (o Options) Int(key string) int64 {
	switch v := o[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Float returns the option as a float64.
func (o Options) Float(key string) float64 {
	switch v := o[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Bool returns the option as a bool.
func (o Options) Bool(key string) bool {
	b, _ := o[key].(bool)
	return b
}

// SlashHandler handles a slash command invocation.
type SlashHandler interface {
	HandleSlash(ctx *fake.SlashContext, opts Options) error
}

// SlashHandlerFunc adapts a function to SlashHandler.
type SlashHandlerFunc func(ctx *fake.SlashContext, opts Options) error

func (f SlashHandlerFunc) HandleSlash(ctx *fake.SlashContext, opts Options) error {
	return f(ctx, opts)
}

// AutocompleteHandler handles an autocomplete invocation.
type AutocompleteHandler interface {
	HandleAutocomplete(ctx *fake.AutocompleteContext, opts Options) error
}

// AutocompleteHandlerFunc adapts a function to AutocompleteHandler.
type AutocompleteHandlerFunc func(ctx *fake.AutocompleteContext, opts Options) error

func (f AutocompleteHandlerFunc) HandleAutocomplete(ctx *fake.AutocompleteContext, opts Options) error {
	return f(ctx, opts)
}

// ComponentHandler handles a component invocation.
type ComponentHandler interface {
	HandleComponent(ctx *fake.ComponentContext, opts Options) error
}

// ComponentHandlerFunc adapts a function to ComponentHandler.
type ComponentHandlerFunc func(ctx *fake.ComponentContext, opts Options) error

func (f ComponentHandlerFunc) HandleComponent(ctx *fake.ComponentContext, opts Options) error {
	return f(ctx, opts)
}

// scoped is the optional registration capability a handler may carry. The
// harness auto-registers scoped handlers on the client before invoking
// them; plain handler funcs carry no metadata and registration is skipped
// silently.
type scoped interface {
	CommandName() string
	CommandScopes() []string
}

// Command bundles handlers with registration metadata and the declared
// command definition. It satisfies all three handler interfaces; the unset
// ones report an error when invoked.
type Command struct {
	Name   string
	Scopes []string

	// Definition is the command as it would be declared to the API.
	Definition *discordgo.ApplicationCommand

	Handler      SlashHandlerFunc
	Autocomplete AutocompleteHandlerFunc
	Component    ComponentHandlerFunc
}

// CommandName returns the resolved command name.
func (c *Command) CommandName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Definition != nil {
		return c.Definition.Name
	}
	return ""
}

// CommandScopes returns the guild scopes the command registers under.
func (c *Command) CommandScopes() []string { return c.Scopes }

func (c *Command) HandleSlash(ctx *fake.SlashContext, opts Options) error {
	if c.Handler == nil {
		return fmt.Errorf("command %q has no slash handler", c.CommandName())
	}
	return c.Handler(ctx, opts)
}

func (c *Command) HandleAutocomplete(ctx *fake.AutocompleteContext, opts Options) error {
	if c.Autocomplete == nil {
		return fmt.Errorf("command %q has no autocomplete handler", c.CommandName())
	}
	return c.Autocomplete(ctx, opts)
}

func (c *Command) HandleComponent(ctx *fake.ComponentContext, opts Options) error {
	if c.Component == nil {
		return fmt.Errorf("command %q has no component handler", c.CommandName())
	}
	return c.Component(ctx, opts)
}

// NewClient returns a fresh simulated client.
func NewClient(opts ...fake.ClientOption) *fake.Client {
	return fake.NewClient(opts...)
}

// NewGuild constructs a guild fixture on the client. See fake.NewGuild.
func NewGuild(c *fake.Client, channels map[string][]string, roles []string, members map[string][]string) *fake.Guild {
	return fake.NewGuild(c, channels, roles, members)
}
