package interactest

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/soyeahso/interactest/action"
	"github.com/soyeahso/interactest/fake"
)

// invocation collects the per-call configuration: which client to run
// against and the fixture overrides applied to the context before the
// handler sees it.
type invocation struct {
	client  *fake.Client
	guild   *fake.Guild
	channel *fake.Channel
	author  *fake.Member
	locale  discordgo.Locale
	args    []any
}

// Option configures a single invocation.
type Option func(*invocation)

// WithClient runs the invocation against an existing client instead of a
// fresh one, sharing its message cache and ledger with prior calls.
func WithClient(c *fake.Client) Option {
	return func(inv *invocation) { inv.client = c }
}

// WithGuild sets the context's guild fixture.
func WithGuild(g *fake.Guild) Option {
	return func(inv *invocation) { inv.guild = g }
}

// WithChannel sets the context's channel fixture.
func WithChannel(ch *fake.Channel) Option {
	return func(inv *invocation) { inv.channel = ch }
}

// WithAuthor sets the context's invoking member fixture.
func WithAuthor(m *fake.Member) Option {
	return func(inv *invocation) { inv.author = m }
}

// WithLocale sets the context's locale, used when resolving declared
// autocomplete choice names.
func WithLocale(locale discordgo.Locale) Option {
	return func(inv *invocation) { inv.locale = locale }
}

// WithArgs sets the positional arguments stored on the context.
func WithArgs(args ...any) Option {
	return func(inv *invocation) { inv.args = args }
}

// InvokeSlash invokes a slash command handler against a simulated context
// and returns the actions it recorded, sorted ascending by creation time.
// Only actions from this call are returned, even when the client is shared
// with earlier invocations.
//
// Handler errors are returned unwrapped; surfacing handler bugs is the
// point of the harness.
func InvokeSlash(h SlashHandler, opts Options, options ...Option) ([]action.Action, error) {
	inv := newInvocation(options)
	client := inv.ensureClient()
	register(client, h)

	ctx := fake.NewSlashContext(client)
	inv.apply(ctx, opts)

	start := time.Now()
	if err := h.HandleSlash(ctx, opts); err != nil {
		return nil, err
	}
	return client.Ledger().Since(start), nil
}

// InvokeAutocomplete invokes an autocomplete handler with the partial input
// text the user has typed.
func InvokeAutocomplete(h AutocompleteHandler, inputText string, opts Options, options ...Option) ([]action.Action, error) {
	inv := newInvocation(options)
	client := inv.ensureClient()
	register(client, h)

	ctx := fake.NewAutocompleteContext(client, inputText)
	inv.apply(&ctx.SlashContext, opts)

	start := time.Now()
	if err := h.HandleAutocomplete(ctx, opts); err != nil {
		return nil, err
	}
	return client.Ledger().Since(start), nil
}

// InvokeComponent invokes a component handler for a component with the
// given custom id on an originating message. The message may be a
// *fake.Message, a raw record (reconstituted via fake.MessageFromRecord),
// or nil.
func InvokeComponent(h ComponentHandler, customID string, message any, opts Options, options ...Option) ([]action.Action, error) {
	inv := newInvocation(options)
	client := inv.ensureClient()
	register(client, h)

	var source *fake.Message
	switch m := message.(type) {
	case *fake.Message:
		source = m
	case map[string]any:
		source = fake.MessageFromRecord(client, m)
	case nil:
	default:
		return nil, &fake.ValidationError{Message: "message must be *fake.Message or a raw record"}
	}

	ctx := fake.NewComponentContext(client, customID, source)
	inv.apply(&ctx.SlashContext, opts)

	start := time.Now()
	if err := h.HandleComponent(ctx, opts); err != nil {
		return nil, err
	}
	return client.Ledger().Since(start), nil
}

func newInvocation(options []Option) *invocation {
	inv := &invocation{}
	for _, opt := range options {
		opt(inv)
	}
	return inv
}

func (inv *invocation) ensureClient() *fake.Client {
	if inv.client == nil {
		inv.client = fake.NewClient()
	}
	return inv.client
}

// apply copies the fixture overrides and forwarded arguments onto the
// context.
func (inv *invocation) apply(ctx *fake.SlashContext, opts Options) {
	if inv.guild != nil {
		ctx.Guild = inv.guild
	}
	if inv.channel != nil {
		ctx.Channel = inv.channel
	}
	if inv.author != nil {
		ctx.Author = inv.author
	}
	if inv.locale != "" {
		ctx.Locale = inv.locale
	}
	ctx.Args = inv.args
	ctx.Options = map[string]any(opts)
}

// register adds a handler to the client's interaction table when it carries
// scope metadata. Handlers without metadata are tolerated; registration is
// skipped silently.
func register(c *fake.Client, h any) {
	s, ok := h.(scoped)
	if !ok {
		return
	}
	name := s.CommandName()
	if name == "" {
		return
	}
	for _, scope := range s.CommandScopes() {
		if !c.HasInteraction(scope, name) {
			c.AddInteraction(scope, name, h)
		}
	}
}
