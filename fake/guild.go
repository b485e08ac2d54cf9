package fake

import (
	"sort"

	"github.com/bwmarrin/discordgo"

	"github.com/soyeahso/interactest/snowflake"
)

// Guild is a pre-populated stand-in for a guild read model, built from
// plain name lists instead of fetched from the network. Identifiers are
// assigned at construction and immutable afterwards.
type Guild struct {
	ID              int64
	Name            string
	OwnerID         int64
	PreferredLocale discordgo.Locale

	// Channels holds every channel including categories; the children of a
	// category follow it in order.
	Channels []*Channel
	Roles    []*Role
	Members  []*Member

	client *Client
}

// Channel is a guild channel. A category is a channel of
// discordgo.ChannelTypeGuildCategory whose Children are the channels
// nested under it.
type Channel struct {
	ID       int64
	GuildID  int64
	ParentID int64
	Name     string
	Type     discordgo.ChannelType
	Children []*Channel

	guild *Guild
}

// Role is a guild role. Position is the declared rank: index zero is the
// first role in the fixture's ordering.
type Role struct {
	ID          int64
	GuildID     int64
	Name        string
	Position    int
	Color       int
	Permissions int64
}

// Member is a guild member holding non-owning references to the guild's
// roles.
type Member struct {
	ID      int64
	GuildID int64
	Nick    string
	Roles   []*Role
}

// NewGuild constructs a guild fixture and attaches it to the client.
//
// Each top-level entry in channels with no sub-channel names becomes a
// plain text channel; an entry with sub-channel names becomes a category
// whose children are those sub-channels. Each role's position equals its
// index in roles. Each member references the roles whose names appear in
// its declared list; unresolvable names are silently dropped. Empty inputs
// are valid and yield empty collections.
//
// Top-level channel and member names are laid out in sorted order so the
// fixture is deterministic.
func NewGuild(c *Client, channels map[string][]string, roles []string, members map[string][]string) *Guild {
	g := &Guild{
		ID:              snowflake.New(),
		Name:            "VirtualTest",
		OwnerID:         snowflake.New(),
		PreferredLocale: discordgo.EnglishUS,
		client:          c,
	}

	for _, name := range sortedKeys(channels) {
		subs := channels[name]
		if len(subs) == 0 {
			g.Channels = append(g.Channels, &Channel{
				ID:      snowflake.New(),
				GuildID: g.ID,
				Name:    name,
				Type:    discordgo.ChannelTypeGuildText,
				guild:   g,
			})
			continue
		}
		category := &Channel{
			ID:      snowflake.New(),
			GuildID: g.ID,
			Name:    name,
			Type:    discordgo.ChannelTypeGuildCategory,
			guild:   g,
		}
		g.Channels = append(g.Channels, category)
		for _, sub := range subs {
			ch := &Channel{
				ID:       snowflake.New(),
				GuildID:  g.ID,
				ParentID: category.ID,
				Name:     sub,
				Type:     discordgo.ChannelTypeGuildText,
				guild:    g,
			}
			g.Channels = append(g.Channels, ch)
			category.Children = append(category.Children, ch)
		}
	}

	for position, name := range roles {
		g.Roles = append(g.Roles, &Role{
			ID:          snowflake.New(),
			GuildID:     g.ID,
			Name:        name,
			Position:    position,
			Color:       0xffffff,
			Permissions: discordgo.PermissionAll,
		})
	}

	for _, nick := range sortedKeys(members) {
		member := &Member{
			ID:      snowflake.New(),
			GuildID: g.ID,
			Nick:    nick,
		}
		for _, roleName := range members[nick] {
			if role := g.RoleByName(roleName); role != nil {
				member.Roles = append(member.Roles, role)
			}
		}
		g.Members = append(g.Members, member)
	}

	c.attachGuild(g)
	return g
}

// Channel returns a channel by id, or nil.
func (g *Guild) Channel(id int64) *Channel {
	for _, ch := range g.Channels {
		if ch.ID == id {
			return ch
		}
	}
	return nil
}

// ChannelByName returns a channel by name, or nil.
func (g *Guild) ChannelByName(name string) *Channel {
	for _, ch := range g.Channels {
		if ch.Name == name {
			return ch
		}
	}
	return nil
}

// Categories returns the category channels in order.
func (g *Guild) Categories() []*Channel {
	var out []*Channel
	for _, ch := range g.Channels {
		if ch.IsCategory() {
			out = append(out, ch)
		}
	}
	return out
}

// Role returns a role by id, or nil.
func (g *Guild) Role(id int64) *Role {
	for _, r := range g.Roles {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// RoleByName returns a role by name, or nil.
func (g *Guild) RoleByName(name string) *Role {
	for _, r := range g.Roles {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Member returns a member by id, or nil.
func (g *Guild) Member(id int64) *Member {
	for _, m := range g.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// MemberByNick returns a member by nickname, or nil.
func (g *Guild) MemberByNick(nick string) *Member {
	for _, m := range g.Members {
		if m.Nick == nick {
			return m
		}
	}
	return nil
}

// IsCategory reports whether the channel is a category.
func (ch *Channel) IsCategory() bool { return ch.Type == discordgo.ChannelTypeGuildCategory }

// Category returns the category the channel is nested under, or nil for
// top-level channels.
func (ch *Channel) Category() *Channel {
	if ch.ParentID == 0 {
		return nil
	}
	return ch.guild.Channel(ch.ParentID)
}

// Message returns a cached message from this channel's client.
func (ch *Channel) Message(id int64) (*Message, error) {
	return ch.guild.client.Message(id)
}

// DeleteMessage deletes a cached message through the transport, recording
// the channel it was deleted from.
func (ch *Channel) DeleteMessage(id int64, reason string) error {
	return ch.guild.client.rest.DeleteMessage(ch.ID, id, reason)
}

// DisplayName returns the member's visible name.
func (m *Member) DisplayName() string { return m.Nick }

// HasRole reports whether the member references a role with the name.
func (m *Member) HasRole(name string) bool {
	for _, r := range m.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
