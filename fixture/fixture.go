// Package fixture loads declarative guild fixtures from YAML, so test data
// can live next to the tests instead of inline literals.
//
// A fixture file looks like:
//
//	guild:
//	  channels:
//	    welcome: []
//	    general: [chat, memes]
//	  roles: [admin, mod, user]
//	  members:
//	    alice: [admin]
//	    bob: [user]
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/soyeahso/interactest/fake"
)

// FixtureError reports an unreadable or invalid fixture file.
type FixtureError struct {
	Message string
}

func (e *FixtureError) Error() string { return e.Message }

// GuildSpec is the declarative layout of a guild fixture.
type GuildSpec struct {
	// Channels maps top-level channel names to sub-channel names. An empty
	// list is a plain channel; a non-empty one a category.
	Channels map[string][]string `yaml:"channels"`
	// Roles in rank order; index is the role position.
	Roles []string `yaml:"roles"`
	// Members maps nicknames to declared role names.
	Members map[string][]string `yaml:"members"`
}

// Fixture is a parsed fixture file.
type Fixture struct {
	Guild GuildSpec `yaml:"guild"`
}

// Load reads and validates a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses fixture YAML.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &FixtureError{Message: "failed to parse fixture: " + err.Error()}
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Build constructs the guild fixture on the client.
func (f *Fixture) Build(c *fake.Client) *fake.Guild {
	return fake.NewGuild(c, f.Guild.Channels, f.Guild.Roles, f.Guild.Members)
}

// validate rejects layouts the entity store cannot represent. Unresolvable
// member role names are allowed — the store drops them silently — but a
// duplicate role name would make resolution ambiguous.
func (f *Fixture) validate() error {
	seen := make(map[string]bool, len(f.Guild.Roles))
	for _, role := range f.Guild.Roles {
		if role == "" {
			return &FixtureError{Message: "fixture declares an empty role name"}
		}
		if seen[role] {
			return &FixtureError{Message: fmt.Sprintf("fixture declares role %q twice", role)}
		}
		seen[role] = true
	}

	for name, subs := range f.Guild.Channels {
		if name == "" {
			return &FixtureError{Message: "fixture declares an empty channel name"}
		}
		for _, sub := range subs {
			if sub == "" {
				return &FixtureError{Message: fmt.Sprintf("category %q declares an empty sub-channel name", name)}
			}
		}
	}

	for nick := range f.Guild.Members {
		if nick == "" {
			return &FixtureError{Message: "fixture declares an empty member name"}
		}
	}
	return nil
}
