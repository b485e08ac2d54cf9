package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyeahso/interactest/fake"
)

func TestLoad_BuildsGuild(t *testing.T) {
	f, err := Load("testdata/guild.yaml")
	require.NoError(t, err)

	g := f.Build(fake.NewClient())
	// 1 plain channel + 1 category + 2 children.
	assert.Len(t, g.Channels, 4)
	require.Len(t, g.Categories(), 1)
	assert.Equal(t, "general", g.Categories()[0].Name)
	assert.Len(t, g.Roles, 3)
	assert.Len(t, g.Members, 2)

	alice := g.MemberByNick("alice")
	require.NotNil(t, alice)
	assert.True(t, alice.HasRole("admin"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	require.Error(t, err)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("guild: [not a mapping"))
	var fixtureErr *FixtureError
	require.ErrorAs(t, err, &fixtureErr)
	assert.Contains(t, fixtureErr.Message, "failed to parse")
}

func TestParse_Validation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate role",
			yaml: "guild:\n  roles: [admin, admin]\n",
			want: `role "admin" twice`,
		},
		{
			name: "empty role name",
			yaml: "guild:\n  roles: [\"\"]\n",
			want: "empty role name",
		},
		{
			name: "empty channel name",
			yaml: "guild:\n  channels:\n    \"\": []\n",
			want: "empty channel name",
		},
		{
			name: "empty sub-channel name",
			yaml: "guild:\n  channels:\n    general: [\"\"]\n",
			want: "empty sub-channel name",
		},
		{
			name: "empty member name",
			yaml: "guild:\n  members:\n    \"\": []\n",
			want: "empty member name",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			var fixtureErr *FixtureError
			require.ErrorAs(t, err, &fixtureErr)
			assert.Contains(t, fixtureErr.Message, tc.want)
		})
	}
}

func TestParse_UnresolvableMemberRolesAllowed(t *testing.T) {
	f, err := Parse([]byte("guild:\n  members:\n    alice: [ghost]\n"))
	require.NoError(t, err)

	g := f.Build(fake.NewClient())
	alice := g.MemberByNick("alice")
	require.NotNil(t, alice)
	assert.Empty(t, alice.Roles)
}
