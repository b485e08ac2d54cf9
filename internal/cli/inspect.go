package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soyeahso/interactest/fake"
	"github.com/soyeahso/interactest/fixture"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <fixture.yaml>",
		Short: "Validate a guild fixture file and print the guild it builds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.Load(args[0])
			if err != nil {
				return err
			}

			guild := f.Build(fake.NewClient())
			log.Info().Str("path", args[0]).Int64("guild", guild.ID).Msg("fixture valid")

			fmt.Printf("guild %s (%d)\n", guild.Name, guild.ID)
			for _, ch := range guild.Channels {
				if ch.ParentID != 0 {
					fmt.Printf("    %s (%d)\n", ch.Name, ch.ID)
					continue
				}
				kind := "channel"
				if ch.IsCategory() {
					kind = "category"
				}
				fmt.Printf("  %s %s (%d)\n", kind, ch.Name, ch.ID)
			}
			for _, role := range guild.Roles {
				fmt.Printf("  role %s rank=%d (%d)\n", role.Name, role.Position, role.ID)
			}
			for _, member := range guild.Members {
				roles := make([]string, 0, len(member.Roles))
				for _, r := range member.Roles {
					roles = append(roles, r.Name)
				}
				fmt.Printf("  member %s roles=%v (%d)\n", member.Nick, roles, member.ID)
			}
			return nil
		},
	}
}
