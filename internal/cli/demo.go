package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soyeahso/interactest"
	"github.com/soyeahso/interactest/sample"
)

func newDemoCmd() *cobra.Command {
	var option string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Invoke the sample ping command and print the recorded actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Str("command", "ping").Str("option", option).Msg("invoking sample handler")

			actions, err := interactest.InvokeSlash(sample.Ping, interactest.Options{"option": option})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			for _, a := range actions {
				fmt.Printf("-- %s\n", a.Kind())
				if err := enc.Encode(a); err != nil {
					return err
				}
			}
			log.Info().Int("actions", len(actions)).Msg("invocation complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&option, "option", "demo", "value passed as the command's option")
	return cmd
}
