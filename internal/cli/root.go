package cli

import (
	"github.com/spf13/cobra"

	"github.com/soyeahso/interactest/internal/logging"
)

var (
	logLevel string

	// log is initialized by the root command's PersistentPreRun.
	log *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactest",
		Short: "Offline harness for Discord interaction handlers",
		Long:  "interactest invokes bot command handlers against simulated runtime objects and reports the side effects they would have performed.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logLevel
			if level == "" {
				level = "info"
			}
			log = logging.New(nil, level)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
