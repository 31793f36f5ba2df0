// Package cli wires the fleetdeck commands: the interactive panel plus
// one-shot equivalents for scripts and quick checks.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag is the --config override shared by every command.
var configFlag string

// rootCmd is the base command; invoked bare it opens the panel.
var rootCmd = &cobra.Command{
	Use:   "fleetdeck",
	Short: "Control panel for a small robot fleet",
	Long: `fleetdeck watches a fleet of devices and dispatches actions against them:
terminal sessions, confirmation-gated shutdowns, wake-on-LAN, and
diagnostic checkups with a browsable report.

Run it bare for the interactive panel, or use the subcommands for
one-shot output that scripts can consume.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return panelCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to fleet.yaml")
}

// Config returns the --config flag value.
func Config() string {
	return configFlag
}

// Execute runs the root command and prints any error before exiting
// nonzero. Structured errors already carry their operator-facing
// format, so they print as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
