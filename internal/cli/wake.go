package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/backend"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
)

// wakeCmd broadcasts a wake-on-LAN packet for one target.
var wakeCmd = &cobra.Command{
	Use:   "wake [target]",
	Short: "Send a wake-on-LAN packet to a target",
	Long: `Broadcast a wake-on-LAN magic packet for a target. The target needs a
'mac' entry in fleet.yaml.

Examples:
  fleetdeck wake arm-unit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wakeCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(wakeCmd)
}

// wakeCommand implements the wake command logic.
func wakeCommand(targetName string) error {
	cfg, err := config.LoadFound(Config())
	if err != nil {
		return err
	}

	target, ok := cfg.TargetByName(targetName)
	if !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown target '%s'", targetName),
			"Check the 'targets' entries in fleet.yaml")
	}
	if target.MAC == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' has no MAC address configured", target.Name),
			"Add a 'mac' entry for the target in fleet.yaml")
	}

	if err := backend.NewRemote(cfg).Wake(context.Background(), target.MAC); err != nil {
		return err
	}
	fmt.Printf("Wake packet sent to '%s' (%s).\n", target.Name, target.MAC)
	return nil
}
