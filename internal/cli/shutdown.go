package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/backend"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
)

var shutdownYes bool

// shutdownCmd powers off one target after confirmation.
var shutdownCmd = &cobra.Command{
	Use:   "shutdown [target]",
	Short: "Power off a target",
	Long: `Power off a target over SSH. A confirmation prompt guards the dispatch
unless --yes is given.

The shutdown runs in a new terminal window so any sudo prompt stays
visible.

Examples:
  fleetdeck shutdown nav-unit
  fleetdeck shutdown nav-unit --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return shutdownCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(shutdownCmd)
	shutdownCmd.Flags().BoolVarP(&shutdownYes, "yes", "y", false, "skip the confirmation prompt")
}

// shutdownCommand implements the shutdown command logic.
func shutdownCommand(targetName string) error {
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

	if !shutdownYes {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Shut down '%s' (%s)?", target.Name, target.SSH)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrPower,
				"Failed to get confirmation",
				"Use --yes to skip the prompt")
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := backend.NewRemote(cfg).Shutdown(context.Background(), target.SSH); err != nil {
		return err
	}
	fmt.Printf("Shutdown dispatched for '%s'.\n", target.Name)
	return nil
}
