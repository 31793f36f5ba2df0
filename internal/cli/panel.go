package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/backend"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/panel"
)

// panelCmd starts the interactive control panel.
var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the interactive control panel",
	Long: `Open the full-screen control panel: a live reachability grid over
every device, target tabs, and the action row for sessions, shutdowns,
wake-on-LAN, and diagnostic checkups.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return panelCommand()
	},
}

func init() {
	rootCmd.AddCommand(panelCmd)
}

// panelCommand loads the fleet and runs the panel program.
func panelCommand() error {
	cfg, err := config.LoadFound(Config())
	if err != nil {
		return err
	}
	if len(cfg.Targets) == 0 {
		return errors.New(errors.ErrConfig,
			"No targets configured",
			"Add at least one entry under 'targets' in fleet.yaml")
	}

	model := panel.NewModel(cfg, backend.NewRemote(cfg))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "The panel exited unexpectedly")
	}
	return nil
}
