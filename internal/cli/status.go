package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fleetdeck/fleetdeck/internal/backend"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/status"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

var statusJSON bool

// statusCmd probes the fleet once and prints the result.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe every device once and print reachability",
	Long: `Probe every configured device once and print a reachability table.

The loopback device is always reported online without probing.

Examples:
  fleetdeck status
  fleetdeck status --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCommand()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output in JSON format")
}

// DeviceStatus is one device's probe result in JSON output.
type DeviceStatus struct {
	Name   string `json:"name"`
	IP     string `json:"ip"`
	Online bool   `json:"online"`
}

// statusCommand implements the status command logic.
func statusCommand() error {
	cfg, err := config.LoadFound(Config())
	if err != nil {
		return err
	}

	monitor := status.NewMonitor(backend.NewRemote(cfg), cfg)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.PollInterval)
	defer cancel()
	statuses := monitor.Poll(ctx)

	if statusJSON {
		out := make([]DeviceStatus, 0, len(cfg.Devices))
		for _, d := range cfg.Devices {
			out = append(out, DeviceStatus{Name: d.Name, IP: d.IP, Online: statuses[d.IP]})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to encode status output", "")
		}
		return nil
	}

	// Plain output for pipes, styled table for terminals
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, d := range cfg.Devices {
			state := "offline"
			if statuses[d.IP] {
				state = "online"
			}
			fmt.Printf("%s\t%s\t%s\n", d.Name, d.IP, state)
		}
		return nil
	}

	rows := make([]ui.DeviceStatusRow, 0, len(cfg.Devices))
	for _, d := range cfg.Devices {
		rows = append(rows, ui.DeviceStatusRow{Name: d.Name, IP: d.IP, Online: statuses[d.IP]})
	}
	fmt.Print(ui.RenderStatusTable(rows))
	return nil
}
