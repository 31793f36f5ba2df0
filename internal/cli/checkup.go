package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/backend"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

var (
	checkupRaw     bool
	checkupJSON    bool
	checkupTimeout string
)

// checkupCmd runs the diagnostic sweep on one target.
var checkupCmd = &cobra.Command{
	Use:   "checkup [target]",
	Short: "Run the diagnostic sweep on a target",
	Long: `Run the remote health-check pipeline on a target and print the parsed
report, failures first.

Exits nonzero when any check fails, so scripts can gate on the result.

Examples:
  fleetdeck checkup nav-unit
  fleetdeck checkup nav-unit --raw
  fleetdeck checkup nav-unit --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkupCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkupCmd)
	checkupCmd.Flags().BoolVar(&checkupRaw, "raw", false, "print the raw sweep output instead of the parsed report")
	checkupCmd.Flags().BoolVar(&checkupJSON, "json", false, "output in JSON format")
	checkupCmd.Flags().StringVar(&checkupTimeout, "timeout", "3m", "how long to wait for the sweep (e.g., 90s, 5m)")
}

// checkupCommand implements the checkup command logic.
func checkupCommand(targetName string) error {
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

	timeout, err := time.ParseDuration(checkupTimeout)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid timeout", checkupTimeout),
			"Try something like 90s, 3m, or 500ms")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	report, err := backend.NewRemote(cfg).RunChecks(ctx, target.SSH)
	if err != nil {
		return err
	}

	switch {
	case checkupJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.WrapWithCode(err, errors.ErrDiag,
				"Failed to encode the report", "")
		}
	case checkupRaw:
		fmt.Println(report.Raw)
	default:
		fmt.Println(report.Headline())
		fmt.Println()
		fmt.Print(ui.RenderCheckTable(report))
	}

	if report.HasFailures() {
		os.Exit(1)
	}
	return nil
}
