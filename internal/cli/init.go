package cli

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
)

var (
	initForce          bool
	initNonInteractive bool
	initName           string
	initIP             string
	initSSH            string
)

// initCmd creates a starter fleet.yaml.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter fleet.yaml",
	Long: `Create a fleet.yaml in the current directory with this machine plus one
remote device. Prompts for the device details unless the flags provide
them.

Examples:
  fleetdeck init
  fleetdeck init --non-interactive --name nav-unit --ip 192.168.10.11 --ssh robot-nav`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing fleet.yaml")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use flag values")
	initCmd.Flags().StringVar(&initName, "name", "", "display name for the first remote device")
	initCmd.Flags().StringVar(&initIP, "ip", "", "IP address of the first remote device")
	initCmd.Flags().StringVar(&initSSH, "ssh", "", "SSH alias or user@host for the first remote device")
}

// initCommand implements the init command logic.
func initCommand() error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !initForce {
		if initNonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("'%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	name, ip, ssh := initName, initIP, initSSH
	if initNonInteractive {
		if name == "" || ip == "" || ssh == "" {
			return errors.New(errors.ErrConfig,
				"--name, --ip, and --ssh are required in non-interactive mode",
				"Provide all three flags or run interactively")
		}
	} else {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Device name").
					Description("A friendly name shown in the panel").
					Placeholder("nav-unit").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("device name is required")
						}
						return nil
					}),
				huh.NewInput().
					Title("IP address").
					Description("Probed for reachability").
					Placeholder("192.168.10.11").
					Value(&ip).
					Validate(func(s string) error {
						if net.ParseIP(strings.TrimSpace(s)) == nil {
							return fmt.Errorf("not a valid IP address")
						}
						return nil
					}),
				huh.NewInput().
					Title("SSH host").
					Description("~/.ssh/config alias or user@host for remote actions").
					Placeholder("robot-nav").
					Value(&ssh).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("SSH host is required")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try the --non-interactive flags instead")
		}
	}

	cfg := starterConfig(strings.TrimSpace(name), strings.TrimSpace(ip), strings.TrimSpace(ssh))
	data, err := renderStarter(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to render the config", "")
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+configPath,
			"Check directory permissions")
	}

	fmt.Printf("Created %s. Edit it to add the rest of the fleet, then run 'fleetdeck'.\n", configPath)
	return nil
}

// starterConfig builds the initial fleet: this machine plus one remote
// device, both dispatchable.
func starterConfig(name, ip, ssh string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Devices = []config.Device{
		{Name: "deck", IP: config.Loopback},
		{Name: name, IP: ip},
	}
	cfg.Targets = []config.Target{
		{Name: "deck", IP: config.Loopback, SSH: "localhost"},
		{Name: name, IP: ip, SSH: ssh, Extended: true},
	}
	return cfg
}

// renderStarter writes the starter config with durations in the "5s"
// form the loader accepts, instead of raw nanosecond integers. The
// session and diag sections are left out so the defaults apply.
func renderStarter(cfg *config.Config) ([]byte, error) {
	doc := struct {
		Version      int             `yaml:"version"`
		Devices      []config.Device `yaml:"devices"`
		Targets      []config.Target `yaml:"targets"`
		PollInterval string          `yaml:"poll_interval"`
		ProbeTimeout string          `yaml:"probe_timeout"`
	}{
		Version:      cfg.Version,
		Devices:      cfg.Devices,
		Targets:      cfg.Targets,
		PollInterval: cfg.PollInterval.String(),
		ProbeTimeout: cfg.ProbeTimeout.String(),
	}
	return yaml.Marshal(doc)
}
