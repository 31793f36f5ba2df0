package config

import (
	"fmt"
	"net"

	"github.com/fleetdeck/fleetdeck/internal/errors"
)

// Validate checks the fleet registry for errors and returns structured error messages.
func (c *Config) Validate() error {
	if c.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but fleetdeck only knows up to %d)", c.Version, CurrentConfigVersion),
			"Update fleetdeck to a release that understands this config")
	}

	if len(c.Devices) == 0 {
		return errors.New(errors.ErrConfig,
			"No devices configured",
			"Add at least one device to fleet.yaml, or run 'fleetdeck init'")
	}

	// Device IPs are the registry's identity keys
	seen := make(map[string]string)
	for _, d := range c.Devices {
		if d.Name == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Device with IP %s has no name", d.IP),
				"Give every device a display name")
		}
		if net.ParseIP(d.IP) == nil {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Device '%s' has an invalid IP: %q", d.Name, d.IP),
				"Use a literal IPv4 or IPv6 address")
		}
		if other, dup := seen[d.IP]; dup {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Devices '%s' and '%s' share IP %s", other, d.Name, d.IP),
				"Device IPs must be unique across the registry")
		}
		seen[d.IP] = d.Name
	}

	// Targets are the controllable subset of the registry
	for _, t := range c.Targets {
		if _, known := seen[t.IP]; !known {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Target '%s' (IP %s) is not in the devices list", t.Name, t.IP),
				"Every target must also appear under 'devices' so it gets monitored")
		}
		if t.SSH == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Target '%s' has no ssh address", t.Name),
				"Set 'ssh' to the hostname used for remote actions")
		}
		if t.MAC != "" {
			if _, err := net.ParseMAC(t.MAC); err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					fmt.Sprintf("Target '%s' has an invalid MAC: %q", t.Name, t.MAC),
					"Use the aa:bb:cc:dd:ee:ff form, or drop 'mac' to disable wake")
			}
		}
	}

	if c.PollInterval <= 0 {
		return errors.New(errors.ErrConfig,
			"poll_interval must be positive",
			"Use a duration like 5s or 10s")
	}
	if c.ProbeTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			"probe_timeout must be positive",
			"Use a duration like 1s or 500ms")
	}

	return nil
}
