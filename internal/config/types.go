package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Loopback is the IP that is always reported reachable without probing.
const Loopback = "127.0.0.1"

// Config represents the complete fleet.yaml configuration file.
type Config struct {
	Version      int           `yaml:"version" mapstructure:"version"`
	Devices      []Device      `yaml:"devices" mapstructure:"devices"`
	Targets      []Target      `yaml:"targets" mapstructure:"targets"`
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`
	ProbeTimeout time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`
	Session      SessionConfig `yaml:"session" mapstructure:"session"`
	Diag         DiagConfig    `yaml:"diag" mapstructure:"diag"`
}

// Device is any monitorable endpoint in the fleet.
// Identity key is IP, which must be unique across the registry.
type Device struct {
	Name string `yaml:"name" mapstructure:"name"`
	IP   string `yaml:"ip" mapstructure:"ip"`
}

// Target is a device the operator can dispatch actions against.
type Target struct {
	Name string `yaml:"name" mapstructure:"name"`
	IP   string `yaml:"ip" mapstructure:"ip"`

	// SSH is the name used to address the device for remote actions
	// (an ~/.ssh/config alias or user@host), distinct from Name.
	SSH string `yaml:"ssh" mapstructure:"ssh"`

	// Extended reports whether the containerized "extended mode"
	// session is offered for this target.
	Extended bool `yaml:"extended" mapstructure:"extended"`

	// MAC enables the wake action when set.
	MAC string `yaml:"mac,omitempty" mapstructure:"mac"`
}

// Local reports whether the target is this machine.
func (t Target) Local() bool {
	return t.IP == Loopback || t.SSH == "localhost"
}

// SessionConfig controls remote terminal sessions.
type SessionConfig struct {
	// ExtendedCommand is the fixed remote command that bootstraps the
	// containerized environment when a session opens in extended mode.
	ExtendedCommand string `yaml:"extended_command" mapstructure:"extended_command"`
}

// DiagConfig controls the diagnostic sweep.
type DiagConfig struct {
	// Command is the remote pipeline that runs the health checks and
	// prints the marker-delimited report on stdout.
	Command string `yaml:"command" mapstructure:"command"`
}

// DefaultExtendedCommand bootstraps the containerized ROS environment
// before dropping into an interactive shell.
const DefaultExtendedCommand = "ros2_start -- bash -i"

// DefaultDiagCommand launches the health-check stack and strips the
// component-container prefixes from its output so the report parser
// sees clean "name, message" lines.
const DefaultDiagCommand = `bash -i -c 'ros2_start -- bash -i -c "RCUTILS_CONSOLE_OUTPUT_FORMAT=\"{message}\" ros2 launch system_health_check system_health_check.launch.py | sed -u \"s/^\[component_container_mt-[0-9]\+\][: ]*//g\""'`

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:      CurrentConfigVersion,
		PollInterval: 5 * time.Second,
		ProbeTimeout: 1 * time.Second,
		Session: SessionConfig{
			ExtendedCommand: DefaultExtendedCommand,
		},
		Diag: DiagConfig{
			Command: DefaultDiagCommand,
		},
	}
}

// IPs returns the registry's device IPs in declaration order.
func (c *Config) IPs() []string {
	ips := make([]string, 0, len(c.Devices))
	for _, d := range c.Devices {
		ips = append(ips, d.IP)
	}
	return ips
}

// ProbeIPs returns the device IPs that need probing, preserving
// declaration order. Loopback devices are excluded; the monitor pins
// them reachable without a probe.
func (c *Config) ProbeIPs() []string {
	var ips []string
	for _, d := range c.Devices {
		if d.IP == Loopback {
			continue
		}
		ips = append(ips, d.IP)
	}
	return ips
}

// TargetByName returns the target with the given display name.
func (c *Config) TargetByName(name string) (Target, bool) {
	for _, t := range c.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}
