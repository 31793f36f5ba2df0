package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdeck/fleetdeck/internal/config"
)

func TestStarterConfigIsValid(t *testing.T) {
	cfg := starterConfig("nav-unit", "192.168.10.11", "robot-nav")

	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Devices, 2)
	assert.Len(t, cfg.Targets, 2)
	assert.Equal(t, config.Loopback, cfg.Devices[0].IP)
	assert.True(t, cfg.Targets[1].Extended)
}

func TestStarterConfigLoadsBack(t *testing.T) {
	cfg := starterConfig("nav-unit", "192.168.10.11", "robot-nav")
	data, err := renderStarter(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "poll_interval: 5s")

	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, loaded.Validate())
	assert.Equal(t, cfg.Devices, loaded.Devices)
	assert.Equal(t, cfg.Targets, loaded.Targets)
	assert.Equal(t, cfg.PollInterval, loaded.PollInterval)
}
