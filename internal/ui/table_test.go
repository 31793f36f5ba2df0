package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdeck/fleetdeck/internal/diag"
)

func TestMain(m *testing.M) {
	// Force a stable color profile so rendered output doesn't depend
	// on the terminal running the tests.
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Device", Width: 20},
		{Title: "Status", Width: 10},
	}
	rows := []table.Row{
		{"nav-unit", "online"},
		{"arm-unit", "offline"},
	}

	tbl := NewTable(columns, rows)

	view := tbl.View()
	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Device")
	assert.Contains(t, view, "Status")
	assert.Contains(t, view, "nav-unit")
	assert.Contains(t, view, "arm-unit")
}

func TestRenderSimpleTable_Empty(t *testing.T) {
	columns := []TableColumn{{Title: "Device", Width: 20}}
	assert.Empty(t, RenderSimpleTable(columns, nil))
}

func TestRenderStatusTable(t *testing.T) {
	out := RenderStatusTable([]DeviceStatusRow{
		{Name: "deck", IP: "127.0.0.1", Online: true},
		{Name: "nav-unit", IP: "192.168.10.11", Online: false},
	})

	assert.Contains(t, out, "deck")
	assert.Contains(t, out, "nav-unit")
	assert.Contains(t, out, "192.168.10.11")
	assert.Contains(t, out, "online")
	assert.Contains(t, out, "offline")
}

func TestRenderStatusTable_Empty(t *testing.T) {
	assert.Equal(t, "No devices configured", RenderStatusTable(nil))
}

func TestRenderCheckTable_FailuresFirst(t *testing.T) {
	report := &diag.Report{
		Summary: []diag.CheckItem{
			{Status: diag.StatusPass, Name: "motors", Description: "torque ok"},
			{Status: diag.StatusFail, Name: "lidar", Description: "no point cloud", Details: "Raw Error: timeout"},
		},
	}

	out := RenderCheckTable(report)
	lidarIdx := strings.Index(out, "lidar")
	motorsIdx := strings.Index(out, "motors")
	require.GreaterOrEqual(t, lidarIdx, 0)
	require.GreaterOrEqual(t, motorsIdx, 0)
	assert.Less(t, lidarIdx, motorsIdx, "failed checks render before passed ones")
	assert.Contains(t, out, "Raw Error: timeout")
}

func TestRenderCheckTable_Empty(t *testing.T) {
	assert.Equal(t, "No checks to display", RenderCheckTable(nil))
	assert.Equal(t, "No checks to display", RenderCheckTable(&diag.Report{}))
}
