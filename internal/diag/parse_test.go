package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `Sourcing environment...
=== Check Start ===
[PASS] lidar, front lidar publishing
[FAIL] camera, no frames received
[PASS] imu, bias within tolerance
=== Detailed Report ===
camera, device /dev/video0 not found
camera, driver node exited with code 1
=======================
trailing shell noise`

func TestParse(t *testing.T) {
	report := Parse(sampleOutput)

	require.Len(t, report.Summary, 3)

	assert.Equal(t, StatusPass, report.Summary[0].Status)
	assert.Equal(t, "lidar", report.Summary[0].Name)
	assert.Equal(t, "front lidar publishing", report.Summary[0].Description)
	assert.Empty(t, report.Summary[0].Details)

	assert.Equal(t, StatusFail, report.Summary[1].Status)
	assert.Equal(t, "camera", report.Summary[1].Name)
	// Repeated detail lines for the same check join with newlines
	assert.Equal(t, "device /dev/video0 not found\ndriver node exited with code 1", report.Summary[1].Details)

	assert.Equal(t, StatusPass, report.Summary[2].Status)
	assert.Equal(t, "imu", report.Summary[2].Name)
}

func TestParse_TrimsToMarkers(t *testing.T) {
	report := Parse(sampleOutput)

	assert.NotContains(t, report.Raw, "Sourcing environment")
	assert.NotContains(t, report.Raw, "trailing shell noise")
	assert.Contains(t, report.Raw, startMarker)
	assert.Contains(t, report.Detailed, splitMarker)
}

func TestParse_MissingMarkers(t *testing.T) {
	// Without markers the whole text is scanned
	report := Parse("[PASS] lidar, ok\n[FAIL] camera, bad")

	require.Len(t, report.Summary, 2)
	assert.Equal(t, "lidar", report.Summary[0].Name)
	assert.Equal(t, "camera", report.Summary[1].Name)
}

func TestParse_StripsANSI(t *testing.T) {
	colored := "=== Check Start ===\n" +
		"\x1b[32m[PASS]\x1b[0m lidar, ok\n" +
		"=======================\n"

	report := Parse(colored)

	require.Len(t, report.Summary, 1)
	assert.Equal(t, "lidar", report.Summary[0].Name)
	assert.Equal(t, StatusPass, report.Summary[0].Status)
}

func TestParse_CheckWithoutDescription(t *testing.T) {
	report := Parse("[PASS] standalone")

	require.Len(t, report.Summary, 1)
	assert.Equal(t, "standalone", report.Summary[0].Name)
	assert.Empty(t, report.Summary[0].Description)
}

func TestParse_PluginError(t *testing.T) {
	text := "=== Check Start ===\n" +
		"Plugin error: failed to load class type CameraHealthCheck from library\n" +
		"Plugin error: manifest missing\n" +
		"=======================\n"

	report := Parse(text)

	require.Len(t, report.Summary, 2)

	assert.Equal(t, StatusFail, report.Summary[0].Status)
	assert.Equal(t, "CameraHealthCheck", report.Summary[0].Name)
	assert.Contains(t, report.Summary[0].Description, "Plugin error:")
	assert.Contains(t, report.Summary[0].Details, "Raw Error:")

	// No "class type" fragment falls back to the generic name
	assert.Equal(t, "Plugin Load Error", report.Summary[1].Name)
}

func TestParse_EmptyInput(t *testing.T) {
	report := Parse("")
	assert.Empty(t, report.Summary)
	assert.Empty(t, report.Detailed)
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "[PASS] lidar", stripANSI("  \x1b[1;32m[PASS]\x1b[0m lidar  "))
	assert.Equal(t, "plain", stripANSI("plain"))
}
