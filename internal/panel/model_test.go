package panel

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backendtesting "github.com/fleetdeck/fleetdeck/internal/backend/testing"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/diag"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

func TestMain(m *testing.M) {
	// Render without color sequences so assertions see plain text.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Devices = []config.Device{
		{Name: "deck", IP: config.Loopback},
		{Name: "nav-unit", IP: "192.168.10.11"},
		{Name: "arm-unit", IP: "192.168.10.12"},
		{Name: "camera-hub", IP: "192.168.10.20"},
	}
	cfg.Targets = testTargets()
	return cfg
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press feeds a key and returns the updated model plus any command.
func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// deliver runs a command and feeds its message back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	return updated.(Model)
}

func allOnline(m Model) Model {
	updated, _ := m.Update(statusMsg{
		config.Loopback: true,
		"192.168.10.11": true,
		"192.168.10.12": true,
		"192.168.10.20": true,
	})
	return updated.(Model)
}

func TestModelFirstPollUpdatesStatuses(t *testing.T) {
	fake := backendtesting.NewFake()
	fake.ScriptProbe(map[string]bool{
		"192.168.10.11": true,
		"192.168.10.12": false,
		"192.168.10.20": false,
	}, nil)
	m := NewModel(testConfig(), fake)

	// Before any poll: loopback online, everything else undetermined
	assert.True(t, m.Statuses()[config.Loopback])
	_, determined := m.Statuses()["192.168.10.11"]
	assert.False(t, determined)

	m = deliver(t, m, m.pollCmd())

	assert.True(t, m.Statuses()[config.Loopback], "loopback is pinned online")
	assert.True(t, m.Statuses()["192.168.10.11"])
	assert.False(t, m.Statuses()["192.168.10.12"])
	assert.Equal(t, 2, m.OnlineCount())
}

func TestModelStatusGridPendingUntilProbed(t *testing.T) {
	fake := backendtesting.NewFake()
	fake.ScriptProbe(map[string]bool{
		"192.168.10.11": false,
		"192.168.10.12": false,
		"192.168.10.20": false,
	}, nil)
	m := NewModel(testConfig(), fake)

	// Never-probed devices show the pending symbol, not the offline one
	grid := m.renderStatusGrid()
	assert.Contains(t, grid, ui.SymbolPending+" nav-unit")
	assert.NotContains(t, grid, ui.SymbolOffline+" nav-unit")
	assert.Contains(t, grid, ui.SymbolOnline+" deck")

	// Undetermined still gates actions as offline
	assert.False(t, m.selector.ActiveOnline(map[string]bool{}))

	// After the poll lands, the same devices render offline
	m = deliver(t, m, m.pollCmd())
	grid = m.renderStatusGrid()
	assert.Contains(t, grid, ui.SymbolOffline+" nav-unit")
	assert.NotContains(t, grid, ui.SymbolPending+" nav-unit")
}

func TestModelShutdownFlow(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	// Switch to nav-unit and arm the shutdown
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "nav-unit", m.ActiveTarget().Name)

	m, cmd := press(t, m, keyRune('s'))
	assert.Nil(t, cmd)
	assert.True(t, m.gate.Armed())
	assert.Equal(t, "nav-unit", m.gate.Target().Name)

	// Confirm dispatches against the armed target's SSH alias
	m, cmd = press(t, m, keyRune('y'))
	m = deliver(t, m, cmd)

	assert.False(t, m.gate.Armed())
	assert.Equal(t, []string{"robot-nav"}, fake.Shutdowns)
}

func TestModelShutdownCancel(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, keyRune('s'))
	require.True(t, m.gate.Armed())

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, m.gate.Armed())
	assert.Empty(t, fake.Shutdowns)

	// Enter after cancel opens a session, it does not shut down
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = deliver(t, m, cmd)
	assert.Empty(t, fake.Shutdowns)
	assert.Len(t, fake.Sessions, 1)
}

func TestModelGateIsModal(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, keyRune('s'))
	require.True(t, m.gate.Armed())

	// Tab is swallowed while armed; the captured target stands
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.True(t, m.gate.Armed())
	assert.Equal(t, "nav-unit", m.gate.Target().Name)
	assert.Equal(t, "nav-unit", m.ActiveTarget().Name)
}

func TestModelShutdownOfflineGuard(t *testing.T) {
	fake := backendtesting.NewFake()
	m := NewModel(testConfig(), fake) // nothing polled, remotes offline

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, keyRune('s'))

	assert.False(t, m.gate.Armed())
	assert.True(t, m.flashError)
}

func TestModelChecksAttributionAcrossTargetSwitch(t *testing.T) {
	fake := backendtesting.NewFake()
	fake.ChecksReport = &diag.Report{
		Summary: []diag.CheckItem{
			{Status: diag.StatusFail, Name: "lidar", Description: "no data"},
		},
	}
	m := allOnline(NewModel(testConfig(), fake))

	// Dispatch a checkup on nav-unit
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, keyRune('c'))
	require.NotNil(t, cmd)
	assert.True(t, m.reports.Running())

	// Switch to arm-unit before the run finishes
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "arm-unit", m.ActiveTarget().Name)

	m = deliver(t, m, cmd)

	// The result belongs to the dispatch-time target
	_, target, err := m.reports.Report()
	assert.NoError(t, err)
	assert.Equal(t, "nav-unit", target)
	assert.Equal(t, []string{"robot-nav"}, fake.ChecksHosts)
	assert.True(t, m.reports.Opened(), "a finished checkup opens the report view")
}

func TestModelChecksOneAtATime(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, keyRune('c'))
	require.NotNil(t, cmd)

	// Second dispatch is rejected while the first is in flight
	m, cmd2 := press(t, m, keyRune('c'))
	assert.Nil(t, cmd2)
	assert.True(t, m.flashError)
	assert.Equal(t, "nav-unit", m.reports.RunTarget())
}

func TestModelWake(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	// nav-unit has no MAC configured
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, keyRune('w'))
	assert.Nil(t, cmd)
	assert.True(t, m.flashError)

	// arm-unit does
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd = press(t, m, keyRune('w'))
	m = deliver(t, m, cmd)
	assert.Equal(t, []string{"aa:bb:cc:dd:ee:ff"}, fake.Wakes)
	assert.False(t, m.flashError)
}

func TestModelEnterOpensPlainSession(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	// Enter stays a plain shell even on an extended-capable target
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "nav-unit", m.ActiveTarget().Name)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = deliver(t, m, cmd)

	require.Len(t, fake.Sessions, 1)
	req := fake.Sessions[0]
	assert.Equal(t, "robot-nav", req.Hostname)
	assert.False(t, req.Extended)
	assert.Empty(t, req.RemoteCommand)
}

func TestModelExtendedSessionKey(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, keyRune('e'))
	m = deliver(t, m, cmd)

	require.Len(t, fake.Sessions, 1)
	req := fake.Sessions[0]
	assert.Equal(t, "robot-nav", req.Hostname)
	assert.True(t, req.Extended)
	assert.Equal(t, config.DefaultExtendedCommand, req.RemoteCommand)
}

func TestModelExtendedSessionGuard(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	// arm-unit has no extended session configured
	m, _ = press(t, m, keyRune('3'))
	require.Equal(t, "arm-unit", m.ActiveTarget().Name)

	m, cmd := press(t, m, keyRune('e'))
	assert.Nil(t, cmd)
	assert.True(t, m.flashError)
	assert.Empty(t, fake.Sessions)
}

func TestModelNumberKeyJumpsToTarget(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	m, _ = press(t, m, keyRune('3'))
	assert.Equal(t, "arm-unit", m.ActiveTarget().Name)

	// Out of range is rejected, selection stands
	m, _ = press(t, m, keyRune('9'))
	assert.Equal(t, "arm-unit", m.ActiveTarget().Name)
	assert.True(t, m.flashError)
}

func TestModelReportViewKeys(t *testing.T) {
	fake := backendtesting.NewFake()
	fake.ChecksReport = mixedReport()
	m := allOnline(NewModel(testConfig(), fake))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, keyRune('c'))
	m = deliver(t, m, cmd)
	require.True(t, m.reports.Opened())

	m, _ = press(t, m, keyRune('p'))
	assert.True(t, m.reports.ShowPassed())

	m, _ = press(t, m, keyRune('l'))
	assert.True(t, m.reports.ShowRaw())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.reports.Opened())

	// The report is retained and reopens from the panel
	m, _ = press(t, m, keyRune('r'))
	assert.True(t, m.reports.Opened())
	assert.False(t, m.reports.ShowPassed(), "reopening resets disclosure")
	assert.False(t, m.reports.ShowRaw())
}

func TestModelViewRenders(t *testing.T) {
	fake := backendtesting.NewFake()
	fake.ChecksReport = mixedReport()
	m := allOnline(NewModel(testConfig(), fake))

	out := m.View()
	assert.Contains(t, out, "FLEETDECK")
	assert.Contains(t, out, "nav-unit")
	assert.Contains(t, out, "camera-hub")

	m, _ = press(t, m, keyRune('s'))
	assert.Contains(t, m.View(), "Shut down 'deck'?")

	m, _ = press(t, m, keyRune('n'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, keyRune('c'))
	m = deliver(t, m, cmd)
	out = m.View()
	assert.Contains(t, out, "Checkup: nav-unit")
	assert.Contains(t, out, "lidar")
}

func TestModelQuit(t *testing.T) {
	fake := backendtesting.NewFake()
	m := allOnline(NewModel(testConfig(), fake))

	m, cmd := press(t, m, keyRune('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
