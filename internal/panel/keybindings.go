package panel

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// Key bindings as constants for consistency.
const (
	KeyQuit    = "q"
	KeyQuitAlt = "ctrl+c"

	KeyNextTarget    = "tab"
	KeyNextTargetAlt = "right"
	KeyPrevTarget    = "shift+tab"
	KeyPrevTargetAlt = "left"

	KeySession         = "enter"
	KeyExtendedSession = "e"
	KeyShutdown        = "s"
	KeyCheckup         = "c"
	KeyWake            = "w"
	KeyReport          = "r"

	KeyConfirm    = "y"
	KeyConfirmAlt = "enter"
	KeyDeny       = "n"
	KeyDenyAlt    = "esc"

	KeyTogglePassed  = "p"
	KeyToggleRaw     = "l"
	KeyToggleDetails = "enter"
	KeyCursorDown    = "j"
	KeyCursorDownAlt = "down"
	KeyCursorUp      = "k"
	KeyCursorUpAlt   = "up"
	KeyCloseReport   = "esc"
)

// HandleKeyMsg processes keyboard input. Returns true if the key was
// handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// The armed gate is modal: only confirm or cancel get through.
	if m.gate.Armed() {
		return m.handleGateKey(key)
	}

	if m.reports.Opened() {
		return m.handleReportKey(key, msg)
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyNextTarget, KeyNextTargetAlt:
		m.selector.Next()
		return true, nil

	case KeyPrevTarget, KeyPrevTargetAlt:
		m.selector.Prev()
		return true, nil

	case KeySession:
		return true, m.dispatchSession(false)

	case KeyExtendedSession:
		return true, m.dispatchSession(true)

	case KeyShutdown:
		if m.selector.Len() == 0 || !m.selector.ActiveOnline(m.statuses) {
			m.setOutcome("", errOffline(m.selector.Active().Name))
			return true, nil
		}
		m.gate.Arm(m.selector.Active())
		return true, nil

	case KeyCheckup:
		return true, m.dispatchChecks()

	case KeyWake:
		return true, m.dispatchWake()

	case KeyReport:
		if report, _, _ := m.reports.Report(); report != nil {
			m.reports.Open()
			m.syncReportViewport()
		}
		return true, nil
	}

	// Number keys jump straight to a target tab.
	if n, err := strconv.Atoi(key); err == nil && n >= 1 {
		if err := m.selector.SetActive(n - 1); err != nil {
			m.setOutcome("", err)
		}
		return true, nil
	}

	return false, nil
}

// handleGateKey resolves the armed shutdown gate.
func (m *Model) handleGateKey(key string) (bool, tea.Cmd) {
	switch key {
	case KeyConfirm, KeyConfirmAlt:
		target, armed := m.gate.Confirm()
		if !armed {
			return true, nil
		}
		return true, m.shutdownCmd(target)

	case KeyDeny, KeyDenyAlt, KeyQuit, KeyQuitAlt:
		m.gate.Cancel()
		return true, nil
	}

	// Swallow everything else while armed
	return true, nil
}

// handleReportKey drives the report view.
func (m *Model) handleReportKey(key string, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch key {
	case KeyCloseReport, KeyQuit:
		m.reports.Close()
		return true, nil

	case KeyTogglePassed:
		m.reports.TogglePassed()
		m.syncReportViewport()
		return true, nil

	case KeyToggleRaw:
		m.reports.ToggleRaw()
		m.syncReportViewport()
		return true, nil

	case KeyToggleDetails:
		m.reports.ToggleDetails()
		m.syncReportViewport()
		return true, nil

	case KeyCursorDown, KeyCursorDownAlt:
		m.reports.CursorDown()
		m.syncReportViewport()
		return true, nil

	case KeyCursorUp, KeyCursorUpAlt:
		m.reports.CursorUp()
		m.syncReportViewport()
		return true, nil
	}

	// Everything else scrolls the viewport (pgup, pgdn, etc.)
	var cmd tea.Cmd
	m.reportViewport, cmd = m.reportViewport.Update(msg)
	return true, cmd
}

// dispatchSession opens a terminal session on the active target. An
// extended session is only offered on targets configured for it.
func (m *Model) dispatchSession(extended bool) tea.Cmd {
	if m.selector.Len() == 0 {
		return nil
	}
	target := m.selector.Active()
	if extended && !target.Extended {
		m.setOutcome("", errNoExtended(target.Name))
		return nil
	}
	if !target.Local() && !m.selector.ActiveOnline(m.statuses) {
		m.setOutcome("", errOffline(target.Name))
		return nil
	}
	return m.sessionCmd(target, extended)
}

// dispatchChecks starts a diagnostic run on the active target. Only
// one run is allowed at a time, panel-wide.
func (m *Model) dispatchChecks() tea.Cmd {
	if m.selector.Len() == 0 {
		return nil
	}
	target := m.selector.Active()
	if !m.selector.ActiveOnline(m.statuses) {
		m.setOutcome("", errOffline(target.Name))
		return nil
	}
	if !m.reports.Begin(target.Name) {
		m.setOutcome("", errCheckupBusy(m.reports.RunTarget()))
		return nil
	}
	m.flash = target.Name + ": checkup running"
	m.flashError = false
	return m.checksCmd(target)
}

// dispatchWake sends a wake packet when the active target has a MAC.
func (m *Model) dispatchWake() tea.Cmd {
	if m.selector.Len() == 0 {
		return nil
	}
	target := m.selector.Active()
	if target.MAC == "" {
		m.setOutcome("", errNoMAC(target.Name))
		return nil
	}
	return m.wakeCmd(target)
}
