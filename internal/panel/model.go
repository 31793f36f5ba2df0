// Package panel implements the interactive fleet control panel: a
// status grid over every device, target tabs with an action row, a
// confirmation-gated shutdown, and a diagnostic report view.
package panel

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fleetdeck/fleetdeck/internal/backend"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/status"
)

// Model is the Bubble Tea model for the control panel.
type Model struct {
	devices  []config.Device
	selector Selector
	gate     Gate
	reports  ReportPanel

	backend         backend.Backend
	monitor         *status.Monitor
	statuses        map[string]bool
	interval        time.Duration
	extendedCommand string

	// Transient outcome line for the last dispatched action
	flash      string
	flashError bool

	width    int
	height   int
	quitting bool

	// Report view viewport for scrollable content
	reportViewport viewport.Model
	viewportReady  bool
}

// NewModel creates a panel model over the configured fleet.
func NewModel(cfg *config.Config, b backend.Backend) Model {
	m := Model{
		devices:         cfg.Devices,
		selector:        NewSelector(cfg.Targets),
		backend:         b,
		monitor:         status.NewMonitor(b, cfg),
		interval:        cfg.PollInterval,
		extendedCommand: cfg.Session.ExtendedCommand,
	}
	m.statuses = m.monitor.Snapshot()
	return m
}

// Init starts the poll timer and fires an immediate first poll.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.tickCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.pollCmd())

	case statusMsg:
		// The monitor keeps the old reference when nothing changed,
		// so identity doubles as a change check.
		m.statuses = msg

	case sessionDoneMsg:
		m.setOutcome(msg.target+": session opened", msg.err)

	case shutdownDoneMsg:
		m.setOutcome(msg.target+": shutdown dispatched", msg.err)

	case wakeDoneMsg:
		m.setOutcome(msg.target+": wake packet sent", msg.err)

	case checksDoneMsg:
		m.reports.Finish(msg.target, msg.report, msg.err)
		m.setOutcome(msg.target+": checkup finished", msg.err)
		if msg.err == nil {
			m.reports.Open()
			m.syncReportViewport()
		}
	}

	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.reports.Opened() {
		return m.renderReport()
	}
	return m.renderPanel()
}

// setOutcome records the result of a dispatched action for the flash
// line. Errors replace the success text.
func (m *Model) setOutcome(success string, err error) {
	if err != nil {
		m.flash = err.Error()
		m.flashError = true
		return
	}
	m.flash = success
	m.flashError = false
}

func (m *Model) resizeViewport() {
	headerHeight := 3
	footerHeight := 2
	vh := m.height - headerHeight - footerHeight
	if vh < 1 {
		vh = 1
	}

	if !m.viewportReady {
		m.reportViewport = viewport.New(m.width, vh)
		m.reportViewport.YPosition = headerHeight
		m.viewportReady = true
	} else {
		m.reportViewport.Width = m.width
		m.reportViewport.Height = vh
	}

	if m.reports.Opened() {
		m.syncReportViewport()
	}
}

// OnlineCount returns how many devices are currently reachable.
func (m Model) OnlineCount() int {
	count := 0
	for _, ok := range m.statuses {
		if ok {
			count++
		}
	}
	return count
}

// Statuses returns the current reachability map.
func (m Model) Statuses() map[string]bool {
	return m.statuses
}

// ActiveTarget returns the target the action row dispatches against.
func (m Model) ActiveTarget() config.Target {
	return m.selector.Active()
}
