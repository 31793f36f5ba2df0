package panel

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fleetdeck/fleetdeck/internal/backend"
	"github.com/fleetdeck/fleetdeck/internal/config"
)

// checksTimeout bounds a diagnostic run; the remote pipeline has to
// launch a whole check stack, so this is generous.
const checksTimeout = 3 * time.Minute

// actionTimeout bounds the quick dispatches (session, shutdown, wake).
const actionTimeout = 30 * time.Second

// tickCmd schedules the next poll after the configured interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// pollCmd runs one reachability poll and delivers the reconciled map.
func (m Model) pollCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.interval)
		defer cancel()
		return statusMsg(m.monitor.Poll(ctx))
	}
}

// sessionCmd opens a terminal session on the target. The extended flag
// is chosen per keypress, not taken from the target; an extended-capable
// target still opens plain sessions.
func (m Model) sessionCmd(t config.Target, extended bool) tea.Cmd {
	req := backend.SessionRequest{
		Hostname: t.SSH,
		IP:       t.IP,
		Extended: extended,
	}
	if extended {
		req.RemoteCommand = m.extendedCommand
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		return sessionDoneMsg{target: t.Name, err: m.backend.OpenSession(ctx, req)}
	}
}

// shutdownCmd powers off the target.
func (m Model) shutdownCmd(t config.Target) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		return shutdownDoneMsg{target: t.Name, err: m.backend.Shutdown(ctx, t.SSH)}
	}
}

// wakeCmd broadcasts a wake-on-LAN packet for the target.
func (m Model) wakeCmd(t config.Target) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		return wakeDoneMsg{target: t.Name, err: m.backend.Wake(ctx, t.MAC)}
	}
}

// checksCmd runs the diagnostic sweep on the target. The target name
// is captured here so the result is attributed to the tab that
// dispatched it.
func (m Model) checksCmd(t config.Target) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), checksTimeout)
		defer cancel()
		report, err := m.backend.RunChecks(ctx, t.SSH)
		return checksDoneMsg{target: t.Name, report: report, err: err}
	}
}
