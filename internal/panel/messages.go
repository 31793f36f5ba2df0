package panel

import (
	"time"

	"github.com/fleetdeck/fleetdeck/internal/diag"
)

// tickMsg signals the next reachability poll.
type tickMsg time.Time

// statusMsg carries a reconciled status map from the monitor.
type statusMsg map[string]bool

// sessionDoneMsg reports the outcome of a terminal session dispatch.
type sessionDoneMsg struct {
	target string
	err    error
}

// shutdownDoneMsg reports the outcome of a shutdown dispatch.
type shutdownDoneMsg struct {
	target string
	err    error
}

// wakeDoneMsg reports the outcome of a wake-on-LAN dispatch.
type wakeDoneMsg struct {
	target string
	err    error
}

// checksDoneMsg carries a finished diagnostic run. The target is the
// one active when the run was dispatched, not when it finished.
type checksDoneMsg struct {
	target string
	report *diag.Report
	err    error
}
