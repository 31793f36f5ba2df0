// Package backend is the boundary to the privileged operations the
// control panel dispatches: reachability probing, terminal sessions,
// shutdown, diagnostic sweeps, and wake-on-LAN. The panel core only
// sees the Backend interface; the real implementation lives here and a
// scripted fake lives under backend/testing.
package backend

import (
	"context"

	"github.com/fleetdeck/fleetdeck/internal/diag"
)

// SessionRequest describes a terminal session to open against a target.
type SessionRequest struct {
	Hostname string // SSH name used to address the device
	IP       string
	Extended bool
	// RemoteCommand bootstraps the extended environment after connect.
	// Empty when Extended is false: the session is a plain shell.
	RemoteCommand string
}

// Backend is the set of privileged operations available to the panel.
// All calls are synchronous from the caller's perspective; the panel
// runs them inside tea.Cmds so the UI never blocks on them.
type Backend interface {
	// Reachability issues one batched probe over the given IPs and
	// returns reachable/unreachable per IP. An unreachable device is
	// a false entry, not an error; the error return means the probe
	// layer itself failed.
	Reachability(ctx context.Context, ips []string) (map[string]bool, error)

	// OpenSession opens a terminal session window against a target.
	OpenSession(ctx context.Context, req SessionRequest) error

	// Shutdown powers off the device addressed by hostname.
	// Confirmation happens above this layer.
	Shutdown(ctx context.Context, hostname string) error

	// RunChecks runs the diagnostic sweep on the device and returns
	// the parsed report. Long-running; no progress, only the result.
	RunChecks(ctx context.Context, hostname string) (*diag.Report, error)

	// Wake broadcasts a wake-on-LAN magic packet for the MAC.
	Wake(ctx context.Context, mac string) error
}
