package panel

import "github.com/fleetdeck/fleetdeck/internal/config"

// GateState is the shutdown confirmation state.
type GateState int

const (
	// GateIdle means no shutdown is pending.
	GateIdle GateState = iota
	// GateArmed means a shutdown awaits confirmation for one target.
	GateArmed
)

// Gate is the confirmation step between the shutdown key and the
// actual dispatch. The target is captured at arm time, so switching
// tabs while armed never redirects the pending shutdown.
type Gate struct {
	state  GateState
	target config.Target
}

// Armed reports whether a shutdown awaits confirmation.
func (g Gate) Armed() bool {
	return g.state == GateArmed
}

// Target returns the target captured when the gate was armed.
func (g Gate) Target() config.Target {
	return g.target
}

// Arm stages a shutdown for the target. Arming while already armed
// replaces the pending target; the last arm wins.
func (g *Gate) Arm(t config.Target) {
	g.state = GateArmed
	g.target = t
}

// Cancel drops the pending shutdown.
func (g *Gate) Cancel() {
	g.state = GateIdle
	g.target = config.Target{}
}

// Confirm resolves the gate. It returns the armed target and true when
// a shutdown was pending. The gate always lands back in idle, even
// when nothing was armed.
func (g *Gate) Confirm() (config.Target, bool) {
	target, armed := g.target, g.state == GateArmed
	g.state = GateIdle
	g.target = config.Target{}
	return target, armed
}
