package panel

import (
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
)

// Selector tracks which target the action row dispatches against.
// Exactly one target is active at a time; switching never carries any
// other state with it.
type Selector struct {
	targets []config.Target
	active  int
}

// NewSelector builds a selector over the configured targets. The first
// target starts active.
func NewSelector(targets []config.Target) Selector {
	return Selector{targets: targets}
}

// Len returns the number of targets.
func (s Selector) Len() int {
	return len(s.targets)
}

// Targets returns the targets in declaration order.
func (s Selector) Targets() []config.Target {
	return s.targets
}

// ActiveIndex returns the index of the active target.
func (s Selector) ActiveIndex() int {
	return s.active
}

// Active returns the active target. With no targets configured it
// returns the zero Target; callers gate on Len first.
func (s Selector) Active() config.Target {
	if s.active < 0 || s.active >= len(s.targets) {
		return config.Target{}
	}
	return s.targets[s.active]
}

// SetActive switches the active target. An out-of-range index is
// rejected and the current selection stands.
func (s *Selector) SetActive(i int) error {
	if i < 0 || i >= len(s.targets) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("No target at position %d", i+1), "")
	}
	s.active = i
	return nil
}

// Next cycles the active target forward, wrapping at the end.
func (s *Selector) Next() {
	if len(s.targets) == 0 {
		return
	}
	s.active = (s.active + 1) % len(s.targets)
}

// Prev cycles the active target backward, wrapping at the start.
func (s *Selector) Prev() {
	if len(s.targets) == 0 {
		return
	}
	s.active = (s.active - 1 + len(s.targets)) % len(s.targets)
}

// ActiveOnline reports whether the active target's device is reachable
// in the given status map.
func (s Selector) ActiveOnline(statuses map[string]bool) bool {
	if len(s.targets) == 0 {
		return false
	}
	return statuses[s.Active().IP]
}
