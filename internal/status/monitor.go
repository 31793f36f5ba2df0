// Package status maintains the fleet reachability map the panel and the
// one-shot commands render from.
package status

import (
	"context"
	"maps"
	"sync"

	"github.com/fleetdeck/fleetdeck/internal/backend"
	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/logger"
)

// Monitor polls device reachability and reconciles the results into a
// stable status map. The loopback device is always reported online and
// never probed.
type Monitor struct {
	mu sync.Mutex

	backend  backend.Backend
	probeIPs []string // declaration order, loopback excluded
	loopback bool     // registry contains the loopback device
	current  map[string]bool
	log      logger.Logger
}

// NewMonitor builds a monitor over the configured device registry.
// Probed devices stay absent from the map until the first poll lands;
// absence means not-yet-determined, which renders as pending and gates
// actions as offline. Loopback is online from the start.
func NewMonitor(b backend.Backend, cfg *config.Config) *Monitor {
	m := &Monitor{
		backend:  b,
		probeIPs: cfg.ProbeIPs(),
		log:      logger.NewEnvLogger("[status]"),
	}

	initial := make(map[string]bool, 1)
	for _, d := range cfg.Devices {
		if d.IP == config.Loopback {
			m.loopback = true
			initial[d.IP] = true
		}
	}
	m.current = initial
	return m
}

// Snapshot returns the current status map. Callers must treat it as
// read-only; the reference only changes when reachability changes.
func (m *Monitor) Snapshot() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Poll probes every non-loopback device once and reconciles the result.
// When nothing changed, the previous map reference is kept so callers
// can detect change by identity. A failed probe round leaves the map
// untouched.
func (m *Monitor) Poll(ctx context.Context) map[string]bool {
	if len(m.probeIPs) == 0 {
		return m.Snapshot()
	}

	result, err := m.backend.Reachability(ctx, m.probeIPs)
	if err != nil {
		m.log.Error("reachability poll failed: %v", err)
		return m.Snapshot()
	}

	next := make(map[string]bool, len(result)+1)
	if m.loopback {
		next[config.Loopback] = true
	}
	for ip, ok := range result {
		next[ip] = ok
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if maps.Equal(m.current, next) {
		return m.current
	}
	m.current = next
	return m.current
}
