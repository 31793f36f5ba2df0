// Package testing provides a scripted Backend for exercising the panel
// core without probing or touching any real device.
package testing

import (
	"context"
	"sync"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/backend"
	"github.com/fleetdeck/fleetdeck/internal/diag"
)

// ProbeResult is one scripted answer for a Reachability call.
type ProbeResult struct {
	Map map[string]bool
	Err error
}

// Fake implements backend.Backend with scripted responses and records
// every call for assertions.
type Fake struct {
	mu sync.Mutex

	// Probes are consumed in order; the last one repeats once the
	// script runs out. An empty script answers all-unreachable.
	Probes []ProbeResult

	SessionErr  error
	ShutdownErr error
	WakeErr     error

	ChecksReport *diag.Report
	ChecksErr    error
	ChecksDelay  time.Duration

	// Recorded calls, in order
	ReachabilityCalls [][]string
	Sessions          []backend.SessionRequest
	Shutdowns         []string
	ChecksHosts       []string
	Wakes             []string

	probeIdx int
}

var _ backend.Backend = (*Fake)(nil)

// NewFake creates an empty fake backend.
func NewFake() *Fake {
	return &Fake{}
}

// ScriptProbe appends a scripted reachability result.
func (f *Fake) ScriptProbe(m map[string]bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Probes = append(f.Probes, ProbeResult{Map: m, Err: err})
}

func (f *Fake) Reachability(ctx context.Context, ips []string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	recorded := make([]string, len(ips))
	copy(recorded, ips)
	f.ReachabilityCalls = append(f.ReachabilityCalls, recorded)

	if len(f.Probes) == 0 {
		out := make(map[string]bool, len(ips))
		for _, ip := range ips {
			out[ip] = false
		}
		return out, nil
	}

	res := f.Probes[f.probeIdx]
	if f.probeIdx < len(f.Probes)-1 {
		f.probeIdx++
	}
	if res.Err != nil {
		return nil, res.Err
	}

	// Copy so callers can't mutate the script
	out := make(map[string]bool, len(res.Map))
	for ip, ok := range res.Map {
		out[ip] = ok
	}
	return out, nil
}

func (f *Fake) OpenSession(ctx context.Context, req backend.SessionRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sessions = append(f.Sessions, req)
	return f.SessionErr
}

func (f *Fake) Shutdown(ctx context.Context, hostname string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Shutdowns = append(f.Shutdowns, hostname)
	return f.ShutdownErr
}

func (f *Fake) RunChecks(ctx context.Context, hostname string) (*diag.Report, error) {
	f.mu.Lock()
	f.ChecksHosts = append(f.ChecksHosts, hostname)
	delay := f.ChecksDelay
	report, err := f.ChecksReport, f.ChecksErr
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return report, err
}

func (f *Fake) Wake(ctx context.Context, mac string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Wakes = append(f.Wakes, mac)
	return f.WakeErr
}
