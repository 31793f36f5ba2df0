package backend

import (
	"context"
	"sync"

	"github.com/go-ping/ping"
)

// Reachability probes every IP concurrently with a single ICMP echo
// each and collects the results into one map. A probe error for an
// individual device counts as unreachable, not as a query failure.
func (r *Remote) Reachability(ctx context.Context, ips []string) (map[string]bool, error) {
	statusMap := make(map[string]bool, len(ips))
	if len(ips) == 0 {
		return statusMap, nil
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, ip := range ips {
		wg.Add(1)
		go func(ip string) {
			defer wg.Done()
			online := r.probe(ip)
			mu.Lock()
			statusMap[ip] = online
			mu.Unlock()
		}(ip)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return statusMap, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// probe sends one echo request and reports whether a reply came back.
func (r *Remote) probe(ip string) bool {
	pinger, err := ping.NewPinger(ip)
	if err != nil {
		r.log.Debug("pinger for %s: %v", ip, err)
		return false
	}

	pinger.Count = 1
	pinger.Timeout = r.probeTimeout
	// Raw ICMP sockets; required on Linux unless ping_group_range is opened up
	pinger.SetPrivileged(true)

	if err := pinger.Run(); err != nil {
		r.log.Debug("probe %s: %v", ip, err)
		return false
	}

	return pinger.Statistics().PacketsRecv > 0
}
