package backend

import (
	"context"
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/diag"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/pkg/sshutil"
)

// dialSSH is swapped out in tests.
var dialSSH = func(host string) (sshutil.SSHClient, error) {
	return sshutil.Dial(host, sshutil.DefaultTimeout)
}

// RunChecks runs the diagnostic sweep pipeline on the device over SSH,
// captures its output, and parses the marker-delimited report.
func (r *Remote) RunChecks(ctx context.Context, hostname string) (*diag.Report, error) {
	client, err := dialSSH(hostname)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	type result struct {
		report *diag.Report
		err    error
	}
	ch := make(chan result, 1)

	go func() {
		stdout, stderr, exitCode, err := client.Exec(r.diagCommand)
		if err != nil {
			ch <- result{nil, err}
			return
		}
		if exitCode != 0 {
			ch <- result{nil, errors.New(errors.ErrDiag,
				fmt.Sprintf("Diagnostic sweep on '%s' exited with code %d", hostname, exitCode),
				"Stderr:\n"+string(stderr))}
			return
		}

		r.log.Debug("sweep output from %s: %d bytes", hostname, len(stdout))
		ch <- result{diag.Parse(string(stdout)), nil}
	}()

	select {
	case res := <-ch:
		return res.report, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
