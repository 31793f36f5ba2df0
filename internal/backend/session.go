package backend

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
)

// windowMode selects how the spawned terminal attaches to the desktop.
type windowMode int

const (
	modeTab windowMode = iota
	modeNewWindow
)

// OpenSession spawns a terminal tab running the session command for the
// target. Local targets (loopback) get a local shell; remote ones an
// ssh command line, with the extended bootstrap wrapped in a forced-TTY
// invocation when requested.
func (r *Remote) OpenSession(ctx context.Context, req SessionRequest) error {
	shellArgs := buildSessionArgs(req)

	r.log.Info("opening session for %s: %s", req.Hostname, shellArgs)
	if err := launchTerminal(ctx, shellArgs, modeTab); err != nil {
		return errors.WrapWithCode(err, errors.ErrSession,
			fmt.Sprintf("Couldn't open a terminal for '%s'", req.Hostname),
			"Check a supported terminal application is installed")
	}
	return nil
}

// buildSessionArgs assembles the command line the terminal will run.
func buildSessionArgs(req SessionRequest) string {
	isLocal := req.IP == config.Loopback || req.Hostname == "localhost"

	if isLocal {
		if req.Extended {
			return fmt.Sprintf("bash -i -c '%s'", req.RemoteCommand)
		}
		return "echo 'Starting local terminal'"
	}

	if req.Extended {
		// -t forces a TTY so the interactive bootstrap survives
		return fmt.Sprintf("ssh -t %s \"bash -i -c '%s'\"", req.Hostname, req.RemoteCommand)
	}
	return fmt.Sprintf("ssh %s", req.Hostname)
}

// launchTerminal opens the host OS terminal application around shellArgs.
func launchTerminal(ctx context.Context, shellArgs string, mode windowMode) error {
	switch runtime.GOOS {
	case "linux":
		flag := "--tab"
		if mode == modeNewWindow {
			flag = "--window"
		}
		cmd := exec.CommandContext(ctx, "gnome-terminal",
			flag, "--", "bash", "-c", fmt.Sprintf("%s; exec bash", shellArgs))
		// Scrub loader variables an AppImage host leaks into children
		cmd.Env = scrubbedEnv()
		return cmd.Start()

	case "darwin":
		var script string
		if mode == modeTab {
			script = fmt.Sprintf(
				"tell application \"Terminal\" to activate\n"+
					"tell application \"System Events\" to keystroke \"t\" using command down\n"+
					"delay 0.2\n"+
					"tell application \"Terminal\" to do script \"%s\" in front window", shellArgs)
		} else {
			script = fmt.Sprintf("tell application \"Terminal\" to do script \"%s\"", shellArgs)
		}
		return exec.CommandContext(ctx, "osascript", "-e", script).Start()

	case "windows":
		flag := "0"
		if mode == modeNewWindow {
			flag = "-1"
		}
		return exec.CommandContext(ctx, "wt",
			"-w", flag, "new-tab", "cmd", "/k", shellArgs).Start()

	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
