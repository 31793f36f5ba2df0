package panel

import "github.com/fleetdeck/fleetdeck/internal/diag"

// ReportPanel holds the diagnostic run state and the disclosure state
// of the report view. One run is allowed at a time, panel-wide; the
// result is attributed to the target captured at dispatch.
type ReportPanel struct {
	running   bool
	runTarget string // target name captured at dispatch

	report    *diag.Report
	reportFor string // target name the stored report belongs to
	reportErr error

	open       bool
	showPassed bool
	showRaw    bool
	cursor     int
	expanded   map[string]bool // check name -> details visible
}

// Running reports whether a diagnostic run is in flight.
func (p *ReportPanel) Running() bool {
	return p.running
}

// RunTarget returns the target name of the in-flight run.
func (p *ReportPanel) RunTarget() string {
	return p.runTarget
}

// Begin marks a run in flight for the named target. It returns false
// when a run is already active; the caller must not dispatch another.
func (p *ReportPanel) Begin(targetName string) bool {
	if p.running {
		return false
	}
	p.running = true
	p.runTarget = targetName
	return true
}

// Finish stores the run's outcome. The result lands under the target
// captured at dispatch regardless of which tab is active now. A failed
// run keeps the previous report in place; only the error is recorded.
func (p *ReportPanel) Finish(targetName string, report *diag.Report, err error) {
	p.running = false
	p.runTarget = ""
	if err != nil {
		p.reportErr = err
		return
	}
	p.report = report
	p.reportFor = targetName
	p.reportErr = nil
}

// Report returns the stored report, the target it belongs to, and any
// run error.
func (p *ReportPanel) Report() (*diag.Report, string, error) {
	return p.report, p.reportFor, p.reportErr
}

// Open enters the report view and resets disclosure: failed checks
// start expanded, passed checks sit behind a single toggle, and the
// raw log is hidden.
func (p *ReportPanel) Open() {
	p.open = true
	p.showPassed = false
	p.showRaw = false
	p.cursor = 0
	p.expanded = make(map[string]bool)
	if p.report != nil {
		failed, _ := p.report.Partition()
		for _, item := range failed {
			if item.Details != "" {
				p.expanded[item.Name] = true
			}
		}
	}
}

// Close leaves the report view.
func (p *ReportPanel) Close() {
	p.open = false
}

// Opened reports whether the report view is showing.
func (p *ReportPanel) Opened() bool {
	return p.open
}

// ShowPassed reports whether passed checks are disclosed.
func (p *ReportPanel) ShowPassed() bool {
	return p.showPassed
}

// TogglePassed flips the passed-checks disclosure and clamps the
// cursor to the new item count.
func (p *ReportPanel) TogglePassed() {
	p.showPassed = !p.showPassed
	p.clampCursor()
}

// ShowRaw reports whether the raw sweep log is disclosed.
func (p *ReportPanel) ShowRaw() bool {
	return p.showRaw
}

// ToggleRaw flips the raw log disclosure.
func (p *ReportPanel) ToggleRaw() {
	p.showRaw = !p.showRaw
}

// Items returns the checks in display order: failures first, then
// passed checks when disclosed.
func (p *ReportPanel) Items() []diag.CheckItem {
	if p.report == nil {
		return nil
	}
	failed, passed := p.report.Partition()
	if !p.showPassed {
		return failed
	}
	return append(failed, passed...)
}

// Cursor returns the index of the highlighted check.
func (p *ReportPanel) Cursor() int {
	return p.cursor
}

// CursorDown moves the highlight toward the end of the list.
func (p *ReportPanel) CursorDown() {
	p.cursor++
	p.clampCursor()
}

// CursorUp moves the highlight toward the start of the list.
func (p *ReportPanel) CursorUp() {
	p.cursor--
	p.clampCursor()
}

// ToggleDetails flips the details disclosure of the highlighted check.
func (p *ReportPanel) ToggleDetails() {
	items := p.Items()
	if p.cursor < 0 || p.cursor >= len(items) {
		return
	}
	name := items[p.cursor].Name
	p.expanded[name] = !p.expanded[name]
}

// DetailsShown reports whether the named check's details are disclosed.
func (p *ReportPanel) DetailsShown(name string) bool {
	return p.expanded[name]
}

func (p *ReportPanel) clampCursor() {
	n := len(p.Items())
	if n == 0 {
		p.cursor = 0
		return
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= n {
		p.cursor = n - 1
	}
}
