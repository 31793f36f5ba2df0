package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/diag"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

func errOffline(name string) error {
	return errors.New(errors.ErrProbe,
		fmt.Sprintf("'%s' is offline", name),
		"Wait for the next poll or wake the device first")
}

func errCheckupBusy(running string) error {
	return errors.New(errors.ErrDiag,
		fmt.Sprintf("A checkup is already running on '%s'", running),
		"Wait for it to finish before starting another")
}

func errNoExtended(name string) error {
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' has no extended session configured", name),
		"Set 'extended: true' for the target in fleet.yaml")
}

func errNoMAC(name string) error {
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' has no MAC address configured", name),
		"Add a 'mac' entry for the target in fleet.yaml")
}

// renderPanel draws the main screen: header, target tabs, the status
// grid, the action row, and the flash line. An armed gate overlays its
// confirmation modal.
func (m Model) renderPanel() string {
	var b strings.Builder

	online := m.OnlineCount()
	header := fmt.Sprintf("FLEETDECK  %d/%d online", online, len(m.devices))
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	b.WriteString(m.renderStatusGrid())
	b.WriteString("\n")

	if m.gate.Armed() {
		b.WriteString(m.renderConfirmModal())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderActionRow())
		b.WriteString("\n")
	}

	if m.flash != "" {
		if m.flashError {
			b.WriteString(OfflineStyle.Render(m.flash))
		} else {
			b.WriteString(MutedStyle.Render(m.flash))
		}
		b.WriteString("\n")
	}

	b.WriteString(FooterStyle.Render("tab: switch target  enter: session  s: shutdown  c: checkup  w: wake  r: report  q: quit"))
	return b.String()
}

// renderTabs draws one tab per target with the active one highlighted.
func (m Model) renderTabs() string {
	if m.selector.Len() == 0 {
		return MutedStyle.Render("No targets configured")
	}

	tabs := make([]string, 0, m.selector.Len())
	for i, t := range m.selector.Targets() {
		label := fmt.Sprintf("%d %s", i+1, t.Name)
		if i == m.selector.ActiveIndex() {
			tabs = append(tabs, TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStatusGrid draws one line per device in declaration order.
// A device with no status entry hasn't been probed yet and renders as
// pending, not offline.
func (m Model) renderStatusGrid() string {
	var b strings.Builder
	for _, d := range m.devices {
		online, determined := m.statuses[d.IP]
		switch {
		case !determined:
			b.WriteString("  " + MutedStyle.Render(ui.SymbolPending+" "+d.Name))
		case online:
			b.WriteString("  " + OnlineStyle.Render(ui.SymbolOnline+" "+d.Name))
		default:
			b.WriteString("  " + OfflineStyle.Render(ui.SymbolOffline+" "+d.Name))
		}
		b.WriteString(MutedStyle.Render("  " + d.IP))
		b.WriteString("\n")
	}
	return b.String()
}

// renderActionRow shows what the action keys will hit.
func (m Model) renderActionRow() string {
	if m.selector.Len() == 0 {
		return ""
	}
	target := m.selector.Active()

	var state string
	if m.selector.ActiveOnline(m.statuses) {
		state = OnlineStyle.Render("online")
	} else {
		state = OfflineStyle.Render("offline")
	}

	extras := []string{}
	if target.Extended {
		extras = append(extras, "e: extended session")
	}
	if target.MAC != "" {
		extras = append(extras, "wake")
	}
	if m.reports.Running() {
		extras = append(extras, ui.SymbolProgress+" checkup on "+m.reports.RunTarget())
	}

	line := fmt.Sprintf("Target: %s (%s) %s", target.Name, target.SSH, state)
	if len(extras) > 0 {
		line += MutedStyle.Render("  [" + strings.Join(extras, ", ") + "]")
	}
	return line
}

// renderConfirmModal draws the shutdown confirmation for the armed
// target.
func (m Model) renderConfirmModal() string {
	target := m.gate.Target()
	body := WarningStyle.Render("Shut down '"+target.Name+"'?") +
		"\n\n" +
		MutedStyle.Render("y: confirm   n: cancel")
	return ModalStyle.Render(body)
}

// renderReport draws the report view inside the viewport.
func (m Model) renderReport() string {
	var b strings.Builder

	report, targetName, err := m.reports.Report()
	b.WriteString(ReportHeaderStyle.Render("Checkup: " + targetName))
	b.WriteString("\n")

	if err != nil {
		b.WriteString(OfflineStyle.Render(err.Error()))
		b.WriteString("\n")
	}

	if report == nil {
		b.WriteString(MutedStyle.Render("No report yet"))
		b.WriteString("\n")
	} else {
		if m.viewportReady {
			b.WriteString(m.reportViewport.View())
		} else {
			b.WriteString(m.reportContent())
		}
		b.WriteString("\n")
	}

	b.WriteString(FooterStyle.Render("j/k: move  enter: details  p: passed checks  l: raw log  esc: back"))
	return b.String()
}

// reportContent renders the disclosure-aware check list plus the
// optional raw log.
func (m Model) reportContent() string {
	report, _, _ := m.reports.Report()
	if report == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeadline(report.FailCount(), report.PassCount()))
	b.WriteString("\n\n")

	items := m.reports.Items()
	for i, item := range items {
		cursor := "  "
		if i == m.reports.Cursor() {
			cursor = ReportCursorStyle.Render("> ")
		}

		var icon string
		if item.Status == diag.StatusFail {
			icon = OfflineStyle.Render(ui.SymbolFail)
		} else {
			icon = OnlineStyle.Render(ui.SymbolSuccess)
		}

		b.WriteString(cursor + icon + " " + item.Name)
		if item.Description != "" {
			b.WriteString(MutedStyle.Render(", " + item.Description))
		}
		b.WriteString("\n")

		if m.reports.DetailsShown(item.Name) && item.Details != "" {
			for _, line := range strings.Split(item.Details, "\n") {
				b.WriteString(ReportDetailStyle.Render(line))
				b.WriteString("\n")
			}
		}
	}

	if !m.reports.ShowPassed() && report.PassCount() > 0 {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("\n  p: show %d passed checks\n", report.PassCount())))
	}

	if m.reports.ShowRaw() {
		b.WriteString("\n" + ReportHeaderStyle.Render("Raw log") + "\n")
		b.WriteString(MutedStyle.Render(report.Raw))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderHeadline(failed, passed int) string {
	if failed > 0 {
		return OfflineStyle.Render(fmt.Sprintf("%d check(s) failed, %d passed", failed, passed))
	}
	return OnlineStyle.Render(fmt.Sprintf("All %d checks passed", passed))
}

// syncReportViewport refreshes the viewport content after any change
// to the report or its disclosure state.
func (m *Model) syncReportViewport() {
	if !m.viewportReady {
		return
	}
	m.reportViewport.SetContent(m.reportContent())
}
