package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/diag"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(string(ColorMuted))).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Cell = s.Cell.
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Background(lipgloss.Color(string(ColorMuted))).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// DeviceStatusRow represents one device in the status table.
type DeviceStatusRow struct {
	Name   string
	IP     string
	Online bool
}

// RenderStatusTable renders the fleet reachability output as a
// formatted table.
func RenderStatusTable(rows []DeviceStatusRow) string {
	if len(rows) == 0 {
		return "No devices configured"
	}

	successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorSuccess)))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorError)))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorMuted)))
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary))).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(string(ColorMuted)))

	var output string
	output += headerStyle.Render("  STATUS   DEVICE           ADDRESS") + "\n"

	for _, row := range rows {
		var statusIcon, stateStr string
		if row.Online {
			statusIcon = successStyle.Render(SymbolOnline)
			stateStr = successStyle.Render("online ")
		} else {
			statusIcon = errorStyle.Render(SymbolOffline)
			stateStr = errorStyle.Render("offline")
		}

		rowLine := "  " + statusIcon + " " + stateStr + " " +
			padRight(row.Name, 17) +
			mutedStyle.Render(row.IP)
		output += rowLine + "\n"
	}

	return output
}

// RenderCheckTable renders a diagnostic report's summary as a formatted
// list, failures first, with details indented under each failed check.
func RenderCheckTable(report *diag.Report) string {
	if report == nil || len(report.Summary) == 0 {
		return "No checks to display"
	}

	successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorSuccess)))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorError)))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorMuted)))

	failed, passed := report.Partition()

	var output string
	for _, item := range failed {
		output += "  " + errorStyle.Render(SymbolFail) + " " + item.Name
		if item.Description != "" {
			output += mutedStyle.Render(", " + item.Description)
		}
		output += "\n"
		if item.Details != "" {
			output += "    " + mutedStyle.Render(item.Details) + "\n"
		}
	}
	for _, item := range passed {
		output += "  " + successStyle.Render(SymbolSuccess) + " " + item.Name
		if item.Description != "" {
			output += mutedStyle.Render(", " + item.Description)
		}
		output += "\n"
	}

	return output
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	padding := width - visibleLen
	for i := 0; i < padding; i++ {
		s += " "
	}
	return s
}
