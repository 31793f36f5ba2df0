package panel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/ui"
)

// Base styles for the panel
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(ui.ColorPrimary))).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(ui.ColorMuted))).
			Padding(0, 1)

	// Target tabs
	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(ui.ColorSecondary))).
			Padding(0, 2)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(ui.ColorPrimary))).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	// Status grid
	OnlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(ui.ColorSuccess)))

	OfflineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(ui.ColorError)))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(ui.ColorMuted)))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(ui.ColorWarning)))

	// Confirmation modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(string(ui.ColorWarning))).
			Padding(1, 3)

	// Report view
	ReportHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(string(ui.ColorPrimary))).
				Bold(true)

	ReportCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(string(ui.ColorInfo))).
				Bold(true)

	ReportDetailStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(string(ui.ColorMuted))).
				PaddingLeft(4)
)
