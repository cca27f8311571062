package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/pnodemon/internal/ui"
)

// DefaultTitle is shown in the top border of the node table.
const DefaultTitle = " XANDEUM PNODE MONITOR (SIMULATION) "

// Column headers in display order.
var ColumnTitles = []string{"Node ID", "Status", "Latency (ms)", "Storage", "Earnings (XAND)"}

// ColumnPercents are the relative column widths. They intentionally leave
// part of the row free, matching a 20/15/15/15/15 split of the full width.
var ColumnPercents = []int{20, 15, 15, 15, 15}

// Base styles for the dashboard
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Bold(true)

	CellStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	StatusOnlineStyle = lipgloss.NewStyle().
				Foreground(ui.ColorSuccess)

	StatusSyncingStyle = lipgloss.NewStyle().
				Foreground(ui.ColorSecondary)

	StatusOfflineStyle = lipgloss.NewStyle().
				Foreground(ui.ColorError)
)

// StatusStyle returns the color style for a status.
func StatusStyle(s Status) lipgloss.Style {
	switch s {
	case StatusOnline:
		return StatusOnlineStyle
	case StatusSyncing:
		return StatusSyncingStyle
	case StatusOffline:
		return StatusOfflineStyle
	}
	return StatusOfflineStyle
}

// StatusSymbol returns the indicator glyph for a status.
func StatusSymbol(s Status) string {
	switch s {
	case StatusOnline:
		return ui.SymbolOnline
	case StatusSyncing:
		return ui.SymbolSyncing
	case StatusOffline:
		return ui.SymbolOffline
	}
	return ui.SymbolOffline
}
