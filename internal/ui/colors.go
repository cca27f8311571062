package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using basic ANSI color codes so the dashboard reads the
// same on 16-color terminals:
//   red    -> ANSI 1
//   green  -> ANSI 2
//   yellow -> ANSI 3
//   blue   -> ANSI 4
//   cyan   -> ANSI 6
//   gray   -> ANSI 8 (bright black)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Styles used for plain CLI output outside the dashboard.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// WarningStyle marks non-fatal problems.
var WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

// DisableColors switches all styles to plain text (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
