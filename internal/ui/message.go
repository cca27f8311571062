package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// FormatStatus renders "<symbol> <message>" with the symbol colored.
func FormatStatus(symbol string, style lipgloss.Style, message string) string {
	return fmt.Sprintf("%s %s", style.Render(symbol), message)
}

// Success prints a checkmarked line.
// Shows: ✓ Created .pnodemon.yaml
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, FormatStatus(SymbolSuccess, SuccessStyle, fmt.Sprintf(format, args...)))
}

// Warning prints a non-fatal problem.
// Shows: ⚠ Duplicate node id "a" (#1 and #3)
func Warning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, FormatStatus(SymbolWarning, WarningStyle, fmt.Sprintf(format, args...)))
}

// Muted prints secondary text such as hints.
func Muted(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, MutedStyle.Render(fmt.Sprintf(format, args...)))
}
