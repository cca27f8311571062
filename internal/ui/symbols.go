package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "⚠"

	SymbolOnline  = "●"
	SymbolSyncing = "◐"
	SymbolOffline = "○"
)
