// Package ui holds the shared color palette, status symbols, and plain
// CLI output helpers.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Online nodes, successful operations
//	ColorError     (red)    - Offline nodes, failures
//	ColorWarning   (yellow) - Table headers, warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Borders, footer, hints
//	ColorSecondary (blue)   - Syncing nodes
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
// NO_COLOR is honored automatically.
//
// # Symbols
//
//	SymbolSuccess (checkmark)  - Operation completed
//	SymbolFail    (X)          - Operation failed
//	SymbolWarning (triangle)   - Non-fatal problem
//	SymbolOnline  (filled)     - Node online
//	SymbolSyncing (half-fill)  - Node syncing
//	SymbolOffline (empty)      - Node offline
package ui
