package monitor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyKind distinguishes press, repeat, and release reports for a key.
// Terminals without an enhanced keyboard protocol only ever report presses.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// String returns the kind name.
func (k KeyKind) String() string {
	switch k {
	case KeyPress:
		return "press"
	case KeyRepeat:
		return "repeat"
	case KeyRelease:
		return "release"
	}
	return "unknown"
}

// KeyEvent is one decoded keyboard event.
type KeyEvent struct {
	// Key is the key name, using the same spelling as key bindings:
	// "q", "Q", "ctrl+c", "esc", "enter", ...
	Key  string
	Kind KeyKind
}

// String returns the key name so events can be matched with key.Matches.
func (e KeyEvent) String() string {
	return e.Key
}

// Key bindings as constants for consistency.
const (
	KeyQuit    = "q"
	KeyQuitAlt = "ctrl+c"
)

// KeyMap holds the dashboard's bindings.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap binds quit to q and ctrl+c.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(KeyQuit, KeyQuitAlt)
}

// NewKeyMap binds quit to the given keys. With no keys it falls back to the defaults.
func NewKeyMap(quitKeys ...string) KeyMap {
	if len(quitKeys) == 0 {
		quitKeys = []string{KeyQuit, KeyQuitAlt}
	}
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(quitKeys...),
			key.WithHelp(strings.Join(quitKeys, "/"), "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// IsQuit reports whether ev is a press of a quit key. Releases and repeats
// are ignored so a single keystroke is never handled twice.
func (k KeyMap) IsQuit(ev KeyEvent) bool {
	return ev.Kind == KeyPress && key.Matches(ev, k.Quit)
}
