package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/pnodemon/internal/monitor"
)

// Kitty keyboard protocol modifier bits (the wire value is 1 + mask).
const (
	modShift = 1 << 0
	modAlt   = 1 << 1
	modCtrl  = 1 << 2
)

// Kitty keyboard protocol event types.
const (
	eventPress   = 1
	eventRepeat  = 2
	eventRelease = 3
)

// Push/pop of kitty keyboard enhancement flags:
// 1 disambiguate, 2 report event types, 8 report all keys as escape codes.
const (
	pushKeyboardFlags = "\x1b[>11u"
	popKeyboardFlags  = "\x1b[<u"
)

// namedCodes maps kitty functional key codes and control bytes to names.
var namedCodes = map[int]string{
	9:   "tab",
	13:  "enter",
	27:  "esc",
	32:  "space",
	127: "backspace",
}

// DecodeKeys splits raw terminal input into key events. It understands
// plain bytes, ctrl combinations, alt (ESC-prefixed) keys, UTF-8 text, and
// kitty-style CSI <code>[:<alt>][;<mods>[:<event>]] u sequences. Other
// escape sequences, and sequences cut off at the end of buf, are dropped.
func DecodeKeys(buf []byte) []monitor.KeyEvent {
	var events []monitor.KeyEvent
	p := ansi.NewParser()

	for len(buf) > 0 {
		seq, _, n, state := ansi.DecodeSequence(buf, ansi.NormalState, p)
		if n <= 0 {
			n = 1
		}
		buf = buf[n:]

		if ev, ok := decodeSequence(seq, state, p); ok {
			events = append(events, ev)
		}
	}
	return events
}

// decodeSequence maps one sequence from ansi.DecodeSequence to a key event.
// state is the parser state after seq; anything but NormalState means seq
// ran into the end of the buffer.
func decodeSequence(seq []byte, state byte, p *ansi.Parser) (monitor.KeyEvent, bool) {
	if state != ansi.NormalState {
		if len(seq) == 1 && seq[0] == ansi.ESC {
			return press("esc"), true
		}
		return monitor.KeyEvent{}, false
	}

	switch {
	case ansi.HasCsiPrefix(seq):
		cmd := ansi.Cmd(p.Command())
		if cmd.Final() != 'u' || cmd.Prefix() != 0 || cmd.Intermediate() != 0 {
			return monitor.KeyEvent{}, false
		}
		return decodeKitty(p.Params())
	case len(seq) == 2 && seq[0] == ansi.ESC:
		// ESC followed by a key is alt+key.
		ev, ok := decodeText(seq[1:])
		if ok {
			ev.Key = "alt+" + ev.Key
		}
		return ev, ok
	case len(seq) == 1 && seq[0] == ansi.ESC:
		return press("esc"), true
	case ansi.HasEscPrefix(seq):
		return monitor.KeyEvent{}, false
	}
	return decodeText(seq)
}

// decodeText handles a single control byte or a printable grapheme.
func decodeText(seq []byte) (monitor.KeyEvent, bool) {
	if len(seq) == 1 {
		b := seq[0]
		if name, ok := namedCodes[int(b)]; ok {
			return press(name), true
		}
		if b < 0x20 {
			// ctrl+a .. ctrl+z arrive as 0x01 .. 0x1a.
			if b >= 1 && b <= 26 {
				return press("ctrl+" + string(rune('a'+b-1))), true
			}
			return monitor.KeyEvent{}, false
		}
	}
	if len(seq) == 0 || !utf8.Valid(seq) {
		return monitor.KeyEvent{}, false
	}
	return press(string(seq)), true
}

// decodeKitty reads the parameters of a CSI ... u key report. Parameters
// are grouped into fields at every ';', sub-parameters (':') stay in their
// field: [code, alternates...], [mods, event], [text...].
func decodeKitty(params ansi.Params) (monitor.KeyEvent, bool) {
	var fields [][]ansi.Param
	var field []ansi.Param
	for _, param := range params {
		field = append(field, param)
		if !param.HasMore() {
			fields = append(fields, field)
			field = nil
		}
	}
	if field != nil {
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		return monitor.KeyEvent{}, false
	}

	code := fields[0][0].Param(-1)
	if code < 0 {
		return monitor.KeyEvent{}, false
	}

	mods, kind := 0, monitor.KeyPress
	if len(fields) > 1 {
		if m := fields[1][0].Param(1); m > 0 {
			mods = m - 1
		}
		if len(fields[1]) > 1 {
			switch fields[1][1].Param(eventPress) {
			case eventRepeat:
				kind = monitor.KeyRepeat
			case eventRelease:
				kind = monitor.KeyRelease
			}
		}
	}

	name, ok := keyName(code, mods)
	if !ok {
		return monitor.KeyEvent{}, false
	}
	return monitor.KeyEvent{Key: name, Kind: kind}, true
}

func keyName(code, mods int) (string, bool) {
	name, named := namedCodes[code]
	if !named {
		if code < 0x20 || !utf8.ValidRune(rune(code)) {
			return "", false
		}
		r := rune(code)
		if mods&modShift != 0 && r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
			mods &^= modShift
		}
		name = string(r)
	}

	var prefix strings.Builder
	if mods&modCtrl != 0 {
		prefix.WriteString("ctrl+")
	}
	if mods&modAlt != 0 {
		prefix.WriteString("alt+")
	}
	if mods&modShift != 0 {
		prefix.WriteString("shift+")
	}
	return prefix.String() + name, true
}

func press(name string) monitor.KeyEvent {
	return monitor.KeyEvent{Key: name, Kind: monitor.KeyPress}
}
