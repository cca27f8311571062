// Package terminal owns the controlling terminal while the dashboard runs:
// raw input mode, the alternate screen, the cursor, and optional kitty
// keyboard reporting. It implements the dashboard's Renderer and
// InputSource on top of that.
package terminal

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/rileyhilliard/pnodemon/internal/logger"
	"golang.org/x/term"
)

// Options configures Open.
type Options struct {
	Title               string
	KeyboardEnhancement bool // request press/release reporting (kitty protocol)
	Logger              logger.Logger
}

// Terminal is an opened terminal session. Close must be called on every
// exit path to give the user their shell back.
type Terminal struct {
	*Screen
	*Input

	in     *os.File
	out    io.Writer
	output *termenv.Output
	state  *term.State
	log    logger.Logger

	enhanced bool
	closed   bool
}

// Open switches in to raw mode and out to the alternate screen.
func Open(in, out *os.File, opts Options) (*Terminal, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New(errors.ErrTerminal,
			"stdin is not a terminal",
			"Run pnodemon directly in an interactive terminal, not through a pipe.")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't switch the terminal to raw mode",
			"Run pnodemon directly in an interactive terminal.")
	}

	outFd := int(out.Fd())
	size := func() (int, int, error) {
		return term.GetSize(outFd)
	}

	t := &Terminal{
		Screen:   NewScreen(out, size, opts.Title),
		Input:    newInput(newFileSource(in)),
		in:       in,
		out:      out,
		output:   termenv.NewOutput(out),
		state:    state,
		log:      log,
		enhanced: opts.KeyboardEnhancement,
	}

	t.output.AltScreen()
	t.output.HideCursor()
	t.output.ClearScreen()
	if t.enhanced {
		if _, err := io.WriteString(out, pushKeyboardFlags); err != nil {
			setupErr := errors.WrapWithCode(err, errors.ErrTerminal,
				"Couldn't configure keyboard reporting",
				"Set keyboard_enhancement: false in .pnodemon.yaml.")
			if closeErr := t.Close(); closeErr != nil {
				log.Error("restore after failed setup: %v", closeErr)
			}
			return nil, setupErr
		}
	}

	log.Debug("terminal opened (keyboard enhancement: %t)", t.enhanced)
	return t, nil
}

// Close restores the terminal to the state it had before Open.
// It is safe to call more than once.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	if t.enhanced {
		if _, err := io.WriteString(t.out, popKeyboardFlags); err != nil {
			t.log.Warn("pop keyboard flags: %v", err)
		}
	}
	t.output.ShowCursor()
	t.output.ExitAltScreen()

	if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't restore the terminal",
			"Run 'reset' to fix the terminal.")
	}

	t.log.Debug("terminal restored")
	return nil
}
