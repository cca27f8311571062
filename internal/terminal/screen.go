package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/pnodemon/internal/monitor"
)

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (width, height int, err error)

// Screen redraws the whole dashboard on every frame.
type Screen struct {
	w     io.Writer
	size  SizeFunc
	title string
}

// NewScreen creates a screen writing frames to w. size may be nil, in
// which case the view falls back to its default width and no clipping.
func NewScreen(w io.Writer, size SizeFunc, title string) *Screen {
	return &Screen{w: w, size: size, title: title}
}

// Draw implements monitor.Renderer.
func (s *Screen) Draw(snap monitor.Snapshot) error {
	width, height := 0, 0
	if s.size != nil {
		if w, h, err := s.size(); err == nil {
			width, height = w, h
		}
	}

	view := monitor.View(snap, monitor.ViewOptions{Width: width, Title: s.title})
	_, err := io.WriteString(s.w, Frame(view, width, height))
	return err
}

// Frame turns a rendered view into one write that homes the cursor,
// overwrites each line, and clears whatever the previous frame left below.
// Lines wider than width are cut so the terminal never wraps them, and
// lines past height are dropped. Zero means unknown and skips the clip.
// Raw mode disables output post-processing, so lines end in \r\n.
func Frame(view string, width, height int) string {
	lines := strings.Split(view, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	eraseLine := termenv.CSI + termenv.EraseLineRightSeq

	var b strings.Builder
	b.WriteString(termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1))
	for i, line := range lines {
		if width > 0 && ansi.StringWidth(line) >= width {
			// A full-width line leaves the cursor in the last column, where
			// erase-line would blank the final cell.
			if ansi.StringWidth(line) > width {
				line = ansi.Truncate(line, width, "") + ansi.ResetStyle
			}
			b.WriteString(line)
		} else {
			b.WriteString(line)
			b.WriteString(eraseLine)
		}
		if i < len(lines)-1 {
			b.WriteString("\r\n")
		}
	}
	b.WriteString(termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 0))
	return b.String()
}
