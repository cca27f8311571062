package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func plain(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	DisableColors()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestMessages(t *testing.T) {
	plain(t)

	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{
			name:  "success",
			print: func(b *bytes.Buffer) { Success(b, "Created %s", ".pnodemon.yaml") },
			want:  "✓ Created .pnodemon.yaml\n",
		},
		{
			name:  "warning",
			print: func(b *bytes.Buffer) { Warning(b, "no nodes configured") },
			want:  "⚠ no nodes configured\n",
		},
		{
			name:  "muted",
			print: func(b *bytes.Buffer) { Muted(b, "run %s", "pnodemon") },
			want:  "run pnodemon\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFormatStatus_Colored(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	out := FormatStatus(SymbolFail, ErrorStyle, "boom")
	assert.Contains(t, out, "\x1b[31m")
	assert.Contains(t, out, "boom")
}
