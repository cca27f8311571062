package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainColors disables ANSI output for the duration of a test.
func plainColors(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestView_ContainsTableContent(t *testing.T) {
	plainColors(t)

	s := NewModel(sampleNodes()).Snapshot(DefaultKeyMap())
	out := View(s, ViewOptions{Width: 120})

	assert.Contains(t, out, strings.TrimSpace(DefaultTitle))
	for _, h := range ColumnTitles {
		assert.Contains(t, out, h)
	}
	for _, n := range sampleNodes() {
		assert.Contains(t, out, n.ID)
		assert.Contains(t, out, n.Storage)
		assert.Contains(t, out, FormatEarnings(n.Earnings))
	}
	assert.Contains(t, out, "ONLINE")
	assert.Contains(t, out, "SYNCING")
	assert.Contains(t, out, "OFFLINE")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "tick 0")
}

func TestView_RowOrderMatchesModel(t *testing.T) {
	plainColors(t)

	out := View(NewModel(sampleNodes()).Snapshot(DefaultKeyMap()), ViewOptions{Width: 120})

	last := -1
	for _, n := range sampleNodes() {
		idx := strings.Index(out, n.ID)
		require.GreaterOrEqual(t, idx, 0, n.ID)
		assert.Greater(t, idx, last, "%s should come after the previous node", n.ID)
		last = idx
	}
}

func TestView_TitleBorderMatchesTableWidth(t *testing.T) {
	plainColors(t)

	out := View(NewModel(sampleNodes()).Snapshot(DefaultKeyMap()), ViewOptions{Width: 140})
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 3)

	assert.True(t, strings.HasPrefix(lines[0], "╭─"))
	assert.True(t, strings.HasSuffix(lines[0], "╮"))
	assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(lines[0]))
}

func TestView_CustomTitle(t *testing.T) {
	plainColors(t)

	out := View(NewModel(sampleNodes()).Snapshot(DefaultKeyMap()), ViewOptions{Width: 120, Title: " LAB "})
	assert.Contains(t, out, " LAB ")
	assert.NotContains(t, out, "XANDEUM")
}

func TestView_UnknownWidthFallsBack(t *testing.T) {
	plainColors(t)

	out := View(NewModel(sampleNodes()).Snapshot(DefaultKeyMap()), ViewOptions{})
	assert.Contains(t, out, "pNode-Alpha-01")
}

func TestView_EmptyModel(t *testing.T) {
	plainColors(t)

	out := View(NewModel(nil).Snapshot(DefaultKeyMap()), ViewOptions{Width: 100})
	assert.Contains(t, out, "Node ID")
	assert.Contains(t, out, "0 online")
}

func TestView_StatusColors(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	assert.Contains(t, StatusCell(StatusOnline), "\x1b[32m")
	assert.Contains(t, StatusCell(StatusSyncing), "\x1b[34m")
	assert.Contains(t, StatusCell(StatusOffline), "\x1b[31m")
}

func TestColumnWidths(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  []int
	}{
		{
			name:  "wide terminal uses percentages",
			width: 200,
			want:  []int{38, 29, 29, 29, 29},
		},
		{
			name:  "headers set a minimum",
			width: 100,
			want:  []int{18, 14, 14, 14, 17},
		},
		{
			name:  "tiny terminal",
			width: 3,
			want:  []int{9, 8, 14, 9, 17},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnWidths(tt.width))
		})
	}
}

func TestFormatEarnings(t *testing.T) {
	assert.Equal(t, "450.20", FormatEarnings(450.2))
	assert.Equal(t, "0.00", FormatEarnings(0))
	assert.Equal(t, "890.00", FormatEarnings(890))
}

func TestRenderTitleBorder_Truncates(t *testing.T) {
	plainColors(t)

	line := renderTitleBorder("ABCDEFGHIJ", 8)
	assert.Equal(t, "╭─ABCDE╮", line)
}
