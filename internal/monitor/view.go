package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// fallbackWidth is used when the terminal size is unknown.
const fallbackWidth = 100

// ViewOptions controls layout of the rendered dashboard.
type ViewOptions struct {
	Width int    // terminal columns; <= 0 uses a fallback
	Title string // empty uses DefaultTitle
}

// View renders the node table, its title border, and the footer.
func View(s Snapshot, opts ViewOptions) string {
	width := opts.Width
	if width <= 0 {
		width = fallbackWidth
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	body := renderTable(s.Nodes, ColumnWidths(width))
	top := renderTitleBorder(title, lipgloss.Width(firstLine(body)))

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(renderFooter(s, width))
	return b.String()
}

// ColumnWidths splits the usable width (minus the five vertical borders
// and outer edge) by ColumnPercents. A column is never narrower than its
// header plus padding.
func ColumnWidths(width int) []int {
	inner := width - (len(ColumnTitles) + 1)
	if inner < 0 {
		inner = 0
	}
	widths := make([]int, len(ColumnPercents))
	for i, pct := range ColumnPercents {
		widths[i] = max(inner*pct/100, lipgloss.Width(ColumnTitles[i])+2)
	}
	return widths
}

// StatusCell renders the colored status indicator and label.
func StatusCell(s Status) string {
	return StatusStyle(s).Render(StatusSymbol(s) + " " + s.String())
}

// FormatEarnings renders an earnings value with two decimals.
func FormatEarnings(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func renderTable(nodes []Node, widths []int) string {
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{
			n.ID,
			StatusCell(n.Status),
			strconv.Itoa(n.Latency),
			n.Storage,
			FormatEarnings(n.Earnings),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		BorderTop(false).
		BorderHeader(true).
		Headers(ColumnTitles...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := CellStyle
			if row == table.HeaderRow {
				st = HeaderStyle
			}
			if col < len(widths) {
				st = st.Width(widths[col])
			}
			return st.Padding(0, 1)
		})

	return t.Render()
}

// renderTitleBorder draws the top border with the title inset after the corner.
func renderTitleBorder(title string, width int) string {
	border := lipgloss.RoundedBorder()

	titleWidth := lipgloss.Width(title)
	fill := width - 3 - titleWidth
	if fill < 0 {
		runes := []rune(title)
		keep := max(width-3, 0)
		if keep < len(runes) {
			title = string(runes[:keep])
		}
		fill = 0
	}

	return BorderStyle.Render(border.TopLeft+border.Top) +
		TitleStyle.Render(title) +
		BorderStyle.Render(strings.Repeat(border.Top, fill)+border.TopRight)
}

func renderFooter(s Snapshot, width int) string {
	h := help.New()
	h.Width = width

	counts := s.Summary()
	parts := make([]string, 0, len(Statuses))
	for _, st := range Statuses {
		parts = append(parts, fmt.Sprintf("%s %d %s", StatusSymbol(st), counts[st], strings.ToLower(st.String())))
	}

	stats := FooterStyle.Render(fmt.Sprintf(" %s | tick %d ", strings.Join(parts, "  "), s.Ticks))
	return stats + " " + h.ShortHelpView(s.Keys.ShortHelp())
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
