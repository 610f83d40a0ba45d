package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows in a compact, fixed-width layout for terminal display.
type Table struct {
	Headers    []string
	Rows       [][]string
	MaxWidth   int   // Max width per column (0 = auto)
	Capped     []int // Column indexes MaxWidth applies to (nil = all)
	AlignRight []int // Column indexes to right-align
}

// ColumnWidths calculates optimal column widths based on content.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))

	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	if t.MaxWidth > 0 {
		for i := range widths {
			if widths[i] > t.MaxWidth && t.capped(i) {
				widths[i] = t.MaxWidth
			}
		}
	}

	return widths
}

func (t *Table) capped(i int) bool {
	return t.Capped == nil || slices.Contains(t.Capped, i)
}

// Render outputs the table using the theme's header and text styles.
// Every row, including the header, ends with a newline.
func (t *Table) Render(th Theme) string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	right := make(map[int]bool, len(t.AlignRight))
	for _, i := range t.AlignRight {
		right[i] = true
	}
	pad := func(i int, s string) string {
		if right[i] {
			return padLeft(s, widths[i])
		}
		return padRight(s, widths[i])
	}

	var sb strings.Builder

	headerCells := make([]string, 0, len(t.Headers))
	for i, h := range t.Headers {
		headerCells = append(headerCells, th.Header.Render(pad(i, h)))
	}
	sb.WriteString(" " + strings.TrimRight(strings.Join(headerCells, "  "), " ") + "\n")

	sepParts := make([]string, 0, len(widths))
	for _, w := range widths {
		sepParts = append(sepParts, th.Subtle.Render(strings.Repeat("─", w)))
	}
	sb.WriteString(" " + strings.Join(sepParts, "──") + "\n")

	for _, row := range t.Rows {
		cells := make([]string, 0, len(t.Headers))
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = truncate(row[i], widths[i])
			}
			cells = append(cells, th.Text.Render(pad(i, val)))
		}
		sb.WriteString(" " + strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}

	return sb.String()
}

// truncate shortens s to width display cells, marking the cut with "…".
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
