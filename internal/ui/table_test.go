package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func plain() Theme {
	return PlainTheme(&bytes.Buffer{})
}

func TestTable_ColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"Club", "Avg", "Shots"},
		Rows: [][]string{
			{"Driver", "231", "210"},
			{"Sand Wedge", "78", "1,204"},
		},
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 10, widths[0]) // "Sand Wedge"
	assert.Equal(t, 3, widths[1])  // header and values tie
	assert.Equal(t, 5, widths[2])  // "Shots" and "1,204"
}

func TestTable_ColumnWidths_MaxWidth(t *testing.T) {
	table := &Table{
		Headers:  []string{"Date", "Course"},
		Rows:     [][]string{{"2026-01-30", "This is a very long course name that should be truncated"}},
		MaxWidth: 20,
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 10, widths[0])
	assert.Equal(t, 20, widths[1]) // Capped at MaxWidth
}

func TestTable_ColumnWidths_CappedColumnsOnly(t *testing.T) {
	long := "Callaway Paradym Ai Smoke Triple Diamond 3 Wood"
	table := &Table{
		Headers:  []string{"Club", "Course"},
		Rows:     [][]string{{long, "This is a very long course name that should be truncated"}},
		MaxWidth: 20,
		Capped:   []int{1},
	}

	widths := table.ColumnWidths()

	assert.Equal(t, len(long), widths[0])
	assert.Equal(t, 20, widths[1])
	output := table.Render(plain())
	assert.Contains(t, output, long)
	assert.NotContains(t, output, "truncated")
}

func TestTable_Render(t *testing.T) {
	table := &Table{
		Headers:    []string{"Club", "Avg"},
		Rows:       [][]string{{"Driver", "231"}, {"PW", "98"}},
		AlignRight: []int{1},
	}

	output := table.Render(plain())

	want := " Club    Avg\n" +
		" ───────────\n" +
		" Driver  231\n" +
		" PW       98\n"
	assert.Equal(t, want, output)
}

func TestTable_Render_Empty(t *testing.T) {
	table := &Table{Headers: []string{}, Rows: [][]string{}}
	assert.Empty(t, table.Render(plain()))
}

func TestTable_Render_Truncation(t *testing.T) {
	table := &Table{
		Headers:  []string{"Course"},
		Rows:     [][]string{{"Pebble Beach Golf Links"}},
		MaxWidth: 10,
	}

	output := table.Render(plain())

	assert.Contains(t, output, "Pebble Be…")
}

func TestTable_Render_RowsHaveFewerColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"Date", "Score", "Course"},
		Rows: [][]string{
			{"2026-01-30", "94"}, // Missing Course column
		},
	}

	output := table.Render(plain())

	assert.Contains(t, output, "Date")
	assert.Contains(t, output, "94")
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Equal(t, 3, len(lines))
}

func TestPadding(t *testing.T) {
	tests := []struct {
		input string
		width int
		right string
		left  string
	}{
		{"abc", 5, "abc  ", "  abc"},
		{"hello", 5, "hello", "hello"},
		{"longer", 3, "longer", "longer"},
		{"", 3, "   ", "   "},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.right, padRight(tc.input, tc.width))
		assert.Equal(t, tc.left, padLeft(tc.input, tc.width))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "…", truncate("long", 1))
	assert.Equal(t, "Gle…", truncate("Gleneagles", 4))
	assert.Equal(t, "Zürich", truncate("Zürich", 6))
}
