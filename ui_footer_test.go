package main

import (
	"math"
	"strings"
	"testing"

	"github.com/andareed/siftly-visitors/visitors"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncateAndPadPlain(t *testing.T) {
	assert.Equal(t, "", truncatePlain("abc", 0))
	assert.Equal(t, "ab", truncatePlain("abc", 2))
	assert.Equal(t, "·é", truncatePlain("·éx", 2))
	assert.Equal(t, "abc", truncatePlain("abc", 5))

	assert.Equal(t, "ab   ", padRightPlain("ab", 5))
	assert.Equal(t, "abc", padRightPlain("abcdef", 3))
	assert.Equal(t, "", padRightPlain("ab", 0))
}

func TestCommandLabel(t *testing.T) {
	assert.Equal(t, "NORMAL", commandLabel(CmdNone))
	assert.Equal(t, "FILTER", commandLabel(CmdFilter))
	assert.Equal(t, "DATES", commandLabel(CmdDates))
}

func TestRenderFooter(t *testing.T) {
	assert.Empty(t, renderFooter(0, footerState{}, defaultFooterStyles()))

	out := renderFooter(120, footerState{
		Mode:          CmdSearch,
		ModeInput:     "search: ann",
		FileName:      "visitors.csv",
		Row:           2,
		TotalRows:     4,
		StatusMessage: "Dates: 2024-03-01 - 2024-03-05 (all)",
	}, defaultFooterStyles())

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SEARCH")
	assert.Contains(t, lines[0], "[FILTER: None]")
	assert.Contains(t, lines[0], "[VIEW: TABLE]")
	assert.Contains(t, lines[0], "Rows 2/4")
	assert.Contains(t, lines[1], "Dates: 2024-03-01")
}

func TestRenderFooterNarrowDropsFlags(t *testing.T) {
	out := renderFooter(30, footerState{FileName: "visitors.csv", Row: 1, TotalRows: 1}, defaultFooterStyles())
	lines := strings.Split(out, "\n")
	assert.NotContains(t, lines[0], "[FILTER")
	assert.Contains(t, lines[0], "NORMAL")
	assert.Equal(t, 30, lipgloss.Width(lines[0]))
}

func TestFormatAvgAge(t *testing.T) {
	assert.Equal(t, "n/a", formatAvgAge(math.NaN()))
	assert.Equal(t, "33.3", formatAvgAge(33.3))
	assert.Equal(t, "40.0", formatAvgAge(40))
}

func TestHistogramBuckets(t *testing.T) {
	got := histogramBuckets([]visitors.Bin{{Lo: 0, Hi: 33, Count: 1}, {Lo: 33, Hi: 66, Count: 2}})
	assert.Equal(t, []visitors.Bucket{{Label: "0-33", Count: 1}, {Label: "33-66", Count: 2}}, got)
}

func TestBarSection(t *testing.T) {
	out := barSection("Visitors by Gender", []visitors.Bucket{
		{Label: "Female", Count: 3},
		{Label: "", Count: 1},
	}, 4, 80)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Visitors by Gender")
	assert.Contains(t, lines[1], "Female")
	assert.Contains(t, lines[1], " 75.0%")
	assert.Contains(t, lines[2], "(blank)")
	assert.Contains(t, lines[2], " 25.0%")
}

func TestHighlightMatches(t *testing.T) {
	assert.Equal(t, "Ann", highlightMatches("Ann", ""))
	assert.Equal(t, "Bob", highlightMatches("Bob", "ann"))
	out := highlightMatches("Joanna", "ANN")
	assert.Contains(t, out, "Jo")
	assert.Contains(t, out, "a")
}

func TestBuildColumnsAddsDuration(t *testing.T) {
	cols := buildColumns(testTable(t))

	assert.Len(t, cols, 9)
	assert.Equal(t, "Visitor Name", cols[0].Name)
	assert.Equal(t, RolePrimary, cols[0].Role)
	assert.Equal(t, visitors.ColDuration, cols[8].Name)
	assert.Equal(t, RoleSecondary, cols[8].Role)
	for _, c := range cols {
		assert.True(t, c.Visible, c.Name)
	}
}

func TestLayoutColumnsFitsWidth(t *testing.T) {
	cols := layoutColumns(buildColumns(testTable(t)), 120)
	total := 0
	for _, c := range cols {
		assert.GreaterOrEqual(t, c.Width, 0)
		total += c.Width
	}
	assert.LessOrEqual(t, total, 120)
}

func TestNewTableRow(t *testing.T) {
	tbl := visitors.ComputeDurations(testTable(t))
	row := newTableRow(tbl.Records[1], len(tbl.Header))

	assert.Equal(t, 2, row.sourceRow)
	assert.True(t, row.blacklisted)
	assert.Equal(t, "660", row.cols[len(row.cols)-1])
	assert.Equal(t, "Bob,2024-03-01,11 AM,10 AM,40,Male,Delivery,Yes,660", row.Join(","))
}
