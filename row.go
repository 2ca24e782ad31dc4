package main

import (
	"strconv"
	"strings"

	"github.com/andareed/siftly-visitors/visitors"
	"github.com/charmbracelet/lipgloss"
)

type tableRow struct {
	cols        []string
	height      int
	sourceRow   int // row number in the input file
	blacklisted bool
}

// newTableRow pads the raw cells to width columns and appends the duration.
func newTableRow(r visitors.Record, width int) tableRow {
	cols := make([]string, width, width+1)
	copy(cols, r.Cols)
	cols = append(cols, formatDuration(r.DurationMinutes))
	return tableRow{
		cols:        cols,
		height:      1,
		sourceRow:   r.Row,
		blacklisted: r.IsBlacklisted(),
	}
}

func formatDuration(mins float64) string {
	return strconv.FormatFloat(mins, 'f', -1, 64)
}

func (r *tableRow) Join(sep string) string {
	return strings.Join(r.cols, sep)
}

func (r *tableRow) Render(style lipgloss.Style, colsMeta []ColumnMeta) string {
	var rendered []string

	for i, text := range r.cols {
		if i >= len(colsMeta) {
			break
		}
		meta := colsMeta[i]
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		rendered = append(rendered, style.Width(meta.Width).Render(text))
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	r.height = lipgloss.Height(joined)
	return joined
}
