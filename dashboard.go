package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/andareed/siftly-visitors/visitors"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	chartLabelWidth = 18
	chartCountWidth = 6
)

func formatAvgAge(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", v)
}

func metricCard(label, value string) string {
	return cardStyle.Render(cardLabelStyle.Render(label) + "\n" + cardValueStyle.Render(value))
}

// metricsView renders the three counters for the current view.
func (m *model) metricsView() string {
	s := m.data.summary
	return lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Total Visitors", fmt.Sprintf("%d", s.Total)),
		metricCard("Blacklisted", fmt.Sprintf("%d", s.Blacklisted)),
		metricCard("Avg Age", formatAvgAge(s.AvgAge)),
	)
}

// chartsView renders every distribution of the current view as horizontal bars.
func (m *model) chartsView(width int) string {
	view := m.data.view
	if view.Len() == 0 {
		return chartDimStyle.Render("No visitors in the selected range.")
	}

	sections := []string{
		barSection("Purpose of Visit", visitors.Counts(view, visitors.FieldPurpose), view.Len(), width),
		barSection("Visitors by Gender", visitors.Counts(view, visitors.FieldGender), view.Len(), width),
		barSection("Check-In Times", visitors.Counts(view, visitors.FieldCheckIn), view.Len(), width),
		barSection("Visit Duration (minutes)", histogramBuckets(visitors.Histogram(visitors.Durations(view), visitors.DurationBins)), view.Len(), width),
	}
	return strings.Join(sections, "\n\n")
}

func histogramBuckets(bins []visitors.Bin) []visitors.Bucket {
	out := make([]visitors.Bucket, len(bins))
	for i, b := range bins {
		out[i] = visitors.Bucket{Label: fmt.Sprintf("%g-%g", visitors.RoundTo(b.Lo, 0), visitors.RoundTo(b.Hi, 0)), Count: b.Count}
	}
	return out
}

// barSection draws one chart: label, bar scaled to the largest bucket, count
// and share of total.
func barSection(title string, buckets []visitors.Bucket, total int, width int) string {
	lines := []string{chartTitleStyle.Render(title)}

	peak := 0
	for _, b := range buckets {
		peak = max(peak, b.Count)
	}
	barMax := max(1, width-chartLabelWidth-chartCountWidth-10)

	for _, b := range buckets {
		label := b.Label
		if label == "" {
			label = "(blank)"
		}
		label = truncate.StringWithTail(label, chartLabelWidth-1, "…")

		n := 0
		if peak > 0 {
			n = int(math.Round(float64(b.Count) / float64(peak) * float64(barMax)))
		}
		share := 0.0
		if total > 0 {
			share = float64(b.Count) / float64(total) * 100
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %*d %s",
			chartLabelWidth, label,
			chartBarStyle.Render(strings.Repeat("█", n))+strings.Repeat(" ", barMax-n),
			chartCountWidth, b.Count,
			chartDimStyle.Render(fmt.Sprintf("%5.1f%%", share)),
		))
	}
	return strings.Join(lines, "\n")
}
