// Package charts renders the dashboard charts to PNG files.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/andareed/siftly-visitors/logging"
	"github.com/andareed/siftly-visitors/visitors"
	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrNoData = errors.New("no data to chart")

const (
	pngWidth  = 8 * vg.Inch
	pngHeight = 4 * vg.Inch

	pieSize       = 640
	barHeight     = 480
	barWidthPx    = 40
	barChartWidth = 960
)

var barFill = color.RGBA{R: 0x4c, G: 0x78, B: 0xa8, A: 0xff}

// DurationHistogram draws the visit duration distribution.
func DurationHistogram(w io.Writer, values []float64, bins int) error {
	if len(values) == 0 {
		return ErrNoData
	}
	p := plot.New()
	p.Title.Text = "Distribution of Visit Durations"
	p.X.Label.Text = visitors.ColDuration
	p.Y.Label.Text = "Visitors"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = barFill
	p.Add(h)
	return writePNG(p, w)
}

// GenderBars draws visitors by gender.
func GenderBars(w io.Writer, buckets []visitors.Bucket) error {
	if len(buckets) == 0 {
		return ErrNoData
	}
	values := make(plotter.Values, len(buckets))
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		values[i] = float64(b.Count)
		labels[i] = labelOrBlank(b.Label)
	}

	p := plot.New()
	p.Title.Text = "Visitors by Gender"
	p.Y.Label.Text = "Visitors"
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = barFill
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	return writePNG(p, w)
}

func writePNG(p *plot.Plot, w io.Writer) error {
	wt, err := p.WriterTo(pngWidth, pngHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// PurposePie draws the purpose of visit shares.
func PurposePie(w io.Writer, buckets []visitors.Bucket) error {
	if len(buckets) == 0 {
		return ErrNoData
	}
	pie := chart.PieChart{
		Title:  "Purpose of Visits",
		Width:  pieSize,
		Height: pieSize,
		Values: chartValues(buckets),
	}
	return pie.Render(chart.PNG, w)
}

// CheckInBars draws the check-in time counts. The Y axis always starts at
// zero so equal counts still give a non-empty range.
func CheckInBars(w io.Writer, buckets []visitors.Bucket) error {
	if len(buckets) == 0 {
		return ErrNoData
	}
	peak := 0
	for _, b := range buckets {
		peak = max(peak, b.Count)
	}
	bar := chart.BarChart{
		Title:      "Check-In Times",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      barChartWidth,
		Height:     barHeight,
		BarWidth:   barWidthPx,
		Bars:       chartValues(buckets),
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max(peak, 1))},
		},
	}
	return bar.Render(chart.PNG, w)
}

func chartValues(buckets []visitors.Bucket) []chart.Value {
	out := make([]chart.Value, len(buckets))
	for i, b := range buckets {
		out[i] = chart.Value{Value: float64(b.Count), Label: labelOrBlank(b.Label)}
	}
	return out
}

func labelOrBlank(s string) string {
	if s == "" {
		return "(blank)"
	}
	return s
}

type pngJob struct {
	name   string
	render func(io.Writer) error
}

// WriteAll renders every chart for t into dir and returns the files written.
// Charts without data are skipped.
func WriteAll(dir string, t *visitors.Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}

	jobs := []pngJob{
		{"purpose_of_visit.png", func(w io.Writer) error { return PurposePie(w, visitors.Counts(t, visitors.FieldPurpose)) }},
		{"gender.png", func(w io.Writer) error { return GenderBars(w, visitors.Counts(t, visitors.FieldGender)) }},
		{"check_in_times.png", func(w io.Writer) error { return CheckInBars(w, visitors.Counts(t, visitors.FieldCheckIn)) }},
		{"visit_durations.png", func(w io.Writer) error {
			return DurationHistogram(w, visitors.Durations(t), visitors.DurationBins)
		}},
	}

	var written []string
	for _, job := range jobs {
		path := filepath.Join(dir, job.name)
		ok, err := writeFile(path, job.render)
		if err != nil {
			return written, fmt.Errorf("%s: %w", job.name, err)
		}
		if ok {
			written = append(written, path)
		}
	}
	return written, nil
}

func writeFile(path string, render func(io.Writer) error) (bool, error) {
	f, err := os.Create(path)
	if err != nil {
		return false, err
	}
	err = render(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, ErrNoData) {
		logging.Debugf("charts: skipping %s, no data", path)
		os.Remove(path)
		return false, nil
	}
	if err != nil {
		os.Remove(path)
		return false, err
	}
	return true, nil
}
