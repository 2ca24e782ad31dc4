package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/andareed/siftly-visitors/charts"
	"github.com/andareed/siftly-visitors/export"
	"github.com/andareed/siftly-visitors/logging"
	"github.com/andareed/siftly-visitors/visitors"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	from, to  string
	chartsDir string
	xlsxPath  string
	csvPath   string
}

func newReportCmd() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report [file.csv]",
		Short: "Print metrics and distributions for a date range",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := visitors.Load(dataPath(args))
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), tbl, opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "First day to include (YYYY-MM-DD, default earliest date)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Last day to include (YYYY-MM-DD, default latest date)")
	cmd.Flags().StringVar(&opts.chartsDir, "charts", "", "Write PNG charts into this directory")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "Write the filtered rows and summary to an .xlsx workbook")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "Write the filtered rows to a .csv file")
	return cmd
}

// reportRange resolves --from/--to against the data's own span.
func reportRange(tbl *visitors.Table, from, to string) (visitors.DateRange, error) {
	bounds, ok := tbl.DateBounds()
	if !ok && (from == "" || to == "") {
		return visitors.DateRange{}, fmt.Errorf("no valid dates in data; pass both --from and --to")
	}
	dr := bounds
	if from != "" {
		t, ok := visitors.ParseDate(from)
		if !ok {
			return visitors.DateRange{}, fmt.Errorf("invalid --from %q (want %s)", from, visitors.DateLayout)
		}
		dr.Start = t
	}
	if to != "" {
		t, ok := visitors.ParseDate(to)
		if !ok {
			return visitors.DateRange{}, fmt.Errorf("invalid --to %q (want %s)", to, visitors.DateLayout)
		}
		dr.End = t
	}
	return dr, nil
}

func runReport(w io.Writer, tbl *visitors.Table, opts reportOptions) error {
	dr, err := reportRange(tbl, opts.from, opts.to)
	if err != nil {
		return err
	}
	visitors.ComputeDurations(tbl)
	view := visitors.FilterByDateRange(tbl, dr.Start, dr.End)
	s := visitors.Summarize(view)
	logging.Infof("report: %s -> %d of %d records", dr, view.Len(), tbl.Len())

	fmt.Fprintf(w, "%s\n%s\n\n", titleStyle.Render(appTitle), dr)
	fmt.Fprintln(w, renderTable([]string{"Metric", "Value"}, [][]string{
		{"Total Visitors", fmt.Sprintf("%d", s.Total)},
		{"Blacklisted", fmt.Sprintf("%d", s.Blacklisted)},
		{"Avg Age", formatAvgAge(s.AvgAge)},
	}))

	for _, f := range []visitors.Field{visitors.FieldPurpose, visitors.FieldGender, visitors.FieldCheckIn} {
		fmt.Fprintf(w, "\n%s\n%s\n", f, renderTable([]string{"Value", "Count"}, bucketRows(visitors.Counts(view, f))))
	}
	hist := histogramBuckets(visitors.Histogram(visitors.Durations(view), visitors.DurationBins))
	fmt.Fprintf(w, "\nVisit Duration (minutes)\n%s\n", renderTable([]string{"Bin", "Count"}, bucketRows(hist)))

	if opts.csvPath != "" {
		if err := export.CSVFile(opts.csvPath, view); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nwrote %s\n", opts.csvPath)
	}
	if opts.xlsxPath != "" {
		if err := export.WriteXLSX(opts.xlsxPath, view); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", opts.xlsxPath)
	}
	if opts.chartsDir != "" {
		written, err := charts.WriteAll(opts.chartsDir, view)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", strings.Join(written, ", "))
	}
	return nil
}

func bucketRows(buckets []visitors.Bucket) [][]string {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		label := b.Label
		if label == "" {
			label = "(blank)"
		}
		rows = append(rows, []string{label, fmt.Sprintf("%d", b.Count)})
	}
	return rows
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		String()
}
