// Package export writes the visible visitor rows to CSV or Excel files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andareed/siftly-visitors/visitors"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	sheetVisitors = "Visitors"
	sheetSummary  = "Summary"
)

// ToFile picks the writer from the file extension (.csv or .xlsx).
func ToFile(path string, t *visitors.Table) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return CSVFile(path, t)
	case ".xlsx":
		return WriteXLSX(path, t)
	default:
		return fmt.Errorf("%w %q (want .csv or .xlsx)", ErrUnsupportedFormat, ext)
	}
}

// CSVFile writes t as CSV to path whatever its extension.
func CSVFile(path string, t *visitors.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func header(t *visitors.Table) []string {
	h := make([]string, 0, len(t.Header)+1)
	h = append(h, t.Header...)
	return append(h, visitors.ColDuration)
}

func durationText(r visitors.Record) string {
	return strconv.FormatFloat(r.DurationMinutes, 'f', -1, 64)
}

// WriteCSV writes the source columns plus the derived duration column.
func WriteCSV(w io.Writer, t *visitors.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(t)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range t.Records {
		out := make([]string, len(t.Header), len(t.Header)+1)
		copy(out, r.Cols)
		out = append(out, durationText(r))
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write row %d: %w", r.Row, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteXLSX writes a workbook with the rows on one sheet and the metrics and
// distributions on another.
func WriteXLSX(path string, t *visitors.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetVisitors); err != nil {
		return err
	}
	if err := writeRow(f, sheetVisitors, 1, toAny(header(t))); err != nil {
		return err
	}
	for i, r := range t.Records {
		cells := make([]any, 0, len(t.Header)+1)
		for c := range t.Header {
			v := ""
			if c < len(r.Cols) {
				v = r.Cols[c]
			}
			cells = append(cells, v)
		}
		cells = append(cells, r.DurationMinutes)
		if err := writeRow(f, sheetVisitors, i+2, cells); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}
	if err := writeSummary(f, t); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, t *visitors.Table) error {
	s := visitors.Summarize(t)
	var avg any = "n/a"
	if !math.IsNaN(s.AvgAge) {
		avg = s.AvgAge
	}
	rows := [][]any{
		{"Metric", "Value"},
		{"Total Visitors", s.Total},
		{"Blacklisted", s.Blacklisted},
		{"Avg Age", avg},
	}
	for _, field := range []visitors.Field{visitors.FieldPurpose, visitors.FieldGender, visitors.FieldCheckIn} {
		rows = append(rows, []any{}, []any{field.String(), "Visitors"})
		for _, b := range visitors.Counts(t, field) {
			rows = append(rows, []any{b.Label, b.Count})
		}
	}
	for i, r := range rows {
		if err := writeRow(f, sheetSummary, i+1, r); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetSummary, "A", "A", 24)
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	if len(cells) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
