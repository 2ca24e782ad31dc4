// Package visitors loads visitor records, derives visit durations and filters
// them by calendar date.
package visitors

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Source column names, matched case-insensitively.
const (
	ColDate        = "Date"
	ColCheckIn     = "Check-In Time"
	ColCheckOut    = "Check-Out Time"
	ColAge         = "Age"
	ColGender      = "Gender"
	ColPurpose     = "Purpose of Visit"
	ColBlacklisted = "Blacklisted"

	// ColDuration is the derived column appended on export and display.
	ColDuration = "Duration (mins)"
)

var requiredColumns = []string{ColDate, ColCheckIn, ColCheckOut, ColAge, ColGender, ColPurpose, ColBlacklisted}

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyFile     = errors.New("no header row")
)

type Record struct {
	Row  int      // 1-based data row in the source file
	Cols []string // raw cells in source order

	Date      time.Time
	DateValid bool
	CheckIn   string
	CheckOut  string
	Age       int
	AgeValid  bool

	Gender      string
	Purpose     string
	Blacklisted string

	DurationMinutes float64
}

func (r Record) IsBlacklisted() bool {
	return r.Blacklisted == "Yes"
}

// String joins the raw cells with tabs; used for text filtering and the clipboard.
func (r Record) String() string {
	return strings.Join(r.Cols, "\t")
}

type Table struct {
	Header  []string
	Records []Record
}

// columnIndex maps each required column to its position in the header.
type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(requiredColumns))
	for i, name := range header {
		n := strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		for _, want := range requiredColumns {
			if _, seen := idx[want]; !seen && strings.EqualFold(n, want) {
				idx[want] = i
			}
		}
	}
	var missing []string
	for _, want := range requiredColumns {
		if _, ok := idx[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func (c columnIndex) cell(row []string, name string) string {
	i := c[name]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Load reads the CSV file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV visitor data. Unparseable dates, times and ages are kept as
// null values on the record; only structural problems are errors.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	t := &Table{Header: header}
	for n := 1; ; n++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV row %d: %w", n, err)
		}
		t.Records = append(t.Records, newRecord(n, row, cols))
	}
	return t, nil
}

func newRecord(n int, row []string, cols columnIndex) Record {
	rec := Record{
		Row:         n,
		Cols:        row,
		CheckIn:     cols.cell(row, ColCheckIn),
		CheckOut:    cols.cell(row, ColCheckOut),
		Gender:      cols.cell(row, ColGender),
		Purpose:     cols.cell(row, ColPurpose),
		Blacklisted: cols.cell(row, ColBlacklisted),
	}
	rec.Date, rec.DateValid = ParseDate(cols.cell(row, ColDate))
	if age, err := strconv.Atoi(cols.cell(row, ColAge)); err == nil {
		rec.Age, rec.AgeValid = age, true
	}
	return rec
}

// Len is safe on a nil table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Where returns a new table holding the records matching keep, in order.
// A nil table gives an empty one.
func (t *Table) Where(keep func(Record) bool) *Table {
	if t == nil {
		return &Table{}
	}
	out := &Table{Header: t.Header}
	for _, r := range t.Records {
		if keep(r) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// FilterByDateRange keeps records with a valid date inside [start, end],
// compared by calendar day. An inverted range gives an empty table.
func FilterByDateRange(t *Table, start, end time.Time) *Table {
	dr := NewDateRange(start, end)
	return t.Where(func(r Record) bool {
		return r.DateValid && dr.Contains(r.Date)
	})
}

// DateBounds returns the earliest and latest valid dates in t.
func (t *Table) DateBounds() (DateRange, bool) {
	var dr DateRange
	found := false
	for _, r := range t.Records {
		if !r.DateValid {
			continue
		}
		if !found {
			dr = NewDateRange(r.Date, r.Date)
			found = true
			continue
		}
		dr.Adjust(r.Date)
	}
	return dr, found
}
