package visitors

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Visitor Name,Date,Check-In Time,Check-Out Time,Age,Gender,Purpose of Visit,Blacklisted
Ann,2024-03-01,11 AM,1 PM,30,Female,Meeting,No
Bob,2024-03-01,11 AM,10 AM,40,Male,Delivery,Yes
Cid,2024-03-02,noonish,2 PM,50,Male,Meeting,No
Dee,not-a-date,9 AM,10 AM,20,Female,Interview,No
Eve,2024-03-05,9 am,12 PM,abc,Female,Meeting,Yes
`

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func loadSample(t *testing.T) *Table {
	t.Helper()
	tbl, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	return ComputeDurations(tbl)
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		valid   bool
	}{
		{"11 AM", 11 * 60, true},
		{"1 PM", 13 * 60, true},
		{"12 AM", 0, true},
		{"12 PM", 12 * 60, true},
		{" 9 am ", 9 * 60, true},
		{"01 PM", 13 * 60, true},
		{"noonish", 0, false},
		{"13 PM", 0, false},
		{"0 PM", 0, false},
		{"00 AM", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got := ParseClock(c.in)
		assert.Equal(t, c.valid, got.Valid, c.in)
		if c.valid {
			assert.Equal(t, c.minutes, got.Minutes, c.in)
		}
	}
}

func TestParseDateNullOnGarbage(t *testing.T) {
	_, ok := ParseDate("2024-13-40")
	assert.False(t, ok)
	d, ok := ParseDate("2024-03-01")
	assert.True(t, ok)
	assert.Equal(t, time.March, d.Month())
}

func TestVisitDurationExamples(t *testing.T) {
	assert.Equal(t, 120.0, VisitDuration("11 AM", "1 PM"))
	assert.Equal(t, 660.0, VisitDuration("11 AM", "10 AM"))
	assert.Equal(t, 0.0, VisitDuration("noonish", "1 PM"))
	assert.Equal(t, 0.0, VisitDuration("1 PM", ""))
	assert.Equal(t, 0.0, VisitDuration("11 AM", "0 PM"))
	// past midnight: raw -1380, +720 is still negative
	assert.Equal(t, 60.0, VisitDuration("11 PM", "12 AM"))
}

func TestVisitDurationNeverNegative(t *testing.T) {
	var clocks []string
	for _, mer := range []string{"AM", "PM"} {
		for h := 1; h <= 12; h++ {
			clocks = append(clocks, time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("3")+" "+mer)
		}
	}
	for _, in := range clocks {
		for _, out := range clocks {
			assert.GreaterOrEqual(t, VisitDuration(in, out), 0.0, "%s -> %s", in, out)
		}
	}
}

func TestReadKeepsUnparseableRecords(t *testing.T) {
	tbl := loadSample(t)
	require.Equal(t, 5, tbl.Len())

	assert.Equal(t, "Dee", tbl.Records[3].Cols[0])
	assert.False(t, tbl.Records[3].DateValid)
	assert.False(t, tbl.Records[4].AgeValid)
	assert.Equal(t, 0.0, tbl.Records[2].DurationMinutes)
	assert.Equal(t, 180.0, tbl.Records[4].DurationMinutes)
	for i, r := range tbl.Records {
		assert.Equal(t, i+1, r.Row)
	}
}

func TestReadMissingColumn(t *testing.T) {
	_, err := Read(strings.NewReader("Date,Age\n2024-01-01,3\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadHeaderWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.csv")
	body := "\ufeffDate,Check-In Time,Check-Out Time,Age,Gender,Purpose of Visit,Blacklisted\n2024-01-01,10 AM,11 AM,33,Male,Meeting,No\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	tbl, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.True(t, tbl.Records[0].DateValid)
}

func TestFilterByDateRange(t *testing.T) {
	tbl := loadSample(t)
	start, end := mustDate(t, "2024-03-01"), mustDate(t, "2024-03-02")

	got := FilterByDateRange(tbl, start, end)
	require.Equal(t, 3, got.Len())
	assert.Equal(t, []int{1, 2, 3}, rows(got))
	for _, r := range got.Records {
		assert.True(t, r.DateValid)
		assert.True(t, NewDateRange(start, end).Contains(r.Date))
	}
	// the unparseable check-in row is still present
	assert.Equal(t, 0.0, got.Records[2].DurationMinutes)

	again := FilterByDateRange(got, start, end)
	assert.Equal(t, rows(got), rows(again))

	assert.Equal(t, 5, tbl.Len(), "source table untouched")
}

func TestFilterByDateRangeInvertedIsEmpty(t *testing.T) {
	tbl := loadSample(t)
	got := FilterByDateRange(tbl, mustDate(t, "2024-03-05"), mustDate(t, "2024-03-01"))
	assert.Equal(t, 0, got.Len())
}

func TestFilterByDateRangeNilTable(t *testing.T) {
	d := mustDate(t, "2024-03-01")
	out := FilterByDateRange(nil, d, d)
	require.NotNil(t, out)
	assert.Zero(t, out.Len())
}

func TestFilterIgnoresClockAndLocation(t *testing.T) {
	tbl := loadSample(t)
	loc := time.FixedZone("X", 5*3600)
	start := time.Date(2024, 3, 5, 23, 30, 0, 0, loc)
	got := FilterByDateRange(tbl, start, start)
	assert.Equal(t, []int{5}, rows(got))
}

func TestDateBounds(t *testing.T) {
	tbl := loadSample(t)
	dr, ok := tbl.DateBounds()
	require.True(t, ok)
	assert.Equal(t, mustDate(t, "2024-03-01"), dr.Start)
	assert.Equal(t, mustDate(t, "2024-03-05"), dr.End)
	assert.Equal(t, 5, dr.Days())

	_, ok = (&Table{}).DateBounds()
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	tbl := loadSample(t)
	day := FilterByDateRange(tbl, mustDate(t, "2024-03-01"), mustDate(t, "2024-03-01"))

	s := Summarize(day)
	assert.Equal(t, day.Len(), s.Total)
	assert.Equal(t, 1, s.Blacklisted)
	assert.Equal(t, 35.0, s.AvgAge)

	all := Summarize(tbl)
	assert.Equal(t, 2, all.Blacklisted)
	assert.Equal(t, 35.0, all.AvgAge) // "abc" age is skipped
}

func TestSummarizeAvgAgeRoundsHalfToEven(t *testing.T) {
	var b strings.Builder
	b.WriteString("Date,Check-In Time,Check-Out Time,Age,Gender,Purpose of Visit,Blacklisted\n")
	for _, age := range []string{"22", "22", "22", "23"} {
		b.WriteString("2024-04-10,10 AM,11 AM," + age + ",Male,Meeting,No\n")
	}
	tbl, err := Read(strings.NewReader(b.String()))
	require.NoError(t, err)

	assert.Equal(t, 22.2, Summarize(tbl).AvgAge)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(&Table{})
	assert.Equal(t, 0, s.Total)
	assert.True(t, math.IsNaN(s.AvgAge))
}

func TestSummarizeSingleDayFiveVisitors(t *testing.T) {
	var b strings.Builder
	b.WriteString("Date,Check-In Time,Check-Out Time,Age,Gender,Purpose of Visit,Blacklisted\n")
	for i := 0; i < 5; i++ {
		b.WriteString("2024-04-10,10 AM,11 AM,33,Male,Meeting,No\n")
	}
	b.WriteString("2024-04-11,10 AM,11 AM,33,Male,Meeting,No\n")
	tbl, err := Read(strings.NewReader(b.String()))
	require.NoError(t, err)

	d := mustDate(t, "2024-04-10")
	assert.Equal(t, 5, Summarize(FilterByDateRange(tbl, d, d)).Total)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 33.3, RoundTo(100.0/3, 1))
	assert.Equal(t, 2.5, RoundTo(2.45, 1))
	assert.Equal(t, 22.2, RoundTo(22.25, 1))
}

func TestCounts(t *testing.T) {
	tbl := loadSample(t)

	assert.Equal(t, []Bucket{{"Meeting", 3}, {"Delivery", 1}, {"Interview", 1}}, Counts(tbl, FieldPurpose))
	assert.Equal(t, []Bucket{{"Female", 3}, {"Male", 2}}, Counts(tbl, FieldGender))
	assert.Equal(t, []Bucket{{"9 AM", 1}, {"9 am", 1}, {"11 AM", 2}, {"noonish", 1}}, Counts(tbl, FieldCheckIn))
}

func TestHistogram(t *testing.T) {
	bins := Histogram([]float64{0, 10, 20, 30, 40}, 4)
	require.Len(t, bins, 4)
	assert.Equal(t, 0.0, bins[0].Lo)
	assert.Equal(t, 40.0, bins[3].Hi)
	counts := []int{}
	total := 0
	for _, b := range bins {
		counts = append(counts, b.Count)
		total += b.Count
	}
	assert.Equal(t, []int{1, 1, 1, 2}, counts)
	assert.Equal(t, 5, total)

	flat := Histogram([]float64{7, 7, 7}, DurationBins)
	require.Len(t, flat, DurationBins)
	assert.Equal(t, 3, flat[0].Count)

	assert.Nil(t, Histogram(nil, DurationBins))
}

func rows(t *Table) []int {
	out := make([]int, 0, t.Len())
	for _, r := range t.Records {
		out = append(out, r.Row)
	}
	return out
}
