package charts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andareed/siftly-visitors/visitors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

const csvData = `Date,Check-In Time,Check-Out Time,Age,Gender,Purpose of Visit,Blacklisted
2024-03-01,11 AM,1 PM,30,Female,Meeting,No
2024-03-01,9 AM,10 AM,40,Male,Delivery,Yes
2024-03-02,10 AM,2 PM,50,Male,Meeting,No
`

func table(t *testing.T) *visitors.Table {
	t.Helper()
	tbl, err := visitors.Read(strings.NewReader(csvData))
	require.NoError(t, err)
	return visitors.ComputeDurations(tbl)
}

func TestRenderersWritePNG(t *testing.T) {
	tbl := table(t)
	renders := map[string]func(*bytes.Buffer) error{
		"histogram": func(b *bytes.Buffer) error {
			return DurationHistogram(b, visitors.Durations(tbl), visitors.DurationBins)
		},
		"gender":  func(b *bytes.Buffer) error { return GenderBars(b, visitors.Counts(tbl, visitors.FieldGender)) },
		"purpose": func(b *bytes.Buffer) error { return PurposePie(b, visitors.Counts(tbl, visitors.FieldPurpose)) },
		"checkin": func(b *bytes.Buffer) error { return CheckInBars(b, visitors.Counts(tbl, visitors.FieldCheckIn)) },
	}
	for name, render := range renders {
		var buf bytes.Buffer
		require.NoError(t, render(&buf), name)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), name)
	}
}

func TestRenderersRejectEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, DurationHistogram(&buf, nil, visitors.DurationBins), ErrNoData)
	assert.ErrorIs(t, GenderBars(&buf, nil), ErrNoData)
	assert.ErrorIs(t, PurposePie(&buf, nil), ErrNoData)
	assert.ErrorIs(t, CheckInBars(&buf, nil), ErrNoData)
	assert.Zero(t, buf.Len())
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	files, err := WriteAll(dir, table(t))
	require.NoError(t, err)
	assert.Len(t, files, 4)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestWriteAllSkipsEmptyView(t *testing.T) {
	dir := t.TempDir()
	files, err := WriteAll(dir, &visitors.Table{})
	require.NoError(t, err)
	assert.Empty(t, files)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheckInBarsEqualCounts(t *testing.T) {
	var buf bytes.Buffer
	buckets := []visitors.Bucket{{Label: "9 AM", Count: 1}, {Label: "10 AM", Count: 1}, {Label: "11 AM", Count: 1}}
	require.NoError(t, CheckInBars(&buf, buckets))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestWriteAllSingleRecord(t *testing.T) {
	tbl, err := visitors.Read(strings.NewReader(`Date,Check-In Time,Check-Out Time,Age,Gender,Purpose of Visit,Blacklisted
2024-03-01,11 AM,1 PM,30,Female,Meeting,No
`))
	require.NoError(t, err)

	files, err := WriteAll(t.TempDir(), visitors.ComputeDurations(tbl))
	require.NoError(t, err)
	assert.Len(t, files, 4)
}
