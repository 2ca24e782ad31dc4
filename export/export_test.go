package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andareed/siftly-visitors/visitors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const csvData = `Name,Date,Check-In Time,Check-Out Time,Age,Gender,Purpose of Visit,Blacklisted
Ann,2024-03-01,11 AM,1 PM,30,Female,Meeting,No
Bob,2024-03-01,11 AM,10 AM,40,Male,Delivery,Yes
`

func table(t *testing.T) *visitors.Table {
	t.Helper()
	tbl, err := visitors.Read(strings.NewReader(csvData))
	require.NoError(t, err)
	return visitors.ComputeDurations(tbl)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], ",Blacklisted,Duration (mins)"))
	assert.Equal(t, "Ann,2024-03-01,11 AM,1 PM,30,Female,Meeting,No,120", lines[1])
	assert.Equal(t, "Bob,2024-03-01,11 AM,10 AM,40,Male,Delivery,Yes,660", lines[2])
}

func TestWriteCSVPadsShortRows(t *testing.T) {
	tbl := table(t)
	tbl.Records[0].Cols = tbl.Records[0].Cols[:2]

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Ann,2024-03-01,,,,,,,120", lines[1])
}

func TestToFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.xlsx")
	require.NoError(t, ToFile(path, table(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(sheetVisitors, "I1")
	require.NoError(t, err)
	assert.Equal(t, visitors.ColDuration, v)
	v, err = f.GetCellValue(sheetVisitors, "I3")
	require.NoError(t, err)
	assert.Equal(t, "660", v)

	v, err = f.GetCellValue(sheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
	v, err = f.GetCellValue(sheetSummary, "B4")
	require.NoError(t, err)
	assert.Equal(t, "35", v)
}

func TestToFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.CSV")
	require.NoError(t, ToFile(path, table(t)))
	tbl, err := visitors.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestToFileUnsupported(t *testing.T) {
	err := ToFile(filepath.Join(t.TempDir(), "view.json"), table(t))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestCSVFileAnyExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.txt")
	require.NoError(t, CSVFile(path, table(t)))
	tbl, err := visitors.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}
