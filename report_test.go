package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRange(t *testing.T) {
	tbl := testTable(t)

	dr, err := reportRange(tbl, "", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 - 2024-03-05", dr.String())

	dr, err = reportRange(tbl, "2024-03-02", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02 - 2024-03-05", dr.String())

	_, err = reportRange(tbl, "yesterday", "")
	assert.ErrorContains(t, err, "--from")
}

func TestRunReportPrintsMetrics(t *testing.T) {
	var buf bytes.Buffer
	err := runReport(&buf, testTable(t), reportOptions{from: "2024-03-01", to: "2024-03-01"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2024-03-01 - 2024-03-01")
	assert.Contains(t, out, "Total Visitors")
	assert.Contains(t, out, "Purpose of Visit")
	assert.Contains(t, out, "Delivery")
	assert.NotContains(t, out, "Interview")
	assert.Contains(t, out, "Visit Duration (minutes)")
}

func TestRunReportWritesFiles(t *testing.T) {
	dir := t.TempDir()
	opts := reportOptions{
		csvPath:   filepath.Join(dir, "view.csv"),
		xlsxPath:  filepath.Join(dir, "view.xlsx"),
		chartsDir: filepath.Join(dir, "charts"),
	}
	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, testTable(t), opts))

	data, err := os.ReadFile(opts.csvPath)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 5)

	assert.FileExists(t, opts.xlsxPath)
	entries, err := os.ReadDir(opts.chartsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestRunReportCSVIgnoresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitors.txt")
	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, testTable(t), reportOptions{csvPath: path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Visitor Name,"))
}

func TestRootCommandVersion(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "siftly-visitors "+Version+"\n", buf.String())
}

func TestReportCommandMissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"report", filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, cmd.Execute())
}

func TestDataPathDefault(t *testing.T) {
	assert.Equal(t, defaultDataFile, dataPath(nil))
	assert.Equal(t, "x.csv", dataPath([]string{"x.csv"}))
}
