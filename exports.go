package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-visitors/charts"
	"github.com/andareed/siftly-visitors/dialogs"
	"github.com/andareed/siftly-visitors/export"
	"github.com/andareed/siftly-visitors/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func defaultExportName(path string) string {
	return baseName(path) + "_view.csv"
}

func defaultChartsDir(path string) string {
	return baseName(path) + "_charts"
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	return d.Focus()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
	m.refreshView("dialog-close", false)
}

// exportView writes the rows currently on screen, date window and filter applied.
func (m *model) exportView(path string) tea.Cmd {
	logging.Infof("exporting %d rows to %s", m.data.view.Len(), path)
	if err := export.ToFile(path, m.data.view); err != nil {
		logging.Errorf("export %s: %v", path, err)
		return m.startNotice("Export failed: "+err.Error(), noticeError, noticeDuration)
	}
	m.lastExportDir = filepath.Dir(path)
	return m.startNotice(fmt.Sprintf("Exported %d rows to %s", m.data.view.Len(), path), noticeSuccess, noticeDuration)
}

func (m *model) exportCharts(dir string) tea.Cmd {
	written, err := charts.WriteAll(dir, m.data.view)
	if err != nil {
		logging.Errorf("chart export %s: %v", dir, err)
		return m.startNotice("Chart export failed: "+err.Error(), noticeError, noticeDuration)
	}
	if len(written) == 0 {
		return m.startNotice("No visitors in range, nothing to chart", noticeWarn, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Wrote %d charts to %s", len(written), dir), noticeSuccess, noticeDuration)
}
