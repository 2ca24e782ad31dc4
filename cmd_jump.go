package main

import (
	"fmt"

	"github.com/andareed/siftly-visitors/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) checkViewPortHasData() bool {
	return m.data.view.Len() > 0
}

func (m *model) jumpToStart() {
	logging.Debug("jumpToStart called...")
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	logging.Debug("jumpToEnd called...")
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = m.data.view.Len() - 1
}

// jumpToSourceRow moves to the record that came from data row n of the file.
func (m *model) jumpToSourceRow(n int) tea.Cmd {
	logging.Debugf("jumpToSourceRow %d", n)
	if n <= 0 || n > m.data.table.Len() {
		return m.startNotice(fmt.Sprintf("Row %d out of bounds", n), noticeWarn, noticeDuration)
	}
	for i, r := range m.data.view.Records {
		if r.Row == n {
			m.cursor = i
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("Row %d not in current view", n), noticeWarn, noticeDuration)
}
