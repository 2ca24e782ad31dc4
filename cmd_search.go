package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// searchOnce moves the cursor to the next row containing query, wrapping
// around the end of the view.
func (m *model) searchOnce(query string) tea.Cmd {
	m.ui.searchQuery = query
	if query == "" {
		return nil
	}
	records := m.data.view.Records
	n := len(records)
	q := strings.ToLower(query)
	for step := 1; step <= n; step++ {
		i := (m.cursor + step) % n
		if i < 0 {
			i += n
		}
		if strings.Contains(strings.ToLower(records[i].String()), q) {
			m.cursor = i
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("%q not found", query), noticeWarn, noticeDuration)
}
