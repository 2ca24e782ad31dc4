package main

import (
	"regexp"

	"github.com/andareed/siftly-visitors/logging"
)

func (m *model) setFilterPattern(pattern string) error {
	logging.Infof("Setting Pattern to: %s", pattern)
	if pattern == "" {
		m.data.filterRegex = nil
	} else {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return err
		}
		m.data.filterRegex = re
	}
	m.applyFilter()
	return nil
}

// applyFilter reruns the pipeline and keeps the cursor inside the view.
func (m *model) applyFilter() {
	m.data.apply()
	n := m.data.view.Len()
	switch {
	case n == 0:
		m.cursor = -1
	case m.cursor < 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	}
	m.refreshView("filter", false)
}
