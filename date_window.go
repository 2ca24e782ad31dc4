package main

import (
	"time"

	"github.com/andareed/siftly-visitors/visitors"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	dateInputLayout = visitors.DateLayout
	day             = 24 * time.Hour
)

const (
	dateWindowFocusStart = iota
	dateWindowFocusEnd
	dateWindowFocusScrubber
)

const (
	dateWindowDrawerContentHeight = 5
	dateWindowDrawerHeight        = dateWindowDrawerContentHeight + 2
	dateWindowStepMin             = day
	dateWindowStepDefault         = day
	dateWindowStepMax             = 30 * day
)

type dateWindowUI struct {
	open       bool
	focus      int
	startInput textinput.Model
	endInput   textinput.Model
	errorMsg   string
	draftStart time.Time
	draftEnd   time.Time
	step       time.Duration
}

func initDateWindowInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = len(dateInputLayout)
	ti.Width = len(dateInputLayout) + 1
	ti.Prompt = ""
	return ti
}

func clampTimeToBounds(t time.Time, min time.Time, max time.Time) time.Time {
	if t.Before(min) {
		return min
	}
	if t.After(max) {
		return max
	}
	return t
}

func parseDateInput(raw string) (time.Time, bool) {
	return visitors.ParseDate(raw)
}
