package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/andareed/siftly-visitors/visitors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const errNoDates = "No valid dates in the data"

func (m *model) openDateWindowDrawer() {
	dw := &m.ui.dateWindow
	dw.open = true
	dw.errorMsg = ""
	if dw.step == 0 {
		dw.step = dateWindowStepDefault
	}

	if !m.data.hasDates {
		dw.errorMsg = errNoDates
		dw.startInput.SetValue("")
		dw.endInput.SetValue("")
		dw.draftStart = time.Time{}
		dw.draftEnd = time.Time{}
	} else {
		dw.draftStart = m.data.dateWindow.Start
		dw.draftEnd = m.data.dateWindow.End
		m.updateDateWindowInputsFromDraft()
	}

	m.setDateWindowFocus(dateWindowFocusStart)
	m.ui.mode = modeDateWindow
	m.refreshView("date-window-open", true)
}

func (m *model) closeDateWindowDrawer() {
	m.ui.dateWindow.open = false
	m.ui.dateWindow.errorMsg = ""
	m.ui.mode = modeView
	m.refreshView("date-window-close", true)
}

func (m *model) handleDateWindowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dw := &m.ui.dateWindow

	switch {
	case msg.Type == tea.KeyEsc:
		m.closeDateWindowDrawer()
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m, m.applyDateWindowFromInputs()
	case msg.String() == "r" && dw.focus == dateWindowFocusScrubber:
		m.resetDateWindowDraft()
		return m, nil
	case msg.Type == tea.KeyTab:
		m.setDateWindowFocus((dw.focus + 1) % 3)
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.setDateWindowFocus((dw.focus + 2) % 3)
		return m, nil
	case dw.focus == dateWindowFocusScrubber && msg.Type == tea.KeyLeft:
		m.shiftDateWindow(-m.dateWindowStep())
		return m, nil
	case dw.focus == dateWindowFocusScrubber && msg.Type == tea.KeyRight:
		m.shiftDateWindow(m.dateWindowStep())
		return m, nil
	case dw.focus == dateWindowFocusScrubber && msg.Type == tea.KeyShiftLeft:
		m.expandDateWindow(-m.dateWindowStep())
		return m, nil
	case dw.focus == dateWindowFocusScrubber && msg.Type == tea.KeyShiftRight:
		m.expandDateWindow(m.dateWindowStep())
		return m, nil
	case dw.focus == dateWindowFocusScrubber && msg.String() == "-":
		m.adjustDateWindowStep(false)
		return m, nil
	case dw.focus == dateWindowFocusScrubber && (msg.String() == "+" || msg.String() == "="):
		m.adjustDateWindowStep(true)
		return m, nil
	}

	var cmd tea.Cmd
	switch dw.focus {
	case dateWindowFocusStart:
		dw.startInput, cmd = dw.startInput.Update(msg)
	case dateWindowFocusEnd:
		dw.endInput, cmd = dw.endInput.Update(msg)
	}
	return m, cmd
}

func (m *model) setDateWindowFocus(focus int) {
	dw := &m.ui.dateWindow
	dw.focus = focus
	switch focus {
	case dateWindowFocusStart:
		dw.startInput.Focus()
		dw.endInput.Blur()
	case dateWindowFocusEnd:
		dw.startInput.Blur()
		dw.endInput.Focus()
	default:
		dw.startInput.Blur()
		dw.endInput.Blur()
	}
}

func (m *model) updateDateWindowInputsFromDraft() {
	dw := &m.ui.dateWindow
	if !dw.draftStart.IsZero() {
		dw.startInput.SetValue(dw.draftStart.Format(dateInputLayout))
	}
	if !dw.draftEnd.IsZero() {
		dw.endInput.SetValue(dw.draftEnd.Format(dateInputLayout))
	}
}

func (m *model) syncDraftFromInputs() {
	dw := &m.ui.dateWindow
	if start, ok := parseDateInput(dw.startInput.Value()); ok {
		dw.draftStart = start
	}
	if end, ok := parseDateInput(dw.endInput.Value()); ok {
		dw.draftEnd = end
	}
}

// resetDateWindowDraft puts the full data span back into the inputs. The
// window itself changes only on apply.
func (m *model) resetDateWindowDraft() {
	dw := &m.ui.dateWindow
	dw.errorMsg = ""
	if !m.data.hasDates {
		dw.errorMsg = errNoDates
		return
	}
	dw.draftStart, dw.draftEnd = m.data.dateBounds.Start, m.data.dateBounds.End
	m.updateDateWindowInputsFromDraft()
}

func (m *model) applyDateWindowFromInputs() tea.Cmd {
	dw := &m.ui.dateWindow
	dw.errorMsg = ""

	if !m.data.hasDates {
		dw.errorMsg = errNoDates
		return nil
	}

	start, ok := parseDateInput(dw.startInput.Value())
	if !ok {
		dw.errorMsg = "Invalid start date"
		return nil
	}
	end, ok := parseDateInput(dw.endInput.Value())
	if !ok {
		dw.errorMsg = "Invalid end date"
		return nil
	}
	if start.After(end) {
		dw.errorMsg = "Start is after end"
		return nil
	}

	m.setDateWindow(visitors.NewDateRange(start, end))
	m.closeDateWindowDrawer()
	return m.startNotice(fmt.Sprintf("%d visitors in %s", m.data.summary.Total, m.data.dateWindow), noticeInfo, noticeDuration)
}

// setDateWindow replaces the selected range and reruns the pipeline.
// Ranges outside the data simply yield an empty view.
func (m *model) setDateWindow(dr visitors.DateRange) {
	m.data.dateWindow = dr
	m.ui.dateWindow.draftStart = dr.Start
	m.ui.dateWindow.draftEnd = dr.End
	m.applyFilter()
}

func (m *model) shiftDateWindow(delta time.Duration) {
	dw := &m.ui.dateWindow
	dw.errorMsg = ""

	if !m.data.hasDates {
		dw.errorMsg = errNoDates
		return
	}

	m.syncDraftFromInputs()
	if dw.draftStart.IsZero() || dw.draftEnd.IsZero() {
		dw.draftStart, dw.draftEnd = m.data.dateBounds.Start, m.data.dateBounds.End
	}

	min := m.data.dateBounds.Start
	max := m.data.dateBounds.End
	rangeDur := max.Sub(min)
	windowDur := dw.draftEnd.Sub(dw.draftStart)
	if windowDur < 0 {
		windowDur = 0
	}
	if windowDur >= rangeDur {
		dw.draftStart = min
		dw.draftEnd = max
		m.updateDateWindowInputsFromDraft()
		return
	}

	nextStart := dw.draftStart.Add(delta)
	nextEnd := dw.draftEnd.Add(delta)
	if nextStart.Before(min) {
		nextStart = min
		nextEnd = min.Add(windowDur)
	}
	if nextEnd.After(max) {
		nextEnd = max
		nextStart = max.Add(-windowDur)
	}

	dw.draftStart = nextStart
	dw.draftEnd = nextEnd
	m.updateDateWindowInputsFromDraft()
}

func (m *model) dateWindowStep() time.Duration {
	step := m.ui.dateWindow.step
	if step <= 0 {
		return dateWindowStepDefault
	}
	return clampStep(step)
}

func clampStep(step time.Duration) time.Duration {
	if step < dateWindowStepMin {
		return dateWindowStepMin
	}
	if step > dateWindowStepMax {
		return dateWindowStepMax
	}
	return step
}

func (m *model) adjustDateWindowStep(increase bool) {
	step := m.dateWindowStep()
	if increase {
		step *= 2
	} else {
		step /= 2
	}
	m.ui.dateWindow.step = clampStep(step)
}

func (m *model) expandDateWindow(delta time.Duration) {
	dw := &m.ui.dateWindow
	dw.errorMsg = ""

	if !m.data.hasDates {
		dw.errorMsg = errNoDates
		return
	}

	m.syncDraftFromInputs()
	if dw.draftStart.IsZero() || dw.draftEnd.IsZero() {
		dw.draftStart, dw.draftEnd = m.data.dateBounds.Start, m.data.dateBounds.End
	}

	min := m.data.dateBounds.Start
	max := m.data.dateBounds.End
	if delta < 0 {
		dw.draftStart = clampTimeToBounds(dw.draftStart.Add(delta), min, max)
		if dw.draftStart.After(dw.draftEnd) {
			dw.draftEnd = dw.draftStart
		}
	} else if delta > 0 {
		dw.draftEnd = clampTimeToBounds(dw.draftEnd.Add(delta), min, max)
		if dw.draftEnd.Before(dw.draftStart) {
			dw.draftStart = dw.draftEnd
		}
	}

	m.updateDateWindowInputsFromDraft()
}

func formatStep(step time.Duration) string {
	return fmt.Sprintf("%dd", int(step/day))
}

func (m *model) dateWindowDrawerView(width int) string {
	dw := &m.ui.dateWindow
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	startLine := fmt.Sprintf("Start: %s", dw.startInput.View())
	endLine := fmt.Sprintf("End:   %s", dw.endInput.View())
	scrubberLine := m.dateWindowScrubberLine(innerWidth)
	if dw.focus == dateWindowFocusScrubber {
		scrubberLine = scrubberFocusStyle.Render(scrubberLine)
	}
	helpLine := fmt.Sprintf("tab: next  enter: apply  esc: cancel  [scrubber] ←/→: move %s  shift+←/→: expand %s  -/+: step  r: full span",
		formatStep(m.dateWindowStep()),
		formatStep(m.dateWindowStep()),
	)
	errorLine := ""
	if dw.errorMsg != "" {
		errorLine = "Error: " + dw.errorMsg
	}

	lines := []string{
		lineStyle.Render(startLine),
		lineStyle.Render(endLine),
		lineStyle.Render(scrubberLine),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}

	return dateWindowArea.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *model) dateWindowScrubberLine(width int) string {
	if !m.data.hasDates {
		return "Scrubber: n/a"
	}

	start := m.ui.dateWindow.draftStart
	end := m.ui.dateWindow.draftEnd
	if start.IsZero() || end.IsZero() {
		start, end = m.data.dateBounds.Start, m.data.dateBounds.End
	}

	lo, hi := m.data.dateBounds.Start, m.data.dateBounds.End
	minLabel := lo.Format(dateInputLayout)
	maxLabel := hi.Format(dateInputLayout)
	padding := 2
	barWidth := width - len(minLabel) - len(maxLabel) - padding*2
	rangeDur := hi.Sub(lo)
	if barWidth < 10 || rangeDur <= 0 {
		return fmt.Sprintf("Window: %s - %s", start.Format(dateInputLayout), end.Format(dateInputLayout))
	}

	bar := []rune(strings.Repeat("-", barWidth))
	windowStart := clampTimeToBounds(start, lo, hi)
	windowEnd := clampTimeToBounds(end, lo, hi)
	startPos := int(float64(barWidth-1) * windowStart.Sub(lo).Seconds() / rangeDur.Seconds())
	endPos := int(float64(barWidth-1) * windowEnd.Sub(lo).Seconds() / rangeDur.Seconds())
	startPos = clamp(startPos, 0, barWidth-1)
	endPos = clamp(endPos, 0, barWidth-1)
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	for i := startPos; i <= endPos; i++ {
		bar[i] = '='
	}
	bar[startPos] = '['
	bar[endPos] = ']'

	return fmt.Sprintf("%s  %s  %s", minLabel, string(bar), maxLabel)
}

func (m *model) dateWindowStatusLabel() string {
	if !m.data.hasDates {
		return "Dates: none"
	}
	if m.data.windowIsFull() {
		return fmt.Sprintf("Dates: %s (all)", m.data.dateWindow)
	}
	return fmt.Sprintf("Dates: %s (%d days)", m.data.dateWindow, m.data.dateWindow.Days())
}
