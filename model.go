package main

import (
	"github.com/andareed/siftly-visitors/clipboard"
	"github.com/andareed/siftly-visitors/dialogs"
	"github.com/andareed/siftly-visitors/logging"
	"github.com/andareed/siftly-visitors/visitors"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const horizontalStep = 4

type model struct {
	data dataState
	ui   uiState

	viewport            viewport.Model
	ready               bool
	terminalWidth       int
	terminalHeight      int
	cursor              int // index into data.view
	lastVisibleRowCount int
	pageRowSize         int

	activeDialog  dialogs.Dialog
	lastExportDir string

	InitialPath string
}

func newModel(tbl *visitors.Table, path string) *model {
	m := &model{
		data:        newDataState(tbl),
		InitialPath: path,
	}
	m.ui.mode = modeView
	m.ui.dateWindow.startInput = initDateWindowInput()
	m.ui.dateWindow.endInput = initDateWindowInput()
	m.ui.dateWindow.step = dateWindowStepDefault
	if m.data.view.Len() == 0 {
		m.cursor = -1
	}
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-visitors: initialised with %d records (%d in view)", m.data.table.Len(), m.data.view.Len())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		if !m.ready {
			m.viewport = viewport.New(max(1, msg.Width-6), max(1, msg.Height-m.chromeHeight()))
			m.ready = true
		}
		m.refreshView("window-size", true)
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportView(msg.Path)
	case dialogs.ChartsConfirmedMsg:
		m.closeDialog()
		return m, m.exportCharts(msg.Dir)
	case dialogs.ExportCanceledMsg, dialogs.ChartsCanceledMsg:
		m.closeDialog()
		return m, nil

	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			d, cmd := m.activeDialog.Update(msg)
			m.activeDialog = d
			if !d.IsVisible() {
				m.closeDialog()
			}
			return m, cmd
		}
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeDateWindow:
		return m.handleDateWindowKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	resize := false

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(Keys.Legend()))
	case key.Matches(msg, Keys.ExportToFile):
		return m, m.openDialog(dialogs.NewExportDialog(defaultExportName(m.InitialPath), m.lastExportDir))
	case key.Matches(msg, Keys.ExportCharts):
		return m, m.openDialog(dialogs.NewChartsDialog(defaultChartsDir(m.InitialPath)))
	case key.Matches(msg, Keys.DateWindow):
		m.openDateWindowDrawer()
		return m, nil
	case key.Matches(msg, Keys.ToggleCharts):
		m.ui.showCharts = !m.ui.showCharts
		resize = true
	case key.Matches(msg, Keys.Search), key.Matches(msg, Keys.Filter), key.Matches(msg, Keys.JumpToRow):
		if len(msg.Runes) > 0 {
			m.enterCommandMode(CommandFromPrefix(msg.Runes[0]))
		}
		return m, nil
	case key.Matches(msg, Keys.ClearFilter):
		if err := m.setFilterPattern(""); err == nil {
			cmd = m.startNotice("Filter cleared", noticeInfo, noticeDuration)
		}
	case key.Matches(msg, Keys.CopyRow):
		cmd = m.copyCurrentRow()
	}

	if m.ui.showCharts {
		switch {
		case key.Matches(msg, Keys.RowDown):
			m.viewport.SetYOffset(m.viewport.YOffset + 1)
			return m, cmd
		case key.Matches(msg, Keys.RowUp):
			m.viewport.SetYOffset(m.viewport.YOffset - 1)
			return m, cmd
		case key.Matches(msg, Keys.PageDown):
			m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
			return m, cmd
		case key.Matches(msg, Keys.PageUp):
			m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
			return m, cmd
		}
		m.refreshView("charts-key", resize)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.RowDown):
		if m.cursor < m.data.view.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, Keys.RowUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, Keys.PageUp):
		m.pageUp()
	case key.Matches(msg, Keys.PageDown):
		m.pageDown()
	case key.Matches(msg, Keys.JumpStart):
		m.jumpToStart()
	case key.Matches(msg, Keys.JumpEnd):
		m.jumpToEnd()
	case key.Matches(msg, Keys.ScrollLeft):
		m.viewport.ScrollLeft(horizontalStep)
		return m, cmd
	case key.Matches(msg, Keys.ScrollRight):
		m.viewport.ScrollRight(horizontalStep)
		return m, cmd
	}

	m.refreshView("view-key", resize)
	return m, cmd
}

func (m *model) pageDown() {
	if !m.checkViewPortHasData() {
		return
	}
	if m.cursor+m.lastVisibleRowCount < m.data.view.Len() {
		m.cursor += m.lastVisibleRowCount
	} else {
		m.cursor = m.data.view.Len() - 1
	}
}

func (m *model) pageUp() {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor -= m.lastVisibleRowCount
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) copyCurrentRow() tea.Cmd {
	if m.cursor < 0 || m.cursor >= m.data.view.Len() {
		return m.startNotice("No row selected", noticeWarn, noticeDuration)
	}
	row := newTableRow(m.data.view.Records[m.cursor], len(m.data.table.Header))
	if err := clipboard.Copy(row.Join(",")); err != nil {
		logging.Warnf("copy row %d: %v", row.sourceRow, err)
		return m.startNotice("Copy failed: "+err.Error(), noticeError, noticeDuration)
	}
	return m.startNotice("Row copied", noticeSuccess, noticeDuration)
}
