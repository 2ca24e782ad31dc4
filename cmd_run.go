package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	m.ui.mode = modeCommand
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) runCommand() tea.Cmd {
	buf := strings.TrimSpace(m.ui.command.buf)
	switch m.ui.command.cmd {
	case CmdJump:
		if n, err := strconv.Atoi(buf); err == nil {
			return m.jumpToSourceRow(n)
		}
		return m.startNotice("Invalid row number", noticeWarn, noticeDuration)

	case CmdSearch:
		return m.searchOnce(buf)

	case CmdFilter:
		if err := m.setFilterPattern(buf); err != nil {
			return m.startNotice("Invalid regex: "+err.Error(), noticeError, noticeDuration)
		}
		if buf == "" {
			return m.startNotice("Filter cleared", noticeInfo, noticeDuration)
		}
		return nil
	}
	return nil
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		m.refreshView("command-cancel", false)
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		m.refreshView("command-run", false)
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	case tea.KeyRunes:
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
