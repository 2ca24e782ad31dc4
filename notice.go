package main

import (
	"time"

	"github.com/andareed/siftly-visitors/logging"
	tea "github.com/charmbracelet/bubbletea"
)

type noticeKind string

const (
	noticeInfo    noticeKind = "info"
	noticeSuccess noticeKind = "success"
	noticeWarn    noticeKind = "warn"
	noticeError   noticeKind = "error"
)

const noticeDuration = 2 * time.Second

// clearNoticeMsg expires the notice with the same sequence number.
type clearNoticeMsg struct{ id int }

var noticeIcons = map[noticeKind]string{
	noticeInfo:    "ℹ",
	noticeSuccess: "✓",
	noticeWarn:    "!",
	noticeError:   "×",
}

func noticeText(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	if icon, ok := noticeIcons[kind]; ok {
		return icon + " " + msg
	}
	return msg
}

// startNotice shows msg in the footer until d elapses or a newer notice
// replaces it.
func (m *model) startNotice(msg string, kind noticeKind, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeType = kind
	m.ui.noticeSeq++
	id := m.ui.noticeSeq
	logging.Debugf("notice[%d] %s: %s", id, kind, msg)
	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

func (m *model) clearNotice(msg clearNoticeMsg) {
	if msg.id != m.ui.noticeSeq {
		return
	}
	m.ui.noticeMsg = ""
	m.ui.noticeType = ""
}
