package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	footerFilterWidth = 12
	footerGap         = " "
)

type footerState struct {
	Mode      Command
	ModeInput string

	FileName string

	FilterLabel string
	ViewLabel   string

	Row       int
	TotalRows int

	StatusMessage string
	Legend        string
}

// footerStyles carries one style per footer segment. Every segment repeats the
// bar background so the line reads as one strip.
type footerStyles struct {
	modePill lipgloss.Style
	fileName lipgloss.Style
	text     lipgloss.Style
	dim      lipgloss.Style
	status   lipgloss.Style
	legend   lipgloss.Style
}

func defaultFooterStyles() footerStyles {
	barBG := lipgloss.Color("#2b2b2b")
	statusBG := lipgloss.Color("#000000")
	return footerStyles{
		modePill: lipgloss.NewStyle().Background(lipgloss.Color(accentColor)).Foreground(lipgloss.Color("#000000")).Bold(true),
		fileName: lipgloss.NewStyle().Background(barBG).Foreground(lipgloss.Color("#e0e0e0")),
		text:     lipgloss.NewStyle().Background(barBG).Foreground(lipgloss.Color("#cfcfcf")),
		dim:      lipgloss.NewStyle().Background(barBG).Foreground(lipgloss.Color("#a0a0a0")),
		status:   lipgloss.NewStyle().Background(statusBG).Foreground(lipgloss.Color("#9a9a9a")),
		legend:   lipgloss.NewStyle().Background(statusBG).Foreground(lipgloss.Color("#b0b0b0")),
	}
}

// renderFooter draws the control bar (mode, file, filter/view flags, row
// counter) above the status line (notice or date window, key legend).
func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.FilterLabel == "" {
		st.FilterLabel = "None"
	}
	if st.ViewLabel == "" {
		st.ViewLabel = "TABLE"
	}
	if st.Legend == "" {
		st.Legend = "(? help · t dates · f filter)"
	}
	st.Row = max(st.Row, 0)
	st.TotalRows = max(st.TotalRows, 0)

	return controlBar(width, st, styles) + "\n" + statusLine(width, st, styles)
}

func controlBar(width int, st footerState, styles footerStyles) string {
	pill := truncatePlain(" "+commandLabel(st.Mode)+" ", width)
	rows := fmt.Sprintf(" Rows %d/%d", st.Row, st.TotalRows)
	flags := fmt.Sprintf("[FILTER: %s] · [VIEW: %s]", truncatePlain(strings.TrimSpace(st.FilterLabel), footerFilterWidth), st.ViewLabel)

	// the file segment takes whatever is left; flags go first when space runs out
	fileW := width - runeWidth(pill) - runeWidth(rows) - runeWidth(flags) - 2*runeWidth(footerGap)
	if fileW < 0 {
		flags = ""
		fileW = width - runeWidth(pill) - runeWidth(rows) - runeWidth(footerGap)
	}
	if fileW < 0 {
		rows = ""
		fileW = max(0, width-runeWidth(pill)-runeWidth(footerGap))
	}

	segments := []string{
		styles.modePill.Render(pill),
		styles.text.Render(footerGap),
		styles.fileName.Render(padRightPlain(fileSegment(st), fileW)),
	}
	if flags != "" {
		segments = append(segments, styles.text.Render(footerGap), styles.dim.Render(flags))
	}
	segments = append(segments, styles.text.Render(rows))
	return strings.Join(segments, "")
}

func fileSegment(st footerState) string {
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	seg := "▸ " + name
	if input := strings.TrimSpace(st.ModeInput); input != "" {
		seg += " ▸ " + input
	}
	return seg
}

func statusLine(width int, st footerState, styles footerStyles) string {
	legend := truncatePlain(st.Legend, width)
	msgW := width - runeWidth(legend)
	msg := padRightPlain(truncatePlain(st.StatusMessage, msgW), msgW)
	return styles.status.Render(msg) + styles.legend.Render(legend)
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	case CmdFilter:
		return "FILTER"
	case CmdDates:
		return "DATES"
	default:
		return "NORMAL"
	}
}

// padRightPlain pads s to exactly w columns, truncating when it is longer.
func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = truncatePlain(s, w)
	return s + strings.Repeat(" ", w-runeWidth(s))
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

func runeWidth(s string) int {
	return len([]rune(s))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
