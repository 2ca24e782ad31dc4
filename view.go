package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/andareed/siftly-visitors/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const appTitle = "Visitor Management Dashboard"

func (m *model) gutterWidth() int {
	return len(fmt.Sprintf("%d", m.data.table.Len())) + utf8.RuneCountInString(pillMarker) + 1
}

func (m *model) titleView() string {
	return titleStyle.Render(appTitle) + "  " + chartDimStyle.Render(filepath.Base(m.InitialPath))
}

func (m *model) headerView() string {
	if m.ui.showCharts {
		return ""
	}
	var cells []string
	for _, col := range m.data.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		cells = append(cells, cellStyle.Width(col.Width).Render(col.Name))
	}
	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return headerStyle.Render(strings.Repeat(" ", m.gutterWidth()) + headerRow)
}

// footerView renders the 2-line footer.
// width is the rendered content width.
func (m *model) footerView(width int) string {
	footerMode := CmdNone
	modeInput := ""
	switch m.ui.mode {
	case modeCommand:
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
	case modeDateWindow:
		footerMode = CmdDates
	}

	st := footerState{
		Mode:          footerMode,
		ModeInput:     modeInput,
		FileName:      filepath.Base(m.InitialPath),
		FilterLabel:   "None",
		ViewLabel:     "TABLE",
		Row:           m.cursor + 1,
		TotalRows:     m.data.view.Len(),
		StatusMessage: "",
		Legend:        "(? help · t dates · v charts · f filter · / search · x export)",
	}
	if m.ui.showCharts {
		st.ViewLabel = "CHARTS"
	}
	if m.data.filterRegex != nil && m.data.filterRegex.String() != "" {
		st.FilterLabel = m.data.filterRegex.String()
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if st.StatusMessage == "" {
		st.StatusMessage = m.dateWindowStatusLabel()
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d vp=%dx%d cur=%d vis=%d-%d page=%d ch=%d hf=%d abv=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.visibleStart, m.ui.visibleEnd, m.pageRowSize,
			m.ui.debugCursorHeight, m.ui.debugHeightFree, m.ui.debugDesiredAboveHeight,
		)
		st.Legend = st.Legend + " |" + debug
	}

	return renderFooter(width, st, defaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.titleView(), m.metricsView()}
	if h := m.headerView(); h != "" {
		parts = append(parts, h)
	}
	parts = append(parts, bordered)
	if m.ui.dateWindow.open {
		parts = append(parts, m.dateWindowDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// chromeHeight is everything around the viewport: margins, border, title,
// metric cards, column header, footer and the drawer when open.
func (m *model) chromeHeight() int {
	h := 2 + 2 + 1 + lipgloss.Height(m.metricsView()) + 2
	if !m.ui.showCharts {
		h++
	}
	if m.ui.dateWindow.open {
		h += dateWindowDrawerHeight
	}
	return h
}

// refreshView resizes the viewport when asked and re-renders its content.
func (m *model) refreshView(reason string, resize bool) {
	logging.Debugf("refreshView: %s resize=%v", reason, resize)
	if !m.ready {
		return
	}
	if resize {
		m.viewport.Width = max(1, m.terminalWidth-6)
		m.viewport.Height = max(1, m.terminalHeight-m.chromeHeight())
		m.data.header = layoutColumns(m.data.header, m.viewport.Width-m.gutterWidth())
	}
	if m.ui.showCharts {
		m.viewport.SetContent(m.chartsView(m.viewport.Width))
		return
	}
	m.viewport.SetContent(m.renderViewport())
	m.viewport.SetYOffset(0)
}

// rowPaint is the colouring for one table row. prefix re-applies the row
// colours after any reset emitted by an inner style (search highlights).
type rowPaint struct {
	gutter lipgloss.Style
	prefix string
}

func paintFor(selected bool) rowPaint {
	if selected {
		return rowPaint{
			gutter: rowSelectedStyle,
			prefix: colorSeq(rowSelectedBGColor, true) + colorSeq(rowSelectedTextFGColor, false),
		}
	}
	return rowPaint{
		gutter: rowStyle,
		prefix: colorSeq("", true) + colorSeq(rowTextFGColor, false),
	}
}

// colorSeq returns the SGR sequence for a hex colour in the active profile;
// an empty colour resets to the terminal default.
func colorSeq(hex string, bg bool) string {
	if hex == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	c := lipgloss.ColorProfile().Color(hex)
	if c == nil {
		return ""
	}
	return termenv.CSI + c.Sequence(bg) + "m"
}

// renderRowAt renders view record idx with its gutter (blacklist marker and
// source row number) and returns the text and its height in lines.
func (m *model) renderRowAt(idx int) (string, int, bool) {
	if idx < 0 || idx >= m.data.view.Len() {
		return "", 0, false
	}

	paint := paintFor(idx == m.cursor)
	reset := termenv.CSI + termenv.ResetSeq + "m"

	row := newTableRow(m.data.view.Records[idx], len(m.data.table.Header))
	if q := strings.TrimSpace(m.ui.searchQuery); q != "" {
		for i, col := range row.cols {
			row.cols[i] = highlightMatches(col, q)
		}
	}

	marker := defaultMarker
	if row.blacklisted {
		marker = redMarker.Render(pillMarker)
	}
	numW := m.gutterWidth() - utf8.RuneCountInString(pillMarker)
	number := marker + paint.gutter.Render(fmt.Sprintf("%*d", numW, row.sourceRow))
	blank := marker + paint.gutter.Render(strings.Repeat(" ", numW))

	lines := strings.Split(row.Render(cellStyle, m.data.header), "\n")
	for i, line := range lines {
		gutter := blank
		if i == 0 {
			gutter = number
		}
		line = strings.ReplaceAll(line, reset, reset+paint.prefix)
		lines[i] = gutter + paint.prefix + line + reset
	}
	return strings.Join(lines, "\n"), row.height, true
}

// highlightMatches marks every case-insensitive occurrence of query in text.
func highlightMatches(text, query string) string {
	if query == "" || text == "" {
		return text
	}
	lower := strings.ToLower(text)
	q := strings.ToLower(query)
	if len(lower) != len(text) {
		// case folding changed byte offsets
		return text
	}
	var b strings.Builder
	for pos := 0; ; {
		n := strings.Index(lower[pos:], q)
		if n < 0 {
			b.WriteString(text[pos:])
			return b.String()
		}
		b.WriteString(text[pos : pos+n])
		b.WriteString(searchHighlight.Render(text[pos+n : pos+n+len(q)]))
		pos += n + len(q)
	}
}

func (m *model) renderViewport() string {
	n := m.data.view.Len()
	if n == 0 || m.cursor < 0 {
		logging.Debugf("renderViewport: empty view, cursor=%d", m.cursor)
		return chartDimStyle.Render("No visitors in the selected range.")
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	rows, first, last := m.computeVisibleRows(m.cursor, m.viewport.Height)
	m.ui.visibleStart, m.ui.visibleEnd = first, last
	m.pageRowSize = len(rows)
	m.lastVisibleRowCount = len(rows)
	return strings.Join(rows, "\n")
}

// computeVisibleRows fills viewportHeight lines around cursor, aiming to keep
// the cursor row near the middle. It returns the rendered rows and the view
// indices of the first and last one.
func (m *model) computeVisibleRows(cursor int, viewportHeight int) ([]string, int, int) {
	current, h, ok := m.renderRowAt(cursor)
	if !ok {
		return nil, 0, 0
	}

	free := viewportHeight - h
	wantAbove := max(0, free/2)
	m.ui.debugCursorHeight = h
	m.ui.debugHeightFree = free
	m.ui.debugDesiredAboveHeight = wantAbove

	var above, below []string
	up, down := cursor-1, cursor+1
	usedAbove := 0

	// take renders idx and keeps it when it still fits.
	take := func(idx int, dst *[]string) bool {
		text, rh, ok := m.renderRowAt(idx)
		if !ok || rh > free {
			return false
		}
		*dst = append(*dst, text)
		free -= rh
		return true
	}

	for free > 0 {
		switch {
		case up >= 0 && usedAbove < wantAbove && take(up, &above):
			usedAbove += len(strings.Split(above[len(above)-1], "\n"))
			up--
		case down < m.data.view.Len() && take(down, &below):
			down++
		case up >= 0 && take(up, &above):
			up--
		default:
			free = 0
		}
	}

	rows := make([]string, 0, len(above)+1+len(below))
	for i := len(above) - 1; i >= 0; i-- {
		rows = append(rows, above[i])
	}
	rows = append(rows, current)
	rows = append(rows, below...)
	return rows, cursor - len(above), cursor + len(below)
}
