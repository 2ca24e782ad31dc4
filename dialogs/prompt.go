package dialogs

import (
	"fmt"

	"github.com/andareed/siftly-visitors/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
	ChartsConfirmedMsg struct{ Dir string }
	ChartsCanceledMsg  struct{}
)

// Prompt is a one-line path dialog. Enter emits the confirm message for the
// typed path (or the default when left blank), esc emits the cancel message.
type Prompt struct {
	title   string
	hint    string
	input   textinput.Model
	visible bool
	lastDir string

	confirm func(path string) tea.Msg
	cancel  tea.Msg
}

// NewExportDialog asks for the file the visible rows are written to; the
// extension (.csv or .xlsx) picks the format.
func NewExportDialog(defaultName, lastDir string) *Prompt {
	p := newPrompt("Export visible rows", "Export as: ", defaultName,
		".csv or .xlsx • enter to export • esc to cancel")
	p.lastDir = lastDir
	p.confirm = func(path string) tea.Msg { return ExportConfirmedMsg{Path: path} }
	p.cancel = ExportCanceledMsg{}
	return p
}

// NewChartsDialog asks for the directory the PNG charts are written into.
func NewChartsDialog(defaultDir string) *Prompt {
	p := newPrompt("Export charts", "Charts dir: ", defaultDir,
		"one PNG per chart • enter to export • esc to cancel")
	p.confirm = func(dir string) tea.Msg { return ChartsConfirmedMsg{Dir: dir} }
	p.cancel = ChartsCanceledMsg{}
	return p
}

func newPrompt(title, label, def, hint string) *Prompt {
	ti := textinput.New()
	ti.Prompt = label
	ti.Placeholder = def
	ti.CharLimit = 256
	ti.Width = 50
	ti.SetValue(def)
	return &Prompt{title: title, hint: hint, input: ti, visible: true}
}

func (d Prompt) Init() tea.Cmd { return d.input.Focus() }

func (d *Prompt) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			path := resolvePath(d.input.Value(), d.input.Placeholder, d.lastDir)
			if path == "" {
				return d, nil
			}
			logging.Debugf("%s: confirmed %s", d.title, path)
			out := d.confirm(path)
			return d, func() tea.Msg { return out }
		case "esc":
			logging.Debugf("%s: canceled", d.title)
			out := d.cancel
			return d, func() tea.Msg { return out }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Prompt) View() string {
	if !d.visible {
		return ""
	}
	return boxStyle.Render(fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render(d.title),
		d.input.View(),
		hintStyle.Render(d.hint),
	))
}

func (d *Prompt) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Prompt) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Prompt) Focus() tea.Cmd { return d.input.Focus() }
func (d *Prompt) Blur()          { d.input.Blur() }
func (d Prompt) IsVisible() bool { return d.visible }
