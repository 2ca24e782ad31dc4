package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	DateWindow   key.Binding
	ToggleCharts key.Binding
	Filter       key.Binding
	ClearFilter  key.Binding
	Search       key.Binding
	JumpToRow    key.Binding
	JumpStart    key.Binding
	JumpEnd      key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	RowDown      key.Binding
	RowUp        key.Binding
	OpenHelp     key.Binding
	ScrollLeft   key.Binding
	ScrollRight  key.Binding
	ExportToFile key.Binding
	ExportCharts key.Binding
	CopyRow      key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	DateWindow: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "select date range"),
	),
	ToggleCharts: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "toggle table / charts"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "regex filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear filter"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	JumpToRow: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to source row"),
	),
	JumpStart: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g/home", "first row"),
	),
	JumpEnd: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G/end", "last row"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll the grid left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll the grid right"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export rows (.csv/.xlsx)"),
	),
	ExportCharts: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "export charts (.png)"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "copy row to clipboard"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.DateWindow,
		k.ToggleCharts,
		k.Filter,
		k.ClearFilter,
		k.Search,
		k.JumpToRow,
		k.JumpStart,
		k.JumpEnd,
		k.PageUp,
		k.PageDown,
		k.ScrollLeft,
		k.ScrollRight,
		k.ExportToFile,
		k.ExportCharts,
		k.CopyRow,
	}
}
