package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is implemented by every modal (export, chart export, help) so the
// dashboard can route keys and render the overlay without knowing which one is up.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
