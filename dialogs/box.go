package dialogs

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			BorderBackground(lipgloss.Color("236")). // match the overlay
			Padding(1, 2).
			Width(60)
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// resolvePath falls back to the placeholder for a blank value and places a
// bare file name in lastDir when one is set.
func resolvePath(val, placeholder, lastDir string) string {
	if val == "" {
		val = placeholder
	}
	if val == "" {
		return ""
	}
	if lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(lastDir, filepath.Base(val))
	}
	return val
}
