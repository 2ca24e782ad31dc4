package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSC52Supported(t *testing.T) {
	assert.False(t, osc52Supported("", true))
	assert.False(t, osc52Supported("DUMB", true))
	assert.False(t, osc52Supported("xterm-256color", false))
	assert.True(t, osc52Supported("xterm-256color", true))
}

func TestOSC52Sequence(t *testing.T) {
	plain := osc52Sequence("Ann,2024-01-01", "xterm", false).String()
	assert.Contains(t, plain, "\x1b]52;c;")
	assert.NotContains(t, plain, "\x1bPtmux;")

	tmux := osc52Sequence("Ann", "xterm", true).String()
	assert.Contains(t, tmux, "\x1bPtmux;")

	screen := osc52Sequence("Ann", "screen-256color", false).String()
	assert.Contains(t, screen, "\x1bP")
	assert.NotEqual(t, plain, screen)
}
