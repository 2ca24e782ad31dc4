package clipboard

import (
	"errors"
	"os"
	"strings"

	"github.com/andareed/siftly-visitors/logging"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

var errNoOSC52 = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

// copyOSC52 asks the terminal to set its clipboard. Inside tmux or screen the
// sequence is wrapped so it reaches the outer terminal.
func copyOSC52(text string) error {
	term := os.Getenv("TERM")
	if !osc52Supported(term, isatty.IsTerminal(os.Stdout.Fd())) {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=%q)", term)
		return errNoOSC52
	}
	if _, err := osc52Sequence(text, term, os.Getenv("TMUX") != "").WriteTo(os.Stdout); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied %d bytes via OSC52", len(text))
	return nil
}

func osc52Sequence(text, term string, inTmux bool) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case inTmux || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	return seq
}

func osc52Supported(term string, tty bool) bool {
	if term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return tty
}
