package clipboard

import (
	"errors"

	"github.com/andareed/siftly-visitors/logging"
	"github.com/atotto/clipboard"
)

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no clipboard utility is available (e.g. over SSH).
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return errors.New("no clipboard available")
	}
	return nil
}
