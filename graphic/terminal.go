package graphic

import (
	"os"
	"strings"
)

// normalizeTerminal works around TERMINFO values that make termbox fail
// under tmux.
//
// Returns a function that restores the original configuration.
func normalizeTerminal() (func(), error) {
	prevTERMINFO, hadTERMINFO := os.LookupEnv("TERMINFO")

	if strings.HasPrefix(os.Getenv("TERM"), "tmux") {
		if err := os.Unsetenv("TERMINFO"); err != nil {
			return nil, err
		}
	}

	restore := func() {
		if !hadTERMINFO {
			return
		}

		// the value came out of the environment, so Setenv cannot reject it
		if err := os.Setenv("TERMINFO", prevTERMINFO); err != nil {
			panic(err)
		}
	}

	return restore, nil
}
