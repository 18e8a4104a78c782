package graphic

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTerminalTmux(t *testing.T) {
	t.Setenv("TERM", "tmux-256color")
	t.Setenv("TERMINFO", "/opt/terminfo")

	restore, err := normalizeTerminal()
	require.NoError(t, err)

	_, set := os.LookupEnv("TERMINFO")
	assert.False(t, set)

	restore()
	assert.Equal(t, "/opt/terminfo", os.Getenv("TERMINFO"))
}

func TestNormalizeTerminalLeavesUnsetAlone(t *testing.T) {
	t.Setenv("TERM", "tmux")
	t.Setenv("TERMINFO", "")
	require.NoError(t, os.Unsetenv("TERMINFO"))

	restore, err := normalizeTerminal()
	require.NoError(t, err)

	assert.NotPanics(t, restore)

	_, set := os.LookupEnv("TERMINFO")
	assert.False(t, set)
}

func TestNormalizeTerminalOtherTerm(t *testing.T) {
	t.Setenv("TERM", "xterm")
	t.Setenv("TERMINFO", "/opt/terminfo")

	restore, err := normalizeTerminal()
	require.NoError(t, err)
	assert.Equal(t, "/opt/terminfo", os.Getenv("TERMINFO"))

	restore()
	assert.Equal(t, "/opt/terminfo", os.Getenv("TERMINFO"))
}
