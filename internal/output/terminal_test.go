package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal_NonFileWriters(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular files are never terminals")
}

func TestSupportsColors(t *testing.T) {
	tests := []struct {
		name       string
		noColor    string
		forceColor string
		term       string
		want       bool
	}{
		{name: "NO_COLOR wins", noColor: "1", forceColor: "1", term: "xterm", want: false},
		{name: "FORCE_COLOR", forceColor: "1", term: "dumb", want: true},
		{name: "xterm", term: "xterm-256color", want: true},
		{name: "dumb terminal", term: "dumb", want: false},
		{name: "no TERM", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("FORCE_COLOR", tt.forceColor)
			t.Setenv("TERM", tt.term)
			assert.Equal(t, tt.want, SupportsColors())
		})
	}
}

func TestUseColor(t *testing.T) {
	t.Setenv("FORCE_COLOR", "1")
	assert.False(t, UseColor(&bytes.Buffer{}, false), "buffers are not terminals")
	assert.False(t, UseColor(os.Stdout, true), "--no-color always wins")
}
