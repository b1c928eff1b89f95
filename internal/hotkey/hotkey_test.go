package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCombo(t *testing.T) {
	tests := []struct {
		in   string
		want string
		keys []string
	}{
		{"ctrl+shift+s", "ctrl+shift+s", []string{"s", "ctrl", "shift"}},
		{" Shift + Control + S ", "ctrl+shift+s", []string{"s", "ctrl", "shift"}},
		{"cmd+option+p", "alt+cmd+p", []string{"p", "alt", "cmd"}},
		{"super+return", "cmd+enter", []string{"enter", "cmd"}},
		{"f9", "f9", []string{"f9"}},
		{"ctrl+ctrl+x", "ctrl+x", []string{"x", "ctrl"}},
		{"ctrl+escape", "ctrl+esc", []string{"esc", "ctrl"}},
		{"ctrl+Esc", "ctrl+esc", []string{"esc", "ctrl"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseCombo(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
			assert.Equal(t, tt.keys, c.keys())
		})
	}
}

func TestParseCombo_Errors(t *testing.T) {
	for _, in := range []string{"", "ctrl+shift", "ctrl++s", "a+b", "ctrl+foo", "none"} {
		_, err := ParseCombo(in)
		assert.Error(t, err, in)
	}
}

func TestParseCombo_UnknownKeyNamed(t *testing.T) {
	_, err := ParseCombo("ctrl+foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key "foo"`)
}
