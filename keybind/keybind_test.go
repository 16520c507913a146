package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"Up", "up"},
		{"G", "G"},
		{"Ctrl+C", "ctrl+c"},
		{"control+c", "ctrl+c"},
		{"ctrl-c", "ctrl+c"},
		{"Escape", "esc"},
		{"return", "enter"},
		{"PageUp", "pgup"},
		{"backtab", "shift+tab"},
		{"shift+shift+tab", "shift+tab"},
		{"Rune[x]", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeKey(tt.in))
		})
	}
}

func TestParseKeys(t *testing.T) {
	assert.Equal(t, []string{"up", "k"}, ParseKeys("up, k"))
	assert.Equal(t, []string{"q", "esc"}, ParseKeys(" q ,, Escape "))
	assert.Empty(t, ParseKeys(""))
}

func TestKeybind(t *testing.T) {
	kb := NewKeybind(WithKeys("Down", "j"), WithHelp("↓/j", "next"))
	assert.True(t, kb.Enabled())
	assert.Equal(t, []string{"down", "j"}, kb.Keys())
	assert.Equal(t, Help{Key: "↓/j", Desc: "next"}, kb.Help())

	kb.SetKeys()
	assert.False(t, kb.Enabled())

	kb.SetHelp("x", "other")
	assert.Equal(t, "other", kb.Help().Desc)
}

func TestMatches(t *testing.T) {
	tab := NewKeybind(WithKeys("tab"))
	backtab := NewKeybind(WithKeys("shift+tab"))
	ctrlI := NewKeybind(WithKeys("ctrl+i"))
	quit := NewKeybind(WithKeys("q", "ctrl+c"))
	last := NewKeybind(WithKeys("G"))
	first := NewKeybind(WithKeys("g"))
	down := NewKeybind(WithKeys("down"))

	tabEvent := tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
	assert.True(t, Matches(tabEvent, tab))
	assert.False(t, Matches(tabEvent, ctrlI))
	assert.False(t, Matches(tabEvent, backtab))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), backtab))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), quit))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), quit))

	upperG := tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift)
	assert.True(t, Matches(upperG, last))
	assert.False(t, Matches(upperG, first))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), quit, down))
	assert.False(t, Matches(nil, down))
}
