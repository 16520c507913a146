// Package help draws a one-line summary of key bindings below a picker.
package help

import (
	"github.com/ayn2op/wheel"
	"github.com/ayn2op/wheel/keybind"
	"github.com/gdamore/tcell/v2"
)

// KeyMap is implemented by anything that can describe its bindings.
type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
}

// Help is a primitive listing "key description" pairs separated by a dot.
// Pairs that do not fit are dropped and replaced by an ellipsis.
type Help struct {
	*wheel.Box
	Styles Styles

	keyMaps   []KeyMap
	separator string
	ellipsis  string
}

// New returns an empty help bar.
func New() *Help {
	return &Help{
		Box:       wheel.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  "…",
	}
}

// SetKeyMaps sets the key maps listed, in order.
func (h *Help) SetKeyMaps(keyMaps ...KeyMap) *Help {
	h.keyMaps = keyMaps
	h.MarkDirty()
	return h
}

// SetSeparator sets the text between two entries.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	h.MarkDirty()
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	for _, s := range h.Segments(width) {
		_, printed := wheel.PrintStyled(screen, s.Text, x, y, width, wheel.AlignmentLeft, s.Style)
		x += printed
		width -= printed
	}
}

// Segment is a styled piece of the help line.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Segments lays out the help line for maxWidth cells.
func (h *Help) Segments(maxWidth int) []Segment {
	var items [][]Segment
	for _, keyMap := range h.keyMaps {
		for _, kb := range keyMap.ShortHelp() {
			if item := h.itemSegments(kb); len(item) > 0 {
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		return nil
	}

	separator := Segment{Text: h.separator, Style: h.Styles.SeparatorStyle}
	out := items[0]
	if segmentsWidth(out) > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		candidate := append(append(append([]Segment(nil), out...), separator), item...)
		if segmentsWidth(candidate) > maxWidth {
			tail := []Segment{{Text: " " + h.ellipsis, Style: h.Styles.EllipsisStyle}}
			if segmentsWidth(out)+segmentsWidth(tail) <= maxWidth {
				out = append(out, tail...)
			}
			return out
		}
		out = candidate
	}
	return out
}

func (h *Help) itemSegments(kb keybind.Keybind) []Segment {
	if !kb.Enabled() {
		return nil
	}
	entry := kb.Help()
	switch {
	case entry.Key == "" && entry.Desc == "":
		return nil
	case entry.Key == "":
		return []Segment{{Text: entry.Desc, Style: h.Styles.DescStyle}}
	case entry.Desc == "":
		return []Segment{{Text: entry.Key, Style: h.Styles.KeyStyle}}
	}
	return []Segment{
		{Text: entry.Key, Style: h.Styles.KeyStyle},
		{Text: " " + entry.Desc, Style: h.Styles.DescStyle},
	}
}

func segmentsWidth(segments []Segment) int {
	width := 0
	for _, segment := range segments {
		width += wheel.StringWidth(segment.Text)
	}
	return width
}
