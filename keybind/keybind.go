// Package keybind matches tcell key events against configurable, normalised
// key names such as "up", "k" or "ctrl+c".
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of keys triggering one action, plus the text shown for it
// in a help bar.
type Keybind struct {
	keys []string
	help Help
}

// Option configures a Keybind.
type Option func(*Keybind)

// NewKeybind builds a Keybind from options.
func NewKeybind(options ...Option) Keybind {
	k := &Keybind{}
	for _, option := range options {
		option(k)
	}
	return *k
}

// WithKeys sets the keys. Names are normalised, so "Ctrl+C", "ctrl-c" and
// "control+c" are the same key.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = normalizeKeys(keys...)
	}
}

// WithHelp sets the key label and description shown in help.
func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

// Keys returns the normalised key names.
func (k Keybind) Keys() []string {
	return k.keys
}

// SetKeys replaces the keys.
func (k *Keybind) SetKeys(keys ...string) {
	k.keys = normalizeKeys(keys...)
}

// Enabled reports whether any key is bound.
func (k Keybind) Enabled() bool {
	return len(k.keys) > 0
}

// Help returns the help entry.
func (k Keybind) Help() Help {
	return k.help
}

// SetHelp replaces the help entry.
func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Help is a key label and its description.
type Help struct {
	Key  string
	Desc string
}

// ParseKeys splits a comma separated list such as "up, k" as found in
// configuration files.
func ParseKeys(list string) []string {
	return normalizeKeys(strings.Split(list, ",")...)
}

// Matches reports whether event is one of the keys of any keybind.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}

	key := eventKeyString(event)
	for _, keybind := range keybinds {
		if slices.Contains(keybind.keys, key) {
			return true
		}
	}
	return false
}

func normalizeKeys(keys ...string) []string {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		key = normalizeKey(key)
		if key == "" {
			continue
		}
		normalized = append(normalized, key)
	}
	return normalized
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	parts := strings.Split(key, "+")
	mods := make([]string, 0, len(parts))
	primary := ""
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch strings.ToLower(part) {
		case "ctrl", "control":
			mods = append(mods, "ctrl")
		case "alt":
			mods = append(mods, "alt")
		case "shift":
			mods = append(mods, "shift")
		case "meta":
			mods = append(mods, "meta")
		default:
			primary = normalizePrimaryKey(part)
		}
	}

	if primary == "" {
		return ""
	}

	if primary == "backtab" {
		mods = append(mods, "shift")
		primary = "tab"
	}

	if len(mods) > 0 && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}

	if len(mods) == 0 {
		return primary
	}

	return strings.Join(append(uniqueOrdered(mods), primary), "+")
}

func normalizePrimaryKey(key string) string {
	if strings.HasPrefix(key, "Rune[") && strings.HasSuffix(key, "]") && len(key) >= 7 {
		return key[5 : len(key)-1]
	}

	switch strings.ToLower(key) {
	case "esc", "escape":
		return "esc"
	case "return":
		return "enter"
	case "pageup":
		return "pgup"
	case "pagedown":
		return "pgdn"
	case "ctrl-c":
		return "ctrl+c"
	}

	if strings.HasPrefix(strings.ToLower(key), "ctrl-") && len(key) > len("ctrl-") {
		return "ctrl+" + strings.ToLower(key[len("ctrl-"):])
	}

	if len([]rune(key)) == 1 {
		return key
	}

	return strings.ToLower(key)
}

func uniqueOrdered(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, value := range in {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func eventKeyString(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}

	key := event.Key()
	if key == tcell.KeyBacktab {
		return "shift+tab"
	}
	primary := keyName(key)
	// Tab, enter and backspace share their codes with ctrl+i, ctrl+m and
	// ctrl+h and take precedence.
	if primary == "" && key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}
	if primary == "" && key == tcell.KeyRune {
		// The rune already carries shift, "G" is not "shift+g".
		primary = string(event.Rune())
		if event.Modifiers()&^tcell.ModShift == 0 {
			return primary
		}
	}
	if primary == "" {
		return normalizeKey(event.Name())
	}

	mods := make([]string, 0, 4)
	if event.Modifiers()&tcell.ModCtrl != 0 {
		mods = append(mods, "ctrl")
	}
	if event.Modifiers()&tcell.ModAlt != 0 {
		mods = append(mods, "alt")
	}
	if event.Modifiers()&tcell.ModShift != 0 {
		mods = append(mods, "shift")
	}
	if event.Modifiers()&tcell.ModMeta != 0 {
		mods = append(mods, "meta")
	}
	if len(mods) == 0 {
		return primary
	}
	return strings.Join(append(uniqueOrdered(mods), primary), "+")
}

func keyName(key tcell.Key) string {
	switch key {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyInsert:
		return "insert"
	default:
		return ""
	}
}
