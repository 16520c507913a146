package wheel

import "github.com/ayn2op/wheel/keybind"

// WheelKeyMap binds keyboard actions of a focused WheelPicker.
type WheelKeyMap struct {
	Previous keybind.Keybind
	Next     keybind.Keybind
	First    keybind.Keybind
	Last     keybind.Keybind
}

// DefaultWheelKeyMap returns arrow and vi style bindings.
func DefaultWheelKeyMap() WheelKeyMap {
	return WheelKeyMap{
		Previous: keybind.NewKeybind(
			keybind.WithKeys("up", "k"),
			keybind.WithHelp("↑/k", "previous"),
		),
		Next: keybind.NewKeybind(
			keybind.WithKeys("down", "j"),
			keybind.WithHelp("↓/j", "next"),
		),
		First: keybind.NewKeybind(
			keybind.WithKeys("home", "g"),
			keybind.WithHelp("home/g", "first"),
		),
		Last: keybind.NewKeybind(
			keybind.WithKeys("end", "G"),
			keybind.WithHelp("end/G", "last"),
		),
	}
}

// ShortHelp returns the bindings shown in a one-line help bar.
func (k WheelKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Previous, k.Next}
}

// FullHelp returns all bindings in one column.
func (k WheelKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{{k.Previous, k.Next, k.First, k.Last}}
}
