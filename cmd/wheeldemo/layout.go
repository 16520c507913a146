package main

import (
	"fmt"
	"time"

	"github.com/ayn2op/wheel"
	"github.com/ayn2op/wheel/daytime"
	"github.com/ayn2op/wheel/help"
	"github.com/ayn2op/wheel/keybind"
	"github.com/gdamore/tcell/v2"
)

type quitKeyMap struct {
	quit keybind.Keybind
}

func (k quitKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.quit}
}

// layout stacks a bordered panel holding the two pickers above a help bar.
// The panel footer is the status line.
type layout struct {
	*wheel.Box

	picker  *daytime.Picker
	weekday *wheel.WheelPicker
	help    *help.Help
	quit    keybind.Keybind

	selected string
	day      string
}

func newLayout(picker *daytime.Picker, weekday *wheel.WheelPicker, helpBar *help.Help, quit keybind.Keybind) *layout {
	l := &layout{
		Box:     wheel.NewBox(),
		picker:  picker,
		weekday: weekday,
		help:    helpBar,
		quit:    quit,
	}
	l.SetBorders(wheel.BordersAll).
		SetBorderSet(wheel.BorderSetRound()).
		SetTitle(" wheel ")
	for _, child := range l.children() {
		wheel.BindDirtyParent(child, l.Box)
	}
	return l
}

func (l *layout) children() []wheel.Primitive {
	return []wheel.Primitive{l.picker, l.weekday, l.help}
}

func (l *layout) showTime(t time.Time) {
	l.selected = t.Format("Mon 2 Jan 2006 15:04")
	l.updateFooter()
}

func (l *layout) showWeekday(day string) {
	l.day = day
	l.updateFooter()
}

func (l *layout) updateFooter() {
	l.SetFooter(fmt.Sprintf(" %s / %s ", l.selected, l.day))
}

// SetRect keeps the bottom row for the help bar.
func (l *layout) SetRect(x, y, width, height int) {
	l.Box.SetRect(x, y, width, max(height-1, 0))
	l.help.SetRect(x, y+height-1, width, 1)
}

func (l *layout) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	pickerWidth := width * 2 / 3
	l.picker.SetRect(x, y, pickerWidth, height)
	l.weekday.SetRect(x+pickerWidth+1, y, max(width-pickerWidth-1, 0), height)

	for _, child := range l.children() {
		child.Draw(screen)
	}
	l.MarkClean()
}

func (l *layout) Focus(delegate func(p wheel.Primitive)) {
	delegate(l.picker)
}

func (l *layout) HasFocus() bool {
	for _, child := range l.children() {
		if child.HasFocus() {
			return true
		}
	}
	return l.Box.HasFocus()
}

func (l *layout) InputHandler(event *tcell.EventKey) wheel.Command {
	if keybind.Matches(event, l.quit) {
		return wheel.QuitCommand{}
	}
	switch {
	case l.picker.HasFocus():
		return l.picker.InputHandler(event)
	case l.weekday.HasFocus():
		if event.Key() == tcell.KeyTab || event.Key() == tcell.KeyBacktab {
			return wheel.SetFocusCommand{Target: l.picker}
		}
		return l.weekday.InputHandler(event)
	}
	return nil
}

func (l *layout) MouseHandler(action wheel.MouseAction, event *tcell.EventMouse) (wheel.Primitive, wheel.Command) {
	x, y := event.Position()
	switch {
	case l.picker.InRect(x, y):
		return l.picker.MouseHandler(action, event)
	case l.weekday.InRect(x, y):
		return l.weekday.MouseHandler(action, event)
	}
	return nil, nil
}
