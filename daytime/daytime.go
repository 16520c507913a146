// Package daytime combines four wheel pickers into a day and time selector:
// a day column, an hour column, a five-minute column and, in 12 hour mode, an
// AM/PM column. The selected instant never precedes a configured start.
package daytime

import (
	"errors"
	"fmt"
	"time"

	"github.com/ayn2op/wheel"
	"github.com/ayn2op/wheel/keybind"
	"github.com/gdamore/tcell/v2"
)

// MinuteStep is the distance between two values of the minute column.
const MinuteStep = 5

// Default column widths in cells.
const (
	DefaultDayWidth    = 18
	DefaultHourWidth   = 4
	DefaultMinuteWidth = 4
	DefaultAmPmWidth   = 4
)

// ErrNoDays is returned when the day column would be empty.
var ErrNoDays = errors.New("daytime: day count must be positive")

// Column identifies one of the wheels.
type Column int

const (
	ColumnDay Column = iota
	ColumnHour
	ColumnMinute
	ColumnAmPm
	columnCount
)

func (c Column) String() string {
	switch c {
	case ColumnDay:
		return "day"
	case ColumnHour:
		return "hour"
	case ColumnMinute:
		return "minute"
	case ColumnAmPm:
		return "am/pm"
	default:
		return fmt.Sprintf("column(%d)", int(c))
	}
}

var (
	hours24 = []string{
		"00", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11",
		"12", "13", "14", "15", "16", "17", "18", "19", "20", "21", "22", "23",
	}
	hours12 = []string{"12", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11"}
	minutes = []string{"00", "05", "10", "15", "20", "25", "30", "35", "40", "45", "50", "55"}
	amPm    = []string{"AM", "PM"}
)

// KeyMap holds the bindings that move focus between columns.
type KeyMap struct {
	PrevColumn keybind.Keybind
	NextColumn keybind.Keybind
}

// DefaultKeyMap binds left/right and tab/shift+tab.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevColumn: keybind.NewKeybind(
			keybind.WithKeys("left", "h", "shift+tab"),
			keybind.WithHelp("←/h", "prev column"),
		),
		NextColumn: keybind.NewKeybind(
			keybind.WithKeys("right", "l", "tab"),
			keybind.WithHelp("→/l", "next column"),
		),
	}
}

// ShortHelp returns the bindings shown in a one-line help bar.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.PrevColumn, k.NextColumn}
}

// Options configure a Picker.
type Options struct {
	// Wheel is the template for every column. Values, Wrapping and Ticker
	// are set per column.
	Wheel wheel.Config
	// NewTicker returns the animation ticker of one column. It may be nil.
	NewTicker func() wheel.AnimationTicker
	// Is24Hour selects the 24 hour clock.
	Is24Hour bool
	// Widths of the columns in cells, indexed by Column. Zero means default.
	Widths [columnCount]int
	// Gap is the number of cells between two columns.
	Gap  int
	Keys *KeyMap
}

// DefaultOptions returns 24 hour mode with the default wheel configuration.
func DefaultOptions() Options {
	return Options{
		Wheel:    wheel.DefaultConfig(),
		Is24Hour: true,
		Gap:      1,
	}
}

// Picker is a primitive selecting a day and a time of day.
type Picker struct {
	*wheel.Box

	columns [columnCount]*wheel.WheelPicker
	widths  [columnCount]int
	gap     int
	focused Column
	keys    KeyMap

	is24Hour bool
	startDay time.Time
	start    time.Time

	changed func(time.Time)
}

// New returns a picker with a single day labelled by the date of today.
// Call SetDateTimeParams to configure the days.
func New(opts Options) (*Picker, error) {
	p := &Picker{
		Box:      wheel.NewBox(),
		gap:      opts.Gap,
		keys:     DefaultKeyMap(),
		is24Hour: opts.Is24Hour,
	}
	if opts.Keys != nil {
		p.keys = *opts.Keys
	}
	defaults := [columnCount]int{DefaultDayWidth, DefaultHourWidth, DefaultMinuteWidth, DefaultAmPmWidth}
	for c := range p.widths {
		p.widths[c] = opts.Widths[c]
		if p.widths[c] <= 0 {
			p.widths[c] = defaults[c]
		}
	}

	now := time.Now()
	p.startDay = startOfDay(now)
	p.start = p.startDay

	values := [columnCount][]string{
		ColumnDay:    {p.startDay.Format("2 January 2006")},
		ColumnHour:   p.hourValues(),
		ColumnMinute: minutes,
		ColumnAmPm:   amPm,
	}
	for c := range p.columns {
		cfg := opts.Wheel
		cfg.Values = values[c]
		cfg.Wrapping = Column(c) == ColumnHour || Column(c) == ColumnMinute
		cfg.InitialIndex = 0
		cfg.Ticker = nil
		if opts.NewTicker != nil {
			cfg.Ticker = opts.NewTicker()
		}
		column, err := wheel.New(cfg)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("daytime: %s column: %w", Column(c), err)
		}
		p.columns[c] = column
	}

	for c, column := range p.columns {
		wheel.BindDirtyParent(column, p.Box)
		c := Column(c)
		column.SetFocusFunc(func() {
			p.focused = c
			p.MarkDirty()
		})
		column.SetChangedFunc(func(int) {
			p.userSelected()
		})
	}
	return p, nil
}

// Close stops the timers of every column.
func (p *Picker) Close() {
	for _, column := range p.columns {
		if column != nil {
			column.Close()
		}
	}
}

// SetChangedFunc sets the function called with the selected time whenever the
// user changes any column.
func (p *Picker) SetChangedFunc(handler func(t time.Time)) *Picker {
	p.changed = handler
	return p
}

// SetRedrawFunc forwards redraw requests of every column to handler.
func (p *Picker) SetRedrawFunc(handler func()) *Picker {
	for _, column := range p.columns {
		column.SetRedrawFunc(handler)
	}
	return p
}

// Column returns one of the wheels, for styling.
func (p *Picker) Column(c Column) *wheel.WheelPicker {
	return p.columns[c]
}

// SetDateTimeParams sets the first selectable instant, the selected instant,
// the number of days offered starting with the day of start, and the function
// labelling each day. current is shown as is; it is not clamped to start.
func (p *Picker) SetDateTimeParams(start, current time.Time, days int, format func(day time.Time) string) error {
	if days <= 0 {
		return ErrNoDays
	}
	startDay := startOfDay(start)
	labels := make([]string, days)
	for i := range labels {
		labels[i] = format(startDay.AddDate(0, 0, i))
	}
	if err := p.columns[ColumnDay].SetValues(labels); err != nil {
		return fmt.Errorf("daytime: day column: %w", err)
	}
	p.startDay = startDay
	p.start = start
	p.setTime(current)
	return nil
}

// Start returns the first selectable instant.
func (p *Picker) Start() time.Time {
	return p.start
}

// Set24HourMode switches between the 24 hour clock and the 12 hour clock with
// an AM/PM column. The selected time is kept.
func (p *Picker) Set24HourMode(is24Hour bool) *Picker {
	if p.is24Hour == is24Hour {
		return p
	}
	selected := p.SelectedTime()
	p.is24Hour = is24Hour
	// Values cannot be empty, so the error is impossible.
	_ = p.columns[ColumnHour].SetValues(p.hourValues())
	if is24Hour && p.focused == ColumnAmPm {
		p.focused = ColumnMinute
	}
	p.setTime(selected)
	p.MarkDirty()
	return p
}

// Is24HourMode reports whether the 24 hour clock is used.
func (p *Picker) Is24HourMode() bool {
	return p.is24Hour
}

// SetSelectedTime selects t without notifying. Like the columns themselves,
// out of range days are clamped.
func (p *Picker) SetSelectedTime(t time.Time) *Picker {
	p.setTime(t)
	return p
}

// SelectedTime combines the columns into an instant in the location of the
// start time.
func (p *Picker) SelectedTime() time.Time {
	minute := p.columns[ColumnMinute].GetSelectedIndex() * MinuteStep
	hour := p.columns[ColumnHour].GetSelectedIndex()
	if !p.is24Hour && p.columns[ColumnAmPm].GetSelectedIndex() == 1 {
		hour += 12
	}
	day := p.columns[ColumnDay].GetSelectedIndex()
	return time.Date(p.startDay.Year(), p.startDay.Month(), p.startDay.Day()+day, hour, minute, 0, 0, p.startDay.Location())
}

// PointerHeld reports whether a pointer is down on any column.
func (p *Picker) PointerHeld() bool {
	for _, column := range p.visibleColumns() {
		if p.columns[column].PointerHeld() {
			return true
		}
	}
	return false
}

// userSelected runs after a user change of any column. Times before the start
// are pulled back to it, but not while the user is still holding a column.
func (p *Picker) userSelected() {
	selected := p.SelectedTime()
	if selected.Before(p.start) && !p.PointerHeld() {
		p.setTime(p.start)
		selected = p.start
	}
	if p.changed != nil {
		p.changed(selected)
	}
}

func (p *Picker) setTime(t time.Time) {
	t = t.In(p.startDay.Location())
	p.columns[ColumnDay].SetSelectedIndex(daysBetween(p.startDay, t))
	if p.is24Hour {
		p.columns[ColumnHour].SetSelectedIndex(t.Hour())
	} else {
		p.columns[ColumnHour].SetSelectedIndex(t.Hour() % 12)
		p.columns[ColumnAmPm].SetSelectedIndex(t.Hour() / 12)
	}
	p.columns[ColumnMinute].SetSelectedIndex(t.Minute() / MinuteStep)
}

func (p *Picker) hourValues() []string {
	if p.is24Hour {
		return hours24
	}
	return hours12
}

func (p *Picker) visibleColumns() []Column {
	if p.is24Hour {
		return []Column{ColumnDay, ColumnHour, ColumnMinute}
	}
	return []Column{ColumnDay, ColumnHour, ColumnMinute, ColumnAmPm}
}

// Draw lays the visible columns out from left to right and draws them.
func (p *Picker) Draw(screen tcell.Screen) {
	p.DrawForSubclass(screen, p)

	x, y, width, height := p.GetInnerRect()
	right := x + width
	for _, c := range p.visibleColumns() {
		column := p.columns[c]
		w := min(p.widths[c], right-x)
		if w <= 0 {
			column.SetRect(x, y, 0, 0)
			continue
		}
		column.SetRect(x, y, w, height)
		column.Draw(screen)
		column.MarkClean()
		x += w + p.gap
	}
}

// Focus passes focus on to the last focused column.
func (p *Picker) Focus(delegate func(p wheel.Primitive)) {
	delegate(p.columns[p.focused])
}

// HasFocus reports whether any column has focus.
func (p *Picker) HasFocus() bool {
	for _, column := range p.columns {
		if column.HasFocus() {
			return true
		}
	}
	return p.Box.HasFocus()
}

// InputHandler moves focus between columns and passes other keys to the
// focused one.
func (p *Picker) InputHandler(event *tcell.EventKey) wheel.Command {
	visible := p.visibleColumns()
	index := 0
	for i, c := range visible {
		if c == p.focused {
			index = i
		}
	}
	switch {
	case keybind.Matches(event, p.keys.PrevColumn):
		index = (index - 1 + len(visible)) % len(visible)
	case keybind.Matches(event, p.keys.NextColumn):
		index = (index + 1) % len(visible)
	default:
		return p.columns[p.focused].InputHandler(event)
	}
	return wheel.BatchCommand{
		wheel.SetFocusCommand{Target: p.columns[visible[index]]},
		wheel.ConsumeEventCommand{},
	}
}

// MouseHandler passes the event to the column under the pointer.
func (p *Picker) MouseHandler(action wheel.MouseAction, event *tcell.EventMouse) (wheel.Primitive, wheel.Command) {
	x, y := event.Position()
	if !p.InRect(x, y) {
		return nil, nil
	}
	for _, c := range p.visibleColumns() {
		column := p.columns[c]
		if column.InRect(x, y) {
			return column.MouseHandler(action, event)
		}
	}
	return nil, nil
}

// KeyMap returns the column navigation bindings.
func (p *Picker) KeyMap() KeyMap {
	return p.keys
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from day to t, ignoring daylight saving
// shifts. It is negative when t is earlier.
func daysBetween(day, t time.Time) int {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
