package wheel

import (
	"math"
	"time"

	"github.com/ayn2op/wheel/keybind"
	"github.com/gdamore/tcell/v2"
)

// Fling defaults, in lines per second and lines per second squared. They are
// scaled by the line height so that a picker feels the same at any size.
const (
	DefaultFlingDeceleration = 25.0
	DefaultMinFlingVelocity  = 3.0
	DefaultMaxFlingVelocity  = 80.0
)

// Config holds everything a WheelPicker is created with.
type Config struct {
	// Values are the labels, top to bottom. At least one is required.
	Values []string
	// LineHeight is the distance between two labels in terminal rows. It must
	// be positive and finite.
	LineHeight float64
	// Wrapping makes the last value continue with the first one.
	Wrapping bool
	// InitialIndex is normalized like SetSelectedIndex.
	InitialIndex int

	SnapDelay    time.Duration
	SnapDuration time.Duration

	// FlingDeceleration is in lines per second squared. Zero or less
	// disables flinging; releases then always snap.
	FlingDeceleration float64
	MinFlingVelocity  float64
	MaxFlingVelocity  float64

	// Styles and Keys default to DefaultWheelStyles and DefaultWheelKeyMap.
	Styles *WheelStyles
	Keys   *WheelKeyMap

	// Ticker drives animations. Without one, the host must call Tick.
	Ticker AnimationTicker
	// Scheduler runs the snap debounce timer. Without one, the picker never
	// snaps on its own.
	Scheduler Scheduler
}

// DefaultConfig returns a configuration with one-row lines and the default
// timings. Values must still be set.
func DefaultConfig() Config {
	return Config{
		LineHeight:        1,
		SnapDelay:         DefaultSnapDelay,
		SnapDuration:      DefaultSnapDuration,
		FlingDeceleration: DefaultFlingDeceleration,
		MinFlingVelocity:  DefaultMinFlingVelocity,
		MaxFlingVelocity:  DefaultMaxFlingVelocity,
	}
}

// WheelPicker is a vertical selector that shows a list of values on a wheel.
// The value on the center row is selected. It can be dragged and flung with
// the mouse or any PointerInputSource, stepped with the keyboard and the
// mouse wheel, and always comes to rest with a value centered.
//
// The scroll offset is the only stored position; the selected index is
// derived from it. All methods must be called from the goroutine that owns the
// picker, which for an Application is its event loop.
type WheelPicker struct {
	*Box

	values    ValueList
	physics   scrollPhysics
	selection selectionTracker
	snap      snapController
	router    gestureRouter
	renderer  wheelRenderer
	mouse     MousePointer
	keys      WheelKeyMap

	ticker  AnimationTicker
	ticking bool

	snapDuration time.Duration

	// Fling parameters in lines; see applyLineHeight.
	flingDeceleration float64
	minFling          float64
	maxFling          float64

	redraw func()
	closed bool
}

// New returns a picker for cfg. It fails with ErrNoValues or
// ErrInvalidLineHeight.
func New(cfg Config) (*WheelPicker, error) {
	values, err := NewValueList(cfg.Values)
	if err != nil {
		return nil, err
	}
	if !validLineHeight(cfg.LineHeight) {
		return nil, ErrInvalidLineHeight
	}

	p := &WheelPicker{
		Box:               NewBox(),
		values:            values,
		renderer:          wheelRenderer{styles: DefaultWheelStyles()},
		keys:              DefaultWheelKeyMap(),
		ticker:            cfg.Ticker,
		snapDuration:      cfg.SnapDuration,
		flingDeceleration: cfg.FlingDeceleration,
		minFling:          cfg.MinFlingVelocity,
		maxFling:          cfg.MaxFlingVelocity,
	}
	if p.ticker == nil {
		p.ticker = nopTicker{}
	}
	if cfg.Styles != nil {
		p.renderer.styles = *cfg.Styles
	}
	if cfg.Keys != nil {
		p.keys = *cfg.Keys
	}

	p.physics = scrollPhysics{
		lineHeight: cfg.LineHeight,
		count:      values.Len(),
		wrapping:   cfg.Wrapping,
	}
	p.physics.offset = cfg.LineHeight * float64(p.physics.NormalizeIndex(cfg.InitialIndex))
	p.selection = selectionTracker{physics: &p.physics}
	p.selection.Sync()

	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = nopScheduler{}
	}
	p.snap = snapController{
		scheduler: scheduler,
		delay:     cfg.SnapDelay,
		fire:      p.startSnap,
	}
	p.router = gestureRouter{target: p}
	p.applyLineHeight()
	p.mouse.Bind(p)
	return p, nil
}

// Close stops the picker's timers and animation. Callbacks that arrive
// afterwards, including queued frames and snap timers, are ignored.
func (p *WheelPicker) Close() {
	if p.closed {
		return
	}
	p.snap.Close()
	p.physics.Cancel()
	p.stopTicker()
	p.router.Reset()
	p.closed = true
}

// SetChangedFunc sets the function called with the new index whenever the
// selection changes through user input or animation. Programmatic changes
// (SetSelectedIndex, SetValues, ...) do not call it.
func (p *WheelPicker) SetChangedFunc(handler func(index int)) *WheelPicker {
	p.selection.changed = handler
	return p
}

// SetRedrawFunc sets the function called whenever the picker needs to be
// drawn again. The Box dirty flag is set regardless.
func (p *WheelPicker) SetRedrawFunc(handler func()) *WheelPicker {
	p.redraw = handler
	return p
}

// SetPointerSource binds an additional source of pointer input to the picker.
// Mouse events routed through MouseHandler are always handled.
func (p *WheelPicker) SetPointerSource(source PointerInputSource) *WheelPicker {
	source.Bind(p)
	return p
}

// SetValues replaces the values. The current index is kept when it still
// exists; otherwise a wrapping picker folds it and a non-wrapping one clamps
// it to the last value.
func (p *WheelPicker) SetValues(labels []string) error {
	values, err := NewValueList(labels)
	if err != nil {
		return err
	}
	if values.Equal(p.values) {
		return nil
	}
	p.values = values
	p.stopMotion()
	p.snap.Cancel()
	p.physics.SetCount(values.Len())
	p.selection.Sync()
	p.requestRedraw()
	return nil
}

// GetValues returns a copy of the values.
func (p *WheelPicker) GetValues() []string {
	return p.values.Labels()
}

// SetLineHeight sets the distance between two labels. The selection is kept.
func (p *WheelPicker) SetLineHeight(lineHeight float64) error {
	if !validLineHeight(lineHeight) {
		return ErrInvalidLineHeight
	}
	if lineHeight == p.physics.lineHeight {
		return nil
	}
	p.stopMotion()
	p.snap.Cancel()
	p.physics.SetLineHeight(lineHeight)
	p.applyLineHeight()
	p.selection.Sync()
	p.requestRedraw()
	return nil
}

// GetLineHeight returns the distance between two labels.
func (p *WheelPicker) GetLineHeight() float64 {
	return p.physics.lineHeight
}

// SetWrapping sets whether the last value continues with the first one.
func (p *WheelPicker) SetWrapping(wrapping bool) *WheelPicker {
	if wrapping == p.physics.wrapping {
		return p
	}
	current := p.selection.CurrentIndex()
	p.stopMotion()
	p.physics.SetWrapping(wrapping, current)
	p.selection.Sync()
	p.requestRedraw()
	return p
}

// GetWrapping reports whether the picker wraps around.
func (p *WheelPicker) GetWrapping() bool {
	return p.physics.wrapping
}

// SetSelectedIndex jumps to index without animation or notification. Out of
// range indices are folded when wrapping and clamped otherwise. Nothing
// happens when index is already selected and the picker is at rest.
func (p *WheelPicker) SetSelectedIndex(index int) *WheelPicker {
	kind := p.physics.Kind()
	if !p.physics.SetIndexImmediate(index, p.selection.CurrentIndex()) {
		return p
	}
	p.motionStopped(kind)
	p.selection.Sync()
	p.requestRedraw()
	return p
}

// GetSelectedIndex returns the index of the value on the center row.
func (p *WheelPicker) GetSelectedIndex() int {
	return p.selection.CurrentIndex()
}

// SelectedValue returns the value on the center row.
func (p *WheelPicker) SelectedValue() string {
	return p.values.At(p.selection.CurrentIndex())
}

// SetCenterStyle sets the style of the selected label.
func (p *WheelPicker) SetCenterStyle(style tcell.Style) *WheelPicker {
	p.renderer.styles.Center = style
	p.MarkDirty()
	return p
}

// SetSecondaryStyle sets the style of every other visible label.
func (p *WheelPicker) SetSecondaryStyle(style tcell.Style) *WheelPicker {
	p.renderer.styles.Secondary = style
	p.MarkDirty()
	return p
}

// SetCenterMarker enables a band in style across the center row.
func (p *WheelPicker) SetCenterMarker(enabled bool, style tcell.Style) *WheelPicker {
	p.renderer.marker = enabled
	p.renderer.styles.Marker = style
	p.MarkDirty()
	return p
}

// SetKeyMap replaces the keyboard bindings.
func (p *WheelPicker) SetKeyMap(keys WheelKeyMap) *WheelPicker {
	p.keys = keys
	return p
}

// KeyMap returns the keyboard bindings, for help bars.
func (p *WheelPicker) KeyMap() WheelKeyMap {
	return p.keys
}

// Offset returns the scroll offset.
func (p *WheelPicker) Offset() float64 {
	return p.physics.offset
}

// SnapDistance returns how far the center label was from rest when the picker
// was last drawn, in line height units.
func (p *WheelPicker) SnapDistance() float64 {
	return p.renderer.toSnap
}

// PointerHeld reports whether a pointer is down on the picker.
func (p *WheelPicker) PointerHeld() bool {
	return p.router.Dragging() || p.mouse.Dragging()
}

// Animating reports whether a fling, snap or step is running.
func (p *WheelPicker) Animating() bool {
	return p.physics.Animating()
}

// Tick advances the running animation by elapsed and requests a redraw. It
// does nothing when nothing is moving.
func (p *WheelPicker) Tick(elapsed time.Duration) {
	if p.closed || !p.physics.Animating() {
		return
	}
	kind, finished := p.physics.Tick(elapsed)
	if finished {
		p.motionStopped(kind)
	}
	p.selection.CheckAndNotify()
	p.requestRedraw()
}

// PointerDown implements PointerHandler.
func (p *WheelPicker) PointerDown(x, y float64) {
	if p.closed {
		return
	}
	p.router.Down()
	p.requestRedraw()
}

// PointerMove implements PointerHandler.
func (p *WheelPicker) PointerMove(deltaY float64) {
	if p.closed {
		return
	}
	p.router.Move(deltaY)
	p.requestRedraw()
}

// PointerUp implements PointerHandler.
func (p *WheelPicker) PointerUp(velocityY float64) {
	if p.closed {
		return
	}
	p.router.Up(velocityY)
	p.requestRedraw()
}

// Draw draws this primitive onto the screen.
func (p *WheelPicker) Draw(screen tcell.Screen) {
	p.DrawForSubclass(screen, p)

	x, y, width, height := p.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	layout := layoutWheel(p.selection.currentLine(), p.physics.lineHeight, p.values.Len(), p.physics.wrapping, y, height)
	p.renderer.draw(screen, p.values, layout, x, width)
}

// InputHandler steps through the values with the keyboard.
func (p *WheelPicker) InputHandler(event *tcell.EventKey) Command {
	if p.closed {
		return nil
	}
	switch {
	case keybind.Matches(event, p.keys.Previous):
		p.stepBy(-1)
	case keybind.Matches(event, p.keys.Next):
		p.stepBy(1)
	case keybind.Matches(event, p.keys.First):
		p.stepTo(0)
	case keybind.Matches(event, p.keys.Last):
		p.stepTo(p.values.Len() - 1)
	default:
		return nil
	}
	return BatchCommand{RedrawCommand{}, ConsumeEventCommand{}}
}

// MouseHandler drags the wheel with the left button and steps it with the
// mouse wheel. The picker captures the mouse for the length of a drag.
func (p *WheelPicker) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if p.closed {
		return nil, nil
	}
	x, y := event.Position()
	if !p.mouse.Dragging() && !p.InRect(x, y) {
		return nil, nil
	}

	var cmd Command
	switch action {
	case MouseLeftDown:
		cmd = SetFocusCommand{Target: p}
	case MouseScrollUp:
		p.stepBy(-1)
		return nil, RedrawCommand{}
	case MouseScrollDown:
		p.stepBy(1)
		return nil, RedrawCommand{}
	case MouseMove, MouseLeftUp:
		if !p.mouse.Dragging() {
			return nil, nil
		}
	default:
		return nil, nil
	}

	captured := p.mouse.HandleMouse(action, event)
	cmd = AppendCommand(cmd, RedrawCommand{})
	if captured {
		return p, cmd
	}
	return nil, cmd
}

// stepBy animates delta lines away from where the picker is heading, so that
// repeated key presses accumulate.
func (p *WheelPicker) stepBy(delta int) {
	base := nearestLine(p.physics.Destination(), p.physics.lineHeight)
	p.stepToOffset(base + float64(delta)*p.physics.lineHeight)
}

// stepTo animates to index.
func (p *WheelPicker) stepTo(index int) {
	index = p.physics.NormalizeIndex(index)
	p.stepToOffset(float64(index) * p.physics.lineHeight)
}

func (p *WheelPicker) stepToOffset(final float64) {
	if !p.physics.wrapping {
		lo, hi := p.physics.bounds()
		final = min(max(final, lo), hi)
	}
	p.stopMotion()
	p.snap.Cancel()
	if final == p.physics.offset {
		return
	}
	p.physics.StartEase(final, p.snapDuration, motionStep)
	p.startTicker()
	p.requestRedraw()
}

// startSnap is the snap controller's fire function.
func (p *WheelPicker) startSnap() bool {
	if p.closed {
		return false
	}
	final := p.physics.NearestLine()
	if !p.physics.wrapping {
		lo, hi := p.physics.bounds()
		final = min(max(final, lo), hi)
	}
	kind := p.physics.Kind()
	p.physics.Cancel()
	p.motionStopped(kind)
	if final == p.physics.offset {
		return false
	}
	p.physics.StartEase(final, p.snapDuration, motionSnap)
	p.startTicker()
	p.requestRedraw()
	return true
}

func (p *WheelPicker) stopMotion() {
	if !p.physics.Animating() {
		return
	}
	kind := p.physics.Kind()
	p.physics.Cancel()
	p.motionStopped(kind)
}

// motionStopped settles the collaborators of a motion that ended or was
// cancelled.
func (p *WheelPicker) motionStopped(kind motionKind) {
	p.stopTicker()
	switch kind {
	case motionFling:
		p.router.MotionEnded()
	case motionSnap:
		p.snap.Finish()
	}
}

func (p *WheelPicker) dragBy(dy float64) {
	p.physics.ApplyDragDelta(dy)
}

func (p *WheelPicker) fling(velocity float64) bool {
	if velocity == 0 || p.physics.deceleration <= 0 {
		return false
	}
	t := p.physics.StartFling(velocity)
	if t.Final == p.physics.offset && t.Duration <= 0 {
		p.physics.Cancel()
		return false
	}
	p.startTicker()
	return true
}

func (p *WheelPicker) scheduleSnap() {
	p.snap.Schedule()
}

func (p *WheelPicker) cancelSnap() {
	p.snap.Cancel()
}

func (p *WheelPicker) checkSelection() {
	p.selection.CheckAndNotify()
}

func (p *WheelPicker) startTicker() {
	if p.ticking {
		return
	}
	p.ticking = true
	p.ticker.Start(p.Tick)
}

func (p *WheelPicker) stopTicker() {
	if !p.ticking {
		return
	}
	p.ticking = false
	p.ticker.Stop()
}

// applyLineHeight converts the fling parameters to offset units.
func (p *WheelPicker) applyLineHeight() {
	lineHeight := p.physics.lineHeight
	p.physics.deceleration = p.flingDeceleration * lineHeight
	p.router.minFling = p.minFling * lineHeight
	p.router.maxFling = p.maxFling * lineHeight
}

func (p *WheelPicker) requestRedraw() {
	p.MarkDirty()
	if p.redraw != nil {
		p.redraw()
	}
}

// validLineHeight rejects zero, negative, NaN and infinite heights.
func validLineHeight(h float64) bool {
	return h > 0 && !math.IsInf(h, 1)
}
