package wheel

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// PointerHandler receives single-pointer input. Positions and deltas are in
// the same unit as the picker's line height; positive deltas and velocities
// point down the screen.
type PointerHandler interface {
	PointerDown(x, y float64)
	PointerMove(deltaY float64)
	PointerUp(velocityY float64)
}

// PointerInputSource delivers pointer input to a handler. The terminal mouse
// adapter MousePointer is one; tests drive pickers through their own.
type PointerInputSource interface {
	Bind(handler PointerHandler)
}

type gestureState int

const (
	gestureIdle gestureState = iota
	gestureDragging
	gestureFlinging
)

func (s gestureState) String() string {
	switch s {
	case gestureDragging:
		return "dragging"
	case gestureFlinging:
		return "flinging"
	default:
		return "idle"
	}
}

// gestureTarget is what the router drives. WheelPicker implements it.
type gestureTarget interface {
	stopMotion()
	dragBy(dy float64)
	fling(velocity float64) bool
	scheduleSnap()
	cancelSnap()
	checkSelection()
}

// gestureRouter turns pointer events into physics, snap and selection calls.
type gestureRouter struct {
	target gestureTarget
	state  gestureState

	// minFling is the release speed, in units per second, below which a
	// release just ends the drag.
	minFling float64
	// maxFling caps the release speed.
	maxFling float64
}

// Down starts a drag: any motion stops where it is and the debounce restarts.
func (r *gestureRouter) Down() {
	r.state = gestureDragging
	r.target.stopMotion()
	r.target.scheduleSnap()
	r.target.checkSelection()
}

// Move applies a pointer displacement. The content follows the pointer, so
// the offset moves the opposite way.
func (r *gestureRouter) Move(deltaY float64) {
	if r.state != gestureDragging {
		return
	}
	r.target.stopMotion()
	r.target.dragBy(-deltaY)
	r.target.checkSelection()
	r.target.scheduleSnap()
}

// Up ends the drag. A fast enough release flings; otherwise the snap already
// scheduled by the last move settles the wheel.
func (r *gestureRouter) Up(velocityY float64) {
	if r.state != gestureDragging {
		return
	}
	r.state = gestureIdle
	speed := velocityY
	if speed < 0 {
		speed = -speed
	}
	if speed < r.minFling {
		return
	}
	velocityY = min(max(velocityY, -r.maxFling), r.maxFling)
	if !r.target.fling(-velocityY) {
		// No fling, so the snap scheduled by the drag still settles the wheel.
		return
	}
	r.target.cancelSnap()
	r.state = gestureFlinging
}

// MotionEnded is called when the fling finishes or is cut short.
func (r *gestureRouter) MotionEnded() {
	if r.state == gestureFlinging {
		r.state = gestureIdle
	}
}

// Reset drops back to idle without touching the target.
func (r *gestureRouter) Reset() {
	r.state = gestureIdle
}

// Dragging reports whether the pointer is held on the picker.
func (r *gestureRouter) Dragging() bool {
	return r.state == gestureDragging
}

// MousePointer adapts tcell mouse events to a PointerHandler. Terminal rows
// are the position unit, and release velocity comes from a VelocityTracker
// fed with event timestamps.
type MousePointer struct {
	handler  PointerHandler
	tracker  VelocityTracker
	dragging bool
	lastY    int
}

// Bind directs events at handler.
func (m *MousePointer) Bind(handler PointerHandler) {
	m.handler = handler
}

// Dragging reports whether the left button went down on the picker and has
// not been released yet.
func (m *MousePointer) Dragging() bool {
	return m.dragging
}

// HandleMouse translates one mouse action. It returns whether the pointer
// should stay captured.
func (m *MousePointer) HandleMouse(action MouseAction, event *tcell.EventMouse) bool {
	if m.handler == nil {
		return false
	}
	x, y := event.Position()
	at := event.When()
	if at.IsZero() {
		at = time.Now()
	}

	switch action {
	case MouseLeftDown:
		m.dragging = true
		m.lastY = y
		m.tracker.Reset()
		m.tracker.Add(at, float64(y))
		m.handler.PointerDown(float64(x), float64(y))
	case MouseMove:
		if !m.dragging {
			return false
		}
		if event.Buttons()&tcell.ButtonPrimary == 0 {
			// The release was lost, e.g. it happened outside the terminal.
			m.release(at, y)
			return false
		}
		m.tracker.Add(at, float64(y))
		if delta := y - m.lastY; delta != 0 {
			m.lastY = y
			m.handler.PointerMove(float64(delta))
		}
	case MouseLeftUp:
		if !m.dragging {
			return false
		}
		m.release(at, y)
	}
	return m.dragging
}

func (m *MousePointer) release(at time.Time, y int) {
	m.tracker.Add(at, float64(y))
	if delta := y - m.lastY; delta != 0 {
		m.lastY = y
		m.handler.PointerMove(float64(delta))
	}
	m.dragging = false
	m.handler.PointerUp(m.tracker.Velocity())
}
