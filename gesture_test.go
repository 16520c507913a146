package wheel

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type recordingTarget struct {
	calls    []string
	flingOK  bool
	velocity float64
}

func (r *recordingTarget) stopMotion()     { r.calls = append(r.calls, "stop") }
func (r *recordingTarget) scheduleSnap()   { r.calls = append(r.calls, "schedule") }
func (r *recordingTarget) cancelSnap()     { r.calls = append(r.calls, "cancel") }
func (r *recordingTarget) checkSelection() { r.calls = append(r.calls, "check") }

func (r *recordingTarget) dragBy(dy float64) {
	r.calls = append(r.calls, fmt.Sprintf("drag %g", dy))
}

func (r *recordingTarget) fling(velocity float64) bool {
	r.velocity = velocity
	r.calls = append(r.calls, "fling")
	return r.flingOK
}

func newRouter(target *recordingTarget) *gestureRouter {
	return &gestureRouter{target: target, minFling: 3, maxFling: 80}
}

func TestRouterDownMoveUp(t *testing.T) {
	target := &recordingTarget{}
	r := newRouter(target)

	r.Down()
	assert.Equal(t, gestureDragging, r.state)
	r.Move(2)
	r.Up(0)
	assert.Equal(t, gestureIdle, r.state)

	assert.Equal(t, []string{
		"stop", "schedule", "check",
		"stop", "drag -2", "check", "schedule",
	}, target.calls)
}

func TestRouterMoveIgnoredWhenNotDragging(t *testing.T) {
	target := &recordingTarget{}
	r := newRouter(target)

	r.Move(5)
	r.Up(100)
	assert.Empty(t, target.calls)
}

func TestRouterFling(t *testing.T) {
	target := &recordingTarget{flingOK: true}
	r := newRouter(target)

	r.Down()
	target.calls = nil
	r.Up(20)

	assert.Equal(t, gestureFlinging, r.state)
	assert.Equal(t, []string{"fling", "cancel"}, target.calls)
	// The content follows the pointer.
	assert.Equal(t, -20.0, target.velocity)

	r.MotionEnded()
	assert.Equal(t, gestureIdle, r.state)
}

func TestRouterFlingCapsVelocity(t *testing.T) {
	target := &recordingTarget{flingOK: true}
	r := newRouter(target)

	r.Down()
	r.Up(-500)
	assert.Equal(t, 80.0, target.velocity)
}

func TestRouterSlowReleaseKeepsSnap(t *testing.T) {
	target := &recordingTarget{flingOK: true}
	r := newRouter(target)

	r.Down()
	target.calls = nil
	r.Up(2.9)

	assert.Equal(t, gestureIdle, r.state)
	assert.Empty(t, target.calls)
}

func TestRouterFailedFlingStaysIdle(t *testing.T) {
	target := &recordingTarget{flingOK: false}
	r := newRouter(target)

	r.Down()
	target.calls = nil
	r.Up(50)
	assert.Equal(t, gestureIdle, r.state)
	assert.Equal(t, []string{"fling"}, target.calls)
}

func TestRouterDownDuringFling(t *testing.T) {
	target := &recordingTarget{flingOK: true}
	r := newRouter(target)

	r.Down()
	r.Up(50)
	r.Down()
	assert.True(t, r.Dragging())

	// A late MotionEnded must not end the new drag.
	r.MotionEnded()
	assert.True(t, r.Dragging())
}

func TestGestureStateString(t *testing.T) {
	assert.Equal(t, "idle", gestureIdle.String())
	assert.Equal(t, "dragging", gestureDragging.String())
	assert.Equal(t, "flinging", gestureFlinging.String())
}

type recordingHandler struct {
	downs  int
	deltas []float64
	ups    int
}

func (h *recordingHandler) PointerDown(x, y float64) { h.downs++ }
func (h *recordingHandler) PointerMove(deltaY float64) {
	h.deltas = append(h.deltas, deltaY)
}
func (h *recordingHandler) PointerUp(velocityY float64) { h.ups++ }

func TestMousePointerDrag(t *testing.T) {
	handler := &recordingHandler{}
	var m MousePointer
	m.Bind(handler)

	assert.True(t, m.HandleMouse(MouseLeftDown, tcell.NewEventMouse(3, 10, tcell.ButtonPrimary, 0)))
	assert.True(t, m.HandleMouse(MouseMove, tcell.NewEventMouse(3, 8, tcell.ButtonPrimary, 0)))
	assert.True(t, m.HandleMouse(MouseMove, tcell.NewEventMouse(4, 8, tcell.ButtonPrimary, 0)))
	assert.False(t, m.HandleMouse(MouseLeftUp, tcell.NewEventMouse(3, 9, tcell.ButtonNone, 0)))

	assert.Equal(t, 1, handler.downs)
	assert.Equal(t, []float64{-2, 1}, handler.deltas)
	assert.Equal(t, 1, handler.ups)
	assert.False(t, m.Dragging())
}

func TestMousePointerLostRelease(t *testing.T) {
	handler := &recordingHandler{}
	var m MousePointer
	m.Bind(handler)

	m.HandleMouse(MouseLeftDown, tcell.NewEventMouse(0, 5, tcell.ButtonPrimary, 0))
	assert.False(t, m.HandleMouse(MouseMove, tcell.NewEventMouse(0, 7, tcell.ButtonNone, 0)))

	assert.Equal(t, []float64{2}, handler.deltas)
	assert.Equal(t, 1, handler.ups)
	assert.False(t, m.Dragging())
}

func TestMousePointerIgnoresMovesWithoutDrag(t *testing.T) {
	handler := &recordingHandler{}
	var m MousePointer
	m.Bind(handler)

	assert.False(t, m.HandleMouse(MouseMove, tcell.NewEventMouse(0, 7, tcell.ButtonNone, 0)))
	assert.False(t, m.HandleMouse(MouseLeftUp, tcell.NewEventMouse(0, 7, tcell.ButtonNone, 0)))
	assert.Zero(t, handler.downs+handler.ups)
	assert.Empty(t, handler.deltas)
}
