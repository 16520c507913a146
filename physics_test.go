package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newPhysics(count int, lineHeight float64, wrapping bool) *scrollPhysics {
	return &scrollPhysics{
		lineHeight:   lineHeight,
		count:        count,
		wrapping:     wrapping,
		deceleration: 25 * lineHeight,
	}
}

func TestApplyDragDeltaClampsWithoutWrapping(t *testing.T) {
	s := newPhysics(3, 32, false)

	s.ApplyDragDelta(-1000)
	assert.Equal(t, 0.0, s.offset)

	s.ApplyDragDelta(5000)
	assert.Equal(t, 64.0, s.offset)
}

func TestApplyDragDeltaUnboundedWhenWrapping(t *testing.T) {
	s := newPhysics(3, 32, true)

	s.ApplyDragDelta(-1000)
	assert.Equal(t, -1000.0, s.offset)
}

func TestClampCancelsFling(t *testing.T) {
	s := newPhysics(3, 32, false)
	s.offset = 32
	s.StartFling(2000)
	assert.True(t, s.Animating())

	s.ApplyDragDelta(1000)
	assert.False(t, s.Animating())
	assert.Equal(t, 64.0, s.offset)
}

func TestTickFinishesAtBound(t *testing.T) {
	s := newPhysics(5, 1, false)
	s.StartFling(60)

	var kind motionKind
	finished := false
	for i := 0; i < 1000 && !finished; i++ {
		kind, finished = s.Tick(16 * time.Millisecond)
	}
	assert.True(t, finished)
	assert.Equal(t, motionFling, kind)
	assert.Equal(t, 4.0, s.offset)
	assert.False(t, s.Animating())
}

func TestTickWithoutTrajectory(t *testing.T) {
	s := newPhysics(5, 1, false)
	s.offset = 2.3

	kind, finished := s.Tick(time.Second)
	assert.Equal(t, motionNone, kind)
	assert.False(t, finished)
	assert.Equal(t, 2.3, s.offset)
}

func TestFlingComesToRestOnLine(t *testing.T) {
	s := newPhysics(100, 32, true)
	s.offset = 13
	traj := s.StartFling(1234)

	for s.Animating() {
		s.Tick(16 * time.Millisecond)
	}
	assert.Equal(t, traj.Final, s.offset)
	assert.Equal(t, s.NearestLine(), s.offset)
}

func TestCancelKeepsOffset(t *testing.T) {
	s := newPhysics(100, 32, true)
	s.StartEase(320, 200*time.Millisecond, motionSnap)
	s.Tick(100 * time.Millisecond)
	mid := s.offset

	s.Cancel()
	s.Tick(100 * time.Millisecond)
	assert.Equal(t, mid, s.offset)
	assert.Equal(t, motionNone, s.Kind())
}

func TestDestination(t *testing.T) {
	s := newPhysics(10, 2, false)
	s.offset = 3
	assert.Equal(t, 3.0, s.Destination())

	s.StartEase(8, time.Second, motionStep)
	assert.Equal(t, 8.0, s.Destination())
}

func TestNormalizeIndex(t *testing.T) {
	wrapping := newPhysics(5, 1, true)
	assert.Equal(t, 2, wrapping.NormalizeIndex(7))
	assert.Equal(t, 4, wrapping.NormalizeIndex(-1))
	assert.Equal(t, 0, wrapping.NormalizeIndex(-10))

	clamped := newPhysics(5, 1, false)
	assert.Equal(t, 4, clamped.NormalizeIndex(7))
	assert.Equal(t, 0, clamped.NormalizeIndex(-1))
}

func TestSetIndexImmediateIsIdempotent(t *testing.T) {
	s := newPhysics(5, 32, false)

	assert.True(t, s.SetIndexImmediate(3, 0))
	first := s.offset
	assert.False(t, s.SetIndexImmediate(3, 3))
	assert.Equal(t, first, s.offset)
	assert.Equal(t, 96.0, s.offset)
}

func TestSetIndexImmediateInterruptsFling(t *testing.T) {
	s := newPhysics(5, 32, false)
	s.offset = 64
	s.StartFling(300)

	// Same index, but the fling must not keep moving the wheel.
	assert.True(t, s.SetIndexImmediate(2, 2))
	assert.False(t, s.Animating())
	assert.Equal(t, 64.0, s.offset)
}

func TestSetLineHeightKeepsIndex(t *testing.T) {
	s := newPhysics(5, 2, false)
	s.offset = 6

	s.SetLineHeight(3)
	assert.Equal(t, 9.0, s.offset)
}

func TestSetCount(t *testing.T) {
	wrapping := newPhysics(10, 1, true)
	wrapping.offset = -3
	wrapping.SetCount(4)
	assert.Equal(t, 1.0, wrapping.offset)

	clamped := newPhysics(10, 1, false)
	clamped.offset = 8
	clamped.SetCount(4)
	assert.Equal(t, 3.0, clamped.offset)
}

func TestSetWrappingOffAlignsToCurrent(t *testing.T) {
	s := newPhysics(5, 1, true)
	s.offset = -1.2

	s.SetWrapping(false, 4)
	assert.Equal(t, 4.0, s.offset)
	assert.False(t, s.wrapping)
}
