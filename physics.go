package wheel

import (
	"math"
	"time"
)

// motionKind tells what started the active trajectory.
type motionKind int

const (
	motionNone motionKind = iota
	motionFling
	motionSnap
	motionStep
)

// scrollPhysics owns the scroll offset, the only source of truth for the
// picker's position, together with the trajectory currently moving it.
type scrollPhysics struct {
	offset     float64
	lineHeight float64
	count      int
	wrapping   bool

	// Fling deceleration in units per second squared.
	deceleration float64

	active *Trajectory
	kind   motionKind
	age    time.Duration
}

// bounds returns the allowed offset range when not wrapping.
func (s *scrollPhysics) bounds() (float64, float64) {
	return 0, s.lineHeight * float64(s.count-1)
}

// clamp pins the offset into bounds when not wrapping and reports whether it
// had to. It depends only on the offset and the current mode.
func (s *scrollPhysics) clamp() bool {
	if s.wrapping {
		return false
	}
	lo, hi := s.bounds()
	switch {
	case s.offset < lo:
		s.offset = lo
		return true
	case s.offset > hi:
		s.offset = hi
		return true
	}
	return false
}

// ApplyDragDelta moves the offset by dy. Hitting a bound cancels any
// trajectory still running.
func (s *scrollPhysics) ApplyDragDelta(dy float64) {
	s.offset += dy
	if s.clamp() {
		s.Cancel()
	}
}

// StartFling replaces the active trajectory with a deceleration from velocity
// (units per second) that comes to rest on a line boundary.
func (s *scrollPhysics) StartFling(velocity float64) Trajectory {
	t := NewFlingTrajectory(s.offset, velocity, s.deceleration, s.lineHeight)
	s.start(t, motionFling)
	return t
}

// StartEase replaces the active trajectory with an ease-out movement to
// final. kind is either motionSnap or motionStep.
func (s *scrollPhysics) StartEase(final float64, duration time.Duration, kind motionKind) Trajectory {
	t := NewEaseTrajectory(s.offset, final, duration)
	s.start(t, kind)
	return t
}

func (s *scrollPhysics) start(t Trajectory, kind motionKind) {
	s.active = &t
	s.kind = kind
	s.age = 0
}

// Tick advances the active trajectory by elapsed. It returns the kind of
// motion that was advanced and whether that motion is now over. With no
// active trajectory it does nothing and returns motionNone.
func (s *scrollPhysics) Tick(elapsed time.Duration) (motionKind, bool) {
	if s.active == nil {
		return motionNone, false
	}
	kind := s.kind
	s.age += elapsed
	offset, finished := s.active.Position(s.age)
	s.offset = offset
	if s.clamp() {
		finished = true
	}
	if finished {
		s.Cancel()
	}
	return kind, finished
}

// Cancel stops the active trajectory, leaving the offset where the last tick
// put it.
func (s *scrollPhysics) Cancel() {
	s.active = nil
	s.kind = motionNone
	s.age = 0
}

// Animating reports whether a trajectory is active.
func (s *scrollPhysics) Animating() bool {
	return s.active != nil
}

// Kind returns the kind of the active trajectory.
func (s *scrollPhysics) Kind() motionKind {
	return s.kind
}

// Destination is where the offset is heading: the end of the active
// trajectory, or the offset itself when idle.
func (s *scrollPhysics) Destination() float64 {
	if s.active != nil {
		return s.active.Final
	}
	return s.offset
}

// NearestLine returns the multiple of the line height closest to the offset.
func (s *scrollPhysics) NearestLine() float64 {
	return nearestLine(s.offset, s.lineHeight)
}

// NormalizeIndex folds index into [0, count): modulo when wrapping, clamped
// otherwise.
func (s *scrollPhysics) NormalizeIndex(index int) int {
	if s.wrapping {
		index %= s.count
		if index < 0 {
			index += s.count
		}
		return index
	}
	return min(max(index, 0), s.count-1)
}

// SetIndexImmediate jumps to index without animation. It is a no-op when the
// picker already shows index and nothing is moving, so repeated calls never
// disturb a resting wheel. It reports whether the offset was touched.
func (s *scrollPhysics) SetIndexImmediate(index, current int) bool {
	index = s.NormalizeIndex(index)
	if index == current && s.active == nil {
		return false
	}
	s.offset = s.lineHeight * float64(index)
	s.Cancel()
	return true
}

// SetLineHeight rescales the offset so the same line stays selected.
func (s *scrollPhysics) SetLineHeight(lineHeight float64) {
	if s.lineHeight > 0 {
		s.offset *= lineHeight / s.lineHeight
	}
	s.lineHeight = lineHeight
	s.Cancel()
}

// SetCount installs a new value count. A wrapping offset is reduced modulo
// the new cycle length; otherwise it is clamped to the new bounds.
func (s *scrollPhysics) SetCount(count int) {
	s.count = count
	if s.wrapping {
		cycle := s.lineHeight * float64(count)
		s.offset = math.Mod(s.offset, cycle)
		if s.offset < 0 {
			s.offset += cycle
		}
		s.Cancel()
		return
	}
	if s.clamp() {
		s.Cancel()
	}
}

// SetWrapping switches modes. Leaving wrapping mode aligns the offset on the
// line of the current index so that clamping cannot pick a different one.
func (s *scrollPhysics) SetWrapping(wrapping bool, current int) {
	if s.wrapping == wrapping {
		return
	}
	s.wrapping = wrapping
	if !wrapping {
		s.offset = s.lineHeight * float64(current)
		s.Cancel()
	}
}
