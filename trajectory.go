package wheel

import (
	"math"
	"time"
)

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(progress float64) float64

// EaseOutQuad has a linearly decaying derivative, which is the position curve
// of a body under constant deceleration that stops at progress 1.
func EaseOutQuad(p float64) float64 {
	return 1 - (1-p)*(1-p)
}

// EaseOutCubic starts fast and settles gently. Snaps and key steps use it.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Trajectory is a fixed-duration movement of the scroll offset from Start to
// Final. It is a pure function of its age, so a skipped frame never loses
// distance and the last frame always lands exactly on Final.
type Trajectory struct {
	Start    float64
	Final    float64
	Duration time.Duration
	Ease     Easing
}

// Position returns the offset at the given age and whether the trajectory has
// reached its end.
func (t Trajectory) Position(age time.Duration) (float64, bool) {
	if age >= t.Duration || t.Duration <= 0 {
		return t.Final, true
	}
	if age < 0 {
		age = 0
	}
	progress := float64(age) / float64(t.Duration)
	return t.Start + (t.Final-t.Start)*t.Ease(progress), false
}

// NewFlingTrajectory decelerates from velocity (units per second) at a
// constant rate (units per second squared) and lands on the multiple of
// lineHeight nearest to where the unconstrained motion would have stopped.
func NewFlingTrajectory(start, velocity, deceleration, lineHeight float64) Trajectory {
	if deceleration <= 0 || velocity == 0 {
		return Trajectory{Start: start, Final: nearestLine(start, lineHeight), Ease: EaseOutQuad}
	}
	seconds := math.Abs(velocity) / deceleration
	rest := start + velocity*seconds/2
	return Trajectory{
		Start:    start,
		Final:    nearestLine(rest, lineHeight),
		Duration: time.Duration(seconds * float64(time.Second)),
		Ease:     EaseOutQuad,
	}
}

// NewEaseTrajectory moves from start to final over duration with an
// ease-out curve.
func NewEaseTrajectory(start, final float64, duration time.Duration) Trajectory {
	return Trajectory{Start: start, Final: final, Duration: duration, Ease: EaseOutCubic}
}

// nearestLine rounds offset to the closest multiple of lineHeight. Ties round
// up, the same way the selected index is derived, so a snap always lands on
// the line that is already selected.
func nearestLine(offset, lineHeight float64) float64 {
	return math.Floor(offset/lineHeight+0.5) * lineHeight
}
