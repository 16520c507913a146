package wheel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]Easing{"quad": EaseOutQuad, "cubic": EaseOutCubic} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, ease(0), 1e-12)
			assert.InDelta(t, 1, ease(1), 1e-12)
			prev := 0.0
			for p := 0.1; p <= 1; p += 0.1 {
				assert.GreaterOrEqual(t, ease(p), prev)
				prev = ease(p)
			}
		})
	}
}

func TestFlingTrajectoryLandsOnLine(t *testing.T) {
	tests := []struct {
		name       string
		start      float64
		velocity   float64
		lineHeight float64
	}{
		{"down", 0, 500, 32},
		{"up", 100, -730, 32},
		{"odd line height", 3.3, 47, 1.7},
		{"rows", 2, 40, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traj := NewFlingTrajectory(tt.start, tt.velocity, 25*tt.lineHeight, tt.lineHeight)

			lines := traj.Final / tt.lineHeight
			assert.InDelta(t, math.Round(lines), lines, 1e-9)
			assert.Greater(t, traj.Duration, time.Duration(0))

			offset, finished := traj.Position(traj.Duration)
			assert.True(t, finished)
			assert.Equal(t, traj.Final, offset)
		})
	}
}

func TestFlingTrajectoryIsDeterministic(t *testing.T) {
	a := NewFlingTrajectory(10, 300, 800, 32)
	b := NewFlingTrajectory(10, 300, 800, 32)
	assert.Equal(t, a.Final, b.Final)
	assert.Equal(t, a.Duration, b.Duration)

	// Frame size does not change where the fling comes to rest.
	var coarse, fine float64
	for age := time.Duration(0); ; age += 50 * time.Millisecond {
		var done bool
		if coarse, done = a.Position(age); done {
			break
		}
	}
	for age := time.Duration(0); ; age += 7 * time.Millisecond {
		var done bool
		if fine, done = b.Position(age); done {
			break
		}
	}
	assert.Equal(t, coarse, fine)
}

func TestFlingTrajectoryRestDistance(t *testing.T) {
	// v^2 / 2a = 400*400 / 1600 = 100, nearest multiple of 32 is 96.
	traj := NewFlingTrajectory(0, 400, 800, 32)
	assert.Equal(t, 96.0, traj.Final)
	assert.Equal(t, 500*time.Millisecond, traj.Duration)
}

func TestFlingTrajectoryWithoutVelocity(t *testing.T) {
	traj := NewFlingTrajectory(40, 0, 800, 32)
	offset, finished := traj.Position(0)
	assert.True(t, finished)
	assert.Equal(t, 32.0, offset)
}

func TestEaseTrajectoryMidway(t *testing.T) {
	traj := NewEaseTrajectory(0, 10, 200*time.Millisecond)

	offset, finished := traj.Position(100 * time.Millisecond)
	assert.False(t, finished)
	assert.InDelta(t, 10*EaseOutCubic(0.5), offset, 1e-9)

	offset, finished = traj.Position(-time.Second)
	assert.False(t, finished)
	assert.Equal(t, 0.0, offset)
}

func TestNearestLine(t *testing.T) {
	assert.Equal(t, 32.0, nearestLine(40, 32))
	assert.Equal(t, 64.0, nearestLine(48, 32))
	assert.Equal(t, -32.0, nearestLine(-40, 32))
	assert.Equal(t, 0.0, nearestLine(0.4, 1))
	assert.Equal(t, 0.0, nearestLine(-0.5, 1))
	assert.Equal(t, 0.0, nearestLine(-1, 2))
	assert.Equal(t, 2.0, nearestLine(1, 2))
}

func TestNearestLineMatchesSelectedIndex(t *testing.T) {
	for _, lineHeight := range []float64{1, 2, 3} {
		s, tr, _ := newTracker(5, lineHeight, true)
		for _, lines := range []float64{-2.5, -1.5, -0.5, 0.5, 1.5, 6.5, -1, 1} {
			s.offset = lines * lineHeight
			index := tr.CurrentIndex()

			s.offset = nearestLine(s.offset, lineHeight)
			assert.Equal(t, index, tr.CurrentIndex(), "lines %v lh %v", lines, lineHeight)
		}
	}
}

func TestFlingRestUsesSameRounding(t *testing.T) {
	// Decelerating from -1 at 1/s² stops half a line below zero.
	traj := NewFlingTrajectory(0, -1, 1, 1)
	assert.Equal(t, 0.0, traj.Final)
}
