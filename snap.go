package wheel

import "time"

const (
	// DefaultSnapDelay is the quiet period after the last pointer event before
	// the wheel snaps onto a line.
	DefaultSnapDelay = 300 * time.Millisecond
	// DefaultSnapDuration is the length of the snap animation.
	DefaultSnapDuration = 200 * time.Millisecond
)

type snapState int

const (
	snapIdle snapState = iota
	snapPending
	snapAnimating
)

func (s snapState) String() string {
	switch s {
	case snapPending:
		return "pending"
	case snapAnimating:
		return "animating"
	default:
		return "idle"
	}
}

// snapController debounces pointer activity and, once it settles, asks the
// picker to animate onto the nearest line.
type snapController struct {
	scheduler Scheduler
	delay     time.Duration

	state      snapState
	timer      Timer
	generation uint64
	closed     bool

	// fire starts the snap animation and reports whether there was anything
	// to animate.
	fire func() bool
}

// Schedule cancels any pending or running snap and restarts the debounce
// window.
func (c *snapController) Schedule() {
	if c.closed {
		return
	}
	c.stopTimer()
	c.generation++
	generation := c.generation
	c.state = snapPending
	c.timer = c.scheduler.AfterFunc(c.delay, func() {
		c.expire(generation)
	})
}

// Cancel drops a pending snap. A snap animation already running is left to
// the physics, which the caller cancels separately.
func (c *snapController) Cancel() {
	c.stopTimer()
	c.generation++
	if c.state == snapPending {
		c.state = snapIdle
	}
}

// Finish returns the controller to idle once the snap animation ends or is
// superseded.
func (c *snapController) Finish() {
	if c.state == snapAnimating {
		c.state = snapIdle
	}
}

// Close stops the timer for good. Callbacks that are already queued become
// no-ops.
func (c *snapController) Close() {
	c.Cancel()
	c.closed = true
	c.state = snapIdle
}

// State returns the current controller state.
func (c *snapController) State() snapState {
	return c.state
}

func (c *snapController) expire(generation uint64) {
	if c.closed || generation != c.generation || c.state != snapPending {
		return
	}
	c.timer = nil
	c.state = snapAnimating
	if !c.fire() {
		c.state = snapIdle
	}
}

func (c *snapController) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
