package wheel

import (
	"sort"
	"time"
)

// ManualScheduler is a Scheduler driven by Advance instead of wall time.
type ManualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &manualTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward and fires due timers in deadline order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.now += d
	for {
		due := s.due()
		if len(due) == 0 {
			return
		}
		sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
		t := due[0]
		t.fired = true
		t.f()
	}
}

func (s *ManualScheduler) due() []*manualTimer {
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			due = append(due, t)
		}
	}
	return due
}

// Pending returns the number of timers that can still fire.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// FireStale runs the callback of every stopped timer anyway, the way a
// callback already queued on an event loop would still run.
func (s *ManualScheduler) FireStale() {
	for _, t := range s.timers {
		if t.stopped {
			t.f()
		}
	}
}

// ManualTicker records Start and Stop. Tests advance the picker with Frame.
type ManualTicker struct {
	frame  func(time.Duration)
	starts int
	stops  int
}

func (t *ManualTicker) Start(frame func(time.Duration)) {
	t.frame = frame
	t.starts++
}

func (t *ManualTicker) Stop() {
	t.frame = nil
	t.stops++
}

func (t *ManualTicker) Running() bool {
	return t.frame != nil
}

// Frame delivers one frame if running and reports whether it did.
func (t *ManualTicker) Frame(elapsed time.Duration) bool {
	if t.frame == nil {
		return false
	}
	t.frame(elapsed)
	return true
}

// RunFrames delivers frames of the given length until the ticker stops or
// limit frames have been delivered. It returns the number delivered.
func (t *ManualTicker) RunFrames(elapsed time.Duration, limit int) int {
	n := 0
	for n < limit && t.Frame(elapsed) {
		n++
	}
	return n
}

// changeRecorder collects selection changes.
type changeRecorder struct {
	indices []int
}

func (r *changeRecorder) record(index int) {
	r.indices = append(r.indices, index)
}
