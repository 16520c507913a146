package wheel

import "time"

//go:generate mockgen --build_flags=--mod=mod -destination=clock_mock_test.go -package=$GOPACKAGE github.com/ayn2op/wheel AnimationTicker,Scheduler,Timer

// AnimationTicker delivers frame ticks to a picker while one of its
// trajectories is running. Start may be called while already started; it
// replaces the frame callback. Stop must be safe to call when stopped.
type AnimationTicker interface {
	Start(frame func(elapsed time.Duration))
	Stop()
}

// Timer is a cancellable one-shot callback returned by a Scheduler.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

// Scheduler runs f once after d. Implementations must deliver f on the
// goroutine that owns the picker.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// nopTicker is used when a picker is created without a ticker. Trajectories
// then only advance when the host calls Tick itself.
type nopTicker struct{}

func (nopTicker) Start(func(time.Duration)) {}
func (nopTicker) Stop()                     {}

// nopScheduler never fires. Without a scheduler the picker does not snap on
// its own.
type nopScheduler struct{}

func (nopScheduler) AfterFunc(time.Duration, func()) Timer { return nopTimer{} }

type nopTimer struct{}

func (nopTimer) Stop() bool { return false }
