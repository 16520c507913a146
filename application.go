package wheel

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	// The size of the event and queued updates channels.
	queueSize = 100
	// The minimum time between two consecutive redraws.
	redrawPause = 50 * time.Millisecond
	// The interval between two animation frames.
	frameInterval = 16 * time.Millisecond
)

// DoubleClickInterval specifies the maximum time between clicks to register a
// double click rather than click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// queuedUpdate represents the execution of f queued by the event loop. If
// "done" is not nil, it receives exactly one element after f has executed. If
// draw is set, the screen is redrawn after f.
type queuedUpdate struct {
	f    func()
	draw bool
	done chan struct{}
}

// Application represents the top node of an application.
//
// The event loop is the only goroutine that touches primitives. Frames from a
// FrameTicker and timers from AfterFunc are queued onto it, so pickers never
// need locking.
//
// The following displays a primitive p until it returns a QuitCommand:
//
//	if err := wheel.NewApplication().SetRoot(p).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	// The application's screen. Apart from Run(), this variable should never be
	// set directly.
	screen tcell.Screen

	// The primitive which currently has the keyboard focus.
	focus Primitive

	// The root primitive to be seen on the screen.
	root Primitive

	events chan tcell.Event

	// Functions queued from goroutines, used to serialize updates to primitives.
	updates chan queuedUpdate

	// Closed by Stop. Goroutines that feed the event loop give up once it is.
	stopped  chan struct{}
	stopOnce sync.Once

	mouseCapturingPrimitive Primitive        // A Primitive returned by a MouseHandler which will capture future mouse events.
	lastMouseX, lastMouseY  int              // The last position of the mouse.
	mouseDownX, mouseDownY  int              // The position of the mouse when its button was last pressed.
	lastMouseClick          time.Time        // The time when a mouse button was last clicked.
	lastMouseButtons        tcell.ButtonMask // The last mouse button state.

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		events:  make(chan tcell.Event, queueSize),
		updates: make(chan queuedUpdate, queueSize),
		stopped: make(chan struct{}),
	}
}

// SetScreen sets the application's screen. The screen must be initialized.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// Run starts the application and thus the event loop. This function returns
// when [Application.Stop] was called, right away if that happened before.
func (a *Application) Run() error {
	var (
		appErr      error
		lastRedraw  time.Time   // The time the screen was last redrawn.
		redrawTimer *time.Timer // A timer to schedule the next redraw.
	)
	a.Lock()

	// Stop may have been called before Run got here. Stop closes the channel
	// before taking the lock, so this check cannot miss it.
	select {
	case <-a.stopped:
		a.Unlock()
		return nil
	default:
	}

	// Make a screen if there is none yet.
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	screen := a.screen
	screen.EnableMouse()
	screen.EnablePaste()

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	// Draw the screen for the first time.
	a.Unlock()
	a.draw()

	go a.pollEvents(screen)

	// Start event loop.
	var (
		pasteBuffer strings.Builder
		pasting     bool // Set to true while we receive paste key events.
	)
EventLoop:
	for {
		select {
		case <-a.stopped:
			break EventLoop

		// If we received an event, handle it.
		case event := <-a.events:
			if event == nil {
				break EventLoop
			}

			switch event := event.(type) {
			case *tcell.EventKey:
				// If we are pasting, collect runes, nothing else.
				if pasting {
					switch event.Key() {
					case tcell.KeyRune:
						pasteBuffer.WriteRune(event.Rune())
					case tcell.KeyEnter:
						pasteBuffer.WriteRune('\n')
					case tcell.KeyTab:
						pasteBuffer.WriteRune('\t')
					}
					break
				}

				a.RLock()
				root := a.root
				a.RUnlock()

				// Pass other key events to the root primitive.
				if root != nil && root.HasFocus() {
					cmd := root.InputHandler(event)
					if a.executeCommand(cmd) {
						a.draw()
					}
				}
			case *tcell.EventPaste:
				if event.Start() {
					pasting = true
					pasteBuffer.Reset()
				} else if event.End() {
					pasting = false
					a.RLock()
					root := a.root
					a.RUnlock()
					if root != nil && root.HasFocus() && pasteBuffer.Len() > 0 {
						// Pass paste event to the root primitive.
						cmd := root.PasteHandler(pasteBuffer.String())
						if a.executeCommand(cmd) {
							a.draw()
						}
					}
				}
			case *tcell.EventResize:
				a.Lock()
				// Resize events can imply terminal state changes even when size
				// reports unchanged, so force one redraw pass.
				a.forceRedraw = true
				a.Unlock()
				if time.Since(lastRedraw) < redrawPause {
					if redrawTimer != nil {
						redrawTimer.Stop()
					}
					redrawTimer = time.AfterFunc(redrawPause, func() {
						a.QueueEvent(event)
					})
				}
				lastRedraw = time.Now()
				a.draw()
			case *tcell.EventMouse:
				handled, isMouseDownAction := a.fireMouseActions(event)
				if handled {
					a.draw()
				}
				a.lastMouseButtons = event.Buttons()
				if isMouseDownAction {
					a.mouseDownX, a.mouseDownY = event.Position()
				}
			case *tcell.EventError:
				appErr = event
				a.Stop()
			}

		// If we have updates, now is the time to execute them.
		case update := <-a.updates:
			update.f()
			if update.draw {
				a.draw()
			}
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}

	return appErr
}

// pollEvents forwards screen events to the event loop until the screen is
// finalized.
func (a *Application) pollEvents(screen tcell.Screen) {
	for {
		event := screen.PollEvent()
		select {
		case a.events <- event:
		case <-a.stopped:
			return
		}
		if event == nil {
			return
		}
	}
}

// fireMouseActions analyzes the provided mouse event, derives mouse actions
// from it and then forwards them to the corresponding primitives.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled, isMouseDownAction bool) {
	// We want to relay follow-up events to the same target primitive.
	var targetPrimitive Primitive

	// Helper function to fire a mouse action.
	fire := func(action MouseAction) {
		switch action {
		case MouseLeftDown, MouseMiddleDown, MouseRightDown:
			isMouseDownAction = true
		}

		// Determine the target primitive.
		var primitive, capturingPrimitive Primitive
		if a.mouseCapturingPrimitive != nil {
			primitive = a.mouseCapturingPrimitive
			targetPrimitive = a.mouseCapturingPrimitive
		} else if targetPrimitive != nil {
			primitive = targetPrimitive
		} else {
			primitive = a.root
		}
		if primitive != nil {
			var cmd Command
			capturingPrimitive, cmd = primitive.MouseHandler(action, event)
			if a.executeCommand(cmd) {
				handled = true
			}
		}
		a.mouseCapturingPrimitive = capturingPrimitive
	}

	x, y := event.Position()
	buttons := event.Buttons()
	clickMoved := x != a.mouseDownX || y != a.mouseDownY
	buttonChanges := buttons ^ a.lastMouseButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX = x
		a.lastMouseY = y
	}

	for _, buttonEvent := range []struct {
		button                  tcell.ButtonMask
		down, up, click, dclick MouseAction
	}{
		{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
		{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
		{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
	} {
		if buttonChanges&buttonEvent.button != 0 {
			if buttons&buttonEvent.button != 0 {
				fire(buttonEvent.down)
			} else {
				fire(buttonEvent.up)
				if !clickMoved {
					if a.lastMouseClick.Add(DoubleClickInterval).Before(time.Now()) {
						fire(buttonEvent.click)
						a.lastMouseClick = time.Now()
					} else {
						fire(buttonEvent.dclick)
						a.lastMouseClick = time.Time{} // reset
					}
				}
			}
		}
	}

	for _, wheelEvent := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight}} {
		if buttons&wheelEvent.button != 0 {
			fire(wheelEvent.action)
		}
	}

	return handled, isMouseDownAction
}

// Stop stops the application, causing Run() to return. Frames and timers
// queued afterwards are dropped.
func (a *Application) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopped)
	})
	a.Lock()
	defer a.Unlock()
	screen := a.screen
	if screen == nil {
		return
	}
	screen.Fini()
	a.screen = nil
}

// Draw refreshes the screen during the next update cycle.
func (a *Application) Draw() *Application {
	a.queue(func() {}, true)
	return a
}

// draw actually does what Draw() promises to do.
func (a *Application) draw() *Application {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.Unlock()

	// Maybe we're not ready yet or not anymore.
	if screen == nil || root == nil {
		return a
	}

	drawWidth, drawHeight := screen.Size()
	root.SetRect(0, 0, drawWidth, drawHeight)

	// tcell already keeps a logical back buffer and emits only visual deltas in
	// Show(). Keep full clears for forced redraws.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()

	a.Lock()
	a.forceRedraw = false
	a.Unlock()

	return a
}

// SetRoot sets the root primitive for this application. This function must be
// called at least once or nothing will be displayed when the application
// starts.
//
// It also calls SetFocus() on the primitive.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus sets the focus to a new primitive. Blur() will be called on the
// previously focused primitive. Focus() will be called on the new primitive.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}

	return a
}

// GetFocus returns the primitive which has the current focus. If none has it,
// nil is returned.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate is used to synchronize access to primitives from non-main
// goroutines. The provided function will be executed as part of the event loop
// and thus will not cause race conditions with other such update functions or
// the Draw() function.
//
// This function returns after f has executed, or right away once the
// application has stopped.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{}, 1)
	select {
	case a.updates <- queuedUpdate{f: f, done: ch}:
	case <-a.stopped:
		return a
	}
	select {
	case <-ch:
	case <-a.stopped:
	}
	return a
}

// QueueEvent sends an event to the Application event loop.
//
// It is not recommended for event to be nil.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	select {
	case a.events <- event:
	case <-a.stopped:
	}
	return a
}

// queue hands f to the event loop without waiting for it. It reports false
// once the application has stopped.
func (a *Application) queue(f func(), draw bool) bool {
	select {
	case a.updates <- queuedUpdate{f: f, draw: draw}:
		return true
	case <-a.stopped:
		return false
	}
}

func (a *Application) executeCommand(cmd Command) bool {
	if cmd == nil {
		return false
	}

	switch c := cmd.(type) {
	case BatchCommand:
		handled := false
		for _, item := range c {
			if a.executeCommand(item) {
				handled = true
			}
		}
		return handled
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.RLock()
		changed := a.focus != c.Target
		a.RUnlock()
		a.SetFocus(c.Target)
		return changed
	case ConsumeEventCommand:
		return false
	}

	return false
}

// AfterFunc implements Scheduler. The timer runs on its own goroutine but f
// is queued onto the event loop, followed by a redraw. A stopped timer whose
// callback is already queued does not run it.
func (a *Application) AfterFunc(d time.Duration, f func()) Timer {
	t := &appTimer{}
	t.timer = time.AfterFunc(d, func() {
		a.queue(func() {
			if !t.stopped {
				f()
			}
		}, true)
	})
	return t
}

type appTimer struct {
	timer *time.Timer
	// Only touched on the event loop.
	stopped bool
}

func (t *appTimer) Stop() bool {
	t.stopped = true
	return t.timer.Stop()
}

// FrameTicker implements AnimationTicker for an Application. Frames are
// queued onto the event loop roughly every 16ms and each one redraws the
// screen. Start and Stop must be called on the event loop.
type FrameTicker struct {
	app        *Application
	generation uint64
	stop       chan struct{}
}

// NewFrameTicker returns a stopped ticker delivering frames through a.
func (a *Application) NewFrameTicker() *FrameTicker {
	return &FrameTicker{app: a}
}

// Start begins delivering frames to frame, replacing any previous callback.
func (t *FrameTicker) Start(frame func(elapsed time.Duration)) {
	t.Stop()
	t.generation++
	generation := t.generation
	stop := make(chan struct{})
	t.stop = stop

	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				elapsed := now.Sub(last)
				last = now
				ok := t.app.queue(func() {
					// Frames queued before a Stop must not run.
					if t.generation == generation {
						frame(elapsed)
					}
				}, true)
				if !ok {
					return
				}
			}
		}
	}()
}

// Stop ends frame delivery. Frames already queued are dropped.
func (t *FrameTicker) Stop() {
	if t.stop == nil {
		return
	}
	close(t.stop)
	t.stop = nil
	t.generation++
}
