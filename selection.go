package wheel

import "math"

// selectionTracker derives the discrete selection from the scroll offset and
// reports each distinct index once.
type selectionTracker struct {
	physics *scrollPhysics

	notified int
	changed  func(index int)
}

// currentLine is the selection as a real number in [0, count). The half-line
// bias makes the index change at the midpoint between two lines, which is
// where the label crosses the center of the wheel.
func (t *selectionTracker) currentLine() float64 {
	s := t.physics
	n := float64(s.count)
	line := math.Mod(s.offset/s.lineHeight+0.5, n)
	if line < 0 {
		line += n
	}
	if line >= n {
		// -epsilon + n rounds up to n.
		line = 0
	}
	return line
}

// CurrentIndex returns the selected index, always in [0, count).
func (t *selectionTracker) CurrentIndex() int {
	return int(math.Floor(t.currentLine()))
}

// CheckAndNotify fires the changed callback if the index differs from the
// last one reported. It must run after every offset mutation.
func (t *selectionTracker) CheckAndNotify() bool {
	index := t.CurrentIndex()
	if index == t.notified {
		return false
	}
	t.notified = index
	if t.changed != nil {
		t.changed(index)
	}
	return true
}

// Sync records the current index as reported without calling back. It is used
// for changes that did not come from the user.
func (t *selectionTracker) Sync() {
	t.notified = t.CurrentIndex()
}
