package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxInnerRect(t *testing.T) {
	b := NewBox()
	b.SetRect(2, 3, 20, 6)

	x, y, width, height := b.GetInnerRect()
	assert.Equal(t, [4]int{2, 3, 20, 6}, [4]int{x, y, width, height})

	b.SetBorders(BordersAll)
	x, y, width, height = b.GetInnerRect()
	assert.Equal(t, [4]int{3, 4, 18, 4}, [4]int{x, y, width, height})

	b.SetBorders(BordersNone).SetTitle("title").SetFooter("status")
	x, y, width, height = b.GetInnerRect()
	assert.Equal(t, [4]int{2, 4, 20, 4}, [4]int{x, y, width, height})

	b.SetRect(0, 0, 1, 1)
	_, _, width, height = b.GetInnerRect()
	assert.Equal(t, 1, width)
	assert.Zero(t, height)
}

func TestBoxDirtyPropagates(t *testing.T) {
	parent, child := NewBox(), NewBox()
	BindDirtyParent(child, parent)
	parent.MarkClean()
	child.MarkClean()

	child.SetRect(0, 0, 5, 5)

	assert.True(t, child.IsDirty())
	assert.True(t, parent.IsDirty())

	parent.MarkClean()
	child.SetRect(0, 0, 5, 5)
	assert.False(t, parent.IsDirty())
}

func TestBoxDrawCaptions(t *testing.T) {
	screen := newSimulationScreen(t, 12, 4)
	b := NewBox().SetBorders(BordersAll).SetBorderSet(BorderSetRound())
	b.SetTitle("wheel").SetFooter("a long status line")
	b.SetRect(0, 0, 12, 4)

	b.Draw(screen)

	assert.Contains(t, rowText(screen, 0, 12), "wheel")
	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '╭', r)
	r, _, _, _ = screen.GetContent(10, 3)
	assert.Equal(t, '…', r)
	r, _, _, _ = screen.GetContent(0, 1)
	assert.Equal(t, '│', r)
}

func TestBoxFocus(t *testing.T) {
	focused := 0
	b := NewBox().SetFocusFunc(func() { focused++ })

	b.Focus(nil)
	assert.True(t, b.HasFocus())
	assert.Equal(t, 1, focused)

	b.Blur()
	assert.False(t, b.HasFocus())
}
