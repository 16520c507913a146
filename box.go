package wheel

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Box implements the Primitive interface with an empty background and optional
// elements such as a border, a title and a footer. Box itself does not hold any
// content but is embedded by every other primitive in this package, which then
// draws its own content inside GetInnerRect.
type Box struct {
	// The position of the rect.
	x, y, width, height int

	// The inner rect reserved for the box's content. If innerX is negative,
	// the rect is undefined and must be calculated.
	innerX, innerY, innerWidth, innerHeight int

	backgroundColor tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	footer          string
	footerStyle     tcell.Style
	footerAlignment Alignment

	hasFocus bool

	// dirty indicates whether this primitive needs to be redrawn.
	dirty atomic.Bool

	// dirtyParent is notified when this primitive transitions from clean to
	// dirty so containers can be dirtied without scanning all children.
	dirtyParent atomic.Pointer[Box]

	focus func()
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	b := &Box{
		width:           15,
		height:          10,
		innerX:          -1, // Mark as uninitialized.
		backgroundColor: Styles.PrimitiveBackgroundColor,

		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		borderSet:   BorderSetPlain(),

		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment:  AlignmentCenter,
		footerStyle:     tcell.StyleDefault.Foreground(Styles.TitleColor),
		footerAlignment: AlignmentCenter,
	}
	b.dirty.Store(true)
	return b
}

// GetRect returns the current position of the rectangle, x, y, width, and
// height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the position of the inner rectangle (x, y, width,
// height), without the border, title and footer rows. Width and height never
// go negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.innerX >= 0 {
		return b.innerX, b.innerY, b.innerWidth, b.innerHeight
	}

	x, y, width, height := b.GetRect()

	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.footer != "" || b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}
	return x, y, max(width, 0), max(height, 0)
}

// SetRect sets a new position of the primitive.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x, b.y, b.width, b.height = x, y, width, height
		b.innerX = -1
		b.MarkDirty()
	}
}

// IsDirty returns whether this primitive needs redrawing.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

// MarkDirty marks this primitive as needing a redraw and propagates the mark
// to the containing primitive, if any.
func (b *Box) MarkDirty() {
	if b.dirty.Swap(true) {
		return
	}
	if parent := b.dirtyParent.Load(); parent != nil {
		parent.MarkDirty()
	}
}

// MarkClean marks this primitive as clean.
func (b *Box) MarkClean() {
	b.dirty.Store(false)
}

func (b *Box) setDirtyParent(parent *Box) {
	if parent == nil || parent == b {
		return
	}
	b.dirtyParent.Store(parent)
}

type dirtyParentSetter interface {
	setDirtyParent(parent *Box)
}

// BindDirtyParent makes child dirty its container whenever it becomes dirty.
// Containers call this when they adopt a child.
func BindDirtyParent(child Primitive, parent *Box) {
	if child == nil || parent == nil {
		return
	}
	if setter, ok := child.(dirtyParentSetter); ok {
		setter.setDirtyParent(parent)
	}
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler focuses the box on a left click inside its rect.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect returns true if the given coordinate is within the bounds of the box's
// rectangle.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(flag Borders) *Box {
	if b.borders != flag {
		b.borders = flag
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// SetBorderSet sets the runes used for the border.
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	if b.borderSet != borderSet {
		b.borderSet = borderSet
		b.MarkDirty()
	}
	return b
}

// SetTitle sets the box's title.
func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// SetFooter sets the text drawn over the bottom border.
func (b *Box) SetFooter(footer string) *Box {
	if b.footer != footer {
		b.footer = footer
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// Draw draws this primitive onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws this box under the assumption that primitive p is a
// subclass of this box. Only call this function from your own primitives.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	background := tcell.StyleDefault.Background(b.backgroundColor)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.SetContent(x, y, ' ', nil, background)
		}
	}

	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		style := b.borderStyle
		if p.HasFocus() {
			style = style.Foreground(Styles.FocusedBorderColor)
		}
		right, bottom := b.x+b.width-1, b.y+b.height-1
		if b.borders.Has(BordersTop) {
			putRun(screen, b.x+1, right, b.y, b.borderSet.Top, style)
		}
		if b.borders.Has(BordersBottom) {
			putRun(screen, b.x+1, right, bottom, b.borderSet.Bottom, style)
		}
		for y := b.y + 1; y < bottom; y++ {
			if b.borders.Has(BordersLeft) {
				putCluster(screen, b.x, y, b.borderSet.Left, style)
			}
			if b.borders.Has(BordersRight) {
				putCluster(screen, right, y, b.borderSet.Right, style)
			}
		}
		if b.borders.Has(BordersTop | BordersLeft) {
			putCluster(screen, b.x, b.y, b.borderSet.TopLeft, style)
		}
		if b.borders.Has(BordersTop | BordersRight) {
			putCluster(screen, right, b.y, b.borderSet.TopRight, style)
		}
		if b.borders.Has(BordersBottom | BordersLeft) {
			putCluster(screen, b.x, bottom, b.borderSet.BottomLeft, style)
		}
		if b.borders.Has(BordersBottom | BordersRight) {
			putCluster(screen, right, bottom, b.borderSet.BottomRight, style)
		}
	}

	if b.title != "" && b.width >= 4 {
		b.drawCaption(screen, b.title, b.y, b.titleAlignment, b.titleStyle)
	}
	if b.footer != "" && b.width >= 4 {
		b.drawCaption(screen, b.footer, b.y+b.height-1, b.footerAlignment, b.footerStyle)
	}

	// Remember the inner rect.
	b.innerX = -1
	b.innerX, b.innerY, b.innerWidth, b.innerHeight = b.GetInnerRect()
}

// drawCaption prints a title or footer on row y, ending it with an ellipsis
// when it does not fit.
func (b *Box) drawCaption(screen tcell.Screen, text string, y int, alignment Alignment, style tcell.Style) {
	start, end, _ := printWithStyle(screen, text, b.x+1, y, 0, b.width-2, alignment, style, true)
	printed := end - start
	if len(text)-printed > 0 && printed > 0 {
		xEllipsis := b.x + b.width - 2
		if alignment == AlignmentRight {
			xEllipsis = b.x + 1
		}
		_, _, existing, _ := screen.GetContent(xEllipsis, y)
		fg, _, _ := existing.Decompose()
		Print(screen, SemigraphicsHorizontalEllipsis, xEllipsis, y, 1, AlignmentLeft, fg)
	}
}

// SetFocusFunc sets a callback function which is invoked when this primitive
// receives focus. Set to nil to remove the callback function.
func (b *Box) SetFocusFunc(callback func()) *Box {
	b.focus = callback
	return b
}

// Focus is called when this primitive directly receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
	if b.focus != nil {
		b.focus()
	}
}

// Blur is called when this primitive directly loses focus.
func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
}

// HasFocus returns whether or not this primitive has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}
