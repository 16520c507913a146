package wheel

import "github.com/gdamore/tcell/v2"

// Primitive is anything the Application can lay out, draw and route input to.
// WheelPicker and the daytime composite are primitives; Box is the common base.
type Primitive interface {
	// Draw paints the primitive into its current rect.
	Draw(screen tcell.Screen)

	// GetRect returns x, y, width and height.
	GetRect() (int, int, int, int)
	// SetRect places the primitive. Containers call this before Draw.
	SetRect(x, y, width, height int)

	// InputHandler receives key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse events. A non-nil returned primitive
	// captures all following mouse events until it returns nil again, which
	// is how a drag keeps reaching the widget after the pointer leaves it.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command)
	// PasteHandler receives bracketed paste text.
	PasteHandler(text string) Command

	// HasFocus reports focus, including focus held by a child.
	HasFocus() bool
	// Focus is called when the primitive receives focus. Containers may pass
	// it on by calling delegate.
	Focus(delegate func(p Primitive))
	// Blur is called when the primitive loses focus.
	Blur()
}
