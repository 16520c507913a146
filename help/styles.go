package help

import (
	"github.com/gdamore/tcell/v2"
)

// Styles are the paints of a help bar.
type Styles struct {
	KeyStyle       tcell.Style
	DescStyle      tcell.Style
	SeparatorStyle tcell.Style
	EllipsisStyle  tcell.Style
}

// DefaultStyles dims keys and separators and leaves descriptions plain.
func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	return Styles{
		KeyStyle:       dim,
		DescStyle:      tcell.StyleDefault,
		SeparatorStyle: dim,
		EllipsisStyle:  dim,
	}
}
