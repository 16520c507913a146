package wheel

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// wheelLine is one label placed on a terminal row.
type wheelLine struct {
	Index  int
	Row    int
	Center bool
}

// wheelLayout is the result of placing the visible labels of a wheel.
type wheelLayout struct {
	Lines     []wheelLine
	CenterRow int
	// ToSnap is the distance between the geometric center and the top of the
	// center label's slot, less half a line. It is zero at rest.
	ToSnap float64
}

// layoutWheel places the labels visible in rows [top, top+height). line is the
// selection as a real number in [0, count) including the half-line bias, the
// value returned by selectionTracker.currentLine.
//
// A label slot spans lineHeight units starting at its y and the label is drawn
// on the row holding the slot's middle.
func layoutWheel(line, lineHeight float64, count int, wrapping bool, top, height int) wheelLayout {
	layout := wheelLayout{CenterRow: top + height/2}
	if count <= 0 || lineHeight <= 0 || height <= 0 {
		return layout
	}

	centerIndex := int(math.Floor(line))
	fractional := line - float64(centerIndex)
	centerY := float64(top) + float64(height)/2
	bottom := float64(top + height)

	topIndex := centerIndex - int(math.Floor((centerY-float64(top))/lineHeight)) - 1
	lineY := centerY - (float64(centerIndex-topIndex)+fractional)*lineHeight
	layout.ToSnap = centerY - lineHeight/2 - (lineY + float64(centerIndex-topIndex)*lineHeight)

	for index := topIndex; lineY < bottom; index, lineY = index+1, lineY+lineHeight {
		row := int(math.Floor(lineY + lineHeight/2 + 1e-9))
		if row < top || row >= top+height {
			continue
		}
		value := index
		if wrapping {
			value = ((index % count) + count) % count
		} else if index < 0 || index >= count {
			continue
		}
		layout.Lines = append(layout.Lines, wheelLine{
			Index:  value,
			Row:    row,
			Center: index == centerIndex,
		})
	}
	return layout
}

// wheelRenderer paints a layout and remembers the last snap distance.
type wheelRenderer struct {
	styles WheelStyles
	marker bool
	toSnap float64
}

func (r *wheelRenderer) draw(screen tcell.Screen, values ValueList, layout wheelLayout, x, width int) {
	r.toSnap = layout.ToSnap
	if width <= 0 {
		return
	}

	center := r.styles.Center
	if r.marker {
		_, bg, _ := r.styles.Marker.Decompose()
		center = center.Background(bg)
		for col := x; col < x+width; col++ {
			screen.SetContent(col, layout.CenterRow, ' ', nil, r.styles.Marker)
		}
	}

	// With lines shorter than a row several labels share a row; the center
	// label is drawn last so it is never overwritten.
	var centerLine *wheelLine
	for i := range layout.Lines {
		line := &layout.Lines[i]
		if line.Center {
			centerLine = line
			continue
		}
		PrintStyled(screen, values.At(line.Index), x, line.Row, width, AlignmentCenter, r.styles.Secondary)
	}
	if centerLine != nil {
		PrintStyled(screen, values.At(centerLine.Index), x, centerLine.Row, width, AlignmentCenter, center)
	}
}
