package wheel

// BorderSet defines the clusters used to draw a box border.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// BorderSetPlain draws single light lines with square corners.
func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
	}
}

// BorderSetRound draws single light lines with rounded corners.
func BorderSetRound() BorderSet {
	border := BorderSetPlain()
	border.TopLeft = BoxDrawingsLightArcDownAndRight
	border.TopRight = BoxDrawingsLightArcDownAndLeft
	border.BottomLeft = BoxDrawingsLightArcUpAndRight
	border.BottomRight = BoxDrawingsLightArcUpAndLeft
	return border
}

// Borders is a bit set selecting which edges of a box are drawn.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether all of the edges in flag are set.
func (b Borders) Has(flag Borders) bool {
	return b&flag == flag
}
