package wheel

import (
	"github.com/gdamore/tcell/v2"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	FocusedBorderColor       tcell.Color // Box borders while the primitive has focus.
	TitleColor               tcell.Color // Box titles.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. labels).
	TertiaryTextColor        tcell.Color // Tertiary text (e.g. notes).

	WheelCenterTextColor    tcell.Color // The selected label of a wheel.
	WheelSecondaryTextColor tcell.Color // The other visible labels of a wheel.
	WheelMarkerColor        tcell.Color // Background of the optional center band.
}

// Styles defines the theme for applications. The default is for a black
// background with a white, bold center label and gray neighbours, the terminal
// rendition of the picker's center and secondary text paints.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorBlack,
	BorderColor:              tcell.ColorWhite,
	FocusedBorderColor:       tcell.ColorYellow,
	TitleColor:               tcell.ColorWhite,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorYellow,
	TertiaryTextColor:        tcell.ColorGreen,

	WheelCenterTextColor:    tcell.ColorWhite,
	WheelSecondaryTextColor: tcell.ColorGray,
	WheelMarkerColor:        tcell.ColorNavy,
}

// WheelStyles holds the two label paints of a wheel picker.
type WheelStyles struct {
	Center    tcell.Style
	Secondary tcell.Style
	// Marker fills the whole center row behind the selected label when the
	// center marker is enabled.
	Marker tcell.Style
}

// DefaultWheelStyles derives wheel styles from the global Styles theme.
func DefaultWheelStyles() WheelStyles {
	return WheelStyles{
		Center:    tcell.StyleDefault.Foreground(Styles.WheelCenterTextColor).Bold(true),
		Secondary: tcell.StyleDefault.Foreground(Styles.WheelSecondaryTextColor),
		Marker:    tcell.StyleDefault.Background(Styles.WheelMarkerColor),
	}
}
