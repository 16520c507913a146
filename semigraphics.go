package wheel

// Semigraphics used by box borders and captions. Using strings
// with \u escapes to keep the source ASCII-safe.
const (
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	BoxDrawingsLightHorizontal      = "\u2500" // ─
	BoxDrawingsLightVertical        = "\u2502" // │
	BoxDrawingsLightDownAndRight    = "\u250c" // ┌
	BoxDrawingsLightDownAndLeft     = "\u2510" // ┐
	BoxDrawingsLightUpAndRight      = "\u2514" // └
	BoxDrawingsLightUpAndLeft       = "\u2518" // ┘
	BoxDrawingsLightArcDownAndRight = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft  = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft    = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight   = "\u2570" // ╰
)
