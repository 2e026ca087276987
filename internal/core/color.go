package core

// Color is a palette index for a cell's foreground. The TUI layer owns
// the mapping from palette entries to concrete ANSI codes; simulation
// and renderer code only picks from the palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightMagenta
	ColorBrightWhite
	ColorOrange
	ColorGray
)
