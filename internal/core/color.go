package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Predefined colors for pieces, the well and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorBrightWhite
)

var colorNames = [...]string{
	ColorDefault:     "default",
	ColorRed:         "red",
	ColorGreen:       "green",
	ColorYellow:      "yellow",
	ColorBlue:        "blue",
	ColorMagenta:     "magenta",
	ColorCyan:        "cyan",
	ColorWhite:       "white",
	ColorGray:        "gray",
	ColorDarkGray:    "dark-gray",
	ColorBrightWhite: "bright-white",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
