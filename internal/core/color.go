package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal layer.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// hueWheel lists colors in hue order starting at red.
var hueWheel = [...]Color{
	ColorRed, ColorOrange, ColorYellow, ColorGreen,
	ColorCyan, ColorBlue, ColorMagenta,
}

// HueColor returns the wheel color closest to a hue in [0, 1).
func HueColor(hue float32) Color {
	if hue < 0 || hue >= 1 {
		hue = 0
	}
	return hueWheel[int(hue*float32(len(hueWheel)))%len(hueWheel)]
}
