package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a foreground color for a screen cell. The value is anything
// lipgloss.Color accepts: an ANSI index ("9", "208") or a hex triplet.
// The empty string means the terminal default.
type Color string

// Predefined colors for trainer chrome.
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorCyan        Color = "6"
	ColorBrightRed   Color = "9"
	ColorBrightGreen Color = "10"
	ColorBrightWhite Color = "15"
	ColorOrange      Color = "208"
	ColorGray        Color = "245"
)

// HSL builds a hex color from hue (degrees), saturation and lightness (0-1).
func HSL(h, s, l float64) Color {
	return Color(colorful.Hsl(h, s, l).Clamped().Hex())
}
