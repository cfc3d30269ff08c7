package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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

// paletteHex holds the xterm reference value of each palette entry.
var paletteHex = map[Color]string{
	ColorRed:           "#cd0000",
	ColorGreen:         "#00cd00",
	ColorYellow:        "#cdcd00",
	ColorBlue:          "#0000ee",
	ColorMagenta:       "#cd00cd",
	ColorCyan:          "#00cdcd",
	ColorWhite:         "#e5e5e5",
	ColorBrightRed:     "#ff0000",
	ColorBrightGreen:   "#00ff00",
	ColorBrightYellow:  "#ffff00",
	ColorBrightBlue:    "#5c5cff",
	ColorBrightMagenta: "#ff00ff",
	ColorBrightCyan:    "#00ffff",
	ColorBrightWhite:   "#ffffff",
	ColorOrange:        "#ff8700",
	ColorGray:          "#8a8a8a",
}

// Hex returns the reference RGB value of the color as "#rrggbb".
// ColorDefault has no fixed value and returns "".
func (c Color) Hex() string {
	return paletteHex[c]
}

// PaletteColors returns every color that has a reference RGB value.
func PaletteColors() []Color {
	out := make([]Color, 0, len(paletteHex))
	for c := ColorRed; c <= ColorGray; c++ {
		out = append(out, c)
	}
	return out
}
