package render

import "image/color"

// Global render configuration for the icon palette and output resolutions.
var (
	// Catppuccin-derived palette.
	Background = color.NRGBA{R: 0x89, G: 0xB4, B: 0xFA, A: 0xFF} // #89b4fa
	Inner      = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x2E, A: 0xFF} // #1e1e2e
	Arrow      = color.NRGBA{R: 0xA6, G: 0xE3, B: 0xA1, A: 0xFF} // #a6e3a1
	Glyph      = color.NRGBA{R: 0xF3, G: 0x8B, B: 0xA8, A: 0xFF} // #f38ba8
)

// Sizes returns the default icon resolutions, largest first.
func Sizes() []int {
	return []int{256, 128, 64, 48, 32, 16}
}
