package gfx

import "image/color"

var (
	ColorClear  = color.RGBA{}
	ColorBlack  = color.RGBA{A: 0xFF}
	ColorWhite  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorOrange = color.RGBA{R: 0xFF, G: 0x55, A: 0xFF}
	ColorBlue   = color.RGBA{B: 0xFF, A: 0xFF}
)

// RGB565 packs c into the framebuffer pixel format.
func RGB565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}
