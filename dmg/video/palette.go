package video

import "image/color"

// Palette is one of the BGP/OBP0/OBP1 registers: four 2-bit shades, the
// shade for color index n sits in bits 2n+1..2n.
type Palette uint8

// Shade maps a color index (0-3) to a shade (0 white, 3 black).
func (p Palette) Shade(index uint8) uint8 {
	return (uint8(p) >> (index * 2)) & 0x03
}

// GBColor is a shade expressed as 0xAARRGGBB.
type GBColor uint32

const (
	WhiteColor     GBColor = 0xFFFFFFFF
	LightGreyColor GBColor = 0xFF989898
	DarkGreyColor  GBColor = 0xFF4C4C4C
	BlackColor     GBColor = 0xFF000000
)

var shadeColors = [4]GBColor{WhiteColor, LightGreyColor, DarkGreyColor, BlackColor}

// ShadeToColor returns the display color of a shade (0-3).
func ShadeToColor(shade uint8) GBColor {
	return shadeColors[shade&0x03]
}

// RGBA implements color.Color.
func (c GBColor) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c GBColor) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}
