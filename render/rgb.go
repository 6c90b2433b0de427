package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// RGB is an opaque 8-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// RGBFrom converts a config triple, clamping each channel
func RGBFrom(c [3]int) RGB {
	return RGB{R: clampInt(c[0]), G: clampInt(c[1]), B: clampInt(c[2])}
}

// RGBFromColor unpremultiplies an image color, ok is false below half alpha
func RGBFromColor(c color.Color) (rgb RGB, ok bool) {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return RGB{}, false
	}
	return RGB{
		R: uint8((r * 0xffff / a) >> 8),
		G: uint8((g * 0xffff / a) >> 8),
		B: uint8((b * 0xffff / a) >> 8),
	}, true
}

// Tcell returns the true color tcell value
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clampInt(v int) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

// fastDiv255 approximates x / 255 using integer math
// Formula: (x + (x >> 8) + 1) >> 8
func fastDiv255(x int) int {
	return (x + (x >> 8) + 1) >> 8
}

// Multiply modulates c by tint per channel, white tint is identity
func Multiply(c, tint RGB) RGB {
	return RGB{
		R: uint8(fastDiv255(int(c.R) * int(tint.R))),
		G: uint8(fastDiv255(int(c.G) * int(tint.G))),
		B: uint8(fastDiv255(int(c.B) * int(tint.B))),
	}
}
