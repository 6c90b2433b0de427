package render

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/vi-timer/constant"
)

// sheetGlyphs lists the digit sheet columns in order, ':' sits at ColonIndex
const sheetGlyphs = "0123456789:"

// wiggleAmplitude is the peak horizontal shear in pixels, rounds to -1..1
const wiggleAmplitude = 0.75

// NewDigitSheet renders 0-9 and ':' from basicfont.Face7x13 into a sheet with
// WiggleCount rows, each row sheared with a different phase
func NewDigitSheet() *Sheet {
	w := constant.SheetGlyphs * constant.CharWidth
	h := constant.CharHeight

	base := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  base,
		Src:  image.Opaque,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, constant.CharAscent),
	}
	d.DrawString(sheetGlyphs)

	sheet := image.NewAlpha(image.Rect(0, 0, w, h*constant.WiggleCount))
	for v := 0; v < constant.WiggleCount; v++ {
		for y := 0; y < h; y++ {
			shift := wiggleShift(v, y)
			for g := 0; g < constant.SheetGlyphs; g++ {
				for x := 0; x < constant.CharWidth; x++ {
					sx := x - shift
					if sx < 0 || sx >= constant.CharWidth {
						continue
					}
					sheet.SetAlpha(g*constant.CharWidth+x, v*h+y, base.AlphaAt(g*constant.CharWidth+sx, y))
				}
			}
		}
	}

	return NewSheet(sheet)
}

// wiggleShift returns the horizontal offset of row y in wiggle variant v
func wiggleShift(v, y int) int {
	phase := float64(y)/float64(constant.CharHeight) + float64(v)/float64(constant.WiggleCount)
	return int(math.Round(wiggleAmplitude * math.Sin(2*math.Pi*phase)))
}

// GlyphRect returns the sheet region of glyph index g in wiggle row
func GlyphRect(g, wiggle int) Rect {
	return Rect{
		X: g * constant.CharWidth,
		Y: wiggle * constant.CharHeight,
		W: constant.CharWidth,
		H: constant.CharHeight,
	}
}
