package renderers

import (
	"github.com/lixenwraith/vi-timer/constant"
	"github.com/lixenwraith/vi-timer/render"
)

// glyphWiggle is the wiggle row offset of each glyph cell in HH:MM:SS
var glyphWiggle = [constant.CharsCount]uint64{0, 1, 0, 2, 3, 1, 4, 5}

// DigitsRenderer draws the HH:MM:SS text from the digit sheet
type DigitsRenderer struct {
	sheet   *render.Sheet
	palette render.Palette
}

// NewDigitsRenderer creates a digits renderer over the given sheet
func NewDigitsRenderer(sheet *render.Sheet, palette render.Palette) *DigitsRenderer {
	return &DigitsRenderer{sheet: sheet, palette: palette}
}

// Render implements SystemRenderer
func (r *DigitsRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	layout := render.InitialPen(ctx.CanvasWidth, ctx.CanvasHeight, ctx.UserScale)
	if layout.GlyphW <= 0 || layout.GlyphH <= 0 {
		return
	}

	tint := r.palette.Tint(ctx.IsPaused)
	hours := ctx.Hours % 100

	glyphs := [constant.CharsCount]int{
		hours / 10, hours % 10,
		constant.ColonIndex,
		ctx.Minutes / 10, ctx.Minutes % 10,
		constant.ColonIndex,
		ctx.Seconds / 10, ctx.Seconds % 10,
	}

	penX := layout.PenX
	for i, g := range glyphs {
		wiggle := int((ctx.WiggleIndex + glyphWiggle[i]) % constant.WiggleCount)
		dst := render.Rect{X: penX, Y: layout.PenY, W: layout.GlyphW, H: layout.GlyphH}
		canvas.DrawQuad(r.sheet, render.GlyphRect(g, wiggle), dst, tint)
		penX += layout.GlyphW
	}
}
