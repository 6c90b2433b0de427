package renderers

import (
	"github.com/lixenwraith/vi-timer/render"
	"github.com/lixenwraith/vi-timer/timer"
)

// PengerRenderer draws the walker along the bottom edge of the canvas
type PengerRenderer struct {
	sheet   *render.Sheet
	visible bool
}

// NewPengerRenderer creates a walker renderer
func NewPengerRenderer(sheet *render.Sheet, visible bool) *PengerRenderer {
	return &PengerRenderer{sheet: sheet, visible: visible}
}

// IsVisible implements VisibilityToggle
func (r *PengerRenderer) IsVisible() bool {
	return r.visible
}

// Render implements SystemRenderer
func (r *PengerRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	flipped := ctx.Mode == timer.ModeCountdown
	src, dst := render.PengerQuad(r.sheet, ctx.CanvasWidth, ctx.CanvasHeight, ctx.DisplayedTime, flipped)
	canvas.DrawQuad(r.sheet, src, dst, render.RGBWhite)
}
