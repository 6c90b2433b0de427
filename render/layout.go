package render

import (
	"math"

	"github.com/lixenwraith/vi-timer/constant"
)

// Layout is the placement of the HH:MM:SS text on a pixel canvas
type Layout struct {
	PenX, PenY int
	Fit        float64 // Scale that fits the text to the canvas at user scale 1
	GlyphW     int
	GlyphH     int
}

// InitialPen fits the text to a w x h canvas and centres it at userScale
func InitialPen(w, h int, userScale float64) Layout {
	var fit float64
	if w > 0 && h > 0 {
		textAspect := float64(constant.TextWidth) / float64(constant.TextHeight)
		canvasAspect := float64(w) / float64(h)
		if textAspect > canvasAspect {
			fit = float64(w) / float64(constant.TextWidth)
		} else {
			fit = float64(h) / float64(constant.TextHeight)
		}
	}

	gw := int(math.Floor(float64(constant.CharWidth) * userScale * fit))
	gh := int(math.Floor(float64(constant.CharHeight) * userScale * fit))

	return Layout{
		PenX:   w/2 - gw*constant.CharsCount/2,
		PenY:   h/2 - gh/2,
		Fit:    fit,
		GlyphW: gw,
		GlyphH: gh,
	}
}
