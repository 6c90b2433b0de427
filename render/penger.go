package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lixenwraith/vi-timer/constant"
)

// pengerFrames is the walk cycle, '.' is transparent
var pengerFrames = [constant.PengerFrames][]string{
	{
		"...kkkk...",
		"..kkkkkk..",
		".kkwkkwkk.",
		".kkkookkk.",
		"kkwwwwwwkk",
		"kkwwwwwwkk",
		"kkwwwwwwkk",
		".kwwwwwwk.",
		".kwwwwwwk.",
		"..kkkkkk..",
		".oo....oo.",
	},
	{
		"...kkkk...",
		"..kkkkkk..",
		".kkwkkwkk.",
		".kkkookkk.",
		".kwwwwwwkk",
		"kkwwwwwwkk",
		"kkwwwwwwk.",
		".kwwwwwwk.",
		".kwwwwwwk.",
		"..kkkkkk..",
		"...oooo...",
	},
}

var pengerPalette = map[byte]color.NRGBA{
	'k': {40, 40, 52, 255},
	'w': {236, 236, 236, 255},
	'o': {245, 160, 40, 255},
}

// NewPengerSheet lays the walk frames side by side
func NewPengerSheet() *Sheet {
	fw, fh := len(pengerFrames[0][0]), len(pengerFrames[0])
	img := image.NewNRGBA(image.Rect(0, 0, fw*constant.PengerFrames, fh))

	for f, rows := range pengerFrames {
		for y, row := range rows {
			for x := 0; x < len(row); x++ {
				if c, ok := pengerPalette[row[x]]; ok {
					img.SetNRGBA(f*fw+x, y, c)
				}
			}
		}
	}

	return NewSheet(img)
}

// PengerQuad computes the walk frame and placement on a w x h pixel canvas
// The walker crosses the canvas once per minute of displayed time, mirrored when flipped
func PengerQuad(sheet *Sheet, w, h int, t float64, flipped bool) (src, dst Rect) {
	sps := constant.PengerStepsPerSecond
	span := 60 * sps
	step := int(math.Floor(math.Max(t, 0)*float64(sps))) % span

	progress := float64(step) / float64(span)
	frame := step % constant.PengerFrames

	sw, sh := sheet.Size()
	frameW := sw / constant.PengerFrames
	drawnW := frameW / constant.PengerScale
	drawnH := sh / constant.PengerScale
	walk := float64(w + drawnW)

	src = Rect{X: frameW * frame, Y: 0, W: frameW, H: sh}
	dst = Rect{
		X: int(math.Floor(walk*progress - float64(drawnW))),
		Y: h - drawnH,
		W: drawnW,
		H: drawnH,
	}

	if flipped {
		src.X += src.W
		src.W = -src.W
	}
	return src, dst
}
