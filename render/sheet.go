package render

import (
	"image"
)

// Sheet is a sprite sheet sampled by DrawQuad
type Sheet struct {
	img    image.Image
	bounds image.Rectangle
}

// NewSheet wraps an image as a sprite sheet
func NewSheet(img image.Image) *Sheet {
	return &Sheet{img: img, bounds: img.Bounds()}
}

// Size returns the sheet dimensions in pixels
func (s *Sheet) Size() (int, int) {
	return s.bounds.Dx(), s.bounds.Dy()
}

// Texel returns the unpremultiplied color at sheet-relative (x, y)
// Outside the sheet and below half alpha report ok=false, like a clamp-to-border sampler
func (s *Sheet) Texel(x, y int) (RGB, bool) {
	p := image.Pt(s.bounds.Min.X+x, s.bounds.Min.Y+y)
	if !p.In(s.bounds) {
		return RGB{}, false
	}
	return RGBFromColor(s.img.At(p.X, p.Y))
}
