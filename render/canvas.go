package render

import (
	"github.com/gdamore/tcell/v2"
)

// upperHalf draws the top pixel as foreground and the bottom pixel as background
const upperHalf = '▀'

// Rect is a pixel rectangle, a negative W or H on a source rect mirrors that axis
type Rect struct {
	X, Y, W, H int
}

// Canvas is a pixel buffer two pixels tall per terminal cell
type Canvas struct {
	pixels []RGB
	width  int // Pixels, equals terminal columns
	height int // Pixels, twice the terminal rows
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts canvas dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	size := cols * rows * 2
	if cap(c.pixels) < size {
		c.pixels = make([]RGB, size)
	} else {
		c.pixels = c.pixels[:size]
	}
	c.width = cols
	c.height = rows * 2
}

// Size returns the pixel dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear fills the canvas with bg using exponential copy
func (c *Canvas) Clear(bg RGB) {
	if len(c.pixels) == 0 {
		return
	}
	c.pixels[0] = bg
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
}

// inBounds returns true if in canvas bounds
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes one pixel, out of bounds writes are dropped
func (c *Canvas) Set(x, y int, rgb RGB) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = rgb
}

// At reads one pixel, out of bounds reads return black
func (c *Canvas) At(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	return c.pixels[y*c.width+x]
}

// DrawQuad copies src from the sheet scaled into dst, modulating each texel by tint
// Sampling is nearest neighbour at pixel centres; transparent texels are skipped
func (c *Canvas) DrawQuad(sheet *Sheet, src, dst Rect, tint RGB) {
	if dst.W <= 0 || dst.H <= 0 || src.W == 0 || src.H == 0 {
		return
	}

	// Clip destination to canvas
	x0, y0 := max(dst.X, 0), max(dst.Y, 0)
	x1, y1 := min(dst.X+dst.W, c.width), min(dst.Y+dst.H, c.height)

	for y := y0; y < y1; y++ {
		v := (float64(y-dst.Y) + 0.5) / float64(dst.H)
		sy := floorInt(float64(src.Y) + float64(src.H)*v)
		for x := x0; x < x1; x++ {
			u := (float64(x-dst.X) + 0.5) / float64(dst.W)
			sx := floorInt(float64(src.X) + float64(src.W)*u)

			texel, ok := sheet.Texel(sx, sy)
			if !ok {
				continue
			}
			c.pixels[y*c.width+x] = Multiply(texel, tint)
		}
	}
}

// FlushToScreen writes the canvas to screen rows [0, height/2) as half blocks
func (c *Canvas) FlushToScreen(screen tcell.Screen) {
	rows := c.height / 2
	for row := 0; row < rows; row++ {
		top := c.pixels[(2*row)*c.width : (2*row+1)*c.width]
		bottom := c.pixels[(2*row+1)*c.width : (2*row+2)*c.width]
		for x := 0; x < c.width; x++ {
			if top[x] == bottom[x] {
				screen.SetContent(x, row, ' ', nil, tcell.StyleDefault.Background(top[x].Tcell()))
				continue
			}
			style := tcell.StyleDefault.Foreground(top[x].Tcell()).Background(bottom[x].Tcell())
			screen.SetContent(x, row, upperHalf, nil, style)
		}
	}
}

func floorInt(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
