package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-timer/render"
)

const keyHints = "[space] pause  [=/-/0] zoom  [F5] reload  [F11] full  [q] quit"

// StatusBarRenderer draws mode, pause state, zoom and key hints on the bottom row
type StatusBarRenderer struct {
	palette render.Palette
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(palette render.Palette) *StatusBarRenderer {
	return &StatusBarRenderer{palette: palette}
}

// StatusText returns the status row text for a frame
func StatusText(ctx render.RenderContext) string {
	state := "running"
	if ctx.IsPaused {
		state = "paused"
	}
	return fmt.Sprintf(" %s  %s  x%.2f  %s", ctx.Mode, state, ctx.UserScale, keyHints)
}

// RenderLine implements LineRenderer
func (s *StatusBarRenderer) RenderLine(ctx render.RenderContext, screen tcell.Screen, row int) {
	style := tcell.StyleDefault.
		Background(s.palette.Background.Tcell()).
		Foreground(s.palette.Hint.Tcell())

	// Clear status bar
	for x := 0; x < ctx.ScreenWidth; x++ {
		screen.SetContent(x, row, ' ', nil, style)
	}

	x := 0
	for _, r := range StatusText(ctx) {
		if x >= ctx.ScreenWidth {
			break
		}
		screen.SetContent(x, row, r, nil, style)
		x++
	}
}
