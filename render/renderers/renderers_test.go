package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-timer/config"
	"github.com/lixenwraith/vi-timer/render"
	"github.com/lixenwraith/vi-timer/timer"
)

func countColor(c *render.Canvas, rgb render.RGB) int {
	w, h := c.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.At(x, y) == rgb {
				n++
			}
		}
	}
	return n
}

func frameContext(s *timer.State, cols, rows int) (render.RenderContext, *render.Canvas) {
	canvas := render.NewCanvas(cols, rows)
	ctx := render.NewRenderContext(s, false)
	ctx.CanvasWidth, ctx.CanvasHeight = canvas.Size()
	ctx.ScreenWidth, ctx.ScreenHeight = cols, rows
	return ctx, canvas
}

func TestDigitsRendererTint(t *testing.T) {
	palette := render.NewPalette(config.Default().Display)
	r := NewDigitsRenderer(render.NewDigitSheet(), palette)

	s := timer.New(timer.Options{Mode: timer.ModeCountdown, Duration: 5415}, nil)
	ctx, canvas := frameContext(s, 80, 24)
	canvas.Clear(palette.Background)
	r.Render(ctx, canvas)

	if countColor(canvas, palette.Main) == 0 {
		t.Error("Expected digits drawn in main color")
	}
	if countColor(canvas, palette.Pause) != 0 {
		t.Error("Expected no pause color while running")
	}

	s.TogglePause()
	ctx, canvas = frameContext(s, 80, 24)
	canvas.Clear(palette.Background)
	r.Render(ctx, canvas)

	if countColor(canvas, palette.Pause) == 0 {
		t.Error("Expected digits drawn in pause color")
	}
	if countColor(canvas, palette.Main) != 0 {
		t.Error("Expected no main color while paused")
	}
}

func TestDigitsRendererZeroScale(t *testing.T) {
	palette := render.NewPalette(config.Default().Display)
	r := NewDigitsRenderer(render.NewDigitSheet(), palette)

	s := timer.New(timer.Options{}, nil)
	for i := 0; i < 40; i++ {
		s.AdjustScale(-0.15)
	}
	ctx, canvas := frameContext(s, 80, 24)
	canvas.Clear(palette.Background)
	r.Render(ctx, canvas)

	if countColor(canvas, palette.Main) != 0 {
		t.Error("Expected nothing drawn when glyphs shrink below a pixel")
	}
}

func TestPengerRendererVisibility(t *testing.T) {
	r := NewPengerRenderer(render.NewPengerSheet(), false)
	if r.IsVisible() {
		t.Error("Expected hidden walker")
	}

	r = NewPengerRenderer(render.NewPengerSheet(), true)
	s := timer.New(timer.Options{}, nil)
	s.Advance(20) // Walker a third of the way across
	ctx, canvas := frameContext(s, 80, 24)
	canvas.Clear(render.RGBBlack)
	r.Render(ctx, canvas)

	if countColor(canvas, render.RGBBlack) == 80*48 {
		t.Error("Expected walker pixels on canvas")
	}
}

func TestStatusBar(t *testing.T) {
	s := timer.New(timer.Options{Mode: timer.ModeClock, Paused: true}, nil)
	ctx := render.NewRenderContext(s, false)

	text := StatusText(ctx)
	if !strings.Contains(text, "clock") || !strings.Contains(text, "paused") || !strings.Contains(text, "x1.00") {
		t.Errorf("Unexpected status text %q", text)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	ctx.ScreenWidth, ctx.ScreenHeight = 10, 2
	NewStatusBarRenderer(render.NewPalette(config.Default().Display)).RenderLine(ctx, screen, 1)

	if mainc, _, _, _ := screen.GetContent(1, 1); mainc != 'c' {
		t.Errorf("Expected status text truncated to width, got %q at column 1", mainc)
	}
}
