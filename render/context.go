package render

import (
	"github.com/lixenwraith/vi-timer/timer"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	DisplayedTime float64
	WiggleIndex   uint64
	UserScale     float64
	Mode          timer.Mode
	IsPaused      bool
	Fullscreen    bool

	// Digits of floor(displayed time)
	Hours, Minutes, Seconds int
	Title                   string

	// Canvas size in pixels
	CanvasWidth  int
	CanvasHeight int

	// Terminal size in cells
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext snapshots the timer state for one frame
func NewRenderContext(s *timer.State, fullscreen bool) RenderContext {
	h, m, sec := s.Split()
	return RenderContext{
		DisplayedTime: s.DisplayedTime(),
		WiggleIndex:   s.WiggleIndex(),
		UserScale:     s.UserScale(),
		Mode:          s.Mode(),
		IsPaused:      s.Paused(),
		Fullscreen:    fullscreen,
		Hours:         h,
		Minutes:       m,
		Seconds:       sec,
		Title:         s.Title(),
	}
}
