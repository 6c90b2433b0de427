// Package engine runs the frame loop: input dispatch, state advance, render and pacing
package engine

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-timer/audio"
	"github.com/lixenwraith/vi-timer/config"
	"github.com/lixenwraith/vi-timer/constant"
	"github.com/lixenwraith/vi-timer/core"
	"github.com/lixenwraith/vi-timer/input"
	"github.com/lixenwraith/vi-timer/render"
	"github.com/lixenwraith/vi-timer/timer"
)

// AppConfig wires an App, zero fields get defaults where one exists
type AppConfig struct {
	Screen  tcell.Screen
	Args    []string // Timer arguments, re-scanned on reload
	Clock   timer.WallClock
	State   *timer.State
	Display config.DisplayConfig
	Keys    *input.KeyTable
	Sound   audio.Player
	Time    TimeProvider
}

// App owns the timer state and the terminal for the lifetime of the loop
type App struct {
	screen tcell.Screen
	args   []string
	clock  timer.WallClock
	state  *timer.State

	input        *input.Handler
	orchestrator *render.RenderOrchestrator
	sound        audio.Player
	time         TimeProvider

	scaleFactor   float64
	frameInterval time.Duration
	fullscreen    bool
	lastFrame     time.Time
}

// NewApp builds the render pipeline on cfg.Screen and returns a ready loop
func NewApp(cfg AppConfig) *App {
	if cfg.Sound == nil {
		cfg.Sound = audio.NopPlayer{}
	}
	if cfg.Time == nil {
		cfg.Time = NewMonotonicTimeProvider()
	}

	interval := constant.FrameInterval
	if cfg.Display.FPS > 0 {
		interval = time.Second / time.Duration(cfg.Display.FPS)
	}
	scale := cfg.Display.ScaleFactor
	if scale <= 0 {
		scale = constant.ScaleFactor
	}

	return &App{
		screen:        cfg.Screen,
		args:          cfg.Args,
		clock:         cfg.Clock,
		state:         cfg.State,
		input:         input.NewHandler(cfg.Keys),
		orchestrator:  NewOrchestrator(cfg.Screen, cfg.Display),
		sound:         cfg.Sound,
		time:          cfg.Time,
		scaleFactor:   scale,
		frameInterval: interval,
	}
}

// State returns the current timer state, replaced on reload
func (a *App) State() *timer.State { return a.state }

// Fullscreen reports whether the hint line is hidden
func (a *App) Fullscreen() bool { return a.fullscreen }

// Orchestrator exposes the render pipeline
func (a *App) Orchestrator() *render.RenderOrchestrator { return a.orchestrator }

// HandleEvent applies one terminal event, returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	intent := a.input.Translate(ev)

	switch intent {
	case input.IntentQuit:
		log.Printf("quit requested")
		return false

	case input.IntentResize:
		a.orchestrator.Resize()

	case input.IntentFullscreen:
		a.fullscreen = !a.fullscreen

	case input.IntentTogglePause:
		a.state.TogglePause()
		a.sound.PlayClick()

	case input.IntentScaleUp:
		a.state.AdjustScale(a.scaleFactor)

	case input.IntentScaleDown:
		a.state.AdjustScale(-a.scaleFactor)

	case input.IntentScaleReset:
		a.state.ResetScale()

	case input.IntentReload:
		a.reload()
	}

	return true
}

// reload re-creates the state from the stored arguments, keeping the old one on failure
func (a *App) reload() {
	st, err := timer.Initialize(a.args, a.clock)
	if err != nil {
		log.Printf("reload failed, keeping current state: %v", err)
		return
	}
	a.state = st
	log.Printf("reloaded: mode=%s", st.Mode())
}

// Tick advances the state by dt seconds and renders, returns false on exit
func (a *App) Tick(dt float64) bool {
	switch a.state.Advance(dt) {
	case timer.OutcomeFinished:
		log.Printf("countdown finished")
		a.sound.PlayChime()

	case timer.OutcomeExit:
		log.Printf("countdown finished, exiting")
		return false
	}

	a.orchestrator.RenderFrame(render.NewRenderContext(a.state, a.fullscreen))
	return true
}

// Frame measures the real time since the previous frame and ticks
func (a *App) Frame() bool {
	now := a.time.Now()
	dt := now.Sub(a.lastFrame).Seconds()
	a.lastFrame = now

	// A clock that steps backwards yields an empty frame
	if dt < 0 {
		dt = 0
	}
	return a.Tick(dt)
}

// Run drives the loop until quit, countdown exit, or ctx cancellation
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constant.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(a.frameInterval)
	defer ticker.Stop()

	a.lastFrame = a.time.Now()
	if !a.Tick(0) {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("loop cancelled: %v", ctx.Err())
			return nil

		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if !a.Frame() {
				return nil
			}
		}
	}
}
