// Package timer holds the displayed-time state machine driven once per frame
package timer

import (
	"fmt"
	"log"
	"math"

	"github.com/lixenwraith/vi-timer/constant"
)

// State is owned by the frame loop goroutine and is not safe for concurrent use
type State struct {
	mode               Mode
	displayedTime      float64
	paused             bool
	exitAfterCountdown bool
	finished           bool

	wiggleIndex    uint64
	wiggleCooldown float64
	userScale      float64

	clock WallClock
}

// New creates a state with default counters and applies the scanned options
func New(opts Options, clock WallClock) *State {
	s := &State{
		wiggleCooldown: constant.WiggleDuration,
		userScale:      constant.DefaultUserScale,
		clock:          clock,
	}

	s.mode = opts.Mode
	s.paused = opts.Paused
	s.exitAfterCountdown = opts.ExitAfterCountdown
	if opts.Mode == ModeCountdown {
		s.displayedTime = opts.Duration
	}

	return s
}

// Initialize scans args and creates a fresh state, used at startup and on reload
func Initialize(args []string, clock WallClock) (*State, error) {
	opts, err := ParseArgs(args)
	if err != nil {
		return nil, err
	}
	return New(opts, clock), nil
}

// Advance moves the state forward by dt seconds, called exactly once per frame
func (s *State) Advance(dt float64) Outcome {
	// Wiggle runs regardless of pause
	if s.wiggleCooldown <= 0 {
		s.wiggleIndex++
		s.wiggleCooldown = constant.WiggleDuration
	}
	s.wiggleCooldown -= dt

	if s.paused {
		return OutcomeNone
	}

	switch s.mode {
	case ModeAscending:
		s.displayedTime += dt

	case ModeCountdown:
		return s.advanceCountdown(dt)

	case ModeClock:
		s.advanceClock(dt)
	}

	return OutcomeNone
}

func (s *State) advanceCountdown(dt float64) Outcome {
	if s.displayedTime > constant.CountdownEpsilon {
		s.displayedTime -= dt
		if s.displayedTime > constant.CountdownEpsilon {
			return OutcomeNone
		}
	}

	s.displayedTime = 0
	if s.exitAfterCountdown {
		s.finished = true
		return OutcomeExit
	}
	if !s.finished {
		s.finished = true
		return OutcomeFinished
	}
	return OutcomeNone
}

func (s *State) advanceClock(dt float64) {
	if s.clock == nil {
		log.Printf("timer: clock update skipped: %v", ErrNoLocation)
		return
	}
	now, err := s.clock.Now()
	if err != nil {
		log.Printf("timer: clock update skipped: %v", err)
		return
	}

	prev := s.displayedTime
	candidate := float64(now.Second()) + float64(now.Minute())*60 + float64(now.Hour())*3600
	if candidate > prev {
		s.displayedTime = candidate
		return
	}

	// Same second: add sub-second progress without crossing into the next second
	if math.Floor(prev) == math.Floor(prev+dt) {
		s.displayedTime = prev + dt
	}
}

// TogglePause flips the pause flag
func (s *State) TogglePause() {
	s.paused = !s.paused
}

// AdjustScale changes the user scale relative to its current value
func (s *State) AdjustScale(factor float64) {
	s.userScale += factor * s.userScale
}

// ResetScale restores the default user scale
func (s *State) ResetScale() {
	s.userScale = constant.DefaultUserScale
}

func (s *State) Mode() Mode { return s.mode }
func (s *State) DisplayedTime() float64 { return s.displayedTime }
func (s *State) Paused() bool { return s.paused }
func (s *State) ExitAfterCountdown() bool { return s.exitAfterCountdown }
func (s *State) WiggleIndex() uint64 { return s.wiggleIndex }
func (s *State) UserScale() float64 { return s.userScale }
func (s *State) Finished() bool { return s.finished }

// maxSplitSeconds keeps huge or infinite durations convertible to int64
const maxSplitSeconds = 1 << 53

// Split returns the whole hours, minutes and seconds of the displayed time
func (s *State) Split() (hours, minutes, seconds int) {
	t := int64(math.Floor(math.Min(math.Max(s.displayedTime, 0), maxSplitSeconds)))
	return int(t / 3600), int(t / 60 % 60), int(t % 60)
}

// Title formats the displayed time for the terminal title
func (s *State) Title() string {
	h, m, sec := s.Split()
	return fmt.Sprintf("%02d:%02d:%02d%s", h, m, sec, constant.TitleSuffix)
}
