package timer

import (
	"fmt"

	"github.com/lixenwraith/vi-timer/timespec"
)

// Argument tokens
const (
	ArgPaused     = "-p"
	ArgExitOnDone = "-e"
	ArgClock      = "clock"
)

// Options is the result of scanning timer arguments
type Options struct {
	Mode               Mode
	Duration           float64 // Countdown start in seconds
	Paused             bool
	ExitAfterCountdown bool
}

// ParseArgs scans tokens left to right, the last duration or clock token wins
func ParseArgs(args []string) (Options, error) {
	var opts Options

	for _, tok := range args {
		switch tok {
		case ArgPaused:
			opts.Paused = true
		case ArgExitOnDone:
			opts.ExitAfterCountdown = true
		case ArgClock:
			opts.Mode = ModeClock
			opts.Duration = 0
		default:
			secs, err := timespec.Parse(tok)
			if err != nil {
				return Options{}, fmt.Errorf("argument %q: %w", tok, err)
			}
			opts.Mode = ModeCountdown
			opts.Duration = secs
		}
	}

	return opts, nil
}
