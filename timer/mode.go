package timer

// Mode selects how displayed time evolves
type Mode uint8

const (
	ModeAscending Mode = iota // Stopwatch counting up from zero
	ModeCountdown             // Counts down to zero
	ModeClock                 // Mirrors the wall-clock time of day
)

// String returns the mode name shown in the hint line
func (m Mode) String() string {
	switch m {
	case ModeAscending:
		return "stopwatch"
	case ModeCountdown:
		return "countdown"
	case ModeClock:
		return "clock"
	default:
		return "unknown"
	}
}

// Outcome is the signal Advance returns to the frame loop
type Outcome uint8

const (
	OutcomeNone     Outcome = iota
	OutcomeFinished         // Countdown reached zero, reported once
	OutcomeExit             // Countdown at zero with exit-after-countdown set
)
