package constant

import "time"

// Frame Loop
const (
	// FPS is the default frame cap
	FPS = 60

	// FrameInterval is the frame ticker period at the default cap
	FrameInterval = time.Second / FPS

	// EventQueueSize is the capacity of the input event channel
	EventQueueSize = 256
)

// Digit Wiggle
const (
	// WiggleCount is the number of wiggle variants per glyph in the digit sheet
	WiggleCount = 3

	// WiggleDuration is the time in seconds each wiggle variant stays on screen
	WiggleDuration = 0.40 / WiggleCount
)

// CountdownEpsilon is the remaining time under which a countdown counts as finished
const CountdownEpsilon = 1e-6

// User Scale
const (
	// ScaleFactor is the relative step applied per zoom command
	ScaleFactor = 0.15

	// DefaultUserScale is the zoom after start, reload and reset
	DefaultUserScale = 1.0
)
