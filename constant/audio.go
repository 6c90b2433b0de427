package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Chime Sound, played when a countdown finishes
const (
	ChimeNoteDuration = 350 * time.Millisecond
	ChimeAttack       = 5 * time.Millisecond
	ChimeRelease      = 300 * time.Millisecond
	ChimeRepeats      = 3
	ChimeGap          = 120 * time.Millisecond
)

// Click Sound, played on pause toggle
const (
	ClickDuration = 25 * time.Millisecond
	ClickAttack   = 2 * time.Millisecond
	ClickRelease  = 15 * time.Millisecond
)
