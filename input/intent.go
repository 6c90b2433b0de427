package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentFullscreen // F11, hides the status row

	// Timer intents
	IntentTogglePause // Space
	IntentScaleUp     // =, +, Ctrl+wheel up
	IntentScaleDown   // -, Ctrl+wheel down
	IntentScaleReset  // 0
	IntentReload      // F5, re-create state from arguments
)

// String returns the canonical action name
func (i IntentType) String() string {
	for name, intent := range actionRegistry {
		if intent == i {
			return name
		}
	}
	return "none"
}
