package input

import "github.com/gdamore/tcell/v2"

// actionRegistry maps canonical action names to intents
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry = map[string]IntentType{
	"quit":        IntentQuit,
	"fullscreen":  IntentFullscreen,
	"pause":       IntentTogglePause,
	"scale_up":    IntentScaleUp,
	"scale_down":  IntentScaleDown,
	"scale_reset": IntentScaleReset,
	"reload":      IntentReload,
}

// specialKeyNames maps config key names to tcell keys
var specialKeyNames = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

// Rune aliases for keys that are awkward as bare YAML strings
var runeAliases = map[string]rune{
	"space": ' ',
	"minus": '-',
	"plus":  '+',
}
