package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, function keys, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyF5:     IntentReload,
			tcell.KeyF11:    IntentFullscreen,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentTogglePause,
			'=': IntentScaleUp,
			'+': IntentScaleUp,
			'-': IntentScaleDown,
			'0': IntentScaleReset,
		},
	}
}

// Merge applies a sparse override table, IntentNone entries unbind
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, v := range override.SpecialKeys {
		if v == IntentNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = v
	}
	for r, v := range override.Runes {
		if v == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = v
	}
}
