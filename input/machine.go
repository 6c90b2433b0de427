package input

import "github.com/gdamore/tcell/v2"

// Handler translates terminal events into intents
type Handler struct {
	table *KeyTable
}

// NewHandler creates a handler over the given key table, nil uses the defaults
func NewHandler(table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table}
}

// Translate returns the intent for ev, IntentNone when unbound
func (h *Handler) Translate(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return h.table.Runes[ev.Rune()]
		}
		return h.table.SpecialKeys[ev.Key()]

	case *tcell.EventMouse:
		// Zoom only with Ctrl held, plain wheel is ignored
		if ev.Modifiers()&tcell.ModCtrl == 0 {
			return IntentNone
		}
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			return IntentScaleUp
		case buttons&tcell.WheelDown != 0:
			return IntentScaleDown
		}

	case *tcell.EventResize:
		return IntentResize
	}

	return IntentNone
}
