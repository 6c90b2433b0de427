package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// LoadKeyConfig builds a sparse override KeyTable from action -> key names
// The action "none" unbinds its keys
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType),
		Runes:       make(map[rune]IntentType),
	}

	for action, keys := range bindings {
		intent, ok := actionRegistry[action]
		if !ok && action != "none" {
			return nil, fmt.Errorf("keys: unknown action %q", action)
		}

		for _, name := range keys {
			if err := bindKey(kt, name, intent); err != nil {
				return nil, fmt.Errorf("keys.%s: %w", action, err)
			}
		}
	}

	return kt, nil
}

func bindKey(kt *KeyTable, name string, intent IntentType) error {
	lower := strings.ToLower(name)
	if key, ok := specialKeyNames[lower]; ok {
		kt.SpecialKeys[key] = intent
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = intent
		return nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		kt.Runes[r] = intent
		return nil
	}
	return fmt.Errorf("invalid key name %q", name)
}
