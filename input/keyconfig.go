package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// keyByName resolves tcell key names ("Up", "Enter", "Ctrl-Q") case-insensitively
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig builds a sparse override KeyTable from config bindings
// runes maps single characters (or aliases) and keys maps tcell key names to binding names
// Returns error on unknown binding names or invalid key names
func LoadKeyConfig(runes, keys map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	if len(runes) > 0 {
		kt.Runes = make(map[rune]KeyEntry, len(runes))
		for keyStr, name := range runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys.runes] key %q: %w", keyStr, err)
			}
			entry, err := resolveAction(name)
			if err != nil {
				return nil, fmt.Errorf("[keys.runes] key %q: %w", keyStr, err)
			}
			kt.Runes[normalizeRune(r)] = entry
		}
	}

	if len(keys) > 0 {
		kt.SpecialKeys = make(map[tcell.Key]KeyEntry, len(keys))
		for keyStr, name := range keys {
			k, ok := keyByName[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[keys.special] unknown key name: %q", keyStr)
			}
			entry, err := resolveAction(name)
			if err != nil {
				return nil, fmt.Errorf("[keys.special] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = entry
		}
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts a binding name to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with IntentNone ("none") delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Intent == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
