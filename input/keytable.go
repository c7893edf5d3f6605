package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ajikmega/GAME-SURF/events"
)

// KeyEntry describes what a key does without function pointers
type KeyEntry struct {
	Intent IntentType
	Action events.Action
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

func action(a events.Action) KeyEntry {
	return KeyEntry{Intent: IntentAction, Action: a}
}

// DefaultKeyTable returns the default bindings: arrows plus WASD, space jumps
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyEnter:  {Intent: IntentStart},
			tcell.KeyF1:     {Intent: IntentToggleDebug},
			tcell.KeyLeft:   action(events.ActionLaneLeft),
			tcell.KeyRight:  action(events.ActionLaneRight),
			tcell.KeyUp:     action(events.ActionJump),
			tcell.KeyDown:   action(events.ActionSlide),
		},

		Runes: map[rune]KeyEntry{
			'a': action(events.ActionLaneLeft),
			'd': action(events.ActionLaneRight),
			'w': action(events.ActionJump),
			's': action(events.ActionSlide),
			' ': action(events.ActionJump),
			'r': {Intent: IntentStart},
			't': {Intent: IntentCycleTheme},
			'q': {Intent: IntentQuit},
		},
	}
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: cloneMap(kt.SpecialKeys),
		Runes:       cloneMap(kt.Runes),
	}
}

func cloneMap[K comparable](m map[K]KeyEntry) map[K]KeyEntry {
	c := make(map[K]KeyEntry, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
