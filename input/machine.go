package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine turns tcell events into intents using a key table
// Stateless: every game key is a single keystroke
type Machine struct {
	table *KeyTable
}

// NewMachine creates a machine; a nil table uses DefaultKeyTable
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// Process maps one event to an intent, IntentNone when unbound
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.table.Runes[normalizeRune(ev.Rune())]
	} else {
		entry, ok = m.table.SpecialKeys[ev.Key()]
	}
	if !ok {
		return Intent{}
	}
	return Intent{Type: entry.Intent, Action: entry.Action}
}

func normalizeRune(r rune) rune {
	return unicode.ToLower(r)
}
