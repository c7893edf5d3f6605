package input

import "github.com/ajikmega/GAME-SURF/events"

// IntentType discriminates what a key means to the frontend
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C, Ctrl+Q
	IntentResize      // Terminal resize event
	IntentToggleDebug // F1 status line

	// Lifecycle
	IntentStart      // Enter, r: start or restart a run
	IntentCycleTheme // t: next theme, menus only

	// Gameplay
	IntentAction // player action, see Intent.Action
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type   IntentType
	Action events.Action
}
