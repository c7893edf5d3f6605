package input

import "github.com/ajikmega/GAME-SURF/events"

// actionRegistry maps canonical binding names to KeyEntry structs
// Used by the keymap loader to resolve config strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// System
	"quit":  {Intent: IntentQuit},
	"debug": {Intent: IntentToggleDebug},

	// Lifecycle
	"start": {Intent: IntentStart},
	"theme": {Intent: IntentCycleTheme},

	// Gameplay, names shared with events.ParseAction
	events.ActionLaneLeft.String():  action(events.ActionLaneLeft),
	events.ActionLaneRight.String(): action(events.ActionLaneRight),
	events.ActionJump.String():      action(events.ActionJump),
	events.ActionSlide.String():     action(events.ActionSlide),
}

// ActionEntry returns the KeyEntry for a canonical binding name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// ActionNames returns every bindable name, for help output
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
