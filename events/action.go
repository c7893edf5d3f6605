package events

import "strings"

// Action is a canonical player input, produced by any input device
type Action uint8

const (
	ActionNone Action = iota
	ActionLaneLeft
	ActionLaneRight
	ActionJump
	ActionSlide
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionLaneLeft:  "left",
	ActionLaneRight: "right",
	ActionJump:      "jump",
	ActionSlide:     "slide",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Valid reports whether a is one of the four player actions
func (a Action) Valid() bool {
	return a >= ActionLaneLeft && a <= ActionSlide
}

// ParseAction maps an action tag to an Action; unknown tags yield ActionNone
func ParseAction(tag string) Action {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, name := range actionNames {
		if i != int(ActionNone) && name == tag {
			return Action(i)
		}
	}
	return ActionNone
}
