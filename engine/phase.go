package engine

// GamePhase is the top-level state of the game
type GamePhase int

const (
	PhaseStart GamePhase = iota
	PhasePlaying
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAMEOVER"
	}
	return "UNKNOWN"
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseStart:    {PhasePlaying},
	PhasePlaying:  {PhaseGameOver, PhasePlaying},
	PhaseGameOver: {PhasePlaying},
}

// CanTransition reports whether the phase machine allows from -> to
// PLAYING -> PLAYING is an external restart with a fresh run
func CanTransition(from, to GamePhase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
