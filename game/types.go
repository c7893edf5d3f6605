// Package game drives runs: it builds a fresh world per run, owns the phase
// machine and reports progress to the display, lifecycle and observer.
package game

import (
	"time"

	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/events"
)

// ScoreSnapshot is the throttled display update
type ScoreSnapshot struct {
	Distance int
	Coins    int
}

// RunResult is reported exactly once per run
type RunResult struct {
	Seed          int64
	Theme         string
	FinalDistance int
	FinalCoins    int
	HighScore     int
	NewHighScore  bool
	Ticks         uint64
}

// Display receives score snapshots at most ScoreUpdateInterval apart
type Display interface {
	UpdateScore(snap ScoreSnapshot)
}

// Lifecycle is notified when a run ends
type Lifecycle interface {
	RunEnded(result RunResult)
}

// Observer sees every externally driven input to a run, in order
// Recorders implement it to capture replays
type Observer interface {
	OnRunStart(seed int64, theme config.Theme, now time.Time)
	OnAction(action events.Action, now time.Time)
	OnTick(dt time.Duration, now time.Time)
	OnRunEnd(result RunResult)
}

// DisplayFunc adapts a function to Display
type DisplayFunc func(ScoreSnapshot)

func (f DisplayFunc) UpdateScore(snap ScoreSnapshot) { f(snap) }

// LifecycleFunc adapts a function to Lifecycle
type LifecycleFunc func(RunResult)

func (f LifecycleFunc) RunEnded(result RunResult) { f(result) }
