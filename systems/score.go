package systems

import (
	"time"

	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/events"
)

// ScoreSystem pushes a floored score snapshot at most once per interval
// Decouples display updates from the per-frame tick
type ScoreSystem struct {
	interval time.Duration
	last     time.Time
	pushed   bool
}

func NewScoreSystem(interval time.Duration) *ScoreSystem {
	if interval <= 0 {
		interval = constants.ScoreUpdateInterval
	}
	return &ScoreSystem{interval: interval}
}

func (s *ScoreSystem) Priority() int {
	return constants.PriorityScore
}

func (s *ScoreSystem) Update(w *engine.World, dt time.Duration) {
	now := w.Clock.Now()
	if s.pushed && now.Sub(s.last) < s.interval {
		return
	}
	s.pushed = true
	s.last = now

	w.PushEvent(events.EventScoreUpdate, &events.ScoreUpdatePayload{
		Distance: w.Progression.FlooredDistance(),
		Coins:    w.Progression.CoinCount,
	})
}
