package systems

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/events"
	"github.com/ajikmega/GAME-SURF/status"
)

// CollisionSystem checks the settled player state against obstacles and coins
// A failed obstacle check halts the world and emits EventCollision once
type CollisionSystem struct {
	theme config.Theme

	statCollected *atomic.Int64
	lastCollision *status.AtomicString
}

func NewCollisionSystem(w *engine.World, theme config.Theme) *CollisionSystem {
	return &CollisionSystem{
		theme:         theme,
		statCollected: w.Status.Ints.Get(status.KeyCoinsCollected),
		lastCollision: w.Status.Strings.Get(status.KeyLastCollision),
	}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (s *CollisionSystem) Update(w *engine.World, dt time.Duration) {
	if s.checkObstacles(w) {
		return
	}
	s.collectCoins(w)
}

// checkObstacles returns true when the run ended
// First failing obstacle wins; spawn spacing keeps at most one in range per lane
func (s *CollisionSystem) checkObstacles(w *engine.World) bool {
	p := &w.Player
	for _, obs := range w.Obstacles {
		if obs.Lane != p.Lane {
			continue
		}
		rule, ok := s.theme.Rule(obs.Kind)
		if !ok || math.Abs(obs.Z) >= rule.Range {
			continue
		}
		if !rule.Fails(p) {
			continue
		}

		s.lastCollision.Store(string(obs.Kind))
		w.PushEvent(events.EventCollision, &events.CollisionPayload{
			ObstacleID: obs.ID,
			Kind:       obs.Kind,
			Lane:       obs.Lane,
			Distance:   w.Progression.Distance,
			Coins:      w.Progression.CoinCount,
		})
		w.Halt()
		return true
	}
	return false
}

func (s *CollisionSystem) collectCoins(w *engine.World) {
	p := &w.Player
	kept := 0
	for _, coin := range w.Coins {
		if coin.Lane == p.Lane &&
			math.Abs(coin.Z) < constants.CoinPickupRange &&
			p.VerticalPos < constants.CoinPickupCeiling {
			w.Progression.CoinCount++
			s.statCollected.Add(1)
			w.PushEvent(events.EventCoinCollected, &events.CoinCollectedPayload{
				ID:    coin.ID,
				Total: w.Progression.CoinCount,
			})
			continue
		}
		w.Coins[kept] = coin
		kept++
	}
	w.Coins = w.Coins[:kept]
}
