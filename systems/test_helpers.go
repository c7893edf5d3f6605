package systems

import (
	"math/rand"
	"time"

	"github.com/ajikmega/GAME-SURF/components"
	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/events"
	"github.com/ajikmega/GAME-SURF/status"
)

// testEpoch is a fixed start time so timed state is reproducible
var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestWorld builds a world on a mock clock with a fixed seed and no systems
func newTestWorld(seed int64) (*engine.World, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(testEpoch)
	w := engine.NewWorld(clock, rand.New(rand.NewSource(seed)), events.NewEventQueue(), status.NewRegistry())
	w.Progression.Speed = constants.InitialSpeed
	return w, clock
}

// drainTypes consumes the world's queue and returns events of type et
func drainTypes(w *engine.World, et events.EventType) []events.GameEvent {
	var out []events.GameEvent
	for _, ev := range w.Events.Consume() {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

// placeObstacle appends an obstacle at an exact position
func placeObstacle(w *engine.World, kind components.ObstacleKind, lane components.Lane, z float64) {
	w.Obstacles = append(w.Obstacles, components.ObstacleComponent{
		ID:   w.NextID("obs"),
		Kind: kind,
		Lane: lane,
		Z:    z,
	})
}

// placeCoin appends a coin at an exact position
func placeCoin(w *engine.World, lane components.Lane, z float64) {
	w.Coins = append(w.Coins, components.CoinComponent{
		ID:   w.NextID("coin"),
		Lane: lane,
		Z:    z,
	})
}
