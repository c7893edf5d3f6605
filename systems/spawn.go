package systems

import (
	"sync/atomic"
	"time"

	"github.com/ajikmega/GAME-SURF/components"
	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/events"
	"github.com/ajikmega/GAME-SURF/status"
)

// SpawnSystem scrolls the track, recycles passed entities and spawns new ones
// Lane and kind draws are uniform with no anti-clustering
type SpawnSystem struct {
	theme             config.Theme
	kinds             []components.ObstacleKind
	lastSpawnDistance float64

	statObstacles *atomic.Int64
	statCoins     *atomic.Int64
	statDespawned *atomic.Int64
}

// NewSpawnSystem creates a spawn system for the theme's kind set and interval
func NewSpawnSystem(w *engine.World, theme config.Theme) *SpawnSystem {
	return &SpawnSystem{
		theme:         theme,
		kinds:         theme.KindSet(),
		statObstacles: w.Status.Ints.Get(status.KeySpawnObstacles),
		statCoins:     w.Status.Ints.Get(status.KeySpawnCoins),
		statDespawned: w.Status.Ints.Get(status.KeyDespawned),
	}
}

func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Seed places the opening obstacles at evenly spaced far z values
// Called once before the first tick
func (s *SpawnSystem) Seed(w *engine.World) {
	for i := 1; i <= constants.SeedObstacleCount; i++ {
		s.spawnObstacle(w, -float64(i)*s.theme.SpawnInterval)
	}
}

func (s *SpawnSystem) Update(w *engine.World, dt time.Duration) {
	speed := w.Progression.Speed

	// Advance and compact in place
	kept := 0
	for _, obs := range w.Obstacles {
		obs.Z += speed
		if obs.Z >= constants.ObstacleDespawnZ {
			s.statDespawned.Add(1)
			continue
		}
		w.Obstacles[kept] = obs
		kept++
	}
	w.Obstacles = w.Obstacles[:kept]

	kept = 0
	for _, coin := range w.Coins {
		coin.Z += speed
		if coin.Z >= constants.CoinDespawnZ {
			s.statDespawned.Add(1)
			continue
		}
		w.Coins[kept] = coin
		kept++
	}
	w.Coins = w.Coins[:kept]

	distance := w.Progression.Distance
	if distance-s.lastSpawnDistance > s.theme.SpawnInterval {
		s.lastSpawnDistance = distance
		s.spawnObstacle(w, s.theme.ObstacleSpawnZ)
		s.spawnCoin(w, s.theme.CoinSpawnZ)
	}
}

func (s *SpawnSystem) spawnObstacle(w *engine.World, z float64) {
	obs := components.ObstacleComponent{
		ID:   w.NextID("obs"),
		Kind: s.kinds[w.Rand.Intn(len(s.kinds))],
		Lane: randomLane(w),
		Z:    z,
	}
	w.Obstacles = append(w.Obstacles, obs)
	s.statObstacles.Add(1)

	w.PushEvent(events.EventObstacleSpawned, &events.ObstacleSpawnedPayload{
		ID:   obs.ID,
		Kind: obs.Kind,
		Lane: obs.Lane,
		Z:    obs.Z,
	})
}

func (s *SpawnSystem) spawnCoin(w *engine.World, z float64) {
	coin := components.CoinComponent{
		ID:   w.NextID("coin"),
		Lane: randomLane(w),
		Z:    z,
	}
	w.Coins = append(w.Coins, coin)
	s.statCoins.Add(1)

	w.PushEvent(events.EventCoinSpawned, &events.CoinSpawnedPayload{
		ID:   coin.ID,
		Lane: coin.Lane,
		Z:    coin.Z,
	})
}

func randomLane(w *engine.World) components.Lane {
	return components.Lanes[w.Rand.Intn(len(components.Lanes))]
}
