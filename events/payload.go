package events

import "github.com/ajikmega/GAME-SURF/components"

// RunStartedPayload identifies the run for logs and replays
type RunStartedPayload struct {
	Seed  int64
	Theme string
}

// ObstacleSpawnedPayload describes a freshly spawned obstacle
type ObstacleSpawnedPayload struct {
	ID   string
	Kind components.ObstacleKind
	Lane components.Lane
	Z    float64
}

// CoinSpawnedPayload describes a freshly spawned coin
type CoinSpawnedPayload struct {
	ID   string
	Lane components.Lane
	Z    float64
}

// CoinCollectedPayload contains the collected coin and the new total
type CoinCollectedPayload struct {
	ID    string
	Total int
}

// CollisionPayload contains the obstacle that ended the run
type CollisionPayload struct {
	ObstacleID string
	Kind       components.ObstacleKind
	Lane       components.Lane
	Distance   float64
	Coins      int
}

// ScoreUpdatePayload is the display snapshot, distance already floored
type ScoreUpdatePayload struct {
	Distance int
	Coins    int
}

// GameOverPayload is the final result of a run
type GameOverPayload struct {
	FinalDistance int
	FinalCoins    int
}
