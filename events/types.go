package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRunStarted signals a fresh run was constructed
	// Trigger: Session.Start | Payload: *RunStartedPayload
	EventRunStarted EventType = iota + 1

	// EventObstacleSpawned signals a new obstacle at the far end of the track
	// Trigger: SpawnSystem | Payload: *ObstacleSpawnedPayload
	EventObstacleSpawned

	// EventCoinSpawned signals a new coin at the far end of the track
	// Trigger: SpawnSystem | Payload: *CoinSpawnedPayload
	EventCoinSpawned

	// EventCoinCollected signals a coin pickup
	// Trigger: CollisionSystem | Payload: *CoinCollectedPayload
	EventCoinCollected

	// EventCollision signals the player hit an obstacle it could not clear
	// Trigger: CollisionSystem
	// Consumer: Session (ends the run) | Payload: *CollisionPayload
	EventCollision

	// EventScoreUpdate is the throttled score snapshot for the display
	// Trigger: ScoreSystem at most every ScoreUpdateInterval | Payload: *ScoreUpdatePayload
	EventScoreUpdate

	// EventGameOver is the terminal event of a run, emitted exactly once
	// Trigger: Session after EventCollision | Payload: *GameOverPayload
	EventGameOver
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64
	Timestamp time.Time
}
