// @focus: #constants { gameplay }
package constants

import "time"

// Lane Model
const (
	// LaneWidth is the spatial distance between adjacent lane centers
	LaneWidth = 3.5

	// MinLane and MaxLane bound the lane index (-1 left, 0 center, 1 right)
	MinLane = -1
	MaxLane = 1

	// LaneCount is the number of discrete lanes
	LaneCount = MaxLane - MinLane + 1
)

// Progression
const (
	// InitialSpeed is the track speed at the start of every run (distance units per tick)
	InitialSpeed = 0.5

	// SpeedIncrement is added to speed on every tick until MaxSpeed
	SpeedIncrement = 0.0001

	// MaxSpeed caps the track speed
	MaxSpeed = 1.2

	// SegmentLength is the length of one scrolling track segment, used for the track offset
	SegmentLength = 50.0
)

// Player Motion
const (
	// JumpForce is the vertical velocity set when a jump starts
	JumpForce = 0.3

	// Gravity is subtracted from vertical velocity every tick
	Gravity = 0.015

	// GroundEpsilon absorbs float drift so a symmetric jump lands on a deterministic tick
	GroundEpsilon = 1e-9

	// SlideDuration is how long a slide lasts in clock time
	SlideDuration = 800 * time.Millisecond
)

// Track Lifecycle
const (
	// ObstacleDespawnZ removes obstacles once they are behind the camera
	ObstacleDespawnZ = 20.0

	// CoinDespawnZ removes coins once they are behind the player
	CoinDespawnZ = 10.0

	// SeedObstacleCount is the number of obstacles placed before the first tick
	SeedObstacleCount = 5
)

// Coin Pickup
const (
	// CoinPickupRange is the maximum |z| at which a coin in the player's lane is collected
	CoinPickupRange = 1.5

	// CoinPickupCeiling is the height at and above which the player flies over coins
	CoinPickupCeiling = 2.0
)

// Chaser
const (
	// ChaserZ is the fixed distance of the chaser behind the player
	ChaserZ = 5.0

	// ChaserFollowRate is the per-tick lerp factor toward the player's lane offset
	ChaserFollowRate = 0.05
)
