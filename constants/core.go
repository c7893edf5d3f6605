package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame interval (~60 FPS), one simulation tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// ScoreUpdateInterval throttles score pushes to the display (10 Hz)
	ScoreUpdateInterval = 100 * time.Millisecond
)

// Event Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System Execution Priorities (lower runs first)
const (
	PriorityProgression = 10
	PriorityMotion      = 20
	PrioritySpawn       = 30
	PriorityCollision   = 40
	PriorityChaser      = 50
	PriorityScore       = 900 // Last: reads settled state
)
