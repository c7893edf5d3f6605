package constants

import (
	"math"
	"testing"
)

// TestJumpAirTime verifies the closed-form air time of a symmetric jump
func TestJumpAirTime(t *testing.T) {
	airTicks := 2 * JumpForce / Gravity
	if math.Abs(airTicks-40) > 1e-9 {
		t.Errorf("Expected 40 airborne ticks, got %v", airTicks)
	}
}

// TestEventBufferMask verifies the ring buffer mask matches the queue size
func TestEventBufferMask(t *testing.T) {
	if EventQueueSize&(EventQueueSize-1) != 0 {
		t.Fatalf("EventQueueSize %d is not a power of two", EventQueueSize)
	}
	if EventBufferMask != EventQueueSize-1 {
		t.Errorf("Expected mask %d, got %d", EventQueueSize-1, EventBufferMask)
	}
}

// TestDespawnThresholds verifies coins leave the near field before obstacles
func TestDespawnThresholds(t *testing.T) {
	if CoinDespawnZ >= ObstacleDespawnZ {
		t.Errorf("Expected CoinDespawnZ < ObstacleDespawnZ, got %v >= %v", CoinDespawnZ, ObstacleDespawnZ)
	}
	if CoinPickupRange >= CoinDespawnZ {
		t.Errorf("Pickup range %v must be inside the coin near field %v", CoinPickupRange, CoinDespawnZ)
	}
}
