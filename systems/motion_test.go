package systems

import (
	"math"
	"testing"
	"time"

	"github.com/ajikmega/GAME-SURF/components"
	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/events"
)

func TestLaneChangeClamps(t *testing.T) {
	w, _ := newTestWorld(1)
	m := NewMotionSystem()

	for i := 0; i < 5; i++ {
		m.HandleAction(w, events.ActionLaneLeft)
	}
	if w.Player.Lane != components.LaneLeft {
		t.Fatalf("Expected lane -1 after 5 left requests, got %d", w.Player.Lane)
	}

	for i := 0; i < 7; i++ {
		m.HandleAction(w, events.ActionLaneRight)
		if !w.Player.Lane.Valid() {
			t.Fatalf("Lane out of range: %d", w.Player.Lane)
		}
	}
	if w.Player.Lane != components.LaneRight {
		t.Errorf("Expected lane 1, got %d", w.Player.Lane)
	}

	if m.RequestLaneChange(w, 3) {
		t.Error("Lane change at the right edge should report no change")
	}
}

func TestJumpArc(t *testing.T) {
	w, _ := newTestWorld(1)
	m := NewMotionSystem()

	if !m.RequestJump(w) {
		t.Fatal("Jump from the ground should start")
	}

	airTicks := int(math.Round(2 * constants.JumpForce / constants.Gravity))
	for tick := 1; tick <= airTicks; tick++ {
		m.Update(w, constants.FrameUpdateInterval)
		if w.Player.VerticalPos <= 0 {
			t.Fatalf("Tick %d: expected airborne, got pos %v", tick, w.Player.VerticalPos)
		}
		if !w.Player.IsJumping {
			t.Fatalf("Tick %d: jump ended early", tick)
		}
	}

	m.Update(w, constants.FrameUpdateInterval)
	if w.Player.VerticalPos != 0 || w.Player.VerticalVelocity != 0 {
		t.Errorf("Expected exact landing at tick %d, got pos %v vel %v",
			airTicks+1, w.Player.VerticalPos, w.Player.VerticalVelocity)
	}
	if w.Player.IsJumping {
		t.Error("IsJumping should clear on landing")
	}
}

func TestFirstJumpTickIsAboveGround(t *testing.T) {
	w, _ := newTestWorld(1)
	m := NewMotionSystem()

	m.RequestJump(w)
	m.Update(w, constants.FrameUpdateInterval)
	if w.Player.VerticalPos != constants.JumpForce {
		t.Errorf("Expected pos %v after first tick, got %v", constants.JumpForce, w.Player.VerticalPos)
	}
}

func TestJumpWhileJumpingIgnored(t *testing.T) {
	w, _ := newTestWorld(1)
	m := NewMotionSystem()

	m.RequestJump(w)
	for i := 0; i < 5; i++ {
		m.Update(w, constants.FrameUpdateInterval)
	}
	before := w.Player.VerticalVelocity

	if m.RequestJump(w) {
		t.Error("Second jump should be rejected")
	}
	if w.Player.VerticalVelocity != before {
		t.Errorf("Velocity changed from %v to %v", before, w.Player.VerticalVelocity)
	}
}

func TestGroundedStaysAtRest(t *testing.T) {
	w, _ := newTestWorld(1)
	m := NewMotionSystem()

	for i := 0; i < 10; i++ {
		m.Update(w, constants.FrameUpdateInterval)
		if w.Player.VerticalPos != 0 || w.Player.VerticalVelocity != 0 {
			t.Fatalf("Grounded player drifted: pos %v vel %v", w.Player.VerticalPos, w.Player.VerticalVelocity)
		}
	}
}

func TestSlideExpiresAfterDuration(t *testing.T) {
	w, clock := newTestWorld(1)
	m := NewMotionSystem()

	if !m.RequestSlide(w) {
		t.Fatal("Slide should start")
	}
	if m.RequestSlide(w) {
		t.Error("Slide while sliding should be ignored")
	}

	clock.Advance(constants.SlideDuration - time.Millisecond)
	m.Update(w, constants.FrameUpdateInterval)
	if !w.Player.IsSliding {
		t.Fatal("Slide ended before its duration")
	}

	clock.Advance(time.Millisecond)
	m.Update(w, constants.FrameUpdateInterval)
	if w.Player.IsSliding {
		t.Error("Slide should auto-clear at its deadline")
	}
}

func TestJumpBlockedWhileSliding(t *testing.T) {
	w, clock := newTestWorld(1)
	m := NewMotionSystem()

	m.RequestSlide(w)
	if m.RequestJump(w) {
		t.Error("Jump while sliding should be blocked")
	}

	clock.Advance(constants.SlideDuration)
	if !m.RequestJump(w) {
		t.Fatal("Jump should start once the slide deadline passed")
	}
	if w.Player.IsSliding {
		t.Error("Expired slide should be cleared before jumping")
	}
}

func TestSlideDuringJump(t *testing.T) {
	w, clock := newTestWorld(1)
	m := NewMotionSystem()

	m.RequestJump(w)
	m.Update(w, constants.FrameUpdateInterval)
	if !m.RequestSlide(w) {
		t.Fatal("Slide pressed mid-jump should start")
	}
	if !w.Player.IsSliding || !w.Player.IsJumping {
		t.Fatalf("Expected jumping and sliding, got jumping=%v sliding=%v", w.Player.IsJumping, w.Player.IsSliding)
	}
	if m.RequestSlide(w) {
		t.Error("Second slide should be ignored")
	}

	// Jump lands before the slide timer runs out
	for tick := 0; tick < 60 && w.Player.IsJumping; tick++ {
		clock.Advance(constants.FrameUpdateInterval)
		m.Update(w, constants.FrameUpdateInterval)
	}
	if w.Player.IsJumping || w.Player.VerticalPos != 0 {
		t.Fatalf("Expected landed, pos %v", w.Player.VerticalPos)
	}
	if !w.Player.IsSliding {
		t.Error("Slide should outlast the landing")
	}

	clock.Advance(constants.SlideDuration)
	m.Update(w, constants.FrameUpdateInterval)
	if w.Player.IsSliding {
		t.Error("Slide should clear at its deadline")
	}
}

func TestUnknownActionIgnored(t *testing.T) {
	w, _ := newTestWorld(1)
	m := NewMotionSystem()

	before := w.Player
	if m.HandleAction(w, events.Action(99)) || m.HandleAction(w, events.ActionNone) {
		t.Error("Unknown actions should report no change")
	}
	if w.Player != before {
		t.Error("Unknown action mutated the player")
	}
}

func TestRequestsIgnoredWhenHalted(t *testing.T) {
	w, _ := newTestWorld(1)
	m := NewMotionSystem()
	w.Halt()

	if m.RequestJump(w) || m.RequestSlide(w) || m.RequestLaneChange(w, 1) {
		t.Error("Requests on a halted world should be dropped")
	}
	if w.Player.Lane != components.LaneCenter || w.Player.IsJumping || w.Player.IsSliding {
		t.Error("Halted world player mutated")
	}
}
