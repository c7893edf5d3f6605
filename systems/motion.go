package systems

import (
	"time"

	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/events"
)

// MotionSystem owns the player's lane, jump and slide state
// Requests mutate the player immediately; Update resolves gravity once per tick
type MotionSystem struct {
	slideDuration time.Duration
}

// NewMotionSystem creates a motion system with the default slide duration
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{slideDuration: constants.SlideDuration}
}

func (s *MotionSystem) Priority() int {
	return constants.PriorityMotion
}

// HandleAction routes a canonical input action; unknown actions are ignored
// Returns true when the action changed player state
func (s *MotionSystem) HandleAction(w *engine.World, action events.Action) bool {
	switch action {
	case events.ActionLaneLeft:
		return s.RequestLaneChange(w, -1)
	case events.ActionLaneRight:
		return s.RequestLaneChange(w, 1)
	case events.ActionJump:
		return s.RequestJump(w)
	case events.ActionSlide:
		return s.RequestSlide(w)
	}
	return false
}

// RequestLaneChange shifts one lane toward dir's sign, clamped to the track
func (s *MotionSystem) RequestLaneChange(w *engine.World, dir int) bool {
	if w.Halted() {
		return false
	}
	p := &w.Player
	next := p.Lane.Shift(dir)
	if next == p.Lane {
		return false
	}
	p.Lane = next
	return true
}

// RequestJump starts a jump unless already jumping or sliding
func (s *MotionSystem) RequestJump(w *engine.World) bool {
	if w.Halted() {
		return false
	}
	s.expireSlide(w, w.Clock.Now())

	p := &w.Player
	if p.IsJumping || p.IsSliding {
		return false
	}
	p.VerticalVelocity = constants.JumpForce
	p.IsJumping = true
	return true
}

// RequestSlide starts a timed slide unless already sliding
// A slide may begin mid-jump; the jump still lands on its own
func (s *MotionSystem) RequestSlide(w *engine.World) bool {
	if w.Halted() {
		return false
	}
	now := w.Clock.Now()
	s.expireSlide(w, now)

	p := &w.Player
	if p.IsSliding {
		return false
	}
	p.IsSliding = true
	p.SlideEnd = now.Add(s.slideDuration)
	return true
}

// Update applies one step of fixed-impulse projectile motion
func (s *MotionSystem) Update(w *engine.World, dt time.Duration) {
	s.expireSlide(w, w.Clock.Now())

	p := &w.Player
	p.VerticalPos += p.VerticalVelocity
	p.VerticalVelocity -= constants.Gravity

	if p.VerticalPos <= constants.GroundEpsilon {
		p.VerticalPos = 0
		p.VerticalVelocity = 0
		p.IsJumping = false
	}
}

// expireSlide clears a slide whose deadline has passed, regardless of other state
func (s *MotionSystem) expireSlide(w *engine.World, now time.Time) {
	p := &w.Player
	if p.IsSliding && !now.Before(p.SlideEnd) {
		p.IsSliding = false
		p.SlideEnd = time.Time{}
	}
}
