package components

import "time"

// PlayerComponent is the motion state of the runner
// Grounded players have VerticalPos == 0 and VerticalVelocity == 0
type PlayerComponent struct {
	Lane             Lane
	VerticalPos      float64
	VerticalVelocity float64
	IsJumping        bool
	IsSliding        bool

	// SlideEnd is clock time when the active slide auto-clears
	SlideEnd time.Time
}

// Grounded reports whether the player is on the track and not airborne
func (p *PlayerComponent) Grounded() bool {
	return !p.IsJumping && p.VerticalPos == 0
}

// TargetOffset is the x offset the renderer interpolates toward
func (p *PlayerComponent) TargetOffset() float64 {
	return p.Lane.Offset()
}
