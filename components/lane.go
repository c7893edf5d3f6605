package components

import "github.com/ajikmega/GAME-SURF/constants"

// Lane is a discrete horizontal track position: -1 left, 0 center, 1 right
type Lane int

const (
	LaneLeft   Lane = constants.MinLane
	LaneCenter Lane = 0
	LaneRight  Lane = constants.MaxLane
)

// Lanes lists every lane in left-to-right order, used for uniform draws
var Lanes = [constants.LaneCount]Lane{LaneLeft, LaneCenter, LaneRight}

// Clamp returns the lane restricted to the valid range
func (l Lane) Clamp() Lane {
	if l < LaneLeft {
		return LaneLeft
	}
	if l > LaneRight {
		return LaneRight
	}
	return l
}

// Shift moves one lane in the direction of dir's sign and clamps
// Magnitude is ignored; zero leaves the lane unchanged
func (l Lane) Shift(dir int) Lane {
	switch {
	case dir < 0:
		return (l - 1).Clamp()
	case dir > 0:
		return (l + 1).Clamp()
	}
	return l
}

// Offset returns the spatial x offset of the lane center
func (l Lane) Offset() float64 {
	return float64(l) * constants.LaneWidth
}

// Valid reports whether l is one of the three lanes
func (l Lane) Valid() bool {
	return l >= LaneLeft && l <= LaneRight
}
