package components

import "math"

// ProgressionComponent tracks speed, distance and collected coins for one run
// Distance is kept unrounded; FlooredDistance floors it at report time only
type ProgressionComponent struct {
	Speed     float64
	Distance  float64
	CoinCount int

	// TrackOffset scrolls track decoration, wraps at the segment length
	TrackOffset float64
}

// FlooredDistance returns the distance as reported to players
func (p *ProgressionComponent) FlooredDistance() int {
	return int(math.Floor(p.Distance))
}
