package render

import (
	"math"

	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/core"
)

// projector maps world (x, z, height) onto the track area with a single perspective divide
// Rows grow from the horizon down to NearZ at the bottom row
type projector struct {
	area        core.Area
	horizon     int
	span        float64 // rows from horizon to bottom
	unitsToCols float64 // columns per world unit at the near plane
	dNear       float64
}

func newProjector(area core.Area) projector {
	horizon := area.Y + int(float64(area.Height)*constants.SkyFraction)
	halfCols := float64(area.Width)/2 - 1
	return projector{
		area:        area,
		horizon:     horizon,
		span:        float64(area.Bottom() - horizon),
		unitsToCols: halfCols / (1.5 * constants.LaneWidth),
		dNear:       constants.CameraZ - constants.NearZ,
	}
}

// visible reports whether z lies between the horizon and the near plane
func (p projector) visible(z float64) bool {
	return z >= constants.HorizonZ && z <= constants.NearZ
}

// scale is the perspective factor at z, 1 at NearZ
func (p projector) scale(z float64) float64 {
	return p.dNear / (constants.CameraZ - z)
}

func (p projector) row(z float64) int {
	return p.horizon + int(math.Round(p.span*p.scale(z)))
}

func (p projector) col(x, z float64) int {
	return p.area.CenterX() + int(math.Round(x*p.unitsToCols*p.scale(z)))
}

// lift converts a height above the track at z to screen rows
func (p projector) lift(height, z float64) int {
	return int(math.Round(height * constants.JumpRowsPerUnit * p.scale(z)))
}

// zAt inverts row; ok is false on and above the horizon
func (p projector) zAt(row int) (z, scale float64, ok bool) {
	if row <= p.horizon || p.span <= 0 {
		return 0, 0, false
	}
	scale = float64(row-p.horizon) / p.span
	return constants.CameraZ - p.dNear/scale, scale, true
}

// halfTrack is the half-width of the three-lane track in columns at scale
func (p projector) halfTrack(scale float64) float64 {
	return 1.5 * constants.LaneWidth * p.unitsToCols * scale
}
