package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ajikmega/GAME-SURF/components"
	"github.com/ajikmega/GAME-SURF/core"
)

// Palette colors, kept as core.RGB so depth fog can blend them
var (
	RgbSkyTop     = core.MustHex("#0c4a6e")
	RgbSkyBottom  = core.MustHex("#1e1b4b")
	RgbTrack      = core.MustHex("#1f2937")
	RgbTrackEdge  = core.MustHex("#334155")
	RgbLaneMarker = core.MustHex("#ffffff")
	RgbAccentCyan = core.MustHex("#06b6d4")
	RgbAccentPink = core.MustHex("#ec4899")

	RgbPlayer      = core.MustHex("#3b82f6")
	RgbPlayerSlide = core.MustHex("#1d4ed8")
	RgbCoin        = core.MustHex("#fbbf24")
	RgbChaser      = core.MustHex("#1e3a8a")
	RgbSiren       = core.MustHex("#fbbf24")
	RgbObstacle    = core.MustHex("#ef4444")

	RgbHUDText    = core.MustHex("#f8fafc")
	RgbHUDBg      = core.MustHex("#0f172a")
	RgbMenuBorder = core.MustHex("#06b6d4")
	RgbHighlight  = core.MustHex("#fbbf24")
	RgbStatusText = core.MustHex("#94a3b8")
)

// obstacleColors maps known kinds to their body color; unknown kinds use RgbObstacle
var obstacleColors = map[components.ObstacleKind]core.RGB{
	components.KindCar:       core.MustHex("#3b82f6"),
	components.KindTruck:     core.MustHex("#f8fafc"),
	components.KindRampTruck: core.MustHex("#475569"),
	components.KindBarrier:   core.MustHex("#ef4444"),
	components.KindTrain:     core.MustHex("#64748b"),
	components.KindRamp:      core.MustHex("#fbbf24"),
}

// ObstacleColor returns the body color for an obstacle kind
func ObstacleColor(kind components.ObstacleKind) core.RGB {
	if c, ok := obstacleColors[kind]; ok {
		return c
	}
	return RgbObstacle
}

// tc converts to a tcell color
func tc(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// fog fades c toward the sky bottom with distance; scale is 1 at the near plane
func fog(c core.RGB, scale float64) core.RGB {
	return c.Blend(RgbSkyBottom, (1-scale)*0.6)
}
