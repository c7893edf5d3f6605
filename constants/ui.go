package constants

// Projection
const (
	// HorizonZ is the farthest z drawn; anything beyond is hidden behind the horizon
	HorizonZ = -160.0

	// NearZ is the nearest z drawn, mapped to the bottom track row
	NearZ = 6.0

	// CameraZ is the eye position behind the player used for the perspective divide
	CameraZ = 12.0

	// TrackMarkerSpacing is the z spacing between lane marker dashes
	TrackMarkerSpacing = 10.0

	// JumpRowsPerUnit converts vertical position to screen rows at the near plane
	JumpRowsPerUnit = 3.0

	// CoinHoverHeight is the height coins are drawn at
	CoinHoverHeight = 1.2

	// PlayerVisualLerp eases the drawn player toward its lane each frame
	PlayerVisualLerp = 0.2

	// TallObstacleHeight is the clearance from which an obstacle draws as a tall block
	TallObstacleHeight = 3.0

	// SkyFraction is the share of the play area above the horizon
	SkyFraction = 0.25
)

// UI Layout
const (
	// HUDHeight is the number of rows reserved at the top for the score line
	HUDHeight = 1

	// StatusBarHeight is the number of rows reserved at the bottom for the status line
	StatusBarHeight = 1

	// MinScreenWidth and MinScreenHeight are the smallest usable terminal
	MinScreenWidth  = 40
	MinScreenHeight = 14
)

// Glyphs
const (
	GlyphPlayer       = '@'
	GlyphPlayerSlide  = '_'
	GlyphPlayerAir    = '^'
	GlyphCoin         = 'o'
	GlyphChaser       = 'P'
	GlyphLaneMarker   = ':'
	GlyphTrackEdge    = '|'
	GlyphObstacleLow  = 'n'
	GlyphObstacleTall = '#'
	GlyphObstacleBar  = '='
	GlyphObstacleRamp = '/'
)
