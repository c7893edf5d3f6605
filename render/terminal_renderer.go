package render

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/ajikmega/GAME-SURF/components"
	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/core"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/game"
	"github.com/ajikmega/GAME-SURF/status"
)

// Frame is everything the renderer reads for one draw
// The renderer never mutates the world
type Frame struct {
	Phase     engine.GamePhase
	World     *engine.World
	Theme     config.Theme
	HighScore int
	Result    *game.RunResult
	Status    *status.Registry
	Replay    bool
}

// TerminalRenderer handles all terminal rendering
// It is also the session's score display
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	track  core.Area
	proj   projector

	debug bool
	score game.ScoreSnapshot

	// Visual state, reset when a new run's world appears
	world   *engine.World
	playerX float64
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the layout for a new terminal size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.track = core.Area{
		X:      0,
		Y:      constants.HUDHeight,
		Width:  width,
		Height: max(1, height-constants.HUDHeight-constants.StatusBarHeight),
	}
	r.proj = newProjector(r.track)
}

// ToggleDebug switches the status line between key hints and metrics
func (r *TerminalRenderer) ToggleDebug() {
	r.debug = !r.debug
}

// SetDebug sets the status line mode
func (r *TerminalRenderer) SetDebug(on bool) {
	r.debug = on
}

// UpdateScore receives the throttled score snapshot
func (r *TerminalRenderer) UpdateScore(snap game.ScoreSnapshot) {
	r.score = snap
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(tc(RgbHUDBg)).Foreground(tc(RgbHUDText))
	r.screen.Fill(' ', defaultStyle)

	if r.width < constants.MinScreenWidth || r.height < constants.MinScreenHeight {
		r.drawTooSmall(defaultStyle)
		r.screen.Show()
		return
	}

	if f.World != r.world {
		r.world = f.World
		r.score = game.ScoreSnapshot{}
		if f.World != nil {
			r.playerX = f.World.Player.TargetOffset()
		}
	}

	r.drawSky()
	r.drawTrack(f.World)

	if f.World != nil {
		if f.Phase == engine.PhasePlaying {
			target := f.World.Player.TargetOffset()
			r.playerX += (target - r.playerX) * constants.PlayerVisualLerp
		}
		r.drawEntities(f.World, &f.Theme)
		r.drawChaser(f.World)
		r.drawPlayer(f.World)
	}

	r.drawHUD(f, defaultStyle)

	switch f.Phase {
	case engine.PhaseStart:
		r.drawStartMenu(f)
	case engine.PhaseGameOver:
		r.drawGameOver(f)
	}

	r.drawStatusBar(f, defaultStyle)
	r.screen.Show()
}

// drawSky fills the rows above the horizon with a vertical gradient
func (r *TerminalRenderer) drawSky() {
	rows := r.proj.horizon - r.track.Y + 1
	for y := r.track.Y; y <= r.proj.horizon; y++ {
		t := float64(y-r.track.Y) / float64(max(1, rows-1))
		style := tcell.StyleDefault.Background(tc(RgbSkyTop.Blend(RgbSkyBottom, t)))
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawTrack draws the road surface, edges and scrolling lane markers row by row
func (r *TerminalRenderer) drawTrack(w *engine.World) {
	offset := 0.0
	if w != nil {
		offset = w.Progression.TrackOffset
	}

	cx := float64(r.track.CenterX())
	for y := r.proj.horizon + 1; y <= r.track.Bottom(); y++ {
		z, scale, ok := r.proj.zAt(y)
		if !ok {
			continue
		}

		ground := tcell.StyleDefault.Background(tc(fog(RgbSkyBottom.Scale(0.7), scale)))
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, ground)
		}

		half := r.proj.halfTrack(scale)
		left := int(math.Round(cx - half))
		right := int(math.Round(cx + half))
		trackBg := tc(fog(RgbTrack, scale))
		road := tcell.StyleDefault.Background(trackBg)
		for x := left; x <= right; x++ {
			r.screen.SetContent(x, y, ' ', nil, road)
		}

		edge := road.Foreground(tc(fog(RgbTrackEdge.Blend(RgbAccentCyan, 0.5), scale)))
		r.screen.SetContent(left, y, constants.GlyphTrackEdge, nil, edge)
		r.screen.SetContent(right, y, constants.GlyphTrackEdge, nil, edge)

		// Dashes travel toward the camera as the offset grows
		phase := math.Mod(z-offset, constants.TrackMarkerSpacing)
		if phase < 0 {
			phase += constants.TrackMarkerSpacing
		}
		if phase < constants.TrackMarkerSpacing/2 {
			marker := road.Foreground(tc(fog(RgbLaneMarker, scale)))
			for _, lx := range []float64{-constants.LaneWidth / 2, constants.LaneWidth / 2} {
				r.screen.SetContent(r.proj.col(lx, z), y, constants.GlyphLaneMarker, nil, marker)
			}
		}
	}
}

type drawable struct {
	z    float64
	draw func()
}

// drawEntities paints obstacles and coins far to near
func (r *TerminalRenderer) drawEntities(w *engine.World, theme *config.Theme) {
	items := make([]drawable, 0, len(w.Obstacles)+len(w.Coins))
	for _, obs := range w.Obstacles {
		if !r.proj.visible(obs.Z) {
			continue
		}
		rule, _ := theme.Rule(obs.Kind)
		items = append(items, drawable{z: obs.Z, draw: func() { r.drawObstacle(obs, rule) }})
	}
	for _, coin := range w.Coins {
		if !r.proj.visible(coin.Z) {
			continue
		}
		items = append(items, drawable{z: coin.Z, draw: func() { r.drawCoin(coin) }})
	}

	slices.SortStableFunc(items, func(a, b drawable) int {
		switch {
		case a.z < b.z:
			return -1
		case a.z > b.z:
			return 1
		}
		return 0
	})
	for _, it := range items {
		it.draw()
	}
}

// obstacleGlyph picks a silhouette from the collision rule
func obstacleGlyph(rule config.KindRule) rune {
	switch {
	case rule.Rule == config.RuleSlide:
		return constants.GlyphObstacleBar
	case rule.Clearance >= constants.TallObstacleHeight:
		return constants.GlyphObstacleTall
	case rule.Clearance < 0.5:
		return constants.GlyphObstacleRamp
	}
	return constants.GlyphObstacleLow
}

func (r *TerminalRenderer) drawObstacle(obs components.ObstacleComponent, rule config.KindRule) {
	scale := r.proj.scale(obs.Z)
	x := obs.Lane.Offset()
	base := r.proj.row(obs.Z)
	center := r.proj.col(x, obs.Z)
	halfW := max(0, int(math.Round(constants.LaneWidth*r.proj.unitsToCols*scale*0.3)))

	style := tcell.StyleDefault.
		Background(tc(fog(RgbTrack, scale))).
		Foreground(tc(fog(ObstacleColor(obs.Kind), scale)))
	glyph := obstacleGlyph(rule)

	top, bottom := base, base
	if rule.Rule == config.RuleSlide {
		// Overhead bar: only the beam is drawn, the gap underneath stays open
		top = base - max(1, r.proj.lift(1.5, obs.Z))
		bottom = top
	} else {
		top = base - max(0, r.proj.lift(rule.Clearance, obs.Z)-1)
	}

	for y := top; y <= bottom; y++ {
		for dx := -halfW; dx <= halfW; dx++ {
			if r.track.Contains(center+dx, y) {
				r.screen.SetContent(center+dx, y, glyph, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawCoin(coin components.CoinComponent) {
	scale := r.proj.scale(coin.Z)
	x := r.proj.col(coin.Lane.Offset(), coin.Z)
	y := r.proj.row(coin.Z) - r.proj.lift(constants.CoinHoverHeight, coin.Z)
	if !r.track.Contains(x, y) {
		return
	}
	_, _, under, _ := r.screen.GetContent(x, y)
	_, bg, _ := under.Decompose()
	style := tcell.StyleDefault.Background(bg).Foreground(tc(fog(RgbCoin, scale))).Bold(true)
	r.screen.SetContent(x, y, constants.GlyphCoin, nil, style)
}

func (r *TerminalRenderer) drawChaser(w *engine.World) {
	c := w.Chaser
	if !r.proj.visible(c.Z) {
		return
	}
	x := r.proj.col(c.X, c.Z)
	y := r.proj.row(c.Z)
	if !r.track.Contains(x, y) {
		return
	}

	// Siren alternates with the track scroll
	siren := RgbSiren
	if int(w.Progression.TrackOffset)%2 == 0 {
		siren = RgbAccentPink
	}
	body := tcell.StyleDefault.Background(tc(RgbTrack)).Foreground(tc(RgbChaser.Blend(RgbLaneMarker, 0.3))).Bold(true)
	r.screen.SetContent(x, y, constants.GlyphChaser, nil, body)
	if r.track.Contains(x, y-1) {
		r.screen.SetContent(x, y-1, '*', nil, body.Foreground(tc(siren)))
	}
}

func (r *TerminalRenderer) drawPlayer(w *engine.World) {
	p := &w.Player
	x := r.proj.col(r.playerX, 0)
	y := r.proj.row(0) - r.proj.lift(p.VerticalPos, 0)

	glyph := constants.GlyphPlayer
	color := RgbPlayer
	switch {
	case p.IsSliding:
		glyph = constants.GlyphPlayerSlide
		color = RgbPlayerSlide
	case !p.Grounded():
		glyph = constants.GlyphPlayerAir
	}

	if r.track.Contains(x, y) {
		_, _, under, _ := r.screen.GetContent(x, y)
		_, bg, _ := under.Decompose()
		r.screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Background(bg).Foreground(tc(color)).Bold(true))
	}
}

// PlayerCell returns where the player is drawn, for tests and overlays
func (r *TerminalRenderer) PlayerCell(w *engine.World) (int, int) {
	return r.proj.col(r.playerX, 0), r.proj.row(0) - r.proj.lift(w.Player.VerticalPos, 0)
}
