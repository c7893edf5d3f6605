package game

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ajikmega/GAME-SURF/components"
	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/events"
	"github.com/ajikmega/GAME-SURF/highscore"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type captureLifecycle struct {
	results []RunResult
}

func (c *captureLifecycle) RunEnded(r RunResult) { c.results = append(c.results, r) }

type captureDisplay struct {
	snaps []ScoreSnapshot
}

func (c *captureDisplay) UpdateScore(s ScoreSnapshot) { c.snaps = append(c.snaps, s) }

type harness struct {
	session   *Session
	clock     *engine.MockTimeProvider
	store     *highscore.MemoryStore
	lifecycle *captureLifecycle
	display   *captureDisplay
}

func newHarness(t *testing.T, seed int64) *harness {
	t.Helper()
	theme, _ := config.BuiltinTheme(config.ThemeHighway)
	h := &harness{
		clock:     engine.NewMockTimeProvider(testEpoch),
		store:     highscore.NewMemoryStore(0),
		lifecycle: &captureLifecycle{},
		display:   &captureDisplay{},
	}
	h.session = NewSession(Options{
		Theme:      theme,
		Clock:      h.clock,
		Seeds:      func() int64 { return seed },
		HighScores: h.store,
		Display:    h.display,
		Lifecycle:  h.lifecycle,
	})
	return h
}

// step advances the clock by one frame and ticks the session
func (h *harness) step() {
	h.clock.Advance(constants.FrameUpdateInterval)
	h.session.Update(constants.FrameUpdateInterval)
}

// injectCar places a grounded-blocking obstacle right on the player
func (h *harness) injectCar() {
	w := h.session.World()
	w.Obstacles = append(w.Obstacles, components.ObstacleComponent{
		ID:   w.NextID("obs"),
		Kind: components.KindCar,
		Lane: w.Player.Lane,
		Z:    0,
	})
}

func TestSessionIdleBeforeStart(t *testing.T) {
	h := newHarness(t, 1)

	h.session.Apply(events.ActionJump)
	h.session.Update(constants.FrameUpdateInterval)

	if h.session.Phase() != engine.PhaseStart {
		t.Errorf("Expected START, got %s", h.session.Phase())
	}
	if h.session.World() != nil {
		t.Error("World should not exist before Start")
	}
	if _, ok := h.session.LastResult(); ok {
		t.Error("No result expected before any run")
	}
}

func TestSessionStartSeedsRun(t *testing.T) {
	h := newHarness(t, 1)
	h.session.Start()

	w := h.session.World()
	if h.session.Phase() != engine.PhasePlaying {
		t.Fatalf("Expected PLAYING, got %s", h.session.Phase())
	}
	if len(w.Obstacles) != constants.SeedObstacleCount {
		t.Errorf("Expected %d seeded obstacles, got %d", constants.SeedObstacleCount, len(w.Obstacles))
	}
	if w.Progression.Speed != constants.InitialSpeed || w.Progression.Distance != 0 {
		t.Errorf("Unexpected initial progression %+v", w.Progression)
	}
	if len(w.Systems()) != 6 {
		t.Errorf("Expected 6 systems, got %d", len(w.Systems()))
	}
}

func TestEndToEndRun(t *testing.T) {
	h := newHarness(t, 42)
	h.session.Start()
	w := h.session.World()

	const ticks = 4000
	prev := 0.0
	for i := 0; i < ticks; i++ {
		w.Obstacles = w.Obstacles[:0]
		h.step()
		if w.Progression.Distance <= prev {
			t.Fatalf("Distance not strictly increasing at tick %d", i+1)
		}
		prev = w.Progression.Distance
	}

	expected := 0.5*ticks + constants.SpeedIncrement*ticks*(ticks+1)/2
	if math.Abs(w.Progression.Distance-expected) > 1e-6 {
		t.Fatalf("Expected distance %v, got %v", expected, w.Progression.Distance)
	}
	if h.session.Phase() != engine.PhasePlaying {
		t.Fatal("Run ended without a collision")
	}

	w.Obstacles = w.Obstacles[:0]
	h.injectCar()
	h.step()

	if h.session.Phase() != engine.PhaseGameOver {
		t.Fatalf("Expected GAMEOVER, got %s", h.session.Phase())
	}
	if len(h.lifecycle.results) != 1 {
		t.Fatalf("Expected exactly one RunEnded, got %d", len(h.lifecycle.results))
	}

	result := h.lifecycle.results[0]
	if result.FinalDistance != int(math.Floor(w.Progression.Distance)) {
		t.Errorf("Expected floored distance %d, got %d", int(math.Floor(w.Progression.Distance)), result.FinalDistance)
	}
	if result.FinalDistance < 2800 {
		t.Errorf("Final distance too small: %d", result.FinalDistance)
	}
	if result.FinalCoins != w.Progression.CoinCount {
		t.Errorf("Expected %d coins, got %d", w.Progression.CoinCount, result.FinalCoins)
	}
	if !result.NewHighScore || result.HighScore != result.FinalDistance {
		t.Errorf("First run should set the high score: %+v", result)
	}
	if stored, _ := h.store.Load(); stored != result.FinalDistance {
		t.Errorf("Expected stored best %d, got %d", result.FinalDistance, stored)
	}

	// Frozen after game over
	frozen := w.Progression
	lane := w.Player.Lane
	tick := w.Tick()
	h.session.Apply(events.ActionLaneLeft)
	h.session.Apply(events.ActionJump)
	for i := 0; i < 10; i++ {
		h.step()
	}
	if w.Progression != frozen || w.Player.Lane != lane || w.Tick() != tick {
		t.Error("World mutated after game over")
	}
	if len(h.lifecycle.results) != 1 {
		t.Errorf("RunEnded reported again: %d", len(h.lifecycle.results))
	}

	// Display saw throttled, monotone snapshots
	if len(h.display.snaps) == 0 {
		t.Fatal("No score snapshots")
	}
	if len(h.display.snaps) > ticks/6+1 {
		t.Errorf("Display not throttled: %d snapshots over %d frames", len(h.display.snaps), ticks)
	}
	for i := 1; i < len(h.display.snaps); i++ {
		if h.display.snaps[i].Distance < h.display.snaps[i-1].Distance {
			t.Fatalf("Snapshot distance decreased at %d", i)
		}
	}
}

func TestRestartKeepsOnlyHighScore(t *testing.T) {
	h := newHarness(t, 7)
	h.session.Start()
	w := h.session.World()
	for i := 0; i < 200; i++ {
		w.Obstacles = w.Obstacles[:0]
		h.step()
	}
	w.Obstacles = w.Obstacles[:0]
	h.injectCar()
	h.step()

	first, ok := h.session.LastResult()
	if !ok {
		t.Fatal("Expected first result")
	}

	h.session.Start()
	if h.session.Phase() != engine.PhasePlaying {
		t.Fatalf("Restart failed, phase %s", h.session.Phase())
	}
	w2 := h.session.World()
	if w2 == w {
		t.Fatal("Restart reused the previous world")
	}
	if w2.Progression.Distance != 0 || w2.Progression.CoinCount != 0 || w2.Player.Lane != components.LaneCenter {
		t.Errorf("Run state carried over: %+v", w2.Progression)
	}
	if _, ok := h.session.LastResult(); ok {
		t.Error("Last result should reset on restart")
	}

	// Immediate crash: short run does not beat the best
	w2.Obstacles = w2.Obstacles[:0]
	h.injectCar()
	h.step()

	second, _ := h.session.LastResult()
	if second.NewHighScore {
		t.Error("Shorter run reported as new high score")
	}
	if second.HighScore != first.FinalDistance || h.session.HighScore() != first.FinalDistance {
		t.Errorf("Expected best %d, got %d", first.FinalDistance, second.HighScore)
	}
}

func TestRestartWhilePlaying(t *testing.T) {
	h := newHarness(t, 3)
	h.session.Start()
	first := h.session.World()
	h.session.Apply(events.ActionLaneRight)
	h.step()

	h.session.Start()
	if h.session.World() == first {
		t.Error("Restart while playing should build a fresh run")
	}
	if h.session.World().Player.Lane != components.LaneCenter {
		t.Error("Lane carried over into the new run")
	}
	if len(h.lifecycle.results) != 0 {
		t.Error("Restart must not report a run end")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() RunResult {
		h := newHarness(t, 2024)
		h.session.Start()
		for i := 0; i < 100000 && h.session.Phase() == engine.PhasePlaying; i++ {
			switch i % 97 {
			case 10:
				h.session.Apply(events.ActionLaneLeft)
			case 50:
				h.session.Apply(events.ActionJump)
			case 80:
				h.session.Apply(events.ActionLaneRight)
			}
			h.step()
		}
		r, ok := h.session.LastResult()
		if !ok {
			t.Fatal("Run never ended")
		}
		return r
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Same seed and inputs diverged: %+v vs %+v", a, b)
	}
}

func TestSetThemeOnlyBetweenRuns(t *testing.T) {
	h := newHarness(t, 1)
	subway, _ := config.BuiltinTheme(config.ThemeSubway)

	if !h.session.SetTheme(subway) {
		t.Fatal("SetTheme rejected in START")
	}
	h.session.Start()
	if h.session.Theme().Name != config.ThemeSubway {
		t.Errorf("Expected subway, got %s", h.session.Theme().Name)
	}

	highway, _ := config.BuiltinTheme(config.ThemeHighway)
	if h.session.SetTheme(highway) {
		t.Error("SetTheme accepted while PLAYING")
	}
}

func TestUnknownActionIgnored(t *testing.T) {
	h := newHarness(t, 1)
	h.session.Start()
	before := h.session.World().Player
	h.session.Apply(events.Action(99))
	h.session.Apply(events.ActionNone)
	if h.session.World().Player != before {
		t.Error("Unknown action changed player state")
	}
}

// flakyStore serves its first load, then fails every read while writes still succeed
type flakyStore struct {
	best  int
	loads int
	saves int
}

func (s *flakyStore) Load() (int, error) {
	s.loads++
	if s.loads > 1 {
		return 0, errors.New("read: device busy")
	}
	return s.best, nil
}

func (s *flakyStore) Save(best int) error {
	s.saves++
	s.best = best
	return nil
}

func TestUnreadableStoreKeepsDurableBest(t *testing.T) {
	theme, _ := config.BuiltinTheme(config.ThemeHighway)
	clock := engine.NewMockTimeProvider(testEpoch)
	store := &flakyStore{best: 5000}
	lifecycle := &captureLifecycle{}
	s := NewSession(Options{
		Theme:      theme,
		Clock:      clock,
		Seeds:      func() int64 { return 3 },
		HighScores: store,
		Lifecycle:  lifecycle,
	})
	if s.HighScore() != 5000 {
		t.Fatalf("Expected loaded best 5000, got %d", s.HighScore())
	}

	s.Start()
	s.Update(constants.FrameUpdateInterval)
	w := s.World()
	w.Obstacles = append(w.Obstacles, components.ObstacleComponent{
		ID: w.NextID("obs"), Kind: components.KindCar, Lane: w.Player.Lane, Z: 0,
	})
	s.Update(constants.FrameUpdateInterval)

	if s.Phase() != engine.PhaseGameOver || len(lifecycle.results) != 1 {
		t.Fatalf("Expected one finished run, phase %v results %d", s.Phase(), len(lifecycle.results))
	}
	r := lifecycle.results[0]
	if r.HighScore != 5000 || r.NewHighScore {
		t.Errorf("Expected best 5000 and no new record, got (%d, %v)", r.HighScore, r.NewHighScore)
	}
	if store.saves != 0 || store.best != 5000 {
		t.Errorf("Durable best regressed: saves=%d best=%d", store.saves, store.best)
	}
}
