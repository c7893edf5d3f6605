package game

import (
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/events"
	"github.com/ajikmega/GAME-SURF/highscore"
	"github.com/ajikmega/GAME-SURF/status"
	"github.com/ajikmega/GAME-SURF/systems"
)

// Options configures a Session; zero values fall back to defaults
type Options struct {
	Theme         config.Theme
	Clock         engine.Clock
	Seeds         func() int64
	HighScores    highscore.Store
	Display       Display
	Lifecycle     Lifecycle
	Observer      Observer
	Status        *status.Registry
	ScoreInterval time.Duration
}

// Session owns the phase machine and the current run
// Not safe for concurrent use: one goroutine drives Start, Apply and Update
type Session struct {
	theme     config.Theme
	clock     engine.Clock
	seeds     func() int64
	store     highscore.Store
	display   Display
	lifecycle Lifecycle
	observer  Observer
	status    *status.Registry
	interval  time.Duration

	queue  *events.EventQueue
	router *events.Router[*Session]

	phase     engine.GamePhase
	world     *engine.World
	motion    *systems.MotionSystem
	seed      int64
	highScore int
	last      *RunResult

	statStarted    *atomic.Int64
	statEnded      *atomic.Int64
	statDispatched *atomic.Int64
	statTheme      *status.AtomicString
}

// NewSession creates a session in the START phase and loads the stored best
func NewSession(opts Options) *Session {
	if opts.Theme.Name == "" {
		opts.Theme, _ = config.BuiltinTheme(config.ThemeHighway)
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.Seeds == nil {
		opts.Seeds = func() int64 { return time.Now().UnixNano() }
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.ScoreInterval <= 0 {
		opts.ScoreInterval = constants.ScoreUpdateInterval
	}

	s := &Session{
		theme:     opts.Theme,
		clock:     opts.Clock,
		seeds:     opts.Seeds,
		store:     opts.HighScores,
		display:   opts.Display,
		lifecycle: opts.Lifecycle,
		observer:  opts.Observer,
		status:    opts.Status,
		interval:  opts.ScoreInterval,
		queue:     events.NewEventQueue(),
		phase:     engine.PhaseStart,

		statStarted:    opts.Status.Ints.Get(status.KeyRunsStarted),
		statEnded:      opts.Status.Ints.Get(status.KeyRunsEnded),
		statDispatched: opts.Status.Ints.Get(status.KeyEventsDispatched),
		statTheme:      opts.Status.Strings.Get(status.KeyTheme),
	}
	s.statTheme.Store(s.theme.Name)

	s.router = events.NewRouter[*Session](s.queue)
	s.router.Register(events.HandlerFunc[*Session]{
		Types: []events.EventType{events.EventCollision},
		Fn:    (*Session).handleCollision,
	})
	s.router.Register(events.HandlerFunc[*Session]{
		Types: []events.EventType{events.EventScoreUpdate},
		Fn:    (*Session).handleScore,
	})
	s.router.Register(events.HandlerFunc[*Session]{
		Types: []events.EventType{events.EventGameOver},
		Fn:    (*Session).handleGameOver,
	})

	if s.store != nil {
		stored, err := s.store.Load()
		if err != nil {
			log.Printf("high score load failed: %v", err)
		}
		s.highScore = stored
	}

	return s
}

// Start begins a fresh run from START, PLAYING (restart) or GAMEOVER
// All run state is rebuilt; nothing carries over except the high score
func (s *Session) Start() {
	if !engine.CanTransition(s.phase, engine.PhasePlaying) {
		return
	}

	// Events left from the previous run are stale
	s.queue.Consume()

	s.seed = s.seeds()
	w := engine.NewWorld(s.clock, rand.New(rand.NewSource(s.seed)), s.queue, s.status)
	w.Progression.Speed = constants.InitialSpeed

	motion := systems.NewMotionSystem()
	spawn := systems.NewSpawnSystem(w, s.theme)
	w.AddSystem(systems.NewProgressionSystem(w))
	w.AddSystem(motion)
	w.AddSystem(spawn)
	w.AddSystem(systems.NewCollisionSystem(w, s.theme))
	w.AddSystem(systems.NewChaserSystem())
	w.AddSystem(systems.NewScoreSystem(s.interval))

	s.world = w
	s.motion = motion
	s.last = nil
	s.phase = engine.PhasePlaying
	s.statStarted.Add(1)

	if s.observer != nil {
		s.observer.OnRunStart(s.seed, s.theme, s.clock.Now())
	}

	spawn.Seed(w)
	w.PushEvent(events.EventRunStarted, &events.RunStartedPayload{Seed: s.seed, Theme: s.theme.Name})
	s.dispatch()

	log.Printf("run started: theme=%s seed=%d", s.theme.Name, s.seed)
}

// Apply routes a player action to the current run
// Ignored outside PLAYING and for unknown actions
func (s *Session) Apply(action events.Action) {
	if s.phase != engine.PhasePlaying || !action.Valid() {
		return
	}
	if s.observer != nil {
		s.observer.OnAction(action, s.clock.Now())
	}
	s.motion.HandleAction(s.world, action)
}

// Update advances the current run by one tick and dispatches its events
// No-op outside PLAYING
func (s *Session) Update(dt time.Duration) {
	if s.phase != engine.PhasePlaying {
		return
	}
	if s.observer != nil {
		s.observer.OnTick(dt, s.clock.Now())
	}
	s.world.Update(dt)
	s.dispatch()
}

// SetTheme selects the theme for the next run; ignored while PLAYING
func (s *Session) SetTheme(theme config.Theme) bool {
	if s.phase == engine.PhasePlaying {
		return false
	}
	s.theme = theme
	s.statTheme.Store(theme.Name)
	return true
}

func (s *Session) Phase() engine.GamePhase { return s.phase }

// World returns the current run state, nil before the first Start
// Frozen after GAMEOVER for reporting
func (s *Session) World() *engine.World { return s.world }

func (s *Session) Theme() config.Theme { return s.theme }

func (s *Session) Seed() int64 { return s.seed }

func (s *Session) HighScore() int { return s.highScore }

// LastResult returns the result of the most recent finished run
func (s *Session) LastResult() (RunResult, bool) {
	if s.last == nil {
		return RunResult{}, false
	}
	return *s.last, true
}

// Status returns the metrics registry shared by every run
func (s *Session) Status() *status.Registry { return s.status }

func (s *Session) dispatch() {
	n := s.router.DispatchAll(s)
	s.statDispatched.Add(int64(n))
}

func (s *Session) handleCollision(ev events.GameEvent) {
	if s.phase != engine.PhasePlaying {
		return
	}
	if p, ok := ev.Payload.(*events.CollisionPayload); ok {
		log.Printf("collision: %s in lane %d at distance %.2f", p.Kind, p.Lane, p.Distance)
	}
	s.endRun()
}

// endRun is the single terminal transition of a run
func (s *Session) endRun() {
	w := s.world
	w.Halt()

	result := RunResult{
		Seed:          s.seed,
		Theme:         s.theme.Name,
		FinalDistance: w.Progression.FlooredDistance(),
		FinalCoins:    w.Progression.CoinCount,
		Ticks:         w.Tick(),
	}

	best, isNew, err := highscore.Record(s.store, s.highScore, result.FinalDistance)
	if err != nil {
		log.Printf("high score update failed: %v", err)
	}
	s.highScore = best
	result.HighScore = s.highScore
	result.NewHighScore = isNew

	s.last = &result
	s.phase = engine.PhaseGameOver
	s.statEnded.Add(1)

	w.PushEvent(events.EventGameOver, &events.GameOverPayload{
		FinalDistance: result.FinalDistance,
		FinalCoins:    result.FinalCoins,
	})

	log.Printf("run ended: distance=%d coins=%d best=%d new=%v",
		result.FinalDistance, result.FinalCoins, result.HighScore, result.NewHighScore)
}

func (s *Session) handleScore(ev events.GameEvent) {
	p, ok := ev.Payload.(*events.ScoreUpdatePayload)
	if !ok || s.display == nil {
		return
	}
	s.display.UpdateScore(ScoreSnapshot{Distance: p.Distance, Coins: p.Coins})
}

func (s *Session) handleGameOver(ev events.GameEvent) {
	if s.last == nil {
		return
	}
	result := *s.last
	if s.lifecycle != nil {
		s.lifecycle.RunEnded(result)
	}
	if s.observer != nil {
		s.observer.OnRunEnd(result)
	}
}
