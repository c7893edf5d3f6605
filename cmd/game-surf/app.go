package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/core"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/game"
	"github.com/ajikmega/GAME-SURF/highscore"
	"github.com/ajikmega/GAME-SURF/input"
	"github.com/ajikmega/GAME-SURF/render"
	"github.com/ajikmega/GAME-SURF/replay"
	"github.com/ajikmega/GAME-SURF/status"
)

// app owns the screen, the session and the frame loop
// Everything except the event poller runs on the loop goroutine
type app struct {
	cfg      config.Config
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	machine  *input.Machine
	themes   []config.Theme
	status   *status.Registry

	session *game.Session

	// Replay mode
	recording *replay.Recording
	player    *replay.Player
	verified  bool

	lastTick time.Time
}

func newApp(cfg config.Config, screen tcell.Screen, keys *input.KeyTable) *app {
	return &app{
		cfg:      cfg,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		machine:  input.NewMachine(keys),
		themes:   themeCycle(cfg),
		status:   status.NewRegistry(),
	}
}

func (a *app) options() game.Options {
	return game.Options{
		Display: a.renderer,
		Status:  a.status,
	}
}

// startSession prepares interactive play; record saves every finished run to cfg.ReplayDir
func (a *app) startSession(theme config.Theme, record bool) {
	opts := a.options()
	opts.Theme = theme
	opts.HighScores = highscore.NewFileStore(a.cfg.HighScorePath)
	if seed := a.cfg.Seed; seed != 0 {
		opts.Seeds = func() int64 { return seed }
	}
	if record {
		opts.Observer = replay.NewRecorder(a.saveReplay)
	}
	a.session = game.NewSession(opts)
}

// startReplay (re)starts playback of rec
func (a *app) startReplay(rec *replay.Recording) {
	a.recording = rec
	a.player = replay.NewPlayer(rec, a.options())
	a.session = a.player.Session()
	a.verified = false
}

func (a *app) saveReplay(rec *replay.Recording) {
	name := fmt.Sprintf("%s-%s-%d.replay", rec.Theme.Name, rec.StartTime().Format("20060102-150405"), rec.Seed)
	path := filepath.Join(a.cfg.ReplayDir, name)
	if err := replay.Save(path, rec); err != nil {
		log.Printf("replay save failed: %v", err)
		return
	}
	log.Printf("replay saved: %s (%d frames)", path, len(rec.Frames))
}

// run drives the loop until a quit intent
func (a *app) run() {
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(a.cfg.FrameInterval())
	defer frameTicker.Stop()

	a.lastTick = time.Now()
	a.render()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
			a.render()

		case now := <-frameTicker.C:
			a.tick(now)
			a.render()
		}
	}
}

// handleEvent applies one terminal event; false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	intent := a.machine.Process(ev)

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		w, h := a.screen.Size()
		a.renderer.Resize(w, h)
		a.screen.Sync()

	case input.IntentToggleDebug:
		a.renderer.ToggleDebug()

	case input.IntentStart:
		if a.player != nil {
			a.startReplay(a.recording)
			return true
		}
		a.session.Start()

	case input.IntentCycleTheme:
		if a.player != nil {
			return true
		}
		next := nextTheme(a.themes, a.session.Theme().Name)
		if a.session.SetTheme(next) {
			log.Printf("theme: %s", next.Name)
		}

	case input.IntentAction:
		if a.player != nil {
			return true
		}
		a.session.Apply(intent.Action)
	}
	return true
}

// tick advances one frame of play or playback
func (a *app) tick(now time.Time) {
	dt := now.Sub(a.lastTick)
	a.lastTick = now

	if a.player == nil {
		a.session.Update(dt)
		return
	}

	if a.session.Phase() == engine.PhasePlaying {
		a.player.Step()
	}
	if !a.verified && (a.player.Done() || a.session.Phase() == engine.PhaseGameOver) {
		a.verified = true
		if result, err := a.player.Result(); err != nil {
			log.Printf("replay check failed: %v", err)
		} else {
			log.Printf("replay verified: distance %d, coins %d", result.FinalDistance, result.FinalCoins)
		}
	}
}

func (a *app) render() {
	s := a.session
	f := render.Frame{
		Phase:     s.Phase(),
		World:     s.World(),
		Theme:     s.Theme(),
		HighScore: s.HighScore(),
		Status:    a.status,
		Replay:    a.player != nil,
	}
	if s.Phase() == engine.PhaseGameOver {
		if result, ok := s.LastResult(); ok {
			f.Result = &result
		}
	}
	a.renderer.RenderFrame(f)
}
