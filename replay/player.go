package replay

import (
	"fmt"
	"time"

	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/game"
)

// Player re-drives a recorded run frame by frame on a mock clock
type Player struct {
	rec     *Recording
	start   time.Time
	clock   *engine.MockTimeProvider
	session *game.Session
	next    int
}

// NewPlayer builds a session for rec and starts its run
// opts supplies collaborators; theme, clock and seed always come from rec
func NewPlayer(rec *Recording, opts game.Options) *Player {
	start := rec.StartTime()
	clock := engine.NewMockTimeProvider(start)

	opts.Theme = rec.Theme
	opts.Clock = clock
	opts.Seeds = func() int64 { return rec.Seed }
	opts.HighScores = nil
	opts.Observer = nil

	p := &Player{
		rec:     rec,
		start:   start,
		clock:   clock,
		session: game.NewSession(opts),
	}
	p.session.Start()
	return p
}

// Step applies the next frame's actions and tick; false once frames run out
func (p *Player) Step() bool {
	if p.next >= len(p.rec.Frames) {
		return false
	}
	frame := p.rec.Frames[p.next]
	p.next++

	for _, in := range frame.Actions {
		p.clock.SetTime(p.start.Add(in.At))
		p.session.Apply(in.Action)
	}
	p.clock.SetTime(p.start.Add(frame.At))
	p.session.Update(frame.DT)
	return true
}

// Done reports whether every frame has been applied
func (p *Player) Done() bool {
	return p.next >= len(p.rec.Frames)
}

func (p *Player) Session() *game.Session {
	return p.session
}

// Result checks the replayed outcome against the recording
func (p *Player) Result() (game.RunResult, error) {
	result, ok := p.session.LastResult()
	if !ok {
		return game.RunResult{}, ErrIncomplete
	}
	if o := p.rec.Outcome; o != nil {
		if o.FinalDistance != result.FinalDistance || o.FinalCoins != result.FinalCoins {
			return result, fmt.Errorf("%w: recorded %d/%d, replayed %d/%d", ErrDiverged,
				o.FinalDistance, o.FinalCoins, result.FinalDistance, result.FinalCoins)
		}
	}
	return result, nil
}

// Play runs every frame of rec headless and returns the checked result
func Play(rec *Recording) (game.RunResult, error) {
	p := NewPlayer(rec, game.Options{})
	for p.Step() {
	}
	return p.Result()
}
