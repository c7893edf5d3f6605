package replay

import (
	"time"

	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/events"
	"github.com/ajikmega/GAME-SURF/game"
)

// Recorder captures runs as a game.Observer
// Each OnRunStart discards the previous recording
type Recorder struct {
	rec     *Recording
	start   time.Time
	pending []Input
	onEnd   func(*Recording)
}

// NewRecorder creates a recorder; onEnd, when set, receives every finished recording
func NewRecorder(onEnd func(*Recording)) *Recorder {
	return &Recorder{onEnd: onEnd}
}

func (r *Recorder) OnRunStart(seed int64, theme config.Theme, now time.Time) {
	theme.Kinds = append([]config.KindRule(nil), theme.Kinds...)
	r.rec = &Recording{
		Version: FormatVersion,
		Seed:    seed,
		Theme:   theme,
		Start:   now.UnixNano(),
		Frames:  make([]Frame, 0, 1024),
	}
	r.start = now
	r.pending = nil
}

func (r *Recorder) OnAction(action events.Action, now time.Time) {
	if r.rec == nil {
		return
	}
	r.pending = append(r.pending, Input{At: now.Sub(r.start), Action: action})
}

func (r *Recorder) OnTick(dt time.Duration, now time.Time) {
	if r.rec == nil {
		return
	}
	r.rec.Frames = append(r.rec.Frames, Frame{
		At:      now.Sub(r.start),
		DT:      dt,
		Actions: r.pending,
	})
	r.pending = nil
}

func (r *Recorder) OnRunEnd(result game.RunResult) {
	if r.rec == nil {
		return
	}
	r.rec.Outcome = &Outcome{
		FinalDistance: result.FinalDistance,
		FinalCoins:    result.FinalCoins,
	}
	if r.onEnd != nil {
		r.onEnd(r.rec)
	}
}

// Recording returns the current or most recent recording, nil before any run
func (r *Recorder) Recording() *Recording {
	return r.rec
}
