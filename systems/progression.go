package systems

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/engine"
	"github.com/ajikmega/GAME-SURF/status"
)

// ProgressionSystem ramps speed toward MaxSpeed and integrates distance
type ProgressionSystem struct {
	statTicks *atomic.Int64
	statSpeed *status.AtomicFloat
}

func NewProgressionSystem(w *engine.World) *ProgressionSystem {
	return &ProgressionSystem{
		statTicks: w.Status.Ints.Get(status.KeyTicks),
		statSpeed: w.Status.Floats.Get(status.KeySpeed),
	}
}

func (s *ProgressionSystem) Priority() int {
	return constants.PriorityProgression
}

func (s *ProgressionSystem) Update(w *engine.World, dt time.Duration) {
	p := &w.Progression
	p.Speed = math.Min(p.Speed+constants.SpeedIncrement, constants.MaxSpeed)
	p.Distance += p.Speed
	p.TrackOffset = math.Mod(p.TrackOffset+p.Speed, constants.SegmentLength)

	s.statTicks.Add(1)
	s.statSpeed.Set(p.Speed)
}
