package engine

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/ajikmega/GAME-SURF/components"
	"github.com/ajikmega/GAME-SURF/events"
	"github.com/ajikmega/GAME-SURF/status"
)

// System is one stage of the per-tick pipeline
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World owns the entire state of one run
// A World is never reused: every run constructs a fresh one
type World struct {
	Player      components.PlayerComponent
	Progression components.ProgressionComponent
	Chaser      components.ChaserComponent
	Obstacles   []components.ObstacleComponent
	Coins       []components.CoinComponent

	Clock  Clock
	Rand   *rand.Rand
	Events *events.EventQueue
	Status *status.Registry

	tick    uint64
	nextID  uint64
	halted  bool
	systems []System
}

// NewWorld creates a world for one run
// A nil registry is replaced with a private one
func NewWorld(clock Clock, rng *rand.Rand, queue *events.EventQueue, reg *status.Registry) *World {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &World{
		Clock:     clock,
		Rand:      rng,
		Events:    queue,
		Status:    reg,
		Obstacles: make([]components.ObstacleComponent, 0, 16),
		Coins:     make([]components.CoinComponent, 0, 16),
		systems:   make([]System, 0, 8),
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion step, small N, equal priorities keep registration order
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs one tick of every system in priority order
// A halted world does not tick
func (w *World) Update(dt time.Duration) {
	if w.halted {
		return
	}
	w.tick++
	for _, system := range w.systems {
		system.Update(w, dt)
		if w.halted {
			return
		}
	}
}

// Halt freezes the world; no system runs afterwards, including the rest of the current tick
func (w *World) Halt() {
	w.halted = true
}

// Halted reports whether the world is frozen
func (w *World) Halted() bool {
	return w.halted
}

// Tick returns the number of ticks executed
func (w *World) Tick() uint64 {
	return w.tick
}

// NextID returns a run-unique entity id with the given prefix
func (w *World) NextID(prefix string) string {
	w.nextID++
	return prefix + "-" + strconv.FormatUint(w.nextID, 10)
}

// PushEvent stamps and enqueues an event
func (w *World) PushEvent(et events.EventType, payload any) {
	if w.Events == nil {
		return
	}
	w.Events.Push(events.GameEvent{
		Type:      et,
		Payload:   payload,
		Tick:      w.tick,
		Timestamp: w.Clock.Now(),
	})
}
