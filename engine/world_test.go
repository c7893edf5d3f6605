package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ajikmega/GAME-SURF/events"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	halt     bool
}

func (s *recordingSystem) Update(w *World, dt time.Duration) {
	*s.log = append(*s.log, s.name)
	if s.halt {
		w.Halt()
	}
}

func (s *recordingSystem) Priority() int { return s.priority }

func newWorld() *World {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewWorld(clock, rand.New(rand.NewSource(1)), events.NewEventQueue(), nil)
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := newWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "score", priority: 900, log: &log})
	w.AddSystem(&recordingSystem{name: "progress", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "collide", priority: 40, log: &log})
	w.AddSystem(&recordingSystem{name: "collide2", priority: 40, log: &log})

	w.Update(16 * time.Millisecond)

	expected := []string{"progress", "collide", "collide2", "score"}
	if len(log) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, log)
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], log[i])
		}
	}
	if len(w.Systems()) != 4 {
		t.Errorf("Expected 4 systems, got %d", len(w.Systems()))
	}
}

func TestHaltStopsTickImmediately(t *testing.T) {
	w := newWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "a", priority: 1, log: &log})
	w.AddSystem(&recordingSystem{name: "b", priority: 2, log: &log, halt: true})
	w.AddSystem(&recordingSystem{name: "c", priority: 3, log: &log})

	w.Update(16 * time.Millisecond)
	if len(log) != 2 || !w.Halted() {
		t.Fatalf("Expected a,b then halt, got %v", log)
	}

	w.Update(16 * time.Millisecond)
	if len(log) != 2 {
		t.Errorf("Halted world ticked again: %v", log)
	}
	if w.Tick() != 1 {
		t.Errorf("Expected tick 1, got %d", w.Tick())
	}
}

func TestNextIDMonotonic(t *testing.T) {
	w := newWorld()
	if id := w.NextID("obs"); id != "obs-1" {
		t.Errorf("Expected obs-1, got %s", id)
	}
	if id := w.NextID("coin"); id != "coin-2" {
		t.Errorf("Expected coin-2, got %s", id)
	}
}

func TestPushEventStamps(t *testing.T) {
	w := newWorld()
	w.Update(0)
	w.PushEvent(events.EventScoreUpdate, nil)

	evs := w.Events.Consume()
	if len(evs) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(evs))
	}
	if evs[0].Tick != 1 || !evs[0].Timestamp.Equal(w.Clock.Now()) {
		t.Errorf("Event not stamped: %+v", evs[0])
	}
}

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		from, to GamePhase
		ok       bool
	}{
		{PhaseStart, PhasePlaying, true},
		{PhaseStart, PhaseGameOver, false},
		{PhasePlaying, PhaseGameOver, true},
		{PhasePlaying, PhasePlaying, true},
		{PhasePlaying, PhaseStart, false},
		{PhaseGameOver, PhasePlaying, true},
		{PhaseGameOver, PhaseStart, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.ok {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.ok, got)
		}
	}
	if PhaseGameOver.String() != "GAMEOVER" {
		t.Errorf("Unexpected phase name %s", PhaseGameOver)
	}
}
