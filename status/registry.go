package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeyTicks            = "engine.ticks"
	KeySpawnObstacles   = "spawn.obstacles"
	KeySpawnCoins       = "spawn.coins"
	KeyDespawned        = "spawn.despawned"
	KeyCoinsCollected   = "coins.collected"
	KeyRunsStarted      = "runs.started"
	KeyRunsEnded        = "runs.ended"
	KeySpeed            = "progress.speed"
	KeyTheme            = "run.theme"
	KeyLastCollision    = "run.last_collision"
	KeyEventsDispatched = "events.dispatched"
)

// Registry is the central metrics facade
// Systems cache pointers at construction; Update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line renders every metric as a single "key=value" line, sorted per type
func (r *Registry) Line() string {
	parts := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, k+"="+v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.4f", k, v.Get()))
	})
	return strings.Join(parts, " ")
}
