package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap holds named metrics of one type
// Pointers are created once under the lock and then written without it
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the metric for name, registering a zero value on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	p := m.metrics[name]
	m.mu.RUnlock()
	if p != nil {
		return p
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if p = m.metrics[name]; p == nil {
		p = new(T)
		m.metrics[name] = p
	}
	return p
}

// Range visits metrics ordered by name
func (m *MetricMap[T]) Range(fn func(name string, p *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, name := range slices.Sorted(maps.Keys(m.metrics)) {
		fn(name, m.metrics[name])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.metrics)
}
