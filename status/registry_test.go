package status

import (
	"strings"
	"sync"
	"testing"
)

func TestRegistryGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Expected the same pointer for repeated Get")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestRegistryConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyCoinsCollected).Add(1)
		}()
	}
	wg.Wait()

	if got := r.Ints.Get(KeyCoinsCollected).Load(); got != 16 {
		t.Errorf("Expected 16, got %d", got)
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.Ints.Count())
	}
}

func TestRegistryLine(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(KeyTheme).Store("subway")
	r.Ints.Get(KeyRunsStarted).Add(2)
	r.Floats.Get(KeySpeed).Set(0.75)

	line := r.Line()
	for _, want := range []string{"run.theme=subway", "runs.started=2", "progress.speed=0.7500"} {
		if !strings.Contains(line, want) {
			t.Errorf("Line %q missing %q", line, want)
		}
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should load empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+5))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}
