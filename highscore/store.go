// Package highscore persists the single best-distance scalar.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Store loads and saves the best final distance
type Store interface {
	Load() (int, error)
	Save(best int) error
}

// Record compares final against the best known to the caller and the stored best
// It saves only when final beats both; after a failed Load nothing is written,
// so an unreadable store never loses a higher best it may still hold
func Record(store Store, known, final int) (best int, isNew bool, err error) {
	best = max(known, final)
	isNew = final > known
	if store == nil {
		return best, isNew, nil
	}

	stored, err := store.Load()
	if err != nil {
		return best, isNew, fmt.Errorf("load high score: %w", err)
	}
	if prev := max(known, stored); final <= prev {
		return prev, false, nil
	}

	if err := store.Save(final); err != nil {
		return final, true, fmt.Errorf("save high score: %w", err)
	}
	return final, true, nil
}

// fileRecord is the on-disk TOML shape
type fileRecord struct {
	Best int `toml:"best"`
}

// FileStore keeps the high score in a small TOML file
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location
func (s *FileStore) Path() string {
	return s.path
}

// Load returns 0 when the file does not exist yet
func (s *FileStore) Load() (int, error) {
	var rec fileRecord
	if _, err := toml.DecodeFile(s.path, &rec); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read high score %s: %w", s.path, err)
	}
	if rec.Best < 0 {
		return 0, fmt.Errorf("high score %s: negative value %d", s.path, rec.Best)
	}
	return rec.Best, nil
}

// Save writes through a temp file and renames it over the target
func (s *FileStore) Save(best int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create high score dir: %w", err)
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(fileRecord{Best: best}); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode high score: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write high score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace high score: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	mu   sync.Mutex
	best int
	err  error
}

func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best}
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, m.err
}

func (m *MemoryStore) Save(best int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.best = best
	return nil
}

// Fail makes every subsequent call return err; nil restores normal operation
func (m *MemoryStore) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
