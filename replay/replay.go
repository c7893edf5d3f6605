// Package replay records runs as seed plus timed inputs and plays them back
// deterministically on a mock clock.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/events"
)

// FormatVersion is bumped whenever the encoded layout changes
const FormatVersion = 1

var (
	ErrVersion    = errors.New("unsupported replay version")
	ErrIncomplete = errors.New("replay ended before the run did")
	ErrDiverged   = errors.New("replay result differs from recording")
)

// Input is one action applied between ticks, At is relative to run start
type Input struct {
	At     time.Duration `msgpack:"at"`
	Action events.Action `msgpack:"a"`
}

// Frame is one tick and the actions applied before it
type Frame struct {
	At      time.Duration `msgpack:"at"`
	DT      time.Duration `msgpack:"dt"`
	Actions []Input       `msgpack:"in,omitempty"`
}

// Outcome is the recorded end of the run
type Outcome struct {
	FinalDistance int `msgpack:"distance"`
	FinalCoins    int `msgpack:"coins"`
}

// Recording holds everything needed to rebuild a run
type Recording struct {
	Version int          `msgpack:"v"`
	Seed    int64        `msgpack:"seed"`
	Theme   config.Theme `msgpack:"theme"`
	Start   int64        `msgpack:"start"` // unix nanos
	Frames  []Frame      `msgpack:"frames"`
	Outcome *Outcome     `msgpack:"outcome,omitempty"`
}

// StartTime returns the recorded run start
func (r *Recording) StartTime() time.Time {
	return time.Unix(0, r.Start).UTC()
}

// Duration is the clock offset of the last recorded tick
func (r *Recording) Duration() time.Duration {
	if len(r.Frames) == 0 {
		return 0
	}
	return r.Frames[len(r.Frames)-1].At
}

// Encode writes rec as msgpack
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads a msgpack recording and checks its version
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	if err := rec.Theme.Validate(); err != nil {
		return nil, fmt.Errorf("replay theme: %w", err)
	}
	return &rec, nil
}

// Save writes rec to path, creating parent directories
func Save(path string, rec *Recording) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create replay dir: %w", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write replay %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
