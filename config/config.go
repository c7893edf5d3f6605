// Package config loads game settings and obstacle themes from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ajikmega/GAME-SURF/constants"
)

// Config holds all user-tunable settings
type Config struct {
	Theme         string      `toml:"theme"`
	Seed          int64       `toml:"seed"` // 0 draws a seed per run
	FPS           int         `toml:"fps"`
	Debug         bool        `toml:"debug"`
	HighScorePath string      `toml:"high_score_path"`
	ReplayDir     string      `toml:"replay_dir"`
	Keys          KeyBindings `toml:"keys"`
	Themes        []Theme     `toml:"themes"`
}

// KeyBindings overrides the default keymap
// Values are binding names (left, right, jump, slide, start, theme, quit, debug, none)
type KeyBindings struct {
	Runes   map[string]string `toml:"runes"`   // single character or "space"
	Special map[string]string `toml:"special"` // tcell key names: Up, Enter, PgUp, F2
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Theme:         ThemeHighway,
		FPS:           int(time.Second / constants.FrameUpdateInterval),
		HighScorePath: defaultDataPath("highscore.toml"),
		ReplayDir:     defaultDataPath("replays"),
	}
}

// DefaultPath is the config file location used when -config is not given
func DefaultPath() string {
	return defaultDataPath("config.toml")
}

func defaultDataPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "game-surf", name)
}

// Load reads path over the defaults
// A missing file is not an error and yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks settings and every custom theme
func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("fps must be in 1..240, got %d", c.FPS)
	}
	for i := range c.Themes {
		if err := c.Themes[i].Validate(); err != nil {
			return err
		}
	}
	if _, err := c.ResolveTheme(); err != nil {
		return err
	}
	return nil
}

// ResolveTheme returns the selected theme, custom themes shadowing built-ins
func (c Config) ResolveTheme() (Theme, error) {
	for _, t := range c.Themes {
		if t.Name == c.Theme {
			t.Kinds = append([]KindRule(nil), t.Kinds...)
			return t, nil
		}
	}
	if t, ok := BuiltinTheme(c.Theme); ok {
		return t, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (built-in: %v)", c.Theme, BuiltinThemeNames())
}

// FrameInterval is the tick period derived from FPS
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}
