package config

import (
	"fmt"
	"sort"

	"github.com/ajikmega/GAME-SURF/components"
)

// CollisionRule selects how an obstacle kind is survived
type CollisionRule string

const (
	// RuleClearance is survived by being at or above the kind's clearance height
	RuleClearance CollisionRule = "clearance"

	// RuleSlide is survived only while sliding
	RuleSlide CollisionRule = "slide"
)

// KindRule is one row of the collision policy table
type KindRule struct {
	Kind      components.ObstacleKind `toml:"kind"`
	Range     float64                 `toml:"range"`
	Rule      CollisionRule           `toml:"rule"`
	Clearance float64                 `toml:"clearance"`
}

// Fails reports whether the player, already in range and lane, loses the run
// A player exactly at the clearance height clears the obstacle
func (r KindRule) Fails(p *components.PlayerComponent) bool {
	switch r.Rule {
	case RuleSlide:
		return !p.IsSliding
	default:
		return p.VerticalPos < r.Clearance
	}
}

// Theme is the themeable spawn and collision configuration
type Theme struct {
	Name           string     `toml:"name"`
	SpawnInterval  float64    `toml:"spawn_interval"`
	ObstacleSpawnZ float64    `toml:"obstacle_spawn_z"`
	CoinSpawnZ     float64    `toml:"coin_spawn_z"`
	Kinds          []KindRule `toml:"kinds"`
}

// Rule returns the collision rule for kind
func (t *Theme) Rule(kind components.ObstacleKind) (KindRule, bool) {
	for _, r := range t.Kinds {
		if r.Kind == kind {
			return r, true
		}
	}
	return KindRule{}, false
}

// KindSet returns the obstacle kinds in table order, the uniform draw set for spawning
func (t *Theme) KindSet() []components.ObstacleKind {
	kinds := make([]components.ObstacleKind, len(t.Kinds))
	for i, r := range t.Kinds {
		kinds[i] = r.Kind
	}
	return kinds
}

// Validate checks the theme is usable by the spawn and collision systems
func (t *Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing name")
	}
	if t.SpawnInterval <= 0 {
		return fmt.Errorf("theme %q: spawn_interval must be positive, got %v", t.Name, t.SpawnInterval)
	}
	if t.ObstacleSpawnZ >= 0 || t.CoinSpawnZ >= 0 {
		return fmt.Errorf("theme %q: spawn z values must be ahead of the player (negative)", t.Name)
	}
	if len(t.Kinds) == 0 {
		return fmt.Errorf("theme %q: no obstacle kinds", t.Name)
	}

	seen := make(map[components.ObstacleKind]bool, len(t.Kinds))
	for _, r := range t.Kinds {
		if r.Kind == "" {
			return fmt.Errorf("theme %q: obstacle kind without name", t.Name)
		}
		if seen[r.Kind] {
			return fmt.Errorf("theme %q: duplicate kind %s", t.Name, r.Kind)
		}
		seen[r.Kind] = true
		if r.Range <= 0 {
			return fmt.Errorf("theme %q: kind %s range must be positive", t.Name, r.Kind)
		}
		switch r.Rule {
		case RuleClearance, RuleSlide:
		default:
			return fmt.Errorf("theme %q: kind %s has unknown rule %q", t.Name, r.Kind, r.Rule)
		}
	}
	return nil
}

// Built-in theme names
const (
	ThemeHighway = "highway"
	ThemeSubway  = "subway"
)

var builtinThemes = map[string]Theme{
	ThemeHighway: {
		Name:           ThemeHighway,
		SpawnInterval:  40,
		ObstacleSpawnZ: -150,
		CoinSpawnZ:     -120,
		Kinds: []KindRule{
			{Kind: components.KindCar, Range: 2, Rule: RuleClearance, Clearance: 1.2},
			{Kind: components.KindTruck, Range: 4, Rule: RuleClearance, Clearance: 3.5},
			{Kind: components.KindRampTruck, Range: 2, Rule: RuleClearance, Clearance: 0.2},
		},
	},
	ThemeSubway: {
		Name:           ThemeSubway,
		SpawnInterval:  30,
		ObstacleSpawnZ: -120,
		CoinSpawnZ:     -100,
		Kinds: []KindRule{
			{Kind: components.KindBarrier, Range: 3, Rule: RuleSlide},
			{Kind: components.KindTrain, Range: 4, Rule: RuleClearance, Clearance: 3.5},
			{Kind: components.KindRamp, Range: 2, Rule: RuleClearance, Clearance: 0.2},
		},
	},
}

// BuiltinTheme returns a copy of the named built-in theme
func BuiltinTheme(name string) (Theme, bool) {
	t, ok := builtinThemes[name]
	if !ok {
		return Theme{}, false
	}
	t.Kinds = append([]KindRule(nil), t.Kinds...)
	return t, true
}

// BuiltinThemeNames lists built-in themes in sorted order
func BuiltinThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for n := range builtinThemes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
