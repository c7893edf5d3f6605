package main

import "github.com/ajikmega/GAME-SURF/config"

// themeCycle lists selectable themes: custom ones first, then built-ins they don't shadow
func themeCycle(cfg config.Config) []config.Theme {
	themes := make([]config.Theme, 0, len(cfg.Themes)+2)
	seen := make(map[string]bool)
	for _, t := range cfg.Themes {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		themes = append(themes, t)
	}
	for _, name := range config.BuiltinThemeNames() {
		if seen[name] {
			continue
		}
		t, _ := config.BuiltinTheme(name)
		themes = append(themes, t)
	}
	return themes
}

// nextTheme returns the theme after current, wrapping around
// An unknown current selects the first theme
func nextTheme(themes []config.Theme, current string) config.Theme {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
