package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/ajikmega/GAME-SURF/config"
	"github.com/ajikmega/GAME-SURF/core"
	"github.com/ajikmega/GAME-SURF/input"
	"github.com/ajikmega/GAME-SURF/replay"
)

var (
	configFlag = flag.String("config", "", "Config file (default: user config dir)")
	themeFlag  = flag.String("theme", "", "Obstacle theme: highway, subway or a custom theme name")
	seedFlag   = flag.Int64("seed", 0, "Fixed run seed, 0 draws a new seed per run")
	fpsFlag    = flag.Int("fps", 0, "Frames per second, one simulation tick per frame")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/game-surf.log and show the status line")
	recordFlag = flag.Bool("record", false, "Save every finished run as a replay")
	replayFlag = flag.String("replay", "", "Play back a replay file instead of playing")
)

func main() {
	// Terminal is restored through the registered cleanup
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	theme, err := cfg.ResolveTheme()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	override, err := input.LoadKeyConfig(cfg.Keys.Runes, cfg.Keys.Special)
	if err != nil {
		fmt.Fprintf(os.Stderr, "key config: %v\n", err)
		os.Exit(1)
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), override)

	var rec *replay.Recording
	if *replayFlag != "" {
		rec, err = replay.Load(*replayFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterCleanup(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.HideCursor()

	a := newApp(cfg, screen, keys)
	a.renderer.SetDebug(cfg.Debug)
	if rec != nil {
		log.Printf("replaying %s: theme %s, seed %d, %d frames", *replayFlag, rec.Theme.Name, rec.Seed, len(rec.Frames))
		a.startReplay(rec)
	} else {
		a.startSession(theme, *recordFlag)
	}

	a.run()
}

// loadConfig reads the config file and applies explicitly set flags over it
func loadConfig() (config.Config, error) {
	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = *themeFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
