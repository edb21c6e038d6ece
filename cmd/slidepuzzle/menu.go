package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidepuzzle/internal/platform/tui"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
)

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := interactiveLogger()
	defer closeLog()

	lvls := loadLevels(cfg.Game.LevelsDir)

	defaultSeed, err := seed.Parse(cfg.Game.DefaultSeed)
	if err != nil && len(lvls) > 0 {
		defaultSeed = lvls[0].Seed
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Warn("playing without solve history", "error", err)
	} else {
		defer store.Close()
	}

	width, height := terminalSize()
	opts := tui.SessionOptions{
		Levels:       lvls,
		DefaultSeed:  defaultSeed,
		HistoryDepth: cfg.Game.HistoryDepth,
		ThemeName:    cfg.UI.Theme,
		ShowHints:    cfg.UI.ShowHints,
		Store:        store,
		Logger:       logger,
		Width:        width,
		Height:       height,
	}

	if err := tui.RunSession(opts); err != nil {
		fail("running menu: %v", err)
	}
}
