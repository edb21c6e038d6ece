package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidepuzzle/internal/platform/tui"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
)

var (
	flagSeed     string
	flagSeedFile string
)

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Play a puzzle",
	Long: `Play a puzzle from the pack, or a board given as a seed.

A seed is a JSON array of rows; each cell is null (empty) or a direction:
0 = up, 1 = right, 2 = down, 3 = left. Without a puzzle or seed, the
config's default seed is played.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Slide the block under the cursor
  U            - Undo
  R            - Restart
  S            - Enter a new seed
  Q/Ctrl+C     - Quit

Examples:
  slidepuzzle play 001-first-slide
  slidepuzzle play --seed '[[null,1,2],[null,null,3]]'
  slidepuzzle play --seed-file board.json
  cat board.json | slidepuzzle play --seed-file -`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSeed, "seed", "", "Board as a JSON seed")
	playCmd.Flags().StringVar(&flagSeedFile, "seed-file", "", "File holding a JSON seed (- for stdin)")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger, closeLog := interactiveLogger()
	defer closeLog()

	width, height := terminalSize()
	opts := tui.GameOptions{
		HistoryDepth: cfg.Game.HistoryDepth,
		ThemeName:    cfg.UI.Theme,
		ShowHints:    cfg.UI.ShowHints,
		Logger:       logger,
		Width:        width,
		Height:       height,
	}

	s, fromSeed, err := readSeed(flagSeed, flagSeedFile)
	switch {
	case err != nil:
		fail("%v", err)

	case fromSeed && len(args) > 0:
		fail("give either a puzzle or a seed, not both")

	case fromSeed:
		opts.Title = "Custom seed"
		opts.Seed = s

	case len(args) > 0:
		lvl := mustFindLevel(cfg.Game.LevelsDir, args[0])
		opts.PuzzleID = lvl.ID
		opts.Title = lvl.Name
		opts.Seed = lvl.Seed

	default:
		def, err := seed.Parse(cfg.Game.DefaultSeed)
		if err != nil {
			fail("no puzzle given and no usable game.default_seed: %v", err)
		}
		opts.Title = "Default puzzle"
		opts.Seed = def
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Warn("playing without solve history", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if err := tui.RunGame(opts); err != nil {
		fail("%v", err)
	}
}
