package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/slidepuzzle/internal/board"
	"github.com/vovakirdan/slidepuzzle/internal/config"
	"github.com/vovakirdan/slidepuzzle/internal/levels"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
	"github.com/vovakirdan/slidepuzzle/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLevels != "" {
		cfg.Game.LevelsDir = flagLevels
	}
	return cfg
}

// newLogger builds a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger
}

// interactiveLogger returns a logger for full-screen commands. Output would
// corrupt the UI, so it goes to --log-file or nowhere.
func interactiveLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard, "slidepuzzle"), func() {}
	}
	f, err := os.OpenFile(config.ExpandPath(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fail("cannot open log file: %v", err)
	}
	return newLogger(f, "slidepuzzle"), func() { f.Close() }
}

// levelLoaders returns the loaders for the configured directory, if any,
// followed by the built-in pack. Earlier loaders win on ID clashes.
func levelLoaders(dir string) []*levels.Loader {
	var loaders []*levels.Loader
	if dir != "" {
		loaders = append(loaders, levels.NewLoader(config.ExpandPath(dir)))
	}
	return append(loaders, levels.Embedded())
}

// loadLevels returns the built-in pack merged with the configured directory.
func loadLevels(dir string) []levels.Level {
	loaders := levelLoaders(dir)
	byID := make(map[string]levels.Level)
	for i := len(loaders) - 1; i >= 0; i-- {
		lvls, err := loaders[i].LoadAll()
		if err != nil {
			fail("loading puzzles from %s: %v", loaders[i].Root(), err)
		}
		for _, l := range lvls {
			byID[l.ID] = l
		}
	}

	merged := make([]levels.Level, 0, len(byID))
	for _, l := range byID {
		merged = append(merged, l)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ID < merged[j].ID
	})
	return merged
}

// findLevel looks up a puzzle by ID in the order loadLevels merges them. The
// error for an unknown ID wraps levels.ErrNotFound and lists the known IDs.
func findLevel(dir, id string) (levels.Level, error) {
	var known []string
	for _, l := range levelLoaders(dir) {
		lvl, err := l.LoadByID(id)
		if err == nil {
			return lvl, nil
		}
		if !errors.Is(err, levels.ErrNotFound) {
			return levels.Level{}, fmt.Errorf("loading puzzles from %s: %w", l.Root(), err)
		}
		ids, err := l.ListIDs()
		if err != nil {
			return levels.Level{}, fmt.Errorf("loading puzzles from %s: %w", l.Root(), err)
		}
		known = append(known, ids...)
	}

	slices.Sort(known)
	known = slices.Compact(known)
	return levels.Level{}, fmt.Errorf("%w: %q (known: %s)", levels.ErrNotFound, id, strings.Join(known, ", "))
}

// mustFindLevel is findLevel for commands that cannot go on without the puzzle.
func mustFindLevel(dir, id string) levels.Level {
	lvl, err := findLevel(dir, id)
	if err == nil {
		return lvl
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, levels.ErrNotFound) {
		fmt.Fprintln(os.Stderr, "Run 'slidepuzzle list' to see available puzzles.")
	}
	os.Exit(1)
	return levels.Level{}
}

// openStore opens the solves database. Interactive play continues without
// it, so the error is returned rather than fatal.
func openStore(cfg config.Config) (*storage.Store, error) {
	return storage.Open(cfg.Storage.DBPath)
}

// readSeed parses the seed from --seed text or a --seed-file ("-" is stdin).
// It reports false when neither was given.
func readSeed(text, file string) (board.Seed, bool, error) {
	switch {
	case text != "" && file != "":
		return nil, true, fmt.Errorf("--seed and --seed-file are mutually exclusive")
	case file == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, true, fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, true, fmt.Errorf("reading %s: %w", file, err)
		}
		text = string(data)
	case text == "":
		return nil, false, nil
	}

	s, err := seed.Parse(strings.TrimSpace(text))
	return s, true, err
}

// terminalSize returns the size of stdout, or 80x24 when it isn't a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
