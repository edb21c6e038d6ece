package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidepuzzle/internal/levels"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
)

var flagListBoards bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long: `Shows the built-in puzzles and any found in the --levels directory.
With --boards, each starting board is printed in the glyph format used by
puzzle files, followed by the puzzle's metadata.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListBoards, "boards", false, "Print each puzzle's starting board")
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	lvls := loadLevels(cfg.Game.LevelsDir)

	if len(lvls) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Difficulty", "Size")
	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, "--", maxNameLen, "----", "----------", "----")

	for _, l := range lvls {
		b, err := l.NewBoard()
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %-*s  %-10s  %dx%d\n", maxIDLen, l.ID, maxNameLen, l.Name, l.Difficulty, b.Width(), b.Height())
		if flagListBoards {
			fmt.Println()
			fmt.Println(indent(levelCard(l), "      "))
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println("Run 'slidepuzzle play <id>' to play a puzzle.")
}

// levelCard renders a puzzle's starting board as glyph rows, followed by its
// metadata sorted by key.
func levelCard(l levels.Level) string {
	var b strings.Builder
	b.WriteString(seed.FormatGlyphs(l.Seed))
	if len(l.Metadata) > 0 {
		b.WriteString("\n")
	}
	for _, k := range slices.Sorted(maps.Keys(l.Metadata)) {
		fmt.Fprintf(&b, "\n%s: %s", k, l.Metadata[k])
	}
	return b.String()
}
