package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidepuzzle/internal/board"
	"github.com/vovakirdan/slidepuzzle/internal/history"
	"github.com/vovakirdan/slidepuzzle/internal/render"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
)

var (
	flagMoves      string
	flagVerbose    bool
	flagJSON       bool
	flagRequireWin bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle]",
	Short: "Apply moves to a board and print the result",
	Long: `Apply a list of moves to a puzzle (or a --seed) without the UI and
print the resulting board. Useful for scripting and checking solutions.

Moves are "x,y" coordinates of the block to slide, separated by spaces or
semicolons. "u" undoes the previous move.

Examples:
  slidepuzzle solve 002-make-way --moves "2,1 2,0 1,0"
  slidepuzzle solve --seed '[[1]]' --moves "0,0" --json
  slidepuzzle solve 003-the-loop --moves "2,2 u 2,2" --verbose`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to apply, e.g. \"2,1 2,0\"")
	solveCmd.Flags().StringVar(&flagSeed, "seed", "", "Board as a JSON seed")
	solveCmd.Flags().StringVar(&flagSeedFile, "seed-file", "", "File holding a JSON seed (- for stdin)")
	solveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every move")
	solveCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the final board as a JSON seed")
	solveCmd.Flags().BoolVar(&flagRequireWin, "require-win", false, "Exit with status 2 unless the board is cleared")
}

// move is one parsed step: a slide at (x, y) or an undo.
type move struct {
	x, y int
	undo bool
}

func (m move) String() string {
	if m.undo {
		return "undo"
	}
	return fmt.Sprintf("%d,%d", m.x, m.y)
}

// parseMoves parses "x,y" pairs and "u" separated by spaces or semicolons.
func parseMoves(text string) ([]move, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t' || r == '\n'
	})

	moves := make([]move, 0, len(fields))
	for i, f := range fields {
		if f == "u" || f == "undo" {
			moves = append(moves, move{undo: true})
			continue
		}
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("move %d: %q is not x,y", i+1, f)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("move %d: %q is not x,y", i+1, f)
		}
		moves = append(moves, move{x: x, y: y})
	}
	return moves, nil
}

// applyMoves plays moves on state. The returned log has one line per move.
func applyMoves(state *history.State, moves []move) ([]string, error) {
	var steps []string
	for i, m := range moves {
		if m.undo {
			if !state.CanUndo() {
				return steps, fmt.Errorf("move %d: nothing to undo", i+1)
			}
			state.Undo()
			steps = append(steps, fmt.Sprintf("%2d. undo", i+1))
			continue
		}

		moved, err := state.Slide(m.x, m.y)
		if err != nil {
			return steps, fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
		result := "slid"
		if !moved {
			result = "blocked"
		}
		steps = append(steps, fmt.Sprintf("%2d. %s %s", i+1, m, result))
	}
	return steps, nil
}

func runSolve(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	s, fromSeed, err := readSeed(flagSeed, flagSeedFile)
	switch {
	case err != nil:
		fail("%v", err)
	case fromSeed && len(args) > 0:
		fail("give either a puzzle or a seed, not both")
	case !fromSeed && len(args) == 0:
		fail("give a puzzle or a --seed")
	case !fromSeed:
		s = mustFindLevel(cfg.Game.LevelsDir, args[0]).Seed
	}

	moves, err := parseMoves(flagMoves)
	if err != nil {
		fail("%v", err)
	}

	state, err := history.FromSeed(s)
	if err != nil {
		fail("%v", err)
	}
	state.SetMaxDepth(max(cfg.Game.HistoryDepth, len(moves)))

	steps, applyErr := applyMoves(state, moves)
	if flagVerbose {
		for _, step := range steps {
			fmt.Println(step)
		}
		fmt.Println()
	}
	if applyErr != nil {
		fail("%v", applyErr)
	}

	final := state.Peek()
	if flagJSON {
		fmt.Println(seed.Format(final.Export()))
	} else {
		fmt.Println(render.ASCII(render.Project(final)))
		fmt.Println()
		fmt.Println(describe(final))
	}

	if flagRequireWin && !final.IsWon() {
		os.Exit(2)
	}
}

// describe summarizes a board's state in one line.
func describe(b *board.Board) string {
	switch {
	case b.IsWon():
		return "Cleared!"
	case b.Stuck():
		return fmt.Sprintf("Stuck: %d blocks left and none can move.", b.Blocks())
	default:
		return fmt.Sprintf("%d blocks left, %d can move.", b.Blocks(), len(b.Moves()))
	}
}

// indent prefixes every line of text.
func indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}
