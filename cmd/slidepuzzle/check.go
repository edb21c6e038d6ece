package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidepuzzle/internal/board"
	"github.com/vovakirdan/slidepuzzle/internal/render"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
)

var checkCmd = &cobra.Command{
	Use:   "check [seed]",
	Short: "Validate a seed",
	Long: `Check that a seed describes a playable board and print it.

The seed can be given as an argument, with --seed-file, or on stdin.
Exits with status 1 if the seed is invalid.

Examples:
  slidepuzzle check '[[null,1],[0,null]]'
  slidepuzzle check --seed-file board.json
  echo '[[2]]' | slidepuzzle check`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagSeedFile, "seed-file", "", "File holding a JSON seed (- for stdin)")
}

func runCheck(_ *cobra.Command, args []string) {
	text := ""
	if len(args) > 0 {
		text = args[0]
	}
	file := flagSeedFile
	if text == "" && file == "" {
		file = "-"
	}

	s, _, err := readSeed(text, file)
	if err == nil {
		var b *board.Board
		if b, err = board.New(s); err == nil {
			fmt.Printf("Valid %dx%d board with %d blocks:\n\n", b.Width(), b.Height(), b.Blocks())
			fmt.Println(indent(render.ASCII(render.Project(b)), "  "))
			fmt.Println()
			fmt.Println(describe(b))
			return
		}
	}

	switch {
	case errors.Is(err, seed.ErrInvalidSeed), errors.Is(err, board.ErrShape):
		fmt.Fprintln(os.Stderr, seed.ErrInvalidSeed.Error())
		fmt.Fprintf(os.Stderr, "  %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
