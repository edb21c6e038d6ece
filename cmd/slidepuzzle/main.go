// slidepuzzle is a terminal puzzle game: every block slides in the
// direction its arrow points, and the board is cleared once every block has
// slid off the edge.
//
// Usage:
//
//	slidepuzzle                    - Pick a puzzle from the menu
//	slidepuzzle list               - List available puzzles
//	slidepuzzle play [puzzle]      - Play a puzzle, or a board given as a seed
//	slidepuzzle solve [puzzle]     - Apply moves to a board and print the result
//	slidepuzzle check [seed]       - Validate a seed
//	slidepuzzle scores [puzzle]    - Show best solves
//	slidepuzzle serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.slidepuzzle, ./configs)
//	--db <path>         - Solves database (default from config)
//	--levels <dir>      - Extra puzzle pack directory
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Where interactive commands write their log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLevels   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slidepuzzle",
	Short: "Slide every block off the board",
	Long: `slidepuzzle is a terminal puzzle game. Each block carries an arrow and
can only slide that way, stopping at the first block in its path or leaving
the board when nothing is in the way. Clear the board to win.

Available commands:
  list     - Show all available puzzles
  play     - Play a puzzle or a custom seed
  solve    - Apply a list of moves without the UI
  check    - Validate a seed
  scores   - View best solves
  serve    - Start SSH server for remote play

Examples:
  slidepuzzle
  slidepuzzle play 003-the-loop
  slidepuzzle play --seed '[[null,1],[0,null]]'
  slidepuzzle solve 002-make-way --moves "2,1 2,0 1,0"
  slidepuzzle serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solves database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with extra puzzle files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: no log)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
