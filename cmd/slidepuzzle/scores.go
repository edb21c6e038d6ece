package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidepuzzle/internal/platform/tui"
	"github.com/vovakirdan/slidepuzzle/internal/storage"
)

var (
	flagScoresLimit   int
	flagScoresSession string
	flagScoresClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [puzzle]",
	Short: "Show best solves",
	Long: `Without arguments, summarize every puzzle that has been solved.
With a puzzle ID, list its best solves: fewest moves first, then fastest.

Every game session has an ID, shown in the puzzle menu. --session lists the
solves recorded by one session. --clear deletes every solve of a puzzle.

Examples:
  slidepuzzle scores
  slidepuzzle scores 003-the-loop --limit 5
  slidepuzzle scores --session 3f2c9a8e-...
  slidepuzzle scores 003-the-loop --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of solves to show")
	scoresCmd.Flags().StringVar(&flagScoresSession, "session", "", "List the solves of one session")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every solve of the given puzzle")
}

func runScores(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := openStore(cfg)
	if err != nil {
		fail("opening solves database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if len(args) == 0 {
			fail("--clear needs a puzzle ID")
		}
		if err := store.ClearSolves(args[0]); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared all solves of %s.\n", args[0])

	case flagScoresSession != "":
		if len(args) > 0 {
			fail("give either a puzzle or --session, not both")
		}
		printSessionSolves(store, flagScoresSession)

	case len(args) == 0:
		printAllStats(store)

	default:
		title := args[0]
		if lvl, err := findLevel(cfg.Game.LevelsDir, args[0]); err == nil {
			title = lvl.Name
		}
		printBestSolves(store, args[0], title)
	}
}

func printAllStats(store *storage.Store) {
	stats, err := store.AllPuzzleStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No solves recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %6s  %11s  %9s  %s\n", "Puzzle", "Solves", "Fewest", "Fastest", "Last solved")
	fmt.Printf("  %-20s  %6s  %11s  %9s  %s\n", "------", "------", "------", "-------", "-----------")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-20s  %6d  %5d moves  %9s  %s\n",
			id, st.Solves, st.FewestMoves, tui.FormatDuration(st.FastestSolve), st.LastSolved.Format("2006-01-02 15:04"))
	}
}

func printBestSolves(store *storage.Store, puzzleID, title string) {
	solves, err := store.BestSolves(puzzleID, flagScoresLimit)
	if err != nil {
		fail("retrieving solves: %v", err)
	}

	fmt.Printf("Best Solves - %s\n", title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("  No solves recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %5s  %5s  %7s  %s\n", "Rank", "Moves", "Undos", "Time", "Date")
	fmt.Printf("  %-4s  %5s  %5s  %7s  %s\n", "----", "-----", "-----", "----", "----")
	for i, s := range solves {
		fmt.Printf("  #%-3d  %5d  %5d  %7s  %s\n",
			i+1, s.Moves, s.Undos, tui.FormatDuration(s.Duration), s.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printSessionSolves(store *storage.Store, sessionID string) {
	solves, err := store.SessionSolves(sessionID)
	if err != nil {
		fail("retrieving session solves: %v", err)
	}

	fmt.Printf("Session %s\n", sessionID)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("  No solves recorded in this session.")
		return
	}

	fmt.Printf("  %-20s  %5s  %5s  %7s  %s\n", "Puzzle", "Moves", "Undos", "Time", "Date")
	fmt.Printf("  %-20s  %5s  %5s  %7s  %s\n", "------", "-----", "-----", "----", "----")
	for _, s := range solves {
		fmt.Printf("  %-20s  %5d  %5d  %7s  %s\n",
			s.PuzzleID, s.Moves, s.Undos, tui.FormatDuration(s.Duration), s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
