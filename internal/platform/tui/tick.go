// Package tui provides the Bubble Tea interface for slidepuzzle: the puzzle
// picker, the game screen, the scoreboard and the SSH server that hosts them.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg refreshes the clock of the game screen that owns Clock. Ticks for
// any other clock are dropped, so a chain left running by a closed game
// dies out instead of doubling the next game's redraws.
type TickMsg struct {
	Clock int64
	Time  time.Time
}

// clockInterval is how often the elapsed time on screen is refreshed.
const clockInterval = time.Second

var lastClock atomic.Int64

// newClock returns a clock ID unique within the process. SSH sessions build
// game screens concurrently.
func newClock() int64 {
	return lastClock.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick after one interval.
func tickCmd(clock int64) tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return TickMsg{Clock: clock, Time: t}
	})
}
