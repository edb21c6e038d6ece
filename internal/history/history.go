// Package history keeps the boards a puzzle has passed through so a player
// can step back, and exposes the current board as a read-only cell grid.
package history

import (
	"github.com/zyedidia/generic/list"

	"github.com/vovakirdan/slidepuzzle/internal/board"
)

// DefaultMaxDepth is the number of undo steps kept when none is configured.
const DefaultMaxDepth = 256

// State wraps a board with its history. The newest entry in the list is the
// current board; entries are never mutated once a newer one is pushed.
type State struct {
	boards   *list.List[*board.Board]
	length   int
	maxDepth int
	evicted  bool
	cached   [][]board.Cell
}

// FromBoard starts a history at b. The State takes ownership of b.
func FromBoard(b *board.Board) *State {
	s := &State{
		boards:   list.New[*board.Board](),
		maxDepth: DefaultMaxDepth,
	}
	s.Push(b)
	return s
}

// FromSeed builds a board from seed and starts a history at it.
func FromSeed(seed board.Seed, opts ...board.Option) (*State, error) {
	b, err := board.New(seed, opts...)
	if err != nil {
		return nil, err
	}
	return FromBoard(b), nil
}

// SetMaxDepth bounds how many earlier boards are kept. Values below 1 are
// treated as 1.
func (s *State) SetMaxDepth(depth int) {
	s.maxDepth = max(depth, 1)
	s.trim()
}

// Push makes b the current board.
func (s *State) Push(b *board.Board) {
	s.boards.PushBack(b)
	s.length++
	s.cached = nil
	s.trim()
}

// Pop removes and returns the current board. The last remaining board is
// never removed; Pop returns nil, false instead.
func (s *State) Pop() (*board.Board, bool) {
	if s.length <= 1 {
		return nil, false
	}
	n := s.boards.Back
	s.boards.Remove(n)
	s.length--
	s.cached = nil
	return n.Value, true
}

// Peek returns the current board without removing it. Callers must not
// mutate it; use Slide instead.
func (s *State) Peek() *board.Board {
	return s.boards.Back.Value
}

// Len returns the number of boards held, the current one included.
func (s *State) Len() int {
	return s.length
}

// CanUndo reports whether an earlier board is available.
func (s *State) CanUndo() bool {
	return s.Len() > 1
}

// Slide applies a slide to a copy of the current board and, if the board
// changed, pushes the copy.
func (s *State) Slide(x, y int) (bool, error) {
	next := s.Peek().Clone()
	moved, err := next.Slide(x, y)
	if err != nil || !moved {
		return false, err
	}
	s.Push(next)
	return true, nil
}

// Undo steps back to the previous board.
func (s *State) Undo() bool {
	_, ok := s.Pop()
	return ok
}

// Reset drops every board but the oldest one kept. It reports whether that
// is the board the history started from, which is no longer the case once
// the depth bound has evicted it.
func (s *State) Reset() bool {
	for s.length > 1 {
		s.Pop()
	}
	return !s.evicted
}

// State returns the current board's cells as rows. The grid is a copy and is
// cached until the history changes.
func (s *State) State() [][]board.Cell {
	if s.cached != nil {
		return s.cached
	}
	cur := s.Peek()
	grid := make([][]board.Cell, cur.Height())
	for y := range grid {
		row, _ := cur.Row(y)
		grid[y] = append([]board.Cell(nil), row...)
	}
	s.cached = grid
	return grid
}

// IsWon reports whether the current board is cleared.
func (s *State) IsWon() bool {
	return s.Peek().IsWon()
}

func (s *State) trim() {
	for s.length > s.maxDepth+1 {
		s.boards.Remove(s.boards.Front)
		s.length--
		s.evicted = true
	}
}
