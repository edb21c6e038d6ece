// Package board implements the sliding-block puzzle engine: a rectangular
// grid of cells holding directional blocks that slide until they hit another
// block or leave the board.
//
// The package is UI-agnostic and does no I/O. A Board is not safe for
// concurrent use.
package board

import (
	"encoding/json"
	"fmt"
)

// Direction is the way a block faces, and so the only way it can slide.
// The numeric values are the wire tags used by seeds and exports.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d <= Left
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Arrow returns the single-character glyph used in text puzzles.
func (d Direction) Arrow() rune {
	switch d {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '?'
	}
}

// Horizontal reports whether d slides along a row.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Sign is +1 for directions that increase the line index (right, down)
// and -1 for those that decrease it (left, up).
func (d Direction) Sign() int {
	if d == Right || d == Down {
		return 1
	}
	return -1
}

// Delta returns the (dx, dy) of one step. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	if d.Horizontal() {
		return d.Sign(), 0
	}
	return 0, d.Sign()
}

// DirectionFromGlyph maps an arrow glyph to a direction.
func DirectionFromGlyph(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v', 'V':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

// UnmarshalJSON decodes a numeric tag and rejects anything outside 0-3.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var tag int
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("board: direction tag: %w", err)
	}
	if tag < 0 || tag > int(Left) {
		return fmt.Errorf("board: direction tag %d out of range", tag)
	}
	*d = Direction(tag)
	return nil
}
