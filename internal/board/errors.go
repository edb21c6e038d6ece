package board

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned when a seed has no rows or no columns.
	ErrShape = errors.New("board must have at least one row with at least one column")

	// ErrOutOfRange is the cause carried by every RangeError.
	ErrOutOfRange = errors.New("co-ordinates are out of range")
)

// RangeError reports a row, column or cell lookup outside the board.
type RangeError struct {
	Axis  string // "row", "column" or "cell"
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("board: %s %d is outside the board area [0,%d): %v", e.Axis, e.Index, e.Limit, ErrOutOfRange)
}

// Unwrap exposes ErrOutOfRange so callers can use errors.Is.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
