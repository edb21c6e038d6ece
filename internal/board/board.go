package board

import (
	"encoding/json"
	"fmt"
)

// Board is the puzzle grid. Cells live in one row-major slice; rows handed
// out by Row are windows onto it.
type Board struct {
	height int
	width  int
	cells  []Cell
}

// Option configures board construction.
type Option func(*options)

type options struct {
	newID func() string
}

// WithIDGenerator tags every seeded block with an id from gen.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) {
		o.newID = gen
	}
}

// New builds a board from a seed. Short rows are padded with empty cells up
// to the longest row. It fails with ErrShape when the seed has no rows or
// every row is empty.
func New(seed Seed, opts ...Option) (*Board, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	blocks := make([][]*Block, len(seed))
	for y, row := range seed {
		blocks[y] = make([]*Block, len(row))
		for x, dir := range row {
			if dir == nil {
				continue
			}
			if !dir.Valid() {
				return nil, fmt.Errorf("board: cell (%d,%d): invalid direction %d", x, y, uint8(*dir))
			}
			var bopts []BlockOption
			if o.newID != nil {
				bopts = append(bopts, WithID(o.newID()))
			}
			b := NewBlock(*dir, bopts...)
			blocks[y][x] = &b
		}
	}
	return NewWithBlocks(blocks)
}

// NewWithBlocks builds a board from rows of optional blocks, keeping any ids
// they carry.
func NewWithBlocks(rows [][]*Block) (*Board, error) {
	height := len(rows)
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if height == 0 || width == 0 {
		return nil, fmt.Errorf("board: %w", ErrShape)
	}

	b := &Board{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}
	for y := range height {
		for x := range width {
			c := &b.cells[y*width+x]
			c.X, c.Y = x, y
			if x < len(rows[y]) && rows[y][x] != nil {
				blk := *rows[y][x]
				c.block = &blk
			}
		}
	}
	return b, nil
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Row returns row y. The slice aliases the board: setting through it changes
// the board.
func (b *Board) Row(y int) ([]Cell, error) {
	if y < 0 || y >= b.height {
		return nil, &RangeError{Axis: "row", Index: y, Limit: b.height}
	}
	start := y * b.width
	return b.cells[start : start+b.width : start+b.width], nil
}

// Column returns the cells of column x top to bottom. The slice is new but
// its elements point at the board's cells.
func (b *Board) Column(x int) ([]*Cell, error) {
	if x < 0 || x >= b.width {
		return nil, &RangeError{Axis: "column", Index: x, Limit: b.width}
	}
	col := make([]*Cell, b.height)
	for y := range b.height {
		col[y] = &b.cells[y*b.width+x]
	}
	return col, nil
}

// CellInRow returns a pointer to row[x] after checking x against the width.
func (b *Board) CellInRow(row []Cell, x int) (*Cell, error) {
	if x < 0 || x >= b.width || x >= len(row) {
		return nil, &RangeError{Axis: "cell", Index: x, Limit: b.width}
	}
	return &row[x], nil
}

// Cell returns a copy of the cell at (x, y).
func (b *Board) Cell(x, y int) (Cell, error) {
	row, err := b.Row(y)
	if err != nil {
		return Cell{}, err
	}
	c, err := b.CellInRow(row, x)
	if err != nil {
		return Cell{}, err
	}
	return *c, nil
}

// Slide moves the block at (x, y) as far as it can in its direction.
//
// It returns true when the board changed: the block either stopped next to
// the first block in its path or left the board. It returns false when the
// cell is empty or the neighbouring cell in the block's direction is
// occupied. Coordinates outside the board return a *RangeError.
func (b *Board) Slide(x, y int) (bool, error) {
	row, err := b.Row(y)
	if err != nil {
		return false, err
	}
	cell, err := b.CellInRow(row, x)
	if err != nil {
		return false, err
	}
	if cell.block == nil {
		return false, nil
	}

	line, index := b.line(cell.block.dir, x, y)
	return slideLine(line, index, cell.block.dir.Sign()), nil
}

// line returns the row or column a block facing dir travels along, and the
// block's index in it. Callers have already bounds-checked (x, y).
func (b *Board) line(dir Direction, x, y int) ([]*Cell, int) {
	if dir.Horizontal() {
		row := make([]*Cell, b.width)
		for i := range b.width {
			row[i] = &b.cells[y*b.width+i]
		}
		return row, x
	}
	col, _ := b.Column(x)
	return col, y
}

// slideLine moves line[from] by step (+1 or -1) through empty cells.
func slideLine(line []*Cell, from, step int) bool {
	moving := line[from].block

	next := from + step
	hit := next
	for hit >= 0 && hit < len(line) && line[hit].block == nil {
		hit += step
	}

	switch {
	case hit < 0 || hit >= len(line):
		// Nothing in the way: off the edge.
		line[from].block = nil
		return true
	case hit == next:
		return false
	default:
		line[hit-step].block = moving
		line[from].block = nil
		return true
	}
}

// CanSlide reports whether Slide(x, y) would change the board.
func (b *Board) CanSlide(x, y int) (bool, error) {
	c, err := b.Cell(x, y)
	if err != nil {
		return false, err
	}
	if c.block == nil {
		return false, nil
	}
	dx, dy := c.block.dir.Delta()
	nx, ny := x+dx, y+dy
	if nx < 0 || nx >= b.width || ny < 0 || ny >= b.height {
		return true, nil
	}
	return b.cells[ny*b.width+nx].block == nil, nil
}

// Moves returns the coordinates of every block that can currently slide,
// in row-major order.
func (b *Board) Moves() [][2]int {
	var moves [][2]int
	for _, c := range b.cells {
		if ok, _ := b.CanSlide(c.X, c.Y); ok {
			moves = append(moves, [2]int{c.X, c.Y})
		}
	}
	return moves
}

// IsWon reports whether every block has left the board.
func (b *Board) IsWon() bool {
	for _, c := range b.cells {
		if c.block != nil {
			return false
		}
	}
	return true
}

// Stuck reports whether blocks remain but none of them can move.
func (b *Board) Stuck() bool {
	return !b.IsWon() && len(b.Moves()) == 0
}

// Blocks returns the number of blocks still on the board.
func (b *Board) Blocks() int {
	n := 0
	for _, c := range b.cells {
		if c.block != nil {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		height: b.height,
		width:  b.width,
		cells:  make([]Cell, len(b.cells)),
	}
	for i, c := range b.cells {
		clone.cells[i] = Cell{X: c.X, Y: c.Y}
		if c.block != nil {
			blk := *c.block
			clone.cells[i].block = &blk
		}
	}
	return clone
}

// Export projects the board into a full-width seed of optional directions.
// Block ids are not part of the projection.
func (b *Board) Export() Seed {
	seed := make(Seed, b.height)
	for y := range b.height {
		seed[y] = make([]*Direction, b.width)
		for x := range b.width {
			seed[y][x] = b.cells[y*b.width+x].Direction()
		}
	}
	return seed
}

// MarshalJSON encodes the export as rows of tags, null for empty cells.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Export())
}

// UnmarshalJSON replaces the board with one built from a JSON seed.
func (b *Board) UnmarshalJSON(data []byte) error {
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("board: decode seed: %w", err)
	}
	nb, err := New(seed)
	if err != nil {
		return err
	}
	*b = *nb
	return nil
}
