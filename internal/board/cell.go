package board

// Cell is one slot of the grid. Its coordinates never change; only the
// Board moves blocks in and out of it.
type Cell struct {
	X, Y  int
	block *Block
}

// Block returns the occupying block, if any.
func (c Cell) Block() (Block, bool) {
	if c.block == nil {
		return Block{}, false
	}
	return *c.block, true
}

// Empty reports whether no block occupies the cell.
func (c Cell) Empty() bool {
	return c.block == nil
}

// Direction returns the occupying block's direction, or nil when empty.
func (c Cell) Direction() *Direction {
	if c.block == nil {
		return nil
	}
	d := c.block.dir
	return &d
}
