package board

// Block is an immutable block facing one direction. The optional id is an
// opaque token callers can use to follow a block around the board.
type Block struct {
	dir Direction
	id  string
}

// BlockOption configures a Block at construction.
type BlockOption func(*Block)

// WithID attaches an identity token to the block.
func WithID(id string) BlockOption {
	return func(b *Block) {
		b.id = id
	}
}

// NewBlock creates a block facing dir.
func NewBlock(dir Direction, opts ...BlockOption) Block {
	b := Block{dir: dir}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Direction returns the way the block faces.
func (b Block) Direction() Direction {
	return b.dir
}

// ID returns the identity token, or "" if none was given.
func (b Block) ID() string {
	return b.id
}
