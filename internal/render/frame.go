package render

// cellWidth is the number of canvas columns used per board cell.
const cellWidth = 3

// Cursor is a highlighted board position.
type Cursor struct {
	X, Y int
}

// NoCursor highlights nothing.
var NoCursor = Cursor{X: -1, Y: -1}

// Frame draws the grid inside a box on a new canvas. The cursor cell is
// bracketed.
func Frame(g Grid, cursor Cursor) *Canvas {
	w := g.Width()*cellWidth + 2
	h := len(g) + 2
	c := NewCanvas(w, h)
	c.DrawBox(0, 0, w, h, ToneFrame)

	for _, row := range g {
		for _, cell := range row {
			x := 1 + cell.Col*cellWidth
			y := 1 + cell.Row
			c.Set(x+1, y, cell.Glyph, toneFor(cell))
			if cell.Col == cursor.X && cell.Row == cursor.Y {
				c.Set(x, y, '[', ToneCursor)
				c.Set(x+2, y, ']', ToneCursor)
			}
		}
	}
	return c
}

func toneFor(cell GridCell) Tone {
	if cell.Empty {
		return ToneEmpty
	}
	return ToneUp + Tone(cell.Dir)
}
