// Package render turns boards into text: a plain glyph grid for the CLI
// and a framed, lipgloss-styled view for the terminal UI.
package render

import (
	"strings"

	"github.com/vovakirdan/slidepuzzle/internal/board"
)

// EmptyGlyph marks a cell without a block.
const EmptyGlyph = '.'

// GridCell is the display form of one board cell.
type GridCell struct {
	Row   int
	Col   int
	Glyph rune
	Dir   board.Direction
	Empty bool
}

// Grid is a board projected into rows of display cells.
type Grid [][]GridCell

// Project builds one GridCell per board cell, row by row.
func Project(b *board.Board) Grid {
	grid := make(Grid, b.Height())
	for y := range grid {
		row, _ := b.Row(y)
		cells := make([]GridCell, len(row))
		for x, c := range row {
			gc := GridCell{Row: y, Col: x, Glyph: EmptyGlyph, Empty: true}
			if d := c.Direction(); d != nil {
				gc.Dir = *d
				gc.Glyph = d.Arrow()
				gc.Empty = false
			}
			cells[x] = gc
		}
		grid[y] = cells
	}
	return grid
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// ASCII renders the grid as glyph rows, one line per board row.
func ASCII(g Grid) string {
	lines := make([]string, len(g))
	for y, row := range g {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(c.Glyph)
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
