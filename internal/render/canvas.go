package render

import "strings"

// Tone classifies a canvas cell for styling.
type Tone uint8

const (
	ToneDefault Tone = iota
	ToneFrame
	ToneEmpty
	ToneUp
	ToneRight
	ToneDown
	ToneLeft
	ToneCursor
)

// CanvasCell is a single character on the canvas.
type CanvasCell struct {
	Rune rune
	Tone Tone
}

// Canvas is a fixed-size character buffer. Drawing outside it is clipped.
type Canvas struct {
	width  int
	height int
	cells  [][]CanvasCell
}

// NewCanvas creates a canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([][]CanvasCell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]CanvasCell, c.width)
	}
	c.Clear()
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Clear fills the canvas with unstyled spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = CanvasCell{Rune: ' '}
		}
	}
}

// Set places a rune at (x, y). Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, r rune, tone Tone) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = CanvasCell{Rune: r, Tone: tone}
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (c *Canvas) Get(x, y int) CanvasCell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return CanvasCell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawBox outlines the rectangle with box-drawing characters.
func (c *Canvas) DrawBox(x, y, w, h int, tone Tone) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1

	c.Set(x, y, '┌', tone)
	c.Set(right, y, '┐', tone)
	c.Set(x, bottom, '└', tone)
	c.Set(right, bottom, '┘', tone)

	for i := x + 1; i < right; i++ {
		c.Set(i, y, '─', tone)
		c.Set(i, bottom, '─', tone)
	}
	for j := y + 1; j < bottom; j++ {
		c.Set(x, j, '│', tone)
		c.Set(right, j, '│', tone)
	}
}

// String returns the canvas as plain text, rows joined by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}
