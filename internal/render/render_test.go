package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/slidepuzzle/internal/board"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
)

func mustBoard(t *testing.T, glyphs string) *board.Board {
	t.Helper()
	s, err := seed.ParseGlyphs(glyphs)
	if err != nil {
		t.Fatalf("ParseGlyphs(%q) failed: %v", glyphs, err)
	}
	b, err := board.New(s)
	if err != nil {
		t.Fatalf("board.New failed: %v", err)
	}
	return b
}

func TestProject(t *testing.T) {
	b := mustBoard(t, ".>v\n^..")
	g := Project(b)

	if len(g) != 2 || g.Width() != 3 {
		t.Fatalf("grid is %dx%d, want 2x3", len(g), g.Width())
	}
	for y, row := range g {
		for x, c := range row {
			if c.Row != y || c.Col != x {
				t.Errorf("cell (%d,%d) has Row=%d Col=%d", x, y, c.Row, c.Col)
			}
		}
	}

	tests := []struct {
		x, y  int
		glyph rune
		empty bool
		dir   board.Direction
	}{
		{0, 0, '.', true, 0},
		{1, 0, '>', false, board.Right},
		{2, 0, 'v', false, board.Down},
		{0, 1, '^', false, board.Up},
	}
	for _, tt := range tests {
		c := g[tt.y][tt.x]
		if c.Glyph != tt.glyph || c.Empty != tt.empty {
			t.Errorf("(%d,%d) = %q empty=%v, want %q empty=%v", tt.x, tt.y, c.Glyph, c.Empty, tt.glyph, tt.empty)
		}
		if !tt.empty && c.Dir != tt.dir {
			t.Errorf("(%d,%d) dir = %v, want %v", tt.x, tt.y, c.Dir, tt.dir)
		}
	}
}

func TestASCII(t *testing.T) {
	text := ".>v.\n..<."
	if got := ASCII(Project(mustBoard(t, text))); got != text {
		t.Errorf("ASCII() = %q, want %q", got, text)
	}
}

func TestFrame(t *testing.T) {
	g := Project(mustBoard(t, ">.\n.<"))
	c := Frame(g, Cursor{X: 1, Y: 1})

	lines := strings.Split(c.String(), "\n")
	if len(lines) != 4 {
		t.Fatalf("frame has %d lines, want 4", len(lines))
	}
	if lines[0] != "┌──────┐" || lines[3] != "└──────┘" {
		t.Errorf("unexpected border:\n%s", c.String())
	}
	if lines[1] != "│ >  . │" {
		t.Errorf("row 0 = %q", lines[1])
	}
	if lines[2] != "│ . [<]│" {
		t.Errorf("row 1 = %q", lines[2])
	}

	if got := c.Get(5, 2).Tone; got != ToneLeft {
		t.Errorf("tone at cursor glyph = %v, want ToneLeft", got)
	}
	if got := c.Get(4, 2).Tone; got != ToneCursor {
		t.Errorf("tone at bracket = %v, want ToneCursor", got)
	}
}

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(3, 1)
	for i, r := range "abcdef" {
		c.Set(1+i, 0, r, ToneDefault)
	}
	c.Set(-1, 0, 'x', ToneDefault)
	c.Set(0, 5, 'x', ToneDefault)

	if got := c.String(); got != " ab" {
		t.Errorf("String() = %q, want %q", got, " ab")
	}
	if got := c.Get(9, 9); got.Rune != ' ' {
		t.Errorf("out of bounds Get = %q", got.Rune)
	}
}

func TestStyledKeepsText(t *testing.T) {
	g := Project(mustBoard(t, ">v"))
	out := Styled(g, NoCursor, MonochromeTheme())
	for _, r := range []string{">", "v", "┌", "┘"} {
		if !strings.Contains(out, r) {
			t.Errorf("Styled output missing %q:\n%s", r, out)
		}
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, ok := ThemeByName(name); !ok {
			t.Errorf("ThemeByName(%q) not found", name)
		}
	}
	if _, ok := ThemeByName("NEON"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, ok := ThemeByName("plaid"); ok {
		t.Error("unknown theme should not be found")
	}
}
