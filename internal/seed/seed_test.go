package seed

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/slidepuzzle/internal/board"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  board.Seed
	}{
		{
			name:  "single block",
			input: "[[1]]",
			want:  board.Seed{{board.Dir(board.Right)}},
		},
		{
			name:  "nulls and jagged rows",
			input: " [[], [null, 1, 2], [3]] \n",
			want: board.Seed{
				{},
				{nil, board.Dir(board.Right), board.Dir(board.Down)},
				{board.Dir(board.Left)},
			},
		},
		{
			name:  "shape only, empty row accepted",
			input: "[[]]",
			want:  board.Seed{{}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Parse(%q) = %s, want %s", tc.input, Format(got), Format(tc.want))
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not json",
		"{}",
		"[1, 2]",
		"[[4]]",
		"[[-1]]",
		"[[1.5]]",
		`[["up"]]`,
		"[[[1]]]",
		"[[1]",
	}

	for _, input := range inputs {
		_, err := Parse(input)
		if !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidSeed", input, err)
		}
	}
}

func TestParseErrorNamesTheBadCell(t *testing.T) {
	tests := []struct {
		input string
		loc   string
	}{
		{"[[null, 4]]", "/0/1"},
		{"[[1], [2, -1]]", "/1/1"},
		{`[[0, "up"]]`, "/0/1"},
		{"[1]", "/0"},
	}

	for _, tc := range tests {
		_, err := Parse(tc.input)
		if !errors.Is(err, ErrInvalidSeed) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalidSeed", tc.input, err)
		}
		msg := err.Error()
		if !strings.Contains(msg, "at "+tc.loc+":") {
			t.Errorf("Parse(%q) error %q does not point at %s", tc.input, msg, tc.loc)
		}
		if strings.Contains(msg, "file:") || strings.Contains(msg, "oneOf") {
			t.Errorf("Parse(%q) error leaks schema internals: %q", tc.input, msg)
		}
	}
}

func TestParsedSeedBuildsBoard(t *testing.T) {
	s, err := Parse("[[], [null, 1, 2, null], [null, null, 1], [null, 0, 3], []]")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	b, err := board.New(s)
	if err != nil {
		t.Fatalf("board.New() failed: %v", err)
	}
	if b.Width() != 4 || b.Height() != 5 {
		t.Errorf("board is %dx%d, want 4x5", b.Width(), b.Height())
	}

	round, err := Parse(Format(b.Export()))
	if err != nil {
		t.Fatalf("re-parse of export failed: %v", err)
	}
	if !round.Equal(b.Export()) {
		t.Error("export did not survive a Format/Parse round trip")
	}
}

func TestGlyphs(t *testing.T) {
	text := "....\n.>v.\n..>\n.^<.\n"
	s, err := ParseGlyphs(text)
	if err != nil {
		t.Fatalf("ParseGlyphs() failed: %v", err)
	}
	want, _ := Parse("[[null,null,null,null],[null,1,2,null],[null,null,1],[null,0,3,null]]")
	if !s.Equal(want) {
		t.Errorf("ParseGlyphs() = %s, want %s", Format(s), Format(want))
	}
	if got := FormatGlyphs(want); got != "....\n.>v.\n..>\n.^<." {
		t.Errorf("FormatGlyphs() = %q", got)
	}

	if _, err := ParseGlyphs(".x."); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("ParseGlyphs with bad glyph error = %v", err)
	}
	if _, err := ParseGlyphs("\n\n"); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("ParseGlyphs of blank text error = %v", err)
	}
}
