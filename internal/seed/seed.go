// Package seed turns user-supplied text into board seeds. It checks shape
// only: a well-formed seed such as [[]] is accepted here and rejected later
// by board.New.
package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vovakirdan/slidepuzzle/internal/board"
)

// ErrInvalidSeed is returned for any input that is not a 2-D array of
// direction tags and empty slots.
var ErrInvalidSeed = errors.New("invalid seed value. It should be a 2-dimensional array of directions")

//go:embed seed.schema.json
var schemaText string

var schema = jsonschema.MustCompileString("mem://slidepuzzle/seed.schema.json", schemaText)

// Parse decodes a JSON seed such as [[null,1],[2]].
func Parse(text string) (board.Seed, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidSeed
	}

	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeed, violation(err))
	}

	var tags [][]*int
	if err := json.Unmarshal([]byte(text), &tags); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return board.SeedFromTags(tags), nil
}

// violation reduces a schema error to its innermost cause and the location
// of the offending value, e.g. "at /0/1: must be <= 3 but found 4".
func violation(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("at %s: %s", loc, ve.Message)
}

// Format encodes a seed as compact JSON, null for empty cells.
func Format(s board.Seed) string {
	data, err := json.Marshal(s)
	if err != nil {
		// Seeds hold only pointers to small integers.
		panic(fmt.Sprintf("seed: marshal: %v", err))
	}
	return string(data)
}

// ParseGlyphs reads one row per line with one glyph per cell:
// ^ > v < for blocks and . (or space) for empty cells. Trailing empty cells
// may be omitted; a blank line is an empty row.
func ParseGlyphs(text string) (board.Seed, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidSeed
	}

	lines := strings.Split(text, "\n")
	seed := make(board.Seed, len(lines))
	for y, line := range lines {
		line = strings.TrimRight(line, " \t")
		row := make([]*board.Direction, 0, len(line))
		for x, r := range []rune(line) {
			switch r {
			case '.', ' ', '_':
				row = append(row, nil)
				continue
			}
			d, ok := board.DirectionFromGlyph(r)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at row %d, column %d", ErrInvalidSeed, r, y, x)
			}
			row = append(row, board.Dir(d))
		}
		seed[y] = row
	}
	return seed, nil
}

// FormatGlyphs renders a seed in the ParseGlyphs format.
func FormatGlyphs(s board.Seed) string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, d := range row {
			if d == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(d.Arrow())
		}
	}
	return sb.String()
}
