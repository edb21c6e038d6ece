package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/slidepuzzle/internal/board"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
)

// YAMLLevel is the on-disk structure of a puzzle file. Exactly one of Rows
// (glyph rows) or Seed (JSON seed text) must be set.
type YAMLLevel struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Difficulty string            `yaml:"difficulty,omitempty"`
	Rows       string            `yaml:"rows,omitempty"`
	Seed       string            `yaml:"seed,omitempty"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a puzzle file and checks that it builds a board.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("missing id")
	}

	var (
		s   board.Seed
		err error
	)
	switch {
	case yl.Rows != "" && yl.Seed != "":
		return Level{}, fmt.Errorf("level %s: rows and seed are mutually exclusive", yl.ID)
	case yl.Rows != "":
		s, err = seed.ParseGlyphs(yl.Rows)
	case yl.Seed != "":
		s, err = seed.Parse(yl.Seed)
	default:
		return Level{}, fmt.Errorf("level %s: needs rows or seed", yl.ID)
	}
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}
	if _, err := board.New(s); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	difficulty := yl.Difficulty
	if difficulty == "" {
		difficulty = "unrated"
	}

	return Level{
		ID:         yl.ID,
		Name:       name,
		Difficulty: difficulty,
		Seed:       s,
		Metadata:   yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
