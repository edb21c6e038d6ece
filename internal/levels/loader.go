// Package levels loads puzzle packs: YAML files that each describe one
// starting board. A default pack is embedded in the binary.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/slidepuzzle/internal/board"
)

//go:embed packs/*.yaml
var embedded embed.FS

// ErrNotFound is returned by LoadByID when no level has the requested ID.
var ErrNotFound = errors.New("level not found")

// Level is a named starting position. Metadata holds free-form fields such
// as author or source.
type Level struct {
	ID         string
	Name       string
	Difficulty string
	Seed       board.Seed
	Metadata   map[string]string
	FilePath   string
}

// NewBoard builds a fresh board for the level.
func (l Level) NewBoard(opts ...board.Option) (*board.Board, error) {
	return board.New(l.Seed, opts...)
}

// Loader reads levels from a file tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader returns a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Embedded returns a loader over the built-in pack.
func Embedded() *Loader {
	sub, err := fs.Sub(embedded, "packs")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded pack: %v", err))
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// Root names where the loader reads from.
func (l *Loader) Root() string {
	return l.root
}

// LoadAll recursively loads every level file. Files that fail to parse are
// skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(FormatExtensions(), strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file, relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = path.Join(l.root, p)
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}
