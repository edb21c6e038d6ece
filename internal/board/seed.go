package board

// Seed is the construction and export format of a board: rows of optional
// directions, top row first. A nil entry is an empty cell. Rows may differ in
// length; missing trailing cells are empty.
type Seed [][]*Direction

// Dir returns a pointer to d, for writing seeds inline.
func Dir(d Direction) *Direction {
	return &d
}

// SeedFromTags converts integer direction tags to a seed. Tags are not
// checked here; New rejects any outside 0-3.
func SeedFromTags(tags [][]*int) Seed {
	s := make(Seed, len(tags))
	for y, row := range tags {
		s[y] = make([]*Direction, len(row))
		for x, t := range row {
			if t != nil {
				s[y][x] = Dir(Direction(*t))
			}
		}
	}
	return s
}

// Width returns the longest row length.
func (s Seed) Width() int {
	width := 0
	for _, row := range s {
		width = max(width, len(row))
	}
	return width
}

// Equal reports whether two seeds describe the same occupancy, treating a
// short row as padded with empty cells.
func (s Seed) Equal(other Seed) bool {
	if len(s) != len(other) {
		return false
	}
	width := max(s.Width(), other.Width())
	for y := range s {
		for x := range width {
			a, b := s.at(x, y), other.at(x, y)
			if (a == nil) != (b == nil) {
				return false
			}
			if a != nil && *a != *b {
				return false
			}
		}
	}
	return true
}

func (s Seed) at(x, y int) *Direction {
	if x >= len(s[y]) {
		return nil
	}
	return s[y][x]
}
