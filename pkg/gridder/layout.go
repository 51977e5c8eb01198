package gridder

import (
	"strings"
	"unicode"
)

// Region describes the position and extent of one named area of the grid.
// Row and Col are the zero-based coordinates of the region's top-left cell;
// Width and Height count cells. Constraints holds the canonical constraint
// string expanded from the identifier's embedded spec, or "" if there was
// none. Regions are never mutated once ParseLayout returns.
type Region struct {
	Name        string
	Row         int
	Col         int
	Width       int
	Height      int
	Constraints string
}

// Registry is the insertion-ordered collection of regions produced by one
// ParseLayout call. It is immutable after construction and therefore safe
// for concurrent read-only use.
type Registry struct {
	regions []*Region
}

// Lookup returns the region with the given name, or false if no such
// region was present in the layout. A miss is not an error: callers can
// distinguish "no such region" from a structural parse failure.
func (r *Registry) Lookup(name string) (*Region, bool) {
	for _, reg := range r.regions {
		if reg.Name == name {
			return reg, true
		}
	}
	return nil, false
}

// Regions returns the regions in layout order.
func (r *Registry) Regions() []*Region {
	return r.regions
}

// Len returns the number of regions in the registry.
func (r *Registry) Len() int { return len(r.regions) }

// Rows returns the number of grid rows any region touches.
func (r *Registry) Rows() int {
	max := 0
	for _, reg := range r.regions {
		if end := reg.Row + reg.Height; end > max {
			max = end
		}
	}
	return max
}

// Cols returns the number of grid columns any region touches.
func (r *Registry) Cols() int {
	max := 0
	for _, reg := range r.regions {
		if end := reg.Col + reg.Width; end > max {
			max = end
		}
	}
	return max
}

// above finds the region whose top-left cell is directly above the given
// coordinate, scanning rows nearest-first so the closest region in that
// column wins.
func (r *Registry) above(row, col int) *Region {
	for rr := row - 1; rr >= 0; rr-- {
		for _, reg := range r.regions {
			if reg.Row == rr && reg.Col == col {
				return reg
			}
		}
	}
	return nil
}

// ParseLayout interprets a 2D layout string and returns the registry of
// named regions it describes. Structurally nonsensical input (extension
// markers with nothing to extend, unbalanced brackets) never fails; it just
// produces degenerate geometry. The only fatal condition is a malformed
// embedded constraint spec on an identifier, which aborts the whole parse.
// Empty input yields an empty registry.
func ParseLayout(text string) (*Registry, error) {
	reg := &Registry{}
	rs := []rune(text)
	row, col := 0, 0
	var current *Region

	for idx := 0; idx < len(rs); {
		tok, next := nextToken(rs, idx)
		idx = next
		switch tok {
		case "":
			// Trailing whitespace; end of layout.
		case "{":
			col = 0
		case "}":
			current = nil
			row++
		case "+", "-":
			// Extend the current region rightward. With no current
			// region, - (and a stray +) just occupies the cell.
			if current != nil {
				current.Width++
			}
			col++
		case "|":
			// Extend the nearest region directly above downward.
			if above := reg.above(row, col); above != nil {
				above.Height++
			}
			col++
		default:
			r := &Region{Row: row, Col: col, Width: 1, Height: 1}
			name, spec, hasSpec := strings.Cut(tok, ":")
			r.Name = name
			if hasSpec {
				canonical, err := SplitEmbedded(spec)
				if err != nil {
					return nil, err
				}
				r.Constraints = canonical
			}
			reg.regions = append(reg.regions, r)
			current = r
			col++
		}
	}
	return reg, nil
}

// structural reports whether a character terminates an identifier. These
// are the six layout characters plus whitespace.
func structural(c rune) bool {
	switch c {
	case '{', '}', '|', '^', '<', '+', '-':
		return true
	}
	return unicode.IsSpace(c)
}

// nextToken scans the next layout token starting at idx, skipping leading
// whitespace. It returns the token ("" at end of input) and the index of
// the first unconsumed character. The historical synonyms < and ^ are
// normalized to + and |.
func nextToken(rs []rune, idx int) (string, int) {
	for idx < len(rs) && unicode.IsSpace(rs[idx]) {
		idx++
	}
	if idx >= len(rs) {
		return "", idx
	}
	switch rs[idx] {
	case '{':
		return "{", idx + 1
	case '}':
		return "}", idx + 1
	case '|', '^':
		return "|", idx + 1
	case '+', '<':
		return "+", idx + 1
	case '-':
		return "-", idx + 1
	}
	start := idx
	for idx < len(rs) && !structural(rs[idx]) {
		idx++
	}
	return string(rs[start:idx]), idx
}
