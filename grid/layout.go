package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// glyphState maps layout characters to cell states.
var glyphState = map[rune]CellState{
	'.': Empty,
	' ': Empty,
	'#': Wall,
	'S': Start,
	'E': End,
}

// Parse reads a layout, one row per line, one glyph per cell:
//
//	.  or space  Empty
//	#            Wall
//	S            Start
//	E            End
//
// Trailing blank lines and '\r' line endings are ignored.
// Returns ErrInvalidDimensions for an empty layout, ErrNonRectangular for
// ragged rows, ErrInvalidGlyph for unknown characters, and
// ErrDuplicateStart / ErrDuplicateEnd for repeated specials.
func Parse(r io.Reader) (*Grid, error) {
	var lines [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, []rune(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read layout: %w", err)
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimensions)
	}

	cols := len(lines[0])
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), cols)
		}
	}

	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c, ch := range line {
			s, ok := glyphState[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidGlyph, ch, r, c)
			}
			if s == Empty {
				continue
			}
			if err := g.SetCellState(r, c, s); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}

	return g
}
