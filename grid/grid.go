package grid

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size board of cells stored in row-major order.
// The zero value is not usable; construct with New or Parse.
//
// Grid is single-owner: it does no locking, so callers must serialize
// edits and searches.
type Grid struct {
	rows, cols int
	cells      []CellState
	start, end int // row-major index of the special cell, -1 if unset
}

// New returns a rows×cols grid with every cell Empty.
// Returns ErrInvalidDimensions if rows ≤ 0 or cols ≤ 0.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	total := rows * cols
	if total/rows != cols {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, total),
		start: -1,
		end:   -1,
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// index converts an in-bounds coordinate to its row-major offset.
func (g *Grid) index(c Coord) int { return c.Row*g.cols + c.Col }

// coord converts a row-major offset back to a coordinate.
func (g *Grid) coord(i int) Coord { return Coord{Row: i / g.cols, Col: i % g.cols} }

func (g *Grid) checkBounds(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}

	return nil
}

// SetCellState writes s into (row, col).
//
// A second Start or End is rejected with ErrDuplicateStart / ErrDuplicateEnd
// and leaves the existing special cell untouched. Writing Start onto the
// current Start cell (or End onto End) is a no-op. Overwriting a special cell
// with any other state clears it, which is how a shell un-sets start or end.
func (g *Grid) SetCellState(row, col int, s CellState) error {
	c := Coord{Row: row, Col: col}
	if err := g.checkBounds(c); err != nil {
		return err
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidState, s)
	}

	i := g.index(c)
	switch {
	case s == Start && g.start >= 0 && g.start != i:
		return fmt.Errorf("%w at %v", ErrDuplicateStart, g.coord(g.start))
	case s == End && g.end >= 0 && g.end != i:
		return fmt.Errorf("%w at %v", ErrDuplicateEnd, g.coord(g.end))
	}

	// release the special slot this cell held, if any
	if g.start == i {
		g.start = -1
	}
	if g.end == i {
		g.end = -1
	}

	g.cells[i] = s
	switch s {
	case Start:
		g.start = i
	case End:
		g.end = i
	}

	return nil
}

// CellState returns the state at (row, col), or ErrOutOfBounds.
func (g *Grid) CellState(row, col int) (CellState, error) {
	c := Coord{Row: row, Col: col}
	if err := g.checkBounds(c); err != nil {
		return Empty, err
	}

	return g.cells[g.index(c)], nil
}

// At returns the state at c without error reporting; out-of-range
// coordinates read as Wall.
func (g *Grid) At(c Coord) CellState {
	if !g.InBounds(c) {
		return Wall
	}

	return g.cells[g.index(c)]
}

// FindCell returns the coordinate holding s.
// Start and End are unique, so their lookup is O(1); for Empty and Wall the
// first match in row-major order is returned.
// Returns ErrCellNotFound when no cell holds s.
func (g *Grid) FindCell(s CellState) (Coord, error) {
	switch s {
	case Start:
		if g.start >= 0 {
			return g.coord(g.start), nil
		}
	case End:
		if g.end >= 0 {
			return g.coord(g.end), nil
		}
	case Empty, Wall:
		for i, v := range g.cells {
			if v == s {
				return g.coord(i), nil
			}
		}
	default:
		return Coord{}, fmt.Errorf("%w: %v", ErrInvalidState, s)
	}

	return Coord{}, fmt.Errorf("%w: %v", ErrCellNotFound, s)
}

// IsTraversable reports whether a path may pass through c:
// true for Empty, Start and End; false for Wall and out-of-range coordinates.
func (g *Grid) IsTraversable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != Wall
}

// Neighbors returns the in-bounds traversable orthogonal neighbors of c,
// in Directions order (up, right, down, left).
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		n := c.Add(d)
		if g.IsTraversable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Reset sets every cell back to Empty, clearing start and end.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.start, g.end = -1, -1
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)

	return &Grid{rows: g.rows, cols: g.cols, cells: cells, start: g.start, end: g.end}
}

// String renders g in the layout format accepted by Parse,
// one line per row, each line terminated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Glyph())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
