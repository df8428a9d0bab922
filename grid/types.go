package grid

import "fmt"

// CellState is the content of a single cell.
type CellState uint8

const (
	// Empty is a free, traversable cell.
	Empty CellState = iota
	// Wall blocks movement.
	Wall
	// Start is the unique search origin.
	Start
	// End is the unique search target.
	End
)

// String returns the lower-case state name.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	}

	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Glyph returns the layout character for s ('?' for unknown states).
func (s CellState) Glyph() rune {
	switch s {
	case Empty:
		return '.'
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	}

	return '?'
}

// Valid reports whether s is one of the four known states.
func (s CellState) Valid() bool { return s <= End }

// Coord is a (row, col) position; row grows downward, col grows rightward.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Directions lists the four unit moves in the order every traversal uses:
// up, right, down, left.
var Directions = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
