package grid

import "errors"

var (
	// ErrInvalidDimensions indicates rows or cols is not positive.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a coordinate outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrDuplicateStart indicates a Start cell already exists elsewhere.
	ErrDuplicateStart = errors.New("grid: start cell already set")
	// ErrDuplicateEnd indicates an End cell already exists elsewhere.
	ErrDuplicateEnd = errors.New("grid: end cell already set")
	// ErrInvalidState indicates an unknown CellState value.
	ErrInvalidState = errors.New("grid: invalid cell state")
	// ErrCellNotFound indicates no cell holds the requested state.
	ErrCellNotFound = errors.New("grid: no cell with requested state")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidGlyph indicates an unrecognized character in a layout.
	ErrInvalidGlyph = errors.New("grid: invalid layout glyph")
)
