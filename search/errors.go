package search

import "errors"

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or end is outside the grid.
	// It also wraps grid.ErrOutOfBounds.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrBrokenChain is returned when path reconstruction cannot walk
	// predecessor links back to the start cell.
	ErrBrokenChain = errors.New("search: broken predecessor chain")
)
