package search

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Solve runs the strategy selected by alg.
// Returns ErrUnknownAlgorithm for an unsupported alg, otherwise whatever the
// selected strategy returns.
func Solve(alg Algorithm, g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	fn, err := alg.solver()
	if err != nil {
		return Result{}, err
	}

	return fn(g, start, end, opts...)
}

func (a Algorithm) solver() (SolveFunc, error) {
	switch a {
	case AlgorithmBFS:
		return BFS, nil
	case AlgorithmDFS:
		return DFS, nil
	case AlgorithmAStar:
		return AStar, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
}

// outcome of validating inputs common to all strategies.
type preflight int

const (
	runSearch preflight = iota // proceed with the traversal
	trivial                    // start == end
	blocked                    // an endpoint is a wall
)

// prepare validates inputs and folds the functional options.
func prepare(g *grid.Grid, start, end grid.Coord, opts []Option) (Options, preflight, error) {
	o := DefaultOptions()
	if g == nil {
		return o, runSearch, ErrNilGrid
	}
	for _, c := range [2]grid.Coord{start, end} {
		if !g.InBounds(c) {
			return o, runSearch, fmt.Errorf("%w: %v: %w", ErrOutOfBounds, c, grid.ErrOutOfBounds)
		}
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case !g.IsTraversable(start) || !g.IsTraversable(end):
		return o, blocked, nil
	case start == end:
		return o, trivial, nil
	}

	return o, runSearch, nil
}

// single is the result of a search whose start and end coincide.
func single(o Options, c grid.Coord) Result {
	o.OnEnqueue(c)
	o.OnVisit(c)

	return Result{Found: true, Path: []grid.Coord{c}, Visited: []grid.Coord{c}}
}
