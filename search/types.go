package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathviz/grid"
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// AlgorithmBFS is breadth-first search.
	AlgorithmBFS Algorithm = iota
	// AlgorithmDFS is depth-first search.
	AlgorithmDFS
	// AlgorithmAStar is A* with the Manhattan heuristic.
	AlgorithmAStar
)

// Algorithms lists every supported strategy.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBFS, AlgorithmDFS, AlgorithmAStar}
}

// String returns the short name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBFS:
		return "bfs"
	case AlgorithmDFS:
		return "dfs"
	case AlgorithmAStar:
		return "astar"
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Shortest reports whether a guarantees a shortest path.
func (a Algorithm) Shortest() bool {
	return a == AlgorithmBFS || a == AlgorithmAStar
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: bfs, breadth-first, dfs, depth-first, astar, a*, a-star.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first":
		return AlgorithmBFS, nil
	case "dfs", "depth-first":
		return AlgorithmDFS, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is the outcome of one search.
//   - Found: whether end was reached.
//   - Path:  start…end inclusive when Found; nil otherwise.
//   - Visited: cells in settle order (dequeue for BFS and A*, entry for DFS).
type Result struct {
	Found   bool
	Path    []grid.Coord
	Visited []grid.Coord
}

// Length returns the number of moves along Path, or -1 when no path was found.
func (r Result) Length() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds hooks invoked during a search.
type Options struct {
	// OnVisit is called when a cell is settled.
	OnVisit func(c grid.Coord)

	// OnEnqueue is called when a cell joins the frontier.
	OnEnqueue func(c grid.Coord)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnVisit:   func(grid.Coord) {},
		OnEnqueue: func(grid.Coord) {},
	}
}

// WithOnVisit registers a callback run as each cell is settled.
func WithOnVisit(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback run as each cell joins the frontier.
func WithOnEnqueue(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// SolveFunc is the shared signature of BFS, DFS and AStar.
type SolveFunc func(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error)
