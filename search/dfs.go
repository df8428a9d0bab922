package search

import "github.com/katalvlaran/pathviz/grid"

// frame is one level of the explicit DFS stack: the cell being expanded and
// the index into grid.Directions of the next move to try.
type frame struct {
	at   grid.Coord
	next int
}

// DFS runs depth-first search from start to end on g.
//
// Each step resumes the top frame at its next direction, descending into the
// first in-bounds, traversable, unvisited neighbor, and pops the frame once
// all four directions are exhausted (backtracking). The visit order matches
// the recursive formulation; the explicit stack only removes the call-depth
// limit on large grids. Every cell is entered at most once, so the search
// terminates. The returned path is the current stack when end is entered and
// is not necessarily shortest.
//
// Returns Result{Found: false} (nil error) when the stack empties.
// Errors: ErrNilGrid, ErrOutOfBounds, ErrBrokenChain.
func DFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	o, pf, err := prepare(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}
	switch pf {
	case blocked:
		return Result{}, nil
	case trivial:
		return single(o, start), nil
	}

	n := g.Rows() * g.Cols()
	visited := make(map[grid.Coord]bool, n)
	prev := make(map[grid.Coord]grid.Coord, n)
	order := make([]grid.Coord, 0, n)

	enter := func(c grid.Coord) {
		visited[c] = true
		order = append(order, c)
		o.OnEnqueue(c)
		o.OnVisit(c)
	}

	enter(start)
	stack := []frame{{at: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(grid.Directions) {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}
		cur := top.at
		nb := cur.Add(grid.Directions[top.next])
		top.next++

		if !g.IsTraversable(nb) || visited[nb] {
			continue
		}
		prev[nb] = cur
		enter(nb)

		if nb == end {
			path, err := reconstruct(prev, start, end)
			if err != nil {
				return Result{}, err
			}

			return Result{Found: true, Path: path, Visited: order}, nil
		}
		stack = append(stack, frame{at: nb})
	}

	return Result{Visited: order}, nil
}
