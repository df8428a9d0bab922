package search

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// reconstruct walks predecessor links end → … → start and returns the path
// in forward order, start and end inclusive.
// Returns ErrBrokenChain if a link is missing before start is reached or the
// walk exceeds the number of recorded links (a cycle).
func reconstruct(prev map[grid.Coord]grid.Coord, start, end grid.Coord) ([]grid.Coord, error) {
	path := []grid.Coord{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrBrokenChain, cur)
		}
		path = append(path, p)
		if len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, p)
		}
		cur = p
	}

	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
