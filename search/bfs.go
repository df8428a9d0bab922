package search

import "github.com/katalvlaran/pathviz/grid"

// BFS runs breadth-first search from start to end on g.
//
// Start is marked visited and enqueued. Each dequeued cell is checked
// against end; otherwise its unvisited traversable neighbors are marked,
// linked to it, and enqueued in up, right, down, left order. Marking on
// enqueue keeps every cell in the queue at most once and yields a path of
// minimum cell count.
//
// Returns Result{Found: false} (nil error) once the queue drains.
// Errors: ErrNilGrid, ErrOutOfBounds, ErrBrokenChain.
func BFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
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

	visited[start] = true
	o.OnEnqueue(start)
	queue := []grid.Coord{start}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		order = append(order, cur)
		o.OnVisit(cur)

		if cur == end {
			path, err := reconstruct(prev, start, end)
			if err != nil {
				return Result{}, err
			}

			return Result{Found: true, Path: path, Visited: order}, nil
		}

		for _, nb := range g.Neighbors(cur) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			prev[nb] = cur
			o.OnEnqueue(nb)
			queue = append(queue, nb)
		}
	}

	return Result{Visited: order}, nil
}
