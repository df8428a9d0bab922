package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathviz/grid"
)

// AStar runs A* from start to end on g with the Manhattan heuristic
// h(c) = |c.Row-end.Row| + |c.Col-end.Col|.
//
// The frontier is a min-heap on f = g + h with ties broken by insertion
// sequence, so equal-priority cells leave in the order they arrived. g is
// initialized to +∞ for every cell except start (0). Popping end finishes the
// search; otherwise each neighbor is relaxed when g(cur)+1 < g(nb), which
// updates its cost and predecessor and pushes a fresh heap entry. Stale
// entries are not removed; a settled set skips them when popped.
//
// h never overestimates on a 4-connected unit-cost grid and is consistent,
// so the first time end is popped its path is shortest.
//
// Returns Result{Found: false} (nil error) when the heap empties.
// Errors: ErrNilGrid, ErrOutOfBounds, ErrBrokenChain.
func AStar(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
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
	r := &astarRunner{
		grid:    g,
		opts:    o,
		end:     end,
		dist:    make(map[grid.Coord]int, n),
		prev:    make(map[grid.Coord]grid.Coord, n),
		settled: make(map[grid.Coord]bool, n),
		order:   make([]grid.Coord, 0, n),
		pq:      make(nodePQ, 0, n),
	}
	heap.Init(&r.pq)
	r.dist[start] = 0
	r.push(start, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		cur := item.at
		if r.settled[cur] {
			continue // stale entry
		}
		r.settled[cur] = true
		r.order = append(r.order, cur)
		o.OnVisit(cur)

		if cur == end {
			path, err := reconstruct(r.prev, start, end)
			if err != nil {
				return Result{}, err
			}

			return Result{Found: true, Path: path, Visited: r.order}, nil
		}
		r.relax(cur)
	}

	return Result{Visited: r.order}, nil
}

// astarRunner holds the mutable state of one A* execution.
type astarRunner struct {
	grid    *grid.Grid
	opts    Options
	end     grid.Coord
	dist    map[grid.Coord]int        // best-known g; absent means +∞
	prev    map[grid.Coord]grid.Coord // predecessor on the best-known path
	settled map[grid.Coord]bool
	order   []grid.Coord
	pq      nodePQ
	seq     uint64 // insertion counter for stable tie-breaks
}

// cost returns the best-known g for c.
func (r *astarRunner) cost(c grid.Coord) int {
	if d, ok := r.dist[c]; ok {
		return d
	}

	return math.MaxInt
}

// relax tries to improve every unsettled neighbor of cur by one step.
func (r *astarRunner) relax(cur grid.Coord) {
	next := r.dist[cur] + 1
	for _, nb := range r.grid.Neighbors(cur) {
		if r.settled[nb] || next >= r.cost(nb) {
			continue
		}
		r.dist[nb] = next
		r.prev[nb] = cur
		r.push(nb, next+nb.Manhattan(r.end))
	}
}

func (r *astarRunner) push(c grid.Coord, f int) {
	heap.Push(&r.pq, nodeItem{at: c, f: f, seq: r.seq})
	r.seq++
	r.opts.OnEnqueue(c)
}

// nodeItem is a heap entry: a cell, its priority f and its insertion order.
type nodeItem struct {
	at  grid.Coord
	f   int
	seq uint64
}

// nodePQ is a min-heap of nodeItem ordered by f, then by seq.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
