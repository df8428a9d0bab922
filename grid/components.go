package grid

// ConnectedComponents finds every maximal region of traversable cells
// (anything but Wall) under 4-directional connectivity.
// Components are listed in row-major order of their first cell; each
// component lists its cells in flood-fill (BFS) order.
//
// Time:   O(rows·cols·4).
// Memory: O(rows·cols) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i, s := range g.cells {
		if s == Wall || seen[i] {
			continue
		}
		comps = append(comps, g.flood(g.coord(i), seen))
	}

	return comps
}

// ComponentOf returns the region containing c in flood-fill order, or nil
// when c is a wall or out of range.
func (g *Grid) ComponentOf(c Coord) []Coord {
	if !g.IsTraversable(c) {
		return nil
	}

	return g.flood(c, make([]bool, len(g.cells)))
}

// Connected reports whether a and b lie in the same traversable region.
// Either endpoint being a wall or out of range yields false.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.IsTraversable(a) || !g.IsTraversable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	g.flood(a, seen)

	return seen[g.index(b)]
}

// flood collects the region containing from, marking cells in seen.
func (g *Grid) flood(from Coord, seen []bool) []Coord {
	seen[g.index(from)] = true
	queue := []Coord{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			ni := g.index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}
