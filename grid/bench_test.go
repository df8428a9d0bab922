package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathviz/grid"
)

// BenchmarkConnectedComponents measures flood fill on a 500×500 grid with
// roughly 30% walls.
// Complexity: O(rows×cols×4)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(10) < 3 {
				_ = g.SetCellState(r, c, grid.Wall)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
