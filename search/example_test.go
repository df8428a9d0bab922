package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// ExampleBFS finds the shortest route around two walls on a 3×3 grid.
func ExampleBFS() {
	g := grid.MustParse("" +
		"S#.\n" +
		".#.\n" +
		"..E\n")
	start, _ := g.FindCell(grid.Start)
	end, _ := g.FindCell(grid.End)

	res, err := search.BFS(g, start, end)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Length())
	fmt.Println(res.Path)

	// Output:
	// true 4
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

// ExampleSolve compares path lengths of all three strategies on a layout
// where depth-first search wanders before reaching the end.
func ExampleSolve() {
	g := grid.MustParse("" +
		"S...\n" +
		"....\n" +
		"E...\n")
	start, _ := g.FindCell(grid.Start)
	end, _ := g.FindCell(grid.End)

	for _, alg := range search.Algorithms() {
		res, _ := search.Solve(alg, g, start, end)
		fmt.Printf("%s: %d moves\n", alg, res.Length())
	}

	// Output:
	// bfs: 2 moves
	// dfs: 10 moves
	// astar: 2 moves
}
