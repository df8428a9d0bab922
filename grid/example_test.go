package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// ExampleGrid_SetCellState shows the start/end uniqueness rule: a second
// start is rejected and the first one stays where it was.
func ExampleGrid_SetCellState() {
	g, _ := grid.New(2, 3)
	_ = g.SetCellState(0, 0, grid.Start)
	_ = g.SetCellState(1, 2, grid.End)
	_ = g.SetCellState(0, 1, grid.Wall)

	err := g.SetCellState(1, 0, grid.Start)
	fmt.Println(errors.Is(err, grid.ErrDuplicateStart))
	fmt.Print(g)

	// Output:
	// true
	// S#.
	// ..E
}

// ExampleGrid_ConnectedComponents lists the traversable regions of a layout
// split by a wall column.
func ExampleGrid_ConnectedComponents() {
	g := grid.MustParse("" +
		"S.#.\n" +
		"..#E\n")

	for i, comp := range g.ConnectedComponents() {
		fmt.Println(i, comp)
	}

	// Output:
	// 0 [(0,0) (0,1) (1,0) (1,1)]
	// 1 [(0,3) (1,3)]
}
