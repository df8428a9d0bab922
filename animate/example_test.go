package animate_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pathviz/animate"
	"github.com/katalvlaran/pathviz/grid"
)

// ExampleByIndex schedules a three-step path one tick apart.
func ExampleByIndex() {
	path := []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}
	events, _ := animate.ByIndex(path, 100*time.Millisecond)
	for _, e := range events {
		fmt.Println(e.Coord, e.Delay)
	}

	// Output:
	// (0,1) 100ms
	// (1,1) 200ms
	// (1,2) 300ms
}
