// Package pathviz is a grid pathfinding engine for interactive visualizers:
// paint walls, a start and an end on a 2-D board, pick BFS, DFS or A*, and
// get back the path plus a timed schedule of cells for a shell to reveal.
//
// 🚀 What is pathviz?
//
//	A small, deterministic, single-owner library split into:
//		• grid/: the board: cell states, validated edits, text layouts, flood fill
//		• search/: BFS, explicit-stack DFS and A* (Manhattan, heap with FIFO ties)
//		• animate/: pure reveal schedules: by path index or by coordinate sum
//		• engine/: one Solve call: find endpoints, search, schedule
//
// The engine never renders and never sleeps. It emits data; a shell such as
// cmd/pathviz decides how to draw it and when.
//
// Quick example:
//
//	eng, _ := engine.NewFromGrid(grid.MustParse("S.#\n..E\n"))
//	sol, _ := eng.Solve(search.AlgorithmAStar)
//	for _, ev := range sol.Events {
//		fmt.Println(ev.Delay, ev.Coord)
//	}
//
// Errors are sentinel values per package (grid.ErrOutOfBounds,
// engine.ErrMissingEndpoint, …) matched with errors.Is. A missing path is not
// an error: it is a Result with Found == false.
//
// See examples/ for an end-to-end scenario.
package pathviz
