// Package engine ties the grid model, the search strategies and the animation
// scheduler into the single entry point a shell talks to.
//
// A shell creates an Engine once, forwards the user's edits through
// SetCellState, and calls Solve with the chosen algorithm. Solve locates the
// start and end cells, runs the search, and schedules reveal events with the
// policy configured for that algorithm:
//
//	eng, err := engine.New(10, 10, engine.WithUnitDelay(50*time.Millisecond))
//	if err != nil {
//	    return err
//	}
//	_ = eng.SetCellState(0, 0, grid.Start)
//	_ = eng.SetCellState(9, 9, grid.End)
//	sol, err := eng.Solve(search.AlgorithmAStar)
//	switch {
//	case errors.Is(err, engine.ErrMissingEndpoint):
//	    // tell the user to place start and end
//	case err != nil:
//	    return err
//	case !sol.Result.Found:
//	    // no path exists
//	}
//	for _, ev := range sol.Events {
//	    // reveal ev.Coord after ev.Delay
//	}
//
// Defaults: 100ms per step; BFS and A* reveal the path by index, DFS reveals
// every explored cell by coordinate sum.
//
// An Engine is single-owner and does no locking: edits and solves must not
// run concurrently.
package engine
