// Package search finds a path between two cells of a grid.Grid using one of
// three strategies: breadth-first search, depth-first search, or A*.
//
// What
//
//   - BFS: FIFO frontier expanded in distance layers; shortest path by cell count.
//   - DFS: explicit-stack depth-first descent; finds a path if one exists,
//     with no length guarantee.
//   - AStar: binary-heap frontier ordered by f = g + h, h = Manhattan distance
//     to the target; ties break by insertion order. Optimal on a 4-connected
//     unit-cost grid because h is admissible and consistent.
//   - Solve dispatches on an Algorithm value.
//
// Every algorithm moves only up, right, down, left and always evaluates
// neighbors in that order, so results are fully reproducible for a given grid.
//
// Result
//
//   - Found/Path: Path runs start…end inclusive; nil when Found is false.
//   - Visited: cells in the order the algorithm settled them, used by
//     shells that reveal the explored region.
//
// A missing path is not an error: it is Result{Found: false} with a nil error.
// Predecessor links stay internal and are discarded after the path is rebuilt.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS: O(N) time and memory.
//   - AStar:    O(N log N) time, O(N) memory (lazy decrease-key: stale heap
//     entries are skipped when popped).
//
// Options
//
//   - WithOnVisit(fn):   hook called as each cell is settled.
//   - WithOnEnqueue(fn): hook called as each cell joins the frontier.
//
// Errors
//
//   - ErrNilGrid             if the grid pointer is nil.
//   - ErrOutOfBounds         if start or end lies outside the grid.
//   - ErrUnknownAlgorithm    for Solve/ParseAlgorithm with an unknown algorithm.
//   - ErrBrokenChain         if predecessor links do not lead back to start;
//     this signals an internal invariant violation.
package search
