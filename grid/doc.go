// Package grid models the paintable 2-D board the pathfinding engine searches:
// a fixed rows×cols array of cells, each Empty, Wall, Start or End.
//
// What:
//
//   - Grid owns cell storage and enforces "at most one Start, at most one End".
//   - Cells are mutated only through SetCellState, which validates bounds and
//     rejects a second Start/End instead of silently moving the existing one.
//   - Neighbors yields traversable orthogonal neighbors in the fixed order
//     up, right, down, left, which every search algorithm relies on for
//     deterministic tie-breaking.
//   - ConnectedComponents flood-fills traversable regions, giving callers an
//     independent reachability oracle.
//   - Parse/String read and write a one-glyph-per-cell text layout.
//
// Why:
//
//   - Searches receive an explicit *Grid instead of sharing package state.
//   - Shells (UI or terminal) can keep their own toggle cycles and rely on the
//     model for validation only.
//
// Complexity:
//
//   - New, Reset, FindCell, ConnectedComponents: O(rows×cols).
//   - SetCellState, CellState, IsTraversable, Neighbors: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows ≤ 0 or cols ≤ 0, or an empty layout.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrDuplicateStart / ErrDuplicateEnd: a second special cell was requested.
//   - ErrInvalidState: CellState value outside the four known states.
//   - ErrCellNotFound: FindCell found no cell with the requested state.
//   - ErrNonRectangular / ErrInvalidGlyph: malformed text layout.
package grid
