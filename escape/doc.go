// Package escape finds the shortest route from one grid cell to the
// grid boundary, returning unweighted shortest paths with full
// reconstruction.
//
// What:
//
//   - Path runs a single-source BFS from the source cell and stops at
//     the first boundary cell dequeued, which by BFS discipline is a
//     closest boundary cell by edge count. A portal traversal counts
//     as one edge regardless of geometric distance.
//   - The result is the cell-index sequence from source to boundary,
//     both endpoints included, rebuilt from parent pointers.
//
// Determinism:
//
//	Among equal-length escape routes the one returned is whichever
//	boundary cell is dequeued first. The fixed neighbor order
//	(up, down, left, right, portal) and FIFO queue make that choice
//	fully reproducible.
//
// Semantics:
//
//   - A source already on the boundary escapes immediately: the path
//     is the single source cell.
//   - A wall or water source runs no search: ErrSourceBlocked.
//   - If the queue drains with no boundary cell dequeued, the source
//     is sealed in: ErrNoEscape.
//   - Out-of-range source coordinates are a caller bug, surfaced fast
//     as ErrSourceOutOfBounds rather than clamped.
//
// Complexity (N×N grid):
//
//   - Time:   O(N²)   (each cell enqueued at most once)
//   - Memory: O(N²)   (visited flags, parent slice, queue)
//
// Path is pure: it takes an immutable pengrid.Topology snapshot and
// touches no ambient state.
package escape
