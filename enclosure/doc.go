// Package enclosure decides which cells of a pen grid the outside
// world can touch, and which are sealed in.
//
// What:
//
//   - Reachable runs a multi-source BFS seeded from every traversable
//     cell on the grid's outer ring and returns the set of cell
//     indices the boundary can reach, portal jumps included.
//   - Enclosed returns the complement: traversable cells (not wall,
//     not water) that no boundary cell can reach, in ascending
//     row-major index order.
//
// Why:
//
//   - Puzzle scoring: an enclosure is valid exactly when the penned
//     cells are unreachable from the edge.
//   - Editor feedback: re-run after each wall placement to show the
//     player what their fence currently seals.
//
// Semantics:
//
//   - Boundary corners are seeded once even though they lie on two
//     rings.
//   - A fully walled outer ring seeds nothing: the reachable set is
//     empty and every traversable interior cell is enclosed.
//   - A portal whose partner is reachable makes its host cell
//     reachable too, even with no orthogonal route. Intended
//     behavior, not a data error.
//   - Walls and water are never members of the enclosed set, even if
//     geometrically surrounded.
//
// Complexity:
//
//   - Reachable: O(N²) time and memory for an N×N grid (each cell
//     enters the FIFO queue at most once).
//   - Enclosed:  O(N²) time and memory (Reachable plus one scan).
//
// Both functions are pure: they take an immutable pengrid.Topology
// snapshot and return fresh value data on every call.
package enclosure
