// Package enclosepony is the connectivity core of the enclose-pony
// puzzle: it decides which cells of a walled grid are enclosed, and
// finds the shortest escape route from a trapped cell to the boundary.
//
// 🐴 What is enclose-pony?
//
//	A small, zero-dependency engine for square grids whose cells may be
//	blocked (walls, water) and whose graph carries non-local portal edges:
//		• Grid adapter: row-major cell indexing, traversability, neighbor
//		  enumeration with portal jumps
//		• Enclosure analysis: boundary-seeded multi-source BFS and the
//		  derived set of enclosed cells
//		• Escape pathing: single-source BFS to the nearest boundary cell
//		  with full path reconstruction
//
// ✨ Why this shape?
//
//   - Pure functions – every query takes explicit inputs, returns value data
//   - Deterministic – fixed neighbor order (up, down, left, right, portal)
//     and FIFO discipline make every result reproducible
//   - Pure Go – no cgo, no hidden deps
//   - Substitutable – engines consume a small Topology interface, so any
//     bitset- or hashmap-backed grid can plug in
//
// Everything is organized under three subpackages:
//
//	pengrid/   — Grid, WaterFunc, Topology: the grid-as-graph adapter
//	enclosure/ — Reachable & Enclosed: which cells the boundary can touch
//	escape/    — Path: shortest route from a cell to the boundary
//
// Quick ASCII example (# = wall, . = open, the 3×3 pen is enclosed):
//
//	# # # # #
//	# . . . #
//	# . . . #
//	# . . . #
//	# # # # #
//
// Dive into the examples/ directory for runnable scenarios.
//
//	go get github.com/Aakashv1000/enclose-pony
package enclosepony
