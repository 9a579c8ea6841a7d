// Package pengrid treats a square puzzle grid — walls, water, portal
// pairs — as a graph. It provides:
//
//   - Row-major cell indexing and coordinate round-trips
//   - Traversability (not a wall, not water)
//   - Neighbor enumeration in a fixed order: up, down, left, right,
//     then the portal partner if the cell hosts a portal
//
// Cells blocked by walls or water are impassable; portals sit on
// otherwise-traversable ground and add one non-geometric edge.
package pengrid

import (
	"fmt"
)

// neighborOffsets lists orthogonal (dRow, dCol) steps in the fixed
// expansion order up, down, left, right. The order is part of the
// public contract: both engine packages rely on it for deterministic
// tie-breaking.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New constructs a Grid of size×size cells from the given options.
// Wall and portal inputs are deep-copied to ensure immutability.
// Returns ErrBadSize if size < 1, ErrIndexOutOfRange if any wall or
// portal index falls outside [0, size²).
// Complexity: O(walls + portals) time and memory.
func New(size int, opts ...Option) (*Grid, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	g := &Grid{
		size:    size,
		walls:   make(map[int]struct{}),
		water:   func(int, int) bool { return false },
		portals: make(map[int]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	total := size * size
	for idx := range g.walls {
		if idx < 0 || idx >= total {
			return nil, fmt.Errorf("%w: wall at %d", ErrIndexOutOfRange, idx)
		}
	}
	for from, to := range g.portals {
		if from < 0 || from >= total || to < 0 || to >= total {
			return nil, fmt.Errorf("%w: portal %d→%d", ErrIndexOutOfRange, from, to)
		}
	}

	return g, nil
}

// Size returns the side length of the grid.
// Complexity: O(1).
func (g *Grid) Size() int {
	return g.size
}

// Index maps (row, col) to a row-major index: row*size + col.
// Valid only for 0 <= row, col < Size().
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.size + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.size, idx % g.size
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// OnBoundary reports whether (row, col) lies on the outermost row or
// column. On a size-1 grid the single cell is on all four rings.
// Complexity: O(1).
func (g *Grid) OnBoundary(row, col int) bool {
	return row == 0 || row == g.size-1 || col == 0 || col == g.size-1
}

// IsTraversable reports whether the cell at (row, col) is neither a
// wall nor water. A traversable cell may still host a portal.
// Valid only for in-bounds coordinates.
// Complexity: O(1) plus one WaterFunc call.
func (g *Grid) IsTraversable(row, col int) bool {
	if _, blocked := g.walls[g.Index(row, col)]; blocked {
		return false
	}

	return !g.water(row, col)
}

// IsPortal reports whether the cell at idx hosts a portal, and if so
// returns its partner's index.
// Complexity: O(1).
func (g *Grid) IsPortal(idx int) (partner int, ok bool) {
	partner, ok = g.portals[idx]
	return partner, ok
}

// Neighbors yields the adjacent cell indices of (row, col) in the
// fixed order up, down, left, right, then portal partner. Orthogonal
// neighbors are filtered by grid bounds and traversability; the portal
// edge bypasses both checks. Its target is asserted traversable by the
// puzzle loader, and a portal leading into a wall is a data error
// upstream, not repaired here. Pure function of grid state.
// Complexity: O(1).
func (g *Grid) Neighbors(row, col int) []int {
	out := make([]int, 0, 5)
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) || !g.IsTraversable(nr, nc) {
			continue
		}
		out = append(out, g.Index(nr, nc))
	}
	if partner, ok := g.portals[g.Index(row, col)]; ok {
		out = append(out, partner)
	}

	return out
}
