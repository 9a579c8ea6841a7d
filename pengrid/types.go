// Package pengrid defines core types, options, and sentinel errors
// for the pengrid subpackage of github.com/Aakashv1000/enclose-pony.
package pengrid

import (
	"errors"
)

// Sentinel errors for pengrid construction.
var (
	// ErrBadSize indicates a grid side length below one.
	ErrBadSize = errors.New("pengrid: grid size must be at least one")
	// ErrIndexOutOfRange indicates a wall or portal index outside [0, size²).
	ErrIndexOutOfRange = errors.New("pengrid: cell index out of range")
)

// WaterFunc reports whether the cell at (row, col) is water.
// Water is impassable like a wall but is never counted as enclosable.
// The function is fixed per puzzle and must be pure for the duration
// of a query.
type WaterFunc func(row, col int) bool

// Topology is the graph view both engines consume: cell addressing,
// the boundary test, traversability, and neighbor enumeration.
// Grid is the canonical implementation; any backing store that honors
// the same contracts (row-major indexing, fixed neighbor order) can
// substitute without touching the BFS logic.
type Topology interface {
	// Size returns the side length of the square grid.
	Size() int
	// Index maps (row, col) to a row-major cell index: row*Size() + col.
	Index(row, col int) int
	// Coordinate converts a row-major index back to (row, col).
	Coordinate(idx int) (row, col int)
	// InBounds reports whether (row, col) lies within the grid.
	InBounds(row, col int) bool
	// OnBoundary reports whether (row, col) lies on the outermost
	// row or column of the grid.
	OnBoundary(row, col int) bool
	// IsTraversable reports whether the cell is neither wall nor water.
	IsTraversable(row, col int) bool
	// Neighbors yields adjacent cell indices in the fixed order
	// up, down, left, right, then portal partner if present.
	Neighbors(row, col int) []int
}

// Option configures a Grid during construction.
type Option func(*Grid)

// WithWalls marks the given cell indices as impassable walls.
// The indices are copied; later mutation of the caller's slice does
// not affect the Grid.
func WithWalls(indices ...int) Option {
	return func(g *Grid) {
		for _, idx := range indices {
			g.walls[idx] = struct{}{}
		}
	}
}

// WithWater sets the water predicate. A nil fn is ignored and the
// default (no water) kept.
func WithWater(fn WaterFunc) Option {
	return func(g *Grid) {
		if fn != nil {
			g.water = fn
		}
	}
}

// WithPortals installs the portal adjacency mapping from a portal
// cell's index to its paired cell's index. The map is copied.
//
// Symmetry (portals[a]==b implies portals[b]==a) is a caller contract:
// it is not validated here, and an asymmetric entry simply behaves as
// a one-way jump.
func WithPortals(pairs map[int]int) Option {
	return func(g *Grid) {
		for from, to := range pairs {
			g.portals[from] = to
		}
	}
}

// Grid is a square puzzle grid viewed as a graph. It is immutable once
// built: walls and portals are deep-copied by New, and the water
// predicate is fixed per puzzle.
type Grid struct {
	size    int
	walls   map[int]struct{}
	water   WaterFunc
	portals map[int]int
}
