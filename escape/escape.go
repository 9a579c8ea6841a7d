package escape

import (
	"errors"

	"github.com/Aakashv1000/enclose-pony/pengrid"
)

// Sentinel errors for escape queries.
var (
	// ErrSourceOutOfBounds indicates source coordinates outside [0, size).
	ErrSourceOutOfBounds = errors.New("escape: source cell outside the grid")
	// ErrSourceBlocked indicates the source cell is a wall or water.
	ErrSourceBlocked = errors.New("escape: source cell is not traversable")
	// ErrNoEscape indicates no route from the source to the boundary exists.
	ErrNoEscape = errors.New("escape: no route to the boundary")
)

// Path returns the shortest route, by edge count, from the source cell
// to the grid boundary: a sequence of row-major cell indices ordered
// source → boundary, both endpoints included. A portal hop counts as
// one edge.
//
// Returns ErrSourceOutOfBounds for coordinates outside the grid,
// ErrSourceBlocked if the source is a wall or water cell (no search is
// run), or ErrNoEscape if the source is fully sealed in. The returned
// path is nil in every error case.
//
// Time: O(N²) for an N×N grid. Memory: O(N²).
func Path(t pengrid.Topology, srcRow, srcCol int) ([]int, error) {
	if !t.InBounds(srcRow, srcCol) {
		return nil, ErrSourceOutOfBounds
	}
	if !t.IsTraversable(srcRow, srcCol) {
		return nil, ErrSourceBlocked
	}

	n := t.Size()
	seen := make([]bool, n*n)
	// prev holds the BFS parent of each visited cell; -1 is the
	// sentinel for the source (and for never-visited cells).
	prev := make([]int, n*n)
	for i := range prev {
		prev[i] = -1
	}

	src := t.Index(srcRow, srcCol)
	seen[src] = true
	queue := []int{src}
	target := -1

	// Standard BFS; the boundary test runs on dequeue so the first
	// boundary cell popped is a closest one. If the source itself is
	// on the boundary the loop ends on its first iteration.
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		row, col := t.Coordinate(u)
		if t.OnBoundary(row, col) {
			target = u
			break
		}
		for _, v := range t.Neighbors(row, col) {
			if seen[v] {
				continue
			}
			seen[v] = true
			prev[v] = u
			queue = append(queue, v)
		}
	}

	if target < 0 {
		return nil, ErrNoEscape
	}

	// Walk parents boundary → source, then reverse in place.
	path := make([]int, 0, 8)
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
