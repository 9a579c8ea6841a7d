package enclosure

import (
	"github.com/Aakashv1000/enclose-pony/pengrid"
)

// Reachable returns the set of cell indices reachable from the grid
// boundary through traversable cells and portal jumps.
//
// The search is a multi-source BFS: every traversable cell on the four
// boundary rings (top row, bottom row, left column, right column) is
// seeded once, then expansion follows Topology.Neighbors. Each cell
// enters the queue at most once, so the search terminates after at
// most Size²  dequeues.
//
// Time:   O(N²) for an N×N grid.
// Memory: O(N²) for the visited flags, queue, and result set.
func Reachable(t pengrid.Topology) map[int]struct{} {
	_, order := flood(t)

	set := make(map[int]struct{}, len(order))
	for _, idx := range order {
		set[idx] = struct{}{}
	}

	return set
}

// Enclosed returns every traversable cell (not wall, not water) that
// the boundary cannot reach, as row-major indices in ascending order.
// Walls and water are excluded by definition: they are not part of the
// pen being measured, even when geometrically surrounded.
//
// Time:   O(N²). Memory: O(N²).
func Enclosed(t pengrid.Topology) []int {
	seen, _ := flood(t)

	n := t.Size()
	var enclosed []int
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !t.IsTraversable(row, col) {
				continue
			}
			if idx := t.Index(row, col); !seen[idx] {
				enclosed = append(enclosed, idx)
			}
		}
	}

	return enclosed
}

// flood runs the boundary-seeded BFS and returns the visited flags
// plus the visit order. The queue is a slice walked by index, giving
// O(1) enqueue and dequeue.
func flood(t pengrid.Topology) (seen []bool, order []int) {
	n := t.Size()
	seen = make([]bool, n*n)
	queue := make([]int, 0, n*n)

	// Seed the four boundary rings; seen guards corners against
	// double-enqueue.
	seed := func(row, col int) {
		if !t.IsTraversable(row, col) {
			return
		}
		idx := t.Index(row, col)
		if seen[idx] {
			return
		}
		seen[idx] = true
		queue = append(queue, idx)
	}
	for col := 0; col < n; col++ {
		seed(0, col)
		seed(n-1, col)
	}
	for row := 0; row < n; row++ {
		seed(row, 0)
		seed(row, n-1)
	}

	for qi := 0; qi < len(queue); qi++ {
		row, col := t.Coordinate(queue[qi])
		for _, v := range t.Neighbors(row, col) {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen, queue
}
