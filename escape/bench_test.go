package escape_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Aakashv1000/enclose-pony/escape"
	"github.com/Aakashv1000/enclose-pony/pengrid"
)

// BenchmarkPath measures the escape search from the center of a
// 1000×1000 grid with ~25% random walls (deterministic seed; the
// center cell is kept open). A sealed center still exercises the full
// flood, so ErrNoEscape is not a benchmark failure.
// Complexity: O(N²)
func BenchmarkPath(b *testing.B) {
	const n = 1000
	center := (n/2)*n + n/2
	r := rand.New(rand.NewSource(42))
	var walls []int
	for idx := 0; idx < n*n; idx++ {
		if idx != center && r.Intn(4) == 0 {
			walls = append(walls, idx)
		}
	}
	g, err := pengrid.New(n, pengrid.WithWalls(walls...))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := escape.Path(g, n/2, n/2); err != nil && !errors.Is(err, escape.ErrNoEscape) {
			b.Fatalf("Path failed: %v", err)
		}
	}
}

// BenchmarkPath_OpenGrid measures the best case: an empty grid where
// the search walks straight up to the boundary.
func BenchmarkPath_OpenGrid(b *testing.B) {
	const n = 1000
	g, err := pengrid.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := escape.Path(g, n/2, n/2); err != nil {
			b.Fatalf("Path failed: %v", err)
		}
	}
}
