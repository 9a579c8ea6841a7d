package enclosure_test

import (
	"math/rand"
	"testing"

	"github.com/Aakashv1000/enclose-pony/enclosure"
	"github.com/Aakashv1000/enclose-pony/pengrid"
)

// BenchmarkEnclosed measures Enclosed on a 1000×1000 grid with ~25%
// random walls (deterministic seed).
// Complexity: O(N²)
func BenchmarkEnclosed(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))
	var walls []int
	for idx := 0; idx < n*n; idx++ {
		if r.Intn(4) == 0 {
			walls = append(walls, idx)
		}
	}
	g, err := pengrid.New(n, pengrid.WithWalls(walls...))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enclosure.Enclosed(g)
	}
}

// BenchmarkReachable measures the boundary flood alone on the same
// grid shape.
func BenchmarkReachable(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(7))
	var walls []int
	for idx := 0; idx < n*n; idx++ {
		if r.Intn(4) == 0 {
			walls = append(walls, idx)
		}
	}
	g, err := pengrid.New(n, pengrid.WithWalls(walls...))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enclosure.Reachable(g)
	}
}
