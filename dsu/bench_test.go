package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/dsu"
)

// BenchmarkUnionFind measures interleaved unions and finds over a large
// universe; path halving keeps the amortized cost near-constant.
func BenchmarkUnionFind(b *testing.B) {
	const n = 1 << 16
	rnd := rand.New(rand.NewSource(42))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		d, err := dsu.New(n)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		for k := 0; k < n; k++ {
			_ = d.Union(rnd.Intn(n), rnd.Intn(n))
			_, _ = d.Find(rnd.Intn(n))
		}
	}
}
