package mergesort_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/mergesort"
)

// BenchmarkSort measures sorting 1<<15 random ints.
func BenchmarkSort(b *testing.B) {
	const n = 1 << 15
	rnd := rand.New(rand.NewSource(42))
	in := make([]int, n)
	for i := range in {
		in[i] = rnd.Int()
	}

	b.ReportAllocs()
	b.SetBytes(int64(n * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mergesort.Sort(in)
	}
}
