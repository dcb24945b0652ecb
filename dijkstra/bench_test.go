package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
)

// BenchmarkDijkstra_Grid measures shortest paths over an M×M weighted grid.
func BenchmarkDijkstra_Grid(b *testing.B) {
	const M = 60
	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if i+1 < M {
				_ = g.AddEdge(id, fmt.Sprintf("%d_%d", i+1, j), int64(1+rnd.Intn(9)))
			}
			if j+1 < M {
				_ = g.AddEdge(id, fmt.Sprintf("%d_%d", i, j+1), int64(1+rnd.Intn(9)))
			}
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(M*M + 2*M*(M-1)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, "0_0")
	}
}

// BenchmarkDijkstra_Sparse measures a sparse random weighted graph.
func BenchmarkDijkstra_Sparse(b *testing.B) {
	const V = 3000
	const E = 9000
	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < V; i++ {
		_ = g.AddVertex(fmt.Sprintf("n%d", i))
	}
	// chain for connectivity, then random extras (duplicates rejected by core)
	for i := 1; i < V; i++ {
		_ = g.AddEdge(fmt.Sprintf("n%d", i-1), fmt.Sprintf("n%d", i), int64(1+rnd.Intn(99)))
	}
	for k := 0; k < E-(V-1); k++ {
		u, v := rnd.Intn(V), rnd.Intn(V)
		if u == v {
			continue
		}
		_ = g.AddEdge(fmt.Sprintf("n%d", u), fmt.Sprintf("n%d", v), int64(1+rnd.Intn(99)))
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, "n0")
	}
}
