package bfs_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// weighted graph unsupported
	gW := core.NewGraph(core.WithWeighted())
	_ = gW.AddVertex("A")
	if _, err := bfs.BFS(gW, "A"); !errors.Is(err, bfs.ErrWeightedGraph) {
		t.Errorf("weighted graph: want ErrWeightedGraph, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := core.NewGraph()
	_ = g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_AdjacencyOrder pins the deterministic visit sequence: neighbors
// are enqueued exactly in edge-insertion order.
func TestBFS_AdjacencyOrder(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "C", 0)
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("C", "D", 0)
	_ = g.AddEdge("B", "E", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "C", "B", "D", "E"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_LevelMonotonicity checks that recorded depths never decrease
// along the visit order, for a graph with several cross-links.
func TestBFS_LevelMonotonicity(t *testing.T) {
	g := core.NewGraph()
	edges := [][2]string{
		{"s", "a"}, {"s", "b"}, {"a", "c"}, {"b", "c"},
		{"c", "d"}, {"b", "d"}, {"d", "e"}, {"a", "e"},
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatal(err)
		}
	}

	res, err := bfs.BFS(g, "s")
	if err != nil {
		t.Fatal(err)
	}
	last := 0
	for _, id := range res.Order {
		d := res.Depth[id]
		if d < last {
			t.Fatalf("depth decreased at %q: %d after %d (order %v)", id, d, last, res.Order)
		}
		last = d
	}
}

// TestBFS_DisconnectedComponent ensures unreachable vertices are absent
// from the result without error.
func TestBFS_DisconnectedComponent(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("X", "Y", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 2 {
		t.Errorf("Order = %v; want exactly the {A,B} component", res.Order)
	}
	if _, ok := res.Depth["X"]; ok {
		t.Error("Depth contains unreachable vertex X")
	}
}

// TestBFS_MaxDepth limits exploration on a chain.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"v0", "v1", "v2"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}

		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped hook error, got %v", err)
	}
}

// TestBFS_PathTo reconstructs a fewest-hop route and rejects unreached targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	// long route A-B-C-D-K, short route A-E-F-K
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"}, {"A", "E"}, {"E", "F"}, {"F", "K"}} {
		_ = g.AddEdge(e[0], e[1], 0)
	}
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("K")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "E", "F", "K"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(K) = %v; want %v", path, want)
	}
	if _, err := res.PathTo("ghost"); err == nil {
		t.Error("PathTo(ghost): want error, got nil")
	}
}
