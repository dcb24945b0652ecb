package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
)

// ExampleDijkstra computes the cheapest routes across four intersections
// and reconstructs the path to the farthest one.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 3)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("B", "D", 4)
	_ = g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, v := range g.Vertices() {
		fmt.Printf("A → %s: %d\n", v, dist[v])
	}
	path, _ := dijkstra.PathTo(dist, prev, "D")
	fmt.Println("route to D:", path)
	// Output:
	// A → A: 0
	// A → B: 1
	// A → C: 3
	// A → D: 5
	// route to D: [A B D]
}
