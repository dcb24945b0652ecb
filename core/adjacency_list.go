package core

import (
	"fmt"
	"sort"
)

// AddVertex registers id with no edges. Adding an existing vertex is a
// no-op. Returns ErrEmptyVertexID if id is the empty string.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}

	return nil
}

// AddEdge inserts an edge from→to with the given weight, creating missing
// endpoints automatically. On undirected graphs the reverse direction is
// recorded as well (still one logical edge).
//
// Errors:
//   - ErrEmptyVertexID  if either endpoint is empty.
//   - ErrSelfLoop       if from == to.
//   - ErrBadWeight      if weight != 0 on an unweighted graph.
//   - ErrParallelEdge   if an edge from→to already exists.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if weight != 0 && !g.weighted {
		return fmt.Errorf("%w: weight=%d", ErrBadWeight, weight)
	}
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return fmt.Errorf("%w: %s→%s", ErrParallelEdge, from, to)
		}
	}

	// Endpoints first, so adjacency entries exist even for degree-0 views.
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	if !g.directed {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
	}
	g.edgeCount++

	return nil
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the outgoing edges of id in insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// NeighborIDs returns the destination IDs of id's outgoing edges in
// insertion order. Returns ErrVertexNotFound if id is absent.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of logical edges
// (an undirected edge counts once).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edges returns every stored adjacency entry grouped by source vertex in
// sorted-vertex order. On undirected graphs each logical edge appears
// twice, once per direction.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount*2)
	for _, id := range g.Vertices() {
		out = append(out, g.adjacency[id]...)
	}

	return out
}
