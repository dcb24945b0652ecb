// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path depths, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Optional OnVisit hook (may abort with an error) and MaxDepth limit.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover the reachable component and its level layering.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in insertion order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Scope
//
//	Only the component reachable from the start vertex is visited;
//	disconnected vertices are silently absent from all result maps.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrOptionViolation      if an invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
