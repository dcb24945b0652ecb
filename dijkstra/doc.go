// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs with non-negative edge weights.
//
// What
//
//   - Compute the minimum cumulative distance from a single source vertex
//     to every reachable vertex, plus a predecessor map for path
//     reconstruction.
//   - Vertices that cannot be reached keep distance Unreachable
//     (math.MaxInt64) and an empty predecessor; that is the expected
//     terminal state, not an error.
//
// Algorithm
//
//	A min-heap priority frontier orders vertices by tentative distance.
//	Decrease-key is "lazy": improving a distance pushes a fresh heap entry
//	and stale duplicates are skipped when popped (their vertex is already
//	finalized). Edges are pre-scanned so negative weights fail fast with
//	ErrNegativeWeight instead of silently corrupting distances.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:  O((V + E) log V) — each vertex extracted once, each
//     relaxation may push one heap entry.
//   - Space: O(V + E) — distance/predecessor maps plus worst-case heap
//     occupancy under lazy decrease-key.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrUnweightedGraph if the graph does not carry weights.
//   - ErrSourceNotFound  if the source vertex does not exist.
//   - ErrNegativeWeight  if any edge weight is negative.
//   - ErrBadMaxDistance  if WithMaxDistance is given a negative cap.
package dijkstra
