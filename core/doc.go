// Package core defines the Graph and Edge types shared by every graph
// algorithm in algokit.
//
// What
//
//   - Graph: an adjacency-list container mapping string vertex IDs to an
//     ordered sequence of outgoing edges.
//   - Edge: endpoints From→To plus an int64 Weight (always 0 on
//     unweighted graphs).
//
// Determinism
//
//	NeighborIDs and Neighbors return edges in insertion order, so every
//	traversal that enqueues neighbors in adjacency order is fully
//	reproducible. Vertices() returns IDs sorted lexicographically.
//
// Constraints
//
//   - No self-loops (ErrSelfLoop).
//   - No parallel edges between the same ordered pair (ErrParallelEdge).
//   - Non-zero weights require WithWeighted() at construction (ErrBadWeight).
//
// Concurrency
//
//	A Graph is owned by a single caller. There is no internal locking:
//	construction, mutation and queries are plain call/return. Wrap the
//	instance in external synchronization if you must share it.
//
// Complexity
//
//   - AddVertex, AddEdge, HasVertex: O(1) amortized (AddEdge pays O(deg)
//     for the parallel-edge check).
//   - NeighborIDs/Neighbors: O(deg) copy.
//   - Vertices: O(V log V) (sorted snapshot).
package core
