// Package algokit is an in-memory toolkit of classic graph, tree and
// range-query algorithms with small, explicit call contracts.
//
// 🚀 What is algokit?
//
//	A pure-Go collection of leaf-level algorithm packages:
//		• core      — deterministic adjacency-list graph (vertices, weighted edges)
//		• bfs       — breadth-first traversal with depth/parent bookkeeping
//		• bintree   — binary tree in/pre/post-order traversal (explicit stacks)
//		• segtree   — segment tree: O(log n) range max/sum, point update
//		• monostack — monotonic stack with configurable ordering policy
//		• dsu       — union-find with path compression and union by rank
//		• dijkstra  — single-source shortest paths on non-negative weights
//		• mergesort — stable divide-and-conquer sort
//		• kmp       — linear-time substring search (prefix function)
//
// ✨ Design principles
//
//   - Minimal API — each package exposes one structure or one entry point
//   - Deterministic — adjacency order is insertion order, ties break the same way every run
//   - Explicit errors — package sentinel errors, matched with errors.Is
//   - Pure Go — no cgo, no hidden deps
//
// Every structure is owned by a single caller: construction, mutation and
// queries are call/return, with no internal locking and no goroutines.
// Concurrent mutation of one instance requires external synchronization.
//
// See each package's doc.go for contracts, complexity and usage.
package algokit
