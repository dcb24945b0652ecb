// Package bintree provides binary tree nodes and the three canonical
// depth-first traversals: in-order, pre-order, and post-order.
//
// What
//
//   - Node[T]: a value with optional Left/Right children. Ownership is
//     exclusive: a node has at most one parent and no cycles, enforced by
//     construction.
//   - InOrder (left, self, right), PreOrder (self, left, right),
//     PostOrder (left, right, self): each materializes the full visit
//     sequence as a []T. A nil root yields an empty sequence, not an error.
//   - InsertBST: sorted insertion helper for ordered values, so an
//     in-order walk of the resulting tree is ascending.
//
// Implementation
//
//	All three traversals run on an explicit work-list of (node, phase)
//	frames instead of native recursion, so traversal depth is bounded by
//	heap memory and deep or degenerate (list-shaped) trees cannot
//	overflow the call stack.
//
// Complexity
//
//   - Each traversal: O(n) time, O(h) auxiliary space (h = tree height).
//   - InsertBST: O(h) per insertion.
package bintree
