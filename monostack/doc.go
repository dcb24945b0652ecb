// Package monostack implements a monotonic stack: a stack whose values,
// read bottom to top, always satisfy a configured ordering after every
// push.
//
// What
//
//   - Push(v): pops every top element that would break the ordering
//     relative to v, then appends v.
//   - Pop/Peek: standard stack access; ErrEmptyStack when empty.
//   - Values: bottom-to-top snapshot, useful for asserting the ordering
//     invariant.
//
// Policy
//
//	NonDecreasing keeps bottom ≤ … ≤ top (a push evicts strictly greater
//	tops). NonIncreasing keeps bottom ≥ … ≥ top (a push evicts strictly
//	smaller tops). Equal values are never evicted under either policy.
//
// Invariant
//
//	After any sequence of pushes (no pops), Values() is sorted according
//	to the configured direction.
//
// Complexity
//
//	Each element is pushed once and evicted at most once, so any sequence
//	of n pushes costs O(n) total; Pop, Peek, Len and Empty are O(1).
package monostack
