// Package segtree implements a segment tree over a fixed-size int64
// array, answering range max or range sum queries in O(log n) with
// point updates.
//
// What
//
//   - New(values, agg): build the tree in O(n); the aggregate operator
//     (AggMax or AggSum) is fixed at construction.
//   - Query(lo, hi): aggregate over the inclusive range [lo, hi].
//   - Update(index, value): rewrite one leaf and recompute its ancestors.
//
// Invariant
//
//	Every internal node caches the aggregate of its children's ranges;
//	the invariant holds at all times outside an in-progress Update.
//	Subranges with zero overlap against a query contribute the operator's
//	identity element (math.MinInt64 for max, 0 for sum) so they never
//	distort the combine.
//
// Range convention
//
//	Both Query bounds are inclusive and must satisfy 0 ≤ lo ≤ hi < n;
//	anything else is ErrIndexOutOfRange. Query(i, i) returns the value
//	last written at index i.
//
// Complexity
//
//   - Build:  O(n) time, 4n backing array.
//   - Query:  O(log n).
//   - Update: O(log n).
//
// Errors
//
//   - ErrEmptyValues     if New is given an empty input.
//   - ErrBadAggregate    if New is given an unknown operator.
//   - ErrIndexOutOfRange if a query range or update index leaves [0, n).
package segtree
