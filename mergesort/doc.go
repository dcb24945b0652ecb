// Package mergesort implements stable merge sort producing a new sorted
// slice.
//
// What
//
//   - Sort: sorts any ordered element type ascending.
//   - SortFunc: sorts by a caller-supplied strict less function.
//
// Semantics
//
//   - The input is never mutated; the result is a fresh slice (empty,
//     non-nil for empty or nil input).
//   - Stable: when elements compare equal, the merge takes from the left
//     half first, so equal elements keep their input order.
//   - Idempotent: sorting an already-sorted sequence returns the same
//     sequence.
//
// Complexity
//
//   - Time:  O(n log n) — halve until length ≤ 1, merge sorted halves by
//     repeated min-comparison.
//   - Space: O(n) auxiliary, O(log n) recursion depth.
package mergesort
