// Package dsu implements a disjoint-set union (union-find) over a fixed
// universe of integer elements [0, n).
//
// What
//
//   - New(n): n singleton sets, element i its own representative.
//   - Find(x): the representative (root) of x's set, compressing the
//     walked chain with path halving so repeat lookups are near-O(1).
//   - Union(x, y): merge the two sets by rank; a no-op when already
//     joined.
//   - Connected(x, y), Count(): membership check and live set count.
//
// Determinism
//
//	Union attaches the lower-rank root under the higher-rank one; on
//	equal ranks the root of x wins and its rank increments. The resulting
//	forest is identical across runs for a given call sequence.
//
// Invariants
//
//   - The parent forest is acyclic, so Find always terminates.
//   - Count() only decreases (by exactly one per effective Union) or
//     stays constant; it never increases.
//
// Complexity
//
//	Any sequence of m Find/Union operations over n elements costs
//	O(m·α(n)) amortized, α being the inverse Ackermann function.
//
// Errors
//
//   - ErrBadUniverse   if New is given n ≤ 0.
//   - ErrOutOfRange    if an element ID leaves [0, n).
package dsu
