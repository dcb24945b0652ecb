// Package kmp implements Knuth–Morris–Pratt substring search: a single
// left-to-right scan of the text that never re-examines matched bytes.
//
// What
//
//   - PrefixFunction(pattern): for every prefix length i+1, the length of
//     the longest proper prefix of the pattern that is also a suffix of
//     pattern[:i+1]. This is the failure table that lets the scan resume
//     mid-pattern after a mismatch.
//   - Search(text, pattern): every starting byte offset in text where the
//     full pattern occurs, ascending. Overlapping occurrences are all
//     reported.
//
// Semantics
//
//   - Matching is byte-wise; offsets are byte offsets.
//   - An empty pattern is rejected with ErrEmptyPattern.
//   - No match yields an empty, non-nil slice.
//
// Complexity
//
//   - PrefixFunction: O(m) time, O(m) space (m = pattern length).
//   - Search: O(n + m) time, O(m) space (n = text length).
package kmp
