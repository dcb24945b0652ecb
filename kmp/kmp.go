package kmp

import "errors"

// ErrEmptyPattern is returned by Search for an empty pattern: every
// offset would match, which answers no real query.
var ErrEmptyPattern = errors.New("kmp: pattern is empty")

// PrefixFunction computes the failure table of pattern: prefix[i] is the
// length of the longest proper prefix of pattern that is also a suffix
// of pattern[:i+1]. Returns an empty slice for an empty pattern.
func PrefixFunction(pattern string) []int {
	prefix := make([]int, len(pattern))
	j := 0
	for i := 1; i < len(pattern); i++ {
		// Fall back through shorter borders until one extends by pattern[i].
		for j > 0 && pattern[j] != pattern[i] {
			j = prefix[j-1]
		}
		if pattern[j] == pattern[i] {
			j++
		}
		prefix[i] = j
	}

	return prefix
}

// Search returns every byte offset in text where pattern occurs, in
// ascending order, overlapping matches included. Returns ErrEmptyPattern
// for an empty pattern; no matches yield an empty, non-nil slice.
func Search(text, pattern string) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	prefix := PrefixFunction(pattern)
	matches := []int{}
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && pattern[j] != text[i] {
			j = prefix[j-1]
		}
		if pattern[j] == text[i] {
			j++
		}
		if j == len(pattern) {
			matches = append(matches, i-len(pattern)+1)
			// Resume at the longest border so overlaps are found too.
			j = prefix[j-1]
		}
	}

	return matches, nil
}
