package mergesort

import "cmp"

// Sort returns a new slice with the elements of in sorted ascending.
// The input slice is left untouched.
func Sort[T cmp.Ordered](in []T) []T {
	return SortFunc(in, func(a, b T) bool { return a < b })
}

// SortFunc returns a new slice sorted by less (a strict ordering:
// less(a, b) reports whether a sorts before b). Equal elements keep
// their relative input order.
func SortFunc[T any](in []T, less func(a, b T) bool) []T {
	out := make([]T, len(in))
	copy(out, in)
	if len(out) <= 1 {
		return out
	}

	mid := len(out) / 2
	left := SortFunc(out[:mid], less)
	right := SortFunc(out[mid:], less)

	return merge(left, right, less)
}

// merge combines two sorted halves by repeated min-comparison. Ties take
// from the left half, which is what makes the sort stable.
func merge[T any](left, right []T, less func(a, b T) bool) []T {
	merged := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			merged = append(merged, right[j])
			j++
		} else {
			merged = append(merged, left[i])
			i++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)

	return merged
}
