package segtree

import "fmt"

// Tree is a segment tree over a fixed range [0, n). The backing array is
// the usual 4n heap layout: node i has children 2i+1 and 2i+2.
type Tree struct {
	nodes []int64
	n     int
	agg   Aggregate
}

// New builds a segment tree over values with the given aggregate
// operator. The input slice is not retained.
//
// Errors: ErrEmptyValues for empty input, ErrBadAggregate for an unknown
// operator.
func New(values []int64, agg Aggregate) (*Tree, error) {
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}
	if agg != AggMax && agg != AggSum {
		return nil, fmt.Errorf("%w: %d", ErrBadAggregate, agg)
	}

	t := &Tree{
		nodes: make([]int64, 4*len(values)),
		n:     len(values),
		agg:   agg,
	}
	t.build(values, 0, 0, t.n-1)

	return t, nil
}

// Len returns the number of leaves (the backing range size).
func (t *Tree) Len() int { return t.n }

// Agg returns the aggregate operator fixed at construction.
func (t *Tree) Agg() Aggregate { return t.agg }

// Query returns the aggregate over the inclusive range [lo, hi].
// Returns ErrIndexOutOfRange unless 0 ≤ lo ≤ hi < Len().
func (t *Tree) Query(lo, hi int) (int64, error) {
	if lo < 0 || hi >= t.n || lo > hi {
		return 0, fmt.Errorf("%w: query [%d,%d] with n=%d", ErrIndexOutOfRange, lo, hi, t.n)
	}

	return t.query(0, 0, t.n-1, lo, hi), nil
}

// Update rewrites the leaf at index and recomputes every ancestor
// aggregate up to the root. Returns ErrIndexOutOfRange outside [0, n).
func (t *Tree) Update(index int, value int64) error {
	if index < 0 || index >= t.n {
		return fmt.Errorf("%w: update index %d with n=%d", ErrIndexOutOfRange, index, t.n)
	}
	t.update(0, 0, t.n-1, index, value)

	return nil
}

// build fills node over the segment [start, end]. Recursion depth is
// O(log n).
func (t *Tree) build(values []int64, node, start, end int) {
	if start == end {
		t.nodes[node] = values[start]

		return
	}
	mid := (start + end) / 2
	t.build(values, 2*node+1, start, mid)
	t.build(values, 2*node+2, mid+1, end)
	t.nodes[node] = t.agg.combine(t.nodes[2*node+1], t.nodes[2*node+2])
}

// query resolves [lo, hi] against the segment [start, end] owned by node:
// zero overlap contributes the identity, full cover returns the cached
// aggregate, partial overlap recurses into both children.
func (t *Tree) query(node, start, end, lo, hi int) int64 {
	if hi < start || end < lo {
		return t.agg.identity()
	}
	if lo <= start && end <= hi {
		return t.nodes[node]
	}
	mid := (start + end) / 2
	left := t.query(2*node+1, start, mid, lo, hi)
	right := t.query(2*node+2, mid+1, end, lo, hi)

	return t.agg.combine(left, right)
}

// update descends to the leaf at index, rewrites it, and recomputes each
// ancestor on the way back out.
func (t *Tree) update(node, start, end, index int, value int64) {
	if start == end {
		t.nodes[node] = value

		return
	}
	mid := (start + end) / 2
	if index <= mid {
		t.update(2*node+1, start, mid, index, value)
	} else {
		t.update(2*node+2, mid+1, end, index, value)
	}
	t.nodes[node] = t.agg.combine(t.nodes[2*node+1], t.nodes[2*node+2])
}
