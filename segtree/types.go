// Package segtree aggregate operators and sentinel errors.
package segtree

import (
	"errors"
	"math"
)

// Sentinel errors for segment tree construction and access.
var (
	// ErrEmptyValues indicates New was called with no values.
	ErrEmptyValues = errors.New("segtree: values must be non-empty")

	// ErrBadAggregate indicates an unknown aggregate operator.
	ErrBadAggregate = errors.New("segtree: unknown aggregate operator")

	// ErrIndexOutOfRange indicates a query range or update index
	// outside [0, n).
	ErrIndexOutOfRange = errors.New("segtree: index out of range")
)

// Aggregate selects the associative combining operator cached at every
// internal node.
type Aggregate int

const (
	// AggMax caches range maxima; the identity is math.MinInt64.
	AggMax Aggregate = iota

	// AggSum caches range sums; the identity is 0.
	AggSum
)

// String returns the operator name for diagnostics.
func (a Aggregate) String() string {
	switch a {
	case AggMax:
		return "max"
	case AggSum:
		return "sum"
	default:
		return "unknown"
	}
}

// identity returns the element that leaves the operator unchanged.
func (a Aggregate) identity() int64 {
	if a == AggMax {
		return math.MinInt64
	}

	return 0
}

// combine applies the operator to two already-aggregated halves.
func (a Aggregate) combine(x, y int64) int64 {
	if a == AggMax {
		if x > y {
			return x
		}

		return y
	}

	return x + y
}
