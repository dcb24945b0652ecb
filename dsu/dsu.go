// Package dsu disjoint-set forest with path halving and union by rank.
package dsu

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set construction and access.
var (
	// ErrBadUniverse indicates New was called with a non-positive size.
	ErrBadUniverse = errors.New("dsu: universe size must be positive")

	// ErrOutOfRange indicates an element ID outside [0, n).
	ErrOutOfRange = errors.New("dsu: element out of range")
)

// DSU is a disjoint-set forest over elements 0..n-1. The zero value is
// not usable; construct with New.
type DSU struct {
	parent []int
	rank   []int
	count  int // live set count; only ever decreases
}

// New creates a forest of n singleton sets.
// Returns ErrBadUniverse if n ≤ 0.
func New(n int) (*DSU, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadUniverse, n)
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Len returns the universe size n.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the number of distinct sets currently in the forest.
func (d *DSU) Count() int { return d.count }

// Find returns the representative of x's set, halving the walked path so
// later lookups on the same chain shortcut toward the root.
// Returns ErrOutOfRange if x leaves [0, n).
func (d *DSU) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, fmt.Errorf("%w: %d with n=%d", ErrOutOfRange, x, len(d.parent))
	}

	return d.find(x), nil
}

// find is the unchecked iterative walk with path halving.
func (d *DSU) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y. Already-joined elements are
// a no-op. Returns ErrOutOfRange if either element leaves [0, n).
func (d *DSU) Union(x, y int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d with n=%d", ErrOutOfRange, x, len(d.parent))
	}
	if y < 0 || y >= len(d.parent) {
		return fmt.Errorf("%w: %d with n=%d", ErrOutOfRange, y, len(d.parent))
	}

	rootX, rootY := d.find(x), d.find(y)
	if rootX == rootY {
		return nil
	}

	// Attach the lower-rank root under the higher-rank one; on equal
	// ranks the root of x wins and its rank grows.
	if d.rank[rootX] < d.rank[rootY] {
		d.parent[rootX] = rootY
	} else {
		d.parent[rootY] = rootX
		if d.rank[rootX] == d.rank[rootY] {
			d.rank[rootX]++
		}
	}
	d.count--

	return nil
}

// Connected reports whether x and y share a representative.
// Returns ErrOutOfRange if either element leaves [0, n).
func (d *DSU) Connected(x, y int) (bool, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rootX == rootY, nil
}
