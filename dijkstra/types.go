// Package dijkstra sentinel errors, options, and the priority frontier.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices the source cannot
// reach. Distances are initialized to it and only ever decrease.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph was not constructed with
	// core.WithWeighted; Dijkstra is meaningless without weights.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrSourceNotFound indicates the source vertex does not exist.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates WithMaxDistance received a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Dijkstra run.
type Options struct {
	// MaxDistance caps exploration: vertices whose tentative distance
	// exceeds it are never finalized. Default math.MaxInt64 (no cap).
	MaxDistance int64

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// WithMaxDistance stops exploring vertices farther than max from the
// source. Negative caps surface as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance

			return
		}
		o.MaxDistance = max
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Lazy
// decrease-key: improved distances push new entries, stale ones are
// skipped on pop via the visited set.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
