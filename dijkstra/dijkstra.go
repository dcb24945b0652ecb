package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// Dijkstra computes shortest distances from source to every vertex of the
// weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Unreachable if the
//     source cannot reach it).
//   - prev: map from vertex ID to its predecessor on a shortest path
//     ("" for the source and for unreachable vertices). Walking prev
//     from any reachable vertex back to source reconstructs a shortest
//     path; see PathTo.
//   - err: validation failure (see package doc), otherwise nil.
//
// Preconditions validated in order: g non-nil, g weighted, source
// present, no negative edge weights (upfront O(E) scan, fail fast).
func Dijkstra(g *core.Graph, source string, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo walks prev from dest back to the source and returns the
// shortest path source→…→dest. Returns an error if dest was unreachable
// (no predecessor chain terminates at a ""-parent source).
func PathTo(dist map[string]int64, prev map[string]string, dest string) ([]string, error) {
	d, ok := dist[dest]
	if !ok || d == Unreachable {
		return nil, fmt.Errorf("dijkstra: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; cur != ""; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64  // vertex ID → current best distance
	prev    map[string]string // vertex ID → predecessor on the best path
	visited map[string]bool   // finalized vertices
	pq      nodePQ
}

// init seeds distances at Unreachable, the source at 0, and pushes the
// source onto the frontier.
func (r *runner) init(source string) {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Unreachable
		r.prev[v] = ""
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the minimum-distance vertex and relaxes its
// outgoing edges. Terminates when the frontier is empty or the minimum
// tentative distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)

		// Stale lazy-decrease-key entry: the vertex was finalized with a
		// smaller distance earlier.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the tentative distance of every neighbor of u.
// Assumes dist[u] is finalized.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only, so equal-distance duplicates are never pushed.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, nodeItem{id: e.To, dist: newDist})
	}

	return nil
}
