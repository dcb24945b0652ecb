// Package core declares Graph, Edge, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrSelfLoop indicates an edge with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrParallelEdge indicates a duplicate edge between the same ordered pair.
	ErrParallelEdge = errors.New("core: parallel edges not allowed")
)

// Edge represents a connection between two vertices.
//
// From and To are vertex IDs. Weight is the cost of traversing the edge;
// it is always 0 on unweighted graphs.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (From→To only).
// The default is undirected: AddEdge records both directions.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an adjacency-list container over string vertex IDs.
//
// Zero value is not usable; construct with NewGraph.
type Graph struct {
	directed bool
	weighted bool

	// adjacency maps vertex ID → outgoing edges in insertion order.
	adjacency map[string][]Edge

	// edgeCount counts logical edges (an undirected edge counts once).
	edgeCount int
}

// NewGraph creates an empty Graph, applying options left to right.
// Default: undirected, unweighted.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[string][]Edge)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way by construction.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }
