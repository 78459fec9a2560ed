// File: types.go
// Role: Graph/Edge declarations, sentinel errors, NewGraph constructor.
// Determinism:
//   - Nodes() returns IDs in insertion order.
//   - Edges() returns edges in insertion order; Edge.Index is that position.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates a node identifier was the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates two consecutive path nodes share no edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrDuplicateEdge indicates a second edge between an existing pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge between node pair")

	// ErrNegativeDistance indicates an edge with a negative length.
	ErrNegativeDistance = errors.New("core: edge distance must be non-negative")
)

// Edge is one undirected fibre span between two nodes.
//
// Index is the edge's position in the graph's stable edge order; the
// spectrum ledger uses it directly as the link index.
type Edge struct {
	// From and To are the endpoint node IDs in insertion orientation.
	// The edge itself is undirected; traversal in either direction is valid.
	From, To string

	// DistanceKm is the physical span length in kilometres.
	DistanceKm float64

	// Index is the stable position of this edge in Graph.Edges().
	Index int
}

// Graph is an undirected, distance-weighted network.
//
// Zero value is not usable; construct with NewGraph.
type Graph struct {
	nodeSet   map[string]struct{}
	nodeOrder []string

	edges []Edge
	// adj maps a node ID to the indices (into edges) of its incident edges.
	adj map[string][]int
}

// NewGraph returns an empty Graph ready for AddNode/AddEdge calls.
func NewGraph() *Graph {
	return &Graph{
		nodeSet: make(map[string]struct{}),
		adj:     make(map[string][]int),
	}
}
