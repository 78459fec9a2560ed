// File: graph.go
// Role: Graph mutation and query methods: AddNode/AddEdge, node and edge
//       accessors, neighbor queries, path distance.
// Determinism:
//   - All slice-returning accessors preserve insertion order.
// Concurrency:
//   - No internal locking; build the graph fully before sharing it.

package core

import "fmt"

// AddNode inserts a node. Adding an existing node is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.nodeSet[id]; ok {
		return nil
	}
	g.nodeSet[id] = struct{}{}
	g.nodeOrder = append(g.nodeOrder, id)

	return nil
}

// AddEdge inserts an undirected edge of the given length, creating
// missing endpoint nodes. It returns the new edge's stable index.
//
// Constraints: from != to (ErrSelfLoop), distanceKm >= 0
// (ErrNegativeDistance), at most one edge per node pair
// (ErrDuplicateEdge).
//
// Complexity: O(deg) for the duplicate check.
func (g *Graph) AddEdge(from, to string, distanceKm float64) (int, error) {
	// 1) Validate endpoints and distance before any mutation.
	if from == "" || to == "" {
		return -1, ErrEmptyNodeID
	}
	if from == to {
		return -1, fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if distanceKm < 0 {
		return -1, fmt.Errorf("%w: %s-%s distance=%g", ErrNegativeDistance, from, to, distanceKm)
	}

	// 2) Reject a second edge between the same unordered pair.
	if _, ok := g.EdgeBetween(from, to); ok {
		return -1, fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, from, to)
	}

	// 3) Ensure both endpoints exist.
	if err := g.AddNode(from); err != nil {
		return -1, err
	}
	if err := g.AddNode(to); err != nil {
		return -1, err
	}

	// 4) Append the edge; its index is its position in the edge list.
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, DistanceKm: distanceKm, Index: idx})
	g.adj[from] = append(g.adj[from], idx)
	g.adj[to] = append(g.adj[to], idx)

	return idx, nil
}

// HasNode reports whether id is present in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeSet[id]

	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all node IDs in insertion order. The slice is a copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// Edges returns all edges in their stable insertion order. The slice is
// a copy; Edge values are plain data.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the edges incident to id, in edge insertion order.
// Each returned Edge keeps its original From/To orientation; callers
// traversing from id must treat the edge as undirected.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	idxs := g.adj[id]
	out := make([]Edge, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.edges[i])
	}

	return out, nil
}

// EdgeBetween returns the edge joining u and v in either orientation.
func (g *Graph) EdgeBetween(u, v string) (Edge, bool) {
	for _, i := range g.adj[u] {
		e := g.edges[i]
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return e, true
		}
	}

	return Edge{}, false
}

// PathDistance sums the lengths of the edges joining consecutive nodes
// of path. A path shorter than two nodes has distance 0. A missing edge
// between consecutive nodes yields ErrEdgeNotFound.
//
// Complexity: O(len(path) · maxDeg).
func (g *Graph) PathDistance(path []string) (float64, error) {
	if len(path) < 2 {
		return 0, nil
	}
	var total float64
	for i := 0; i < len(path)-1; i++ {
		e, ok := g.EdgeBetween(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, path[i], path[i+1])
		}
		total += e.DistanceKm
	}

	return total, nil
}
