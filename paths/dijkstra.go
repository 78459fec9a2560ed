// File: dijkstra.go
// Role: Single-pair shortest path over km distances.
//
// Notes on implementation choices:
//   - “Lazy” decrease-key: relaxation pushes duplicates into the heap and
//     stale entries are skipped when popped (visited check).
//   - The internal search accepts banned nodes and banned edge indices so
//     Yen's algorithm can reuse it unchanged for spur computations.

package paths

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/spectra/core"
)

// Shortest computes the least-distance path from src to dst.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. src and dst must be non-empty (ErrEmptyEndpoint).
//  3. Both endpoints must exist in g (ErrNodeNotFound).
//
// A disconnected pair yields ErrNoPath.
//
// Complexity: O((V + E) log V).
func Shortest(g *core.Graph, src, dst string) (Path, error) {
	if err := validatePair(g, src, dst); err != nil {
		return Path{}, err
	}

	p, ok := dijkstra(g, src, dst, nil, nil)
	if !ok {
		return Path{}, fmt.Errorf("%w: %s-%s", ErrNoPath, src, dst)
	}

	return p, nil
}

// validatePair runs the shared endpoint checks for Shortest and KShortest.
func validatePair(g *core.Graph, src, dst string) error {
	if g == nil {
		return ErrNilGraph
	}
	if src == "" || dst == "" {
		return ErrEmptyEndpoint
	}
	if !g.HasNode(src) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, src)
	}
	if !g.HasNode(dst) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, dst)
	}

	return nil
}

// dijkstra runs a single-pair search. Nodes present in bannedNodes and
// edges whose stable index is present in bannedEdges are skipped; both
// maps may be nil. Returns ok=false when dst is unreachable.
//
// Endpoints are assumed validated by the caller.
func dijkstra(g *core.Graph, src, dst string, bannedNodes map[string]bool, bannedEdges map[int]bool) (Path, bool) {
	// 1) Initialize dist[v]=+Inf, prev empty, and seed the heap with src.
	dist := map[string]float64{src: 0}
	prev := map[string]string{}
	visited := map[string]bool{}

	pq := make(nodePQ, 0, g.NodeCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id

		// 2) Skip stale heap entries (lazy decrease-key).
		if visited[u] {
			continue
		}
		visited[u] = true

		// 3) Early exit once the destination is finalized.
		if u == dst {
			break
		}

		// 4) Relax incident edges, honoring ban sets.
		nbrs, err := g.Neighbors(u)
		if err != nil {
			// Unreachable for validated inputs; treat as no further edges.
			continue
		}
		for _, e := range nbrs {
			if bannedEdges[e.Index] {
				continue
			}
			// Edges are undirected; pick the endpoint that is not u.
			v := e.To
			if v == u {
				v = e.From
			}
			if bannedNodes[v] || visited[v] {
				continue
			}

			nd := dist[u] + e.DistanceKm
			if cur, seen := dist[v]; seen && nd >= cur {
				continue
			}
			dist[v] = nd
			prev[v] = u
			heap.Push(&pq, &nodeItem{id: v, dist: nd})
		}
	}

	total, reached := dist[dst]
	if !reached || !visited[dst] {
		// src == dst is the one case finalized with no prev chain.
		if src != dst {
			return Path{}, false
		}
		total = 0
	}

	// 5) Reconstruct the node sequence dst → src, then reverse.
	nodes := []string{dst}
	for at := dst; at != src; {
		p, ok := prev[at]
		if !ok {
			return Path{}, false
		}
		nodes = append(nodes, p)
		at = p
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{Nodes: nodes, DistanceKm: roundKm(total)}, true
}

// roundKm quantizes a distance to 1e-9 km to keep accumulated sums
// stable across evaluation orders.
func roundKm(d float64) float64 {
	return math.Round(d*1e9) / 1e9
}

// nodeItem is one (node, tentative distance) heap entry.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
