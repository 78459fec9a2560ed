// File: yen.go
// Role: Loop-free k-shortest paths (Yen) built on the dijkstra runner.
//
// Determinism:
//   - Candidates are ordered by (distance, hop count, node sequence), so
//     equal-length alternatives always surface in the same order.

package paths

import (
	"container/heap"
	"strings"

	"github.com/katalvlaran/spectra/core"
)

// KShortest returns up to k loop-free paths from src to dst ordered by
// ascending total distance. Disconnected pairs yield an empty slice and
// no error, matching the path-source contract the allocators rely on.
//
// Validation: the endpoint checks of Shortest plus k ≥ 1 (ErrBadK).
//
// Complexity: O(k · V · (V + E) log V) worst case.
func KShortest(g *core.Graph, src, dst string, k int) ([]Path, error) {
	if err := validatePair(g, src, dst); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, ErrBadK
	}

	// 1) Seed with the plain shortest path; none means disconnected.
	first, ok := dijkstra(g, src, dst, nil, nil)
	if !ok {
		return []Path{}, nil
	}
	accepted := []Path{first}

	// candidates holds spur paths not yet promoted, deduplicated by node
	// sequence so the same detour found from two prefixes counts once.
	cands := &candidatePQ{}
	heap.Init(cands)
	seen := map[string]bool{pathKey(first): true}

	for len(accepted) < k {
		prevPath := accepted[len(accepted)-1]

		// 2) Branch at every node of the previously accepted path.
		for i := 0; i < len(prevPath.Nodes)-1; i++ {
			spurNode := prevPath.Nodes[i]
			rootNodes := prevPath.Nodes[:i+1]

			// 2a) Ban the next edge of every accepted path sharing this
			// root prefix, forcing the spur search onto a new detour.
			bannedEdges := map[int]bool{}
			for _, p := range accepted {
				if !hasPrefix(p.Nodes, rootNodes) || len(p.Nodes) <= i+1 {
					continue
				}
				if e, found := g.EdgeBetween(p.Nodes[i], p.Nodes[i+1]); found {
					bannedEdges[e.Index] = true
				}
			}

			// 2b) Ban the root's interior nodes to keep spur paths loop-free.
			bannedNodes := map[string]bool{}
			for _, n := range rootNodes[:len(rootNodes)-1] {
				bannedNodes[n] = true
			}

			spur, found := dijkstra(g, spurNode, dst, bannedNodes, bannedEdges)
			if !found {
				continue
			}

			// 2c) Stitch root + spur and re-price the whole path.
			nodes := make([]string, 0, len(rootNodes)-1+len(spur.Nodes))
			nodes = append(nodes, rootNodes[:len(rootNodes)-1]...)
			nodes = append(nodes, spur.Nodes...)

			total, derr := g.PathDistance(nodes)
			if derr != nil {
				continue
			}
			cand := Path{Nodes: nodes, DistanceKm: roundKm(total)}

			if key := pathKey(cand); !seen[key] {
				seen[key] = true
				heap.Push(cands, cand)
			}
		}

		// 3) Promote the cheapest remaining candidate, if any.
		if cands.Len() == 0 {
			break
		}
		accepted = append(accepted, heap.Pop(cands).(Path))
	}

	return accepted, nil
}

// hasPrefix reports whether nodes begins with prefix.
func hasPrefix(nodes, prefix []string) bool {
	if len(nodes) < len(prefix) {
		return false
	}
	for i := range prefix {
		if nodes[i] != prefix[i] {
			return false
		}
	}

	return true
}

// pathKey flattens a node sequence into a dedup key.
func pathKey(p Path) string { return strings.Join(p.Nodes, "\x00") }

// candidatePQ is a min-heap of Path ordered by (distance, hops, sequence).
type candidatePQ []Path

func (pq candidatePQ) Len() int { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].DistanceKm != pq[j].DistanceKm {
		return pq[i].DistanceKm < pq[j].DistanceKm
	}
	if len(pq[i].Nodes) != len(pq[j].Nodes) {
		return len(pq[i].Nodes) < len(pq[j].Nodes)
	}

	return pathKey(pq[i]) < pathKey(pq[j])
}
func (pq candidatePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(Path)) }
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
