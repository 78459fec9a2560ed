// Package paths supplies ranked candidate paths for node pairs: a
// single shortest path (Dijkstra) and loop-free k-shortest paths
// (Yen's algorithm), both ordered by ascending total distance in
// kilometres.
//
// The spectrum-assignment engine consumes only the ordered path list;
// it never inspects routing internals. Disconnected pairs yield an
// empty list from KShortest and ErrNoPath from Shortest.
//
// Complexity:
//
//   - Shortest:  O((V + E) log V) — binary heap with lazy decrease-key;
//     duplicates are pushed on relaxation and stale entries skipped on pop.
//   - KShortest: O(k · V · (V + E) log V) worst case — one spur-node
//     Dijkstra per prefix per produced path.
//
// Errors (sentinel):
//
//	ErrNilGraph      if the provided graph pointer is nil.
//	ErrEmptyEndpoint if an endpoint ID is empty.
//	ErrNodeNotFound  if an endpoint does not exist in the graph.
//	ErrNoPath        if the pair is disconnected (Shortest only).
//	ErrBadK          if k < 1.
package paths
