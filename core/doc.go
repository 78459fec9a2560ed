// Package core defines the central Graph and Edge types used by every
// other package in spectra.
//
// A Graph is an undirected, distance-weighted network: nodes are string
// identifiers, edges carry a physical length in kilometres. The edge
// insertion order is stable and observable through Edges(); the spectrum
// ledger derives its link indexing from exactly that order, so two
// components constructed from the same Graph always agree on which
// integer names which fibre.
//
// Graphs follow a construct-then-read lifecycle: build the topology once
// (AddNode/AddEdge), then share it freely across allocators and parallel
// trials as a read-only structure. Mutation is not synchronized.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrNodeNotFound     - requested node does not exist.
//	ErrEdgeNotFound     - no edge joins two consecutive path nodes.
//	ErrSelfLoop         - edge endpoints are identical.
//	ErrDuplicateEdge    - an edge between the pair already exists.
//	ErrNegativeDistance - edge distance is negative.
package core
