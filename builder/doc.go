// SPDX-License-Identifier: MIT
// Package: spectra/builder
//
// Package builder provides deterministic constructors for the reference
// topologies used by experiments and tests.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(cons...) creates a core.Graph and runs
//     constructors in order.
//   - All public factories are declared in api.go, implemented in
//     impl_*.go files (single place to read docs).
//   - Determinism: the same constructor sequence always yields an
//     identical graph, node order, and edge order — the spectrum ledger
//     depends on that edge order for link indexing.
//   - Safety: constructors never panic; they return sentinel errors.
//
// Topologies:
//   - NSFNET()      — the 14-node / 23-link US research backbone with its
//     published span lengths in kilometres.
//   - Ring(n, km)   — n-node cycle with uniform span length.
//   - Mesh(n, km)   — n-node complete graph with uniform span length.
package builder
