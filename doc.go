// Package spectra is a spectrum-assignment engine for elastic optical
// networks — route a demand, pick its modulation, and reserve one
// contiguous slot window on every fibre span it crosses.
//
// 🚀 What is spectra?
//
//	A batch evaluator for RMLSA (Routing, Modulation, and Spectrum
//	Assignment) strategies over realistic backbone topologies:
//		• Spectrum ledger: per-link bitset occupancy, watermark, first-fit
//		  and best-fit window queries, atomic commit/release
//		• Allocators: SPFF baseline and a load-adaptive multipath
//		  heuristic that widens or narrows its search as the network fills
//		• Ranked routing: Dijkstra + Yen loop-free k-shortest paths
//		• Experiments: reproducible demand sweeps with head-to-head
//		  reports and Prometheus metrics
//
// ✨ Why choose spectra?
//
//   - Deterministic – fixed edge order, named RNG streams, stable sorts
//   - Exact ranking – lexicographic comparators, no weighted-score drift
//   - Fast – word-level bitset scans over the whole spectrum grid
//
// The module is organized into focused subpackages:
//
//	core/       — undirected weighted graph with stable edge indices
//	builder/    — NSFNET, ring and mesh topology constructors
//	paths/      — shortest path & k-shortest paths over km distances
//	modulation/ — reach/efficiency table and slot sizing
//	spectrum/   — the slot-occupancy Ledger
//	rmlsa/      — allocators and the demand scheduler
//	demand/     — reproducible uniform demand generation
//	experiment/ — load sweeps, aggregation, text reports
//	cmd/eonsim/ — the command-line sweep runner
package spectra
