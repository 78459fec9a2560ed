// Package rmlsa solves the combined Routing, Modulation, and Spectrum
// Assignment decision per demand, and batches demands through a
// scheduler.
//
// Two strategies share the spectrum.Ledger primitives:
//
//   - FirstFit ("SPFF") — the baseline: one least-distance path, one
//     first-fit window, no retry.
//   - Adaptive ("A-kSP") — a load-aware multipath heuristic that widens
//     or narrows its search as the network fills. It reads two live
//     signals before every demand, watermark/capacity ratio and cell
//     utilization, and picks a mode:
//
//     mode     trigger                       paths  offsets  objective
//     Extreme  ratio>0.92 or util>0.18       3      1        first feasible wins
//     High     ratio>0.70 or util>0.10       5      ≤3       short path & low offset first
//     Normal   otherwise                     k (3)  ≤10      minimal watermark impact
//
// Candidate ranking is an explicit lexicographic comparator over
// (watermark increase, resulting watermark, path length, offset),
// reordered in High mode so path length and offset dominate, rather
// than a weighted score, so the priority order is exact at any scale.
//
// The Scheduler applies a stable descending-bandwidth sort, dispatches
// each demand to one allocator, and reports successful/blocked counts,
// the final watermark, utilization, and blocking probability. Per-demand
// failures (no path, unknown link, no window, stale commit) are
// uniformly "blocked" and never abort the batch.
package rmlsa
