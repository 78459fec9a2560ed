// Package spectrum implements the per-link slot-occupancy ledger at the
// heart of the assignment engine.
//
// A Ledger tracks an L×S boolean occupancy grid — L links taken from a
// core.Graph's stable edge order, S frequency slots per link — plus a
// single global watermark: 1 + the highest slot index occupied on any
// link, or 0 while the grid is empty. Rows are stored as fixed-size
// bitsets so window checks cost O(words), not O(cells).
//
// Placement queries enforce spectrum continuity: a window is feasible
// only when the identical slot range is free on every link of the set
// simultaneously. Commit re-validates every targeted cell before
// mutating, so acting on a stale query result fails cleanly instead of
// corrupting the grid. Release clears cells and recomputes the
// watermark by full rescan — a release can only lower or preserve it,
// and that cannot be inferred incrementally.
//
// The watermark is monotonically non-decreasing across any sequence of
// commits with no interleaved release.
//
// A Ledger is exclusively owned by one scheduler run; it performs no
// internal locking. Comparing two algorithms on the same demand
// sequence requires two independent Ledgers.
package spectrum
