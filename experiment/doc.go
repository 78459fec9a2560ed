// Package experiment drives head-to-head sweeps of the two allocators
// over a range of offered loads.
//
// A sweep runs runs-per-load independent trials at every load level.
// Each trial owns its state end to end: one demand sequence, two fresh
// ledgers, one SPFF and one adaptive scheduler consuming the identical
// sequence. Nothing is shared across trials, so they fan out on an
// errgroup bounded by the configured parallelism.
//
// Demand sequences are generated serially before the fan-out: rngstream
// substreams are handed out in creation order, so a fixed config
// reproduces the exact same traffic no matter how trials interleave.
//
// Aggregation reduces trials to per-load means of watermark, blocking
// probability, and utilization per algorithm, plus the relative
// watermark improvement of the adaptive allocator over the baseline.
package experiment
