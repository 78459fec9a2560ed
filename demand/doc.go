// Package demand generates reproducible synthetic traffic for the
// allocators: uniform random node pairs with uniform bandwidths, driven
// by named rngstream streams.
//
// Each Generate call owns one stream, so independent trials draw from
// statistically independent substreams while a fixed stream-creation
// order reproduces the exact same demand sequences run after run.
//
// Errors (sentinel):
//
//	ErrNilGraph, ErrTooFewNodes, ErrBadCount, ErrEmptyStream on
//	contract violations; Generate never fails per-demand.
package demand
