// SPDX-License-Identifier: MIT
// Package: spectra/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via %w wrapping, never by mutating
//     the sentinel text.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's
// minimum (Ring needs n ≥ 3, Mesh needs n ≥ 2).
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrBadSpan indicates a non-positive span length in kilometres.
var ErrBadSpan = errors.New("builder: span length must be positive")

// ErrConstructFailed indicates a nil or failing constructor passed to
// BuildGraph.
var ErrConstructFailed = errors.New("builder: graph construction failed")
