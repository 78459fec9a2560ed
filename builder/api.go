// SPDX-License-Identifier: MIT
// Package: spectra/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(cons...). Creates g, runs cons in order.
//   - Constructors validate early and return sentinel errors; no panics.
//   - Determinism: same constructor order ⇒ identical node and edge order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spectra/core"
)

// Constructor applies a deterministic graph mutation. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit nodes and edges in a stable, documented order.
type Constructor func(g *core.Graph) error

// BuildGraph creates a new core.Graph and applies all constructors in
// order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()

	for i, fn := range cons {
		// Reject a nil constructor up front to avoid a panic later.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
