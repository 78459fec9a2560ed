// SPDX-License-Identifier: MIT
// Package: spectra/builder
//
// impl_ring.go — implementation of the Ring(n, spanKm) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes), spanKm > 0 (else ErrBadSpan).
//   - Nodes "1".."n" in ascending order; edges i→(i mod n)+1 in
//     ascending i, closing the ring last.
//
// Complexity: O(n).

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/spectra/core"
)

const minRingNodes = 3

// Ring returns a Constructor that builds an n-node cycle with a uniform
// span length, the smallest topology on which multipath routing has two
// genuinely disjoint choices.
func Ring(n int, spanKm float64) Constructor {
	return func(g *core.Graph) error {
		if n < minRingNodes {
			return fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingNodes, ErrTooFewNodes)
		}
		if spanKm <= 0 {
			return fmt.Errorf("Ring: span=%g: %w", spanKm, ErrBadSpan)
		}

		for i := 1; i <= n; i++ {
			if err := g.AddNode(strconv.Itoa(i)); err != nil {
				return fmt.Errorf("Ring: AddNode(%d): %w", i, err)
			}
		}
		for i := 1; i <= n; i++ {
			next := i%n + 1
			if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(next), spanKm); err != nil {
				return fmt.Errorf("Ring: AddEdge(%d,%d): %w", i, next, err)
			}
		}

		return nil
	}
}
