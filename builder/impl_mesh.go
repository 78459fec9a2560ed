// SPDX-License-Identifier: MIT
// Package: spectra/builder
//
// impl_mesh.go — implementation of the Mesh(n, spanKm) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes), spanKm > 0 (else ErrBadSpan).
//   - Nodes "1".."n"; edges (i,j) for i<j in lexicographic (i,j) order.
//
// Complexity: O(n²).

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/spectra/core"
)

const minMeshNodes = 2

// Mesh returns a Constructor that builds an n-node complete graph with a
// uniform span length. Useful in tests that need every node pair to be
// one hop apart.
func Mesh(n int, spanKm float64) Constructor {
	return func(g *core.Graph) error {
		if n < minMeshNodes {
			return fmt.Errorf("Mesh: n=%d < min=%d: %w", n, minMeshNodes, ErrTooFewNodes)
		}
		if spanKm <= 0 {
			return fmt.Errorf("Mesh: span=%g: %w", spanKm, ErrBadSpan)
		}

		for i := 1; i <= n; i++ {
			if err := g.AddNode(strconv.Itoa(i)); err != nil {
				return fmt.Errorf("Mesh: AddNode(%d): %w", i, err)
			}
		}
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), spanKm); err != nil {
					return fmt.Errorf("Mesh: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
