// SPDX-License-Identifier: MIT
// Package: spectra/builder
//
// impl_nsfnet.go — implementation of the NSFNET() constructor.
//
// Contract:
//   - 14 nodes ("1".."14"), 23 undirected links, published km distances.
//   - Nodes are added in ascending numeric order, links in the fixed
//     table order below; both orders are load-bearing for link indexing.
//
// Complexity: O(V + E) with V=14, E=23.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/spectra/core"
)

// nsfnetNodes is the node count of the NSFNET backbone.
const nsfnetNodes = 14

// nsfnetSpan is one undirected NSFNET fibre span.
type nsfnetSpan struct {
	a, b int // 1-based node numbers
	km   float64
}

// nsfnetSpans lists the 23 spans of the real NSFNET topology with their
// published lengths. The table order defines the ledger link order.
var nsfnetSpans = []nsfnetSpan{
	{1, 2, 2100},
	{1, 3, 3000},
	{1, 7, 4800},
	{2, 3, 1200},
	{2, 4, 1500},
	{3, 6, 3600},
	{4, 5, 1200},
	{4, 7, 3900},
	{5, 6, 2400},
	{5, 7, 1200},
	{6, 7, 2700},
	{6, 10, 2100},
	{6, 9, 3600},
	{7, 8, 1500},
	{8, 9, 1500},
	{8, 11, 1500},
	{9, 10, 1500},
	{9, 12, 600},
	{9, 13, 600},
	{9, 14, 600},
	{11, 12, 1200},
	{12, 13, 600},
	{13, 14, 300},
}

// NSFNET returns a Constructor that builds the 14-node, 23-link NSFNET
// reference backbone with realistic span lengths.
func NSFNET() Constructor {
	return func(g *core.Graph) error {
		// Nodes first, in ascending order, so node order is independent
		// of the span table.
		for i := 1; i <= nsfnetNodes; i++ {
			if err := g.AddNode(strconv.Itoa(i)); err != nil {
				return fmt.Errorf("NSFNET: AddNode(%d): %w", i, err)
			}
		}

		// Spans in fixed table order; edge index i names span i forever.
		for _, s := range nsfnetSpans {
			if _, err := g.AddEdge(strconv.Itoa(s.a), strconv.Itoa(s.b), s.km); err != nil {
				return fmt.Errorf("NSFNET: AddEdge(%d,%d): %w", s.a, s.b, err)
			}
		}

		return nil
	}
}
