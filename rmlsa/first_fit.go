// File: first_fit.go
// Role: The SPFF baseline — shortest path, first-fit window, no retry.

package rmlsa

import (
	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/modulation"
	"github.com/katalvlaran/spectra/paths"
	"github.com/katalvlaran/spectra/spectrum"
)

// FirstFit is the shortest-path first-fit baseline allocator.
type FirstFit struct {
	g      *core.Graph
	ledger *spectrum.Ledger
}

// NewFirstFit builds the SPFF allocator over a graph and the ledger it
// will consume capacity from.
func NewFirstFit(g *core.Graph, ledger *spectrum.Ledger) (*FirstFit, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ledger == nil {
		return nil, ErrNilLedger
	}

	return &FirstFit{g: g, ledger: ledger}, nil
}

// Name returns the algorithm identifier.
func (a *FirstFit) Name() string { return "SPFF" }

// Place routes d over the single least-distance path and reserves the
// lowest feasible window. Every failure condition (no path, unknown
// link, no window, stale commit) blocks the demand; there is no
// alternate-path retry.
//
// Complexity: one Dijkstra + one first-fit scan + one commit.
func (a *FirstFit) Place(d Demand) (Circuit, bool) {
	// 1) Route: the one shortest path, or block.
	p, err := paths.Shortest(a.g, d.Origin, d.Destination)
	if err != nil {
		return Circuit{}, false
	}

	// 2) Size: modulation by distance, slots by bandwidth.
	format := modulation.Select(p.DistanceKm)
	slots, err := modulation.RequiredSlots(d.BandwidthGbps, format.Name)
	if err != nil {
		return Circuit{}, false
	}

	// 3) Resolve links; an unmapped edge blocks.
	links, err := a.ledger.LinkIndices(p.Nodes)
	if err != nil {
		return Circuit{}, false
	}

	// 4) Query and commit.
	start, ok := a.ledger.FindFirstFit(links, slots)
	if !ok {
		return Circuit{}, false
	}
	if err := a.ledger.Commit(links, start, slots); err != nil {
		return Circuit{}, false
	}

	return Circuit{
		Path:      p,
		Links:     links,
		StartSlot: start,
		SlotCount: slots,
		Format:    format.Name,
	}, true
}
