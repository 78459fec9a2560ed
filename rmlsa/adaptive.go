// File: adaptive.go
// Role: The load-adaptive multipath allocator ("A-kSP"): mode detection,
//       candidate enumeration over k shortest paths, lexicographic ranking.

package rmlsa

import (
	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/modulation"
	"github.com/katalvlaran/spectra/paths"
	"github.com/katalvlaran/spectra/spectrum"
)

// mode is the load regime the allocator detects before each demand.
type mode int

const (
	modeNormal mode = iota
	modeHigh
	modeExtreme
)

// Adaptive is the load-aware multipath allocator. It reads the ledger's
// watermark ratio and utilization before every demand and adjusts how
// many paths and offsets it examines, and what "best" means.
type Adaptive struct {
	g      *core.Graph
	ledger *spectrum.Ledger
	fanOut int
}

// candidate is one (path, offset) placement under evaluation.
type candidate struct {
	path   paths.Path
	links  []int
	format string
	slots  int
	start  int

	// Ranking signals from a read-only placement simulation.
	wmIncrease  int
	resultingWM int
	meanWM      float64
}

// NewAdaptive builds the adaptive allocator. Options tune the
// Normal-mode fan-out; High and Extreme override it per the mode table.
func NewAdaptive(g *core.Graph, ledger *spectrum.Ledger, opts ...Option) (*Adaptive, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ledger == nil {
		return nil, ErrNilLedger
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Adaptive{g: g, ledger: ledger, fanOut: o.FanOut}, nil
}

// Name returns the algorithm identifier.
func (a *Adaptive) Name() string { return "A-kSP" }

// Place routes d over up to k shortest paths, ranks feasible placements
// per the current load mode, and commits exactly one winner. A commit
// that fails blocks the demand outright; no second-best is retried.
func (a *Adaptive) Place(d Demand) (Circuit, bool) {
	m := a.detectMode()
	fanOut, offsetCap := a.searchBudget(m)

	routes, err := paths.KShortest(a.g, d.Origin, d.Destination, fanOut)
	if err != nil || len(routes) == 0 {
		return Circuit{}, false
	}

	// Extreme mode: scan paths in shortest-first order and grab the very
	// first feasible first-fit window. No ranking, no simulation.
	if m == modeExtreme {
		return a.placeFirstFeasible(d, routes)
	}

	best, found := a.bestCandidate(d, routes, offsetCap, m)
	if !found {
		return Circuit{}, false
	}
	if err := a.ledger.Commit(best.links, best.start, best.slots); err != nil {
		return Circuit{}, false
	}

	return Circuit{
		Path:      best.path,
		Links:     best.links,
		StartSlot: best.start,
		SlotCount: best.slots,
		Format:    best.format,
	}, true
}

// detectMode classifies the current load, checking Extreme before High.
func (a *Adaptive) detectMode() mode {
	ratio := float64(a.ledger.Watermark()) / float64(a.ledger.Capacity())
	util := a.ledger.Utilization()

	switch {
	case ratio > extremeWatermarkRatio || util > extremeUtilization:
		return modeExtreme
	case ratio > highWatermarkRatio || util > highUtilization:
		return modeHigh
	default:
		return modeNormal
	}
}

// searchBudget maps a mode to its (paths, offsets-per-path) caps.
func (a *Adaptive) searchBudget(m mode) (fanOut, offsetCap int) {
	switch m {
	case modeExtreme:
		return extremeFanOut, 1
	case modeHigh:
		return highFanOut, highOffsetCap
	default:
		return a.fanOut, normalOffsetCap
	}
}

// placeFirstFeasible implements the Extreme policy: first path with any
// first-fit window wins, committed immediately.
func (a *Adaptive) placeFirstFeasible(d Demand, routes []paths.Path) (Circuit, bool) {
	for _, p := range routes {
		c, ok := a.sizeCandidate(d, p)
		if !ok {
			continue
		}
		start, ok := a.ledger.FindFirstFit(c.links, c.slots)
		if !ok {
			continue
		}
		if err := a.ledger.Commit(c.links, start, c.slots); err != nil {
			return Circuit{}, false
		}

		return Circuit{
			Path:      c.path,
			Links:     c.links,
			StartSlot: start,
			SlotCount: c.slots,
			Format:    c.format,
		}, true
	}

	return Circuit{}, false
}

// bestCandidate enumerates up to offsetCap placements per path,
// simulates each, and keeps the lexicographic minimum for the mode.
func (a *Adaptive) bestCandidate(d Demand, routes []paths.Path, offsetCap int, m mode) (candidate, bool) {
	var best candidate
	found := false

	wm := a.ledger.Watermark()
	for _, p := range routes {
		c, ok := a.sizeCandidate(d, p)
		if !ok {
			continue
		}
		for _, start := range a.ledger.BestFitPositions(c.links, c.slots, offsetCap) {
			cand := c
			cand.start = start
			maxWM, meanWM := a.ledger.PlacementImpact(cand.links, start, cand.slots)
			cand.resultingWM = maxWM
			if maxWM > wm {
				cand.wmIncrease = maxWM - wm
			}
			cand.meanWM = meanWM

			if !found || less(cand, best, m) {
				best = cand
				found = true
			}
		}
	}

	return best, found
}

// sizeCandidate resolves the modulation, slot count, and link indices
// for one path. Any failure disqualifies the path, not the demand.
func (a *Adaptive) sizeCandidate(d Demand, p paths.Path) (candidate, bool) {
	format := modulation.Select(p.DistanceKm)
	slots, err := modulation.RequiredSlots(d.BandwidthGbps, format.Name)
	if err != nil {
		return candidate{}, false
	}
	links, err := a.ledger.LinkIndices(p.Nodes)
	if err != nil {
		return candidate{}, false
	}

	return candidate{path: p, links: links, format: format.Name, slots: slots}, true
}

// less is the per-mode lexicographic comparator. Normal minimizes
// watermark damage first; High prefers short paths and low offsets
// first. Mean per-link watermark breaks any remaining tie.
func less(x, y candidate, m mode) bool {
	var kx, ky [4]int
	if m == modeHigh {
		kx = [4]int{x.path.Hops(), x.start, x.wmIncrease, x.resultingWM}
		ky = [4]int{y.path.Hops(), y.start, y.wmIncrease, y.resultingWM}
	} else {
		kx = [4]int{x.wmIncrease, x.resultingWM, x.path.Hops(), x.start}
		ky = [4]int{y.wmIncrease, y.resultingWM, y.path.Hops(), y.start}
	}

	for i := range kx {
		if kx[i] != ky[i] {
			return kx[i] < ky[i]
		}
	}

	return x.meanWM < y.meanWM
}
