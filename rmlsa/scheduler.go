// File: scheduler.go
// Role: Batch driver — stable bandwidth-descending order, per-demand
//       dispatch, aggregate Result.

package rmlsa

import "github.com/katalvlaran/spectra/spectrum"

// Scheduler runs a batch of demands through one allocator against one
// ledger and reports aggregate outcomes.
type Scheduler struct {
	ledger *spectrum.Ledger
	alloc  Allocator
}

// NewScheduler pairs a ledger with the allocator that consumes it.
func NewScheduler(ledger *spectrum.Ledger, alloc Allocator) (*Scheduler, error) {
	if ledger == nil {
		return nil, ErrNilLedger
	}
	if alloc == nil {
		return nil, ErrNilAllocator
	}

	return &Scheduler{ledger: ledger, alloc: alloc}, nil
}

// Run places every demand once, largest bandwidth first. The input
// slice is never mutated. Per-demand failures count as blocked and the
// batch always runs to completion.
func (s *Scheduler) Run(demands []Demand) Result {
	ordered := SortByBandwidth(demands)

	res := Result{Algorithm: s.alloc.Name()}
	for _, d := range ordered {
		if _, ok := s.alloc.Place(d); ok {
			res.Successful++
		} else {
			res.Blocked++
		}
	}

	res.Watermark = s.ledger.Watermark()
	res.Utilization = s.ledger.Utilization()
	if total := len(ordered); total > 0 {
		res.BlockingProbability = float64(res.Blocked) / float64(total)
	}

	return res
}
