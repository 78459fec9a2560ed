// File: types.go
// Role: Demand/Circuit/Result records, allocator interface, functional
//       options with the fixed mode thresholds, sentinel errors.

package rmlsa

import (
	"errors"
	"sort"

	"github.com/katalvlaran/spectra/paths"
)

// Sentinel errors for allocator construction.
var (
	// ErrNilGraph indicates a nil topology.
	ErrNilGraph = errors.New("rmlsa: graph is nil")

	// ErrNilLedger indicates a nil spectrum ledger.
	ErrNilLedger = errors.New("rmlsa: ledger is nil")

	// ErrNilAllocator indicates a nil allocator passed to NewScheduler.
	ErrNilAllocator = errors.New("rmlsa: allocator is nil")

	// ErrBadFanOut indicates a non-positive path fan-out k.
	ErrBadFanOut = errors.New("rmlsa: path fan-out must be at least 1")
)

// Demand is one connection request: carry BandwidthGbps from Origin to
// Destination. It is consumed exactly once by a Scheduler run and ends
// either committed or blocked.
type Demand struct {
	Origin        string
	Destination   string
	BandwidthGbps float64
}

// Circuit records one committed placement with the exact inputs a
// future release operation would need.
type Circuit struct {
	// Path is the routed node sequence with its total distance.
	Path paths.Path

	// Links are the ledger link indices of the path, in traversal order.
	Links []int

	// StartSlot and SlotCount delimit the reserved window, identical on
	// every link (spectrum continuity).
	StartSlot int
	SlotCount int

	// Format names the modulation scheme the path distance selected.
	Format string
}

// Result summarizes one batch run of a single allocator.
type Result struct {
	// Algorithm identifies the allocator (its Name()).
	Algorithm string

	// Successful and Blocked count terminal demand outcomes.
	Successful int
	Blocked    int

	// Watermark and Utilization are the ledger's final signals.
	Watermark   int
	Utilization float64

	// BlockingProbability is Blocked / total demands, 0 for an empty
	// batch. Always within [0,1].
	BlockingProbability float64
}

// Allocator places a single demand, reporting ok=false when the demand
// is blocked. Implementations mutate their ledger only on success.
type Allocator interface {
	// Name returns the algorithm identifier used in Result records.
	Name() string

	// Place routes one demand and commits its spectrum window.
	Place(d Demand) (Circuit, bool)
}

// Mode thresholds and search caps. These define the heuristic itself
// and are fixed, not runtime tunables.
const (
	// DefaultFanOut is the candidate-path count k in Normal mode.
	DefaultFanOut = 3

	// highFanOut and extremeFanOut widen/narrow the path search under load.
	highFanOut    = 5
	extremeFanOut = 3

	// Offsets searched per path, per mode.
	normalOffsetCap = 10
	highOffsetCap   = 3

	// Load triggers, checked in priority order Extreme then High.
	highWatermarkRatio    = 0.70
	highUtilization       = 0.10
	extremeWatermarkRatio = 0.92
	extremeUtilization    = 0.18
)

// Options configures the Adaptive allocator.
type Options struct {
	// FanOut is the candidate-path count k used in Normal mode.
	// High and Extreme modes override it per the mode table.
	FanOut int
}

// Option is a functional option for NewAdaptive.
type Option func(*Options)

// WithFanOut overrides the Normal-mode candidate-path count.
// Must pass a positive value; zero or negative cause ErrBadFanOut.
func WithFanOut(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic(ErrBadFanOut.Error())
		}
		o.FanOut = k
	}
}

// DefaultOptions returns the Options NewAdaptive starts from.
func DefaultOptions() Options {
	return Options{FanOut: DefaultFanOut}
}

// SortByBandwidth returns a copy of demands stably sorted by descending
// bandwidth: equal-bandwidth demands keep their original relative order.
func SortByBandwidth(demands []Demand) []Demand {
	out := make([]Demand, len(demands))
	copy(out, demands)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BandwidthGbps > out[j].BandwidthGbps
	})

	return out
}
