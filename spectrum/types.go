// File: types.go
// Role: Sentinel errors and functional options for Ledger construction.

package spectrum

import "errors"

// Sentinel errors for ledger operations.
var (
	// ErrNilGraph indicates a nil *core.Graph passed to NewLedger.
	ErrNilGraph = errors.New("spectrum: graph is nil")

	// ErrNoLinks indicates a graph with no edges.
	ErrNoLinks = errors.New("spectrum: graph has no links")

	// ErrEmptyLinkSet indicates an operation given no link indices.
	ErrEmptyLinkSet = errors.New("spectrum: link set is empty")

	// ErrLinkOutOfRange indicates a link index outside [0, L).
	ErrLinkOutOfRange = errors.New("spectrum: link index out of range")

	// ErrBadSlotCount indicates a non-positive slot count.
	ErrBadSlotCount = errors.New("spectrum: slot count must be positive")

	// ErrSlotOutOfRange indicates a window extending past capacity.
	ErrSlotOutOfRange = errors.New("spectrum: slot window out of range")

	// ErrSlotsOccupied indicates commit re-validation found an occupied
	// cell; the grid was left untouched.
	ErrSlotsOccupied = errors.New("spectrum: slot window already occupied")

	// ErrUnknownLink indicates a path edge with no ledger link in either
	// traversal direction.
	ErrUnknownLink = errors.New("spectrum: path edge has no known link")

	// ErrBadCapacity indicates a non-positive slot capacity.
	ErrBadCapacity = errors.New("spectrum: capacity must be positive")
)

// DefaultCapacity is the per-link slot count used when no option
// overrides it (320 slots of 12.5 GHz ≙ 4 THz of C-band).
const DefaultCapacity = 320

// Options configures Ledger construction.
type Options struct {
	// Capacity is the number of frequency slots per link. Must be > 0.
	Capacity int
}

// Option is a functional option for NewLedger.
type Option func(*Options)

// WithCapacity overrides the per-link slot capacity.
// Must pass a positive value; zero or negative cause ErrBadCapacity.
func WithCapacity(capacity int) Option {
	return func(o *Options) {
		if capacity <= 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = capacity
	}
}

// DefaultOptions returns the Options NewLedger starts from.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}
