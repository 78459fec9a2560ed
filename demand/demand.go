// File: demand.go
// Role: Uniform demand generation over a topology's node set.

package demand

import (
	"errors"

	"github.com/iti/rngstream"

	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/rmlsa"
)

// Bandwidth bounds of one generated demand, in Gbps.
const (
	MinBandwidthGbps = 50.0
	MaxBandwidthGbps = 400.0
)

// Sentinel errors for generation contract violations.
var (
	// ErrNilGraph indicates a nil topology.
	ErrNilGraph = errors.New("demand: graph is nil")

	// ErrTooFewNodes indicates a topology without two distinct endpoints.
	ErrTooFewNodes = errors.New("demand: graph needs at least 2 nodes")

	// ErrBadCount indicates a negative demand count.
	ErrBadCount = errors.New("demand: count must be non-negative")

	// ErrEmptyStream indicates an empty stream name.
	ErrEmptyStream = errors.New("demand: stream name is empty")

	// ErrBadRange indicates an empty or inverted bandwidth range.
	ErrBadRange = errors.New("demand: bandwidth range must satisfy 0 < min <= max")
)

// Generate draws n demands from a fresh stream named streamName:
// origin and destination uniform over the node set with origin never
// equal to destination, bandwidth uniform in [MinBandwidthGbps,
// MaxBandwidthGbps]. Node order follows the graph's insertion order,
// so a fixed topology plus a fixed stream-creation order yields the
// same sequence every run.
func Generate(g *core.Graph, n int, streamName string) ([]rmlsa.Demand, error) {
	return GenerateRange(g, n, streamName, MinBandwidthGbps, MaxBandwidthGbps)
}

// GenerateRange is Generate with an explicit bandwidth interval
// [minBw, maxBw] in Gbps.
func GenerateRange(g *core.Graph, n int, streamName string, minBw, maxBw float64) ([]rmlsa.Demand, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if n < 0 {
		return nil, ErrBadCount
	}
	if streamName == "" {
		return nil, ErrEmptyStream
	}
	if minBw <= 0 || minBw > maxBw {
		return nil, ErrBadRange
	}
	nodes := g.Nodes()
	if len(nodes) < 2 {
		return nil, ErrTooFewNodes
	}

	rng := rngstream.New(streamName)
	out := make([]rmlsa.Demand, 0, n)
	for i := 0; i < n; i++ {
		origin := rng.RandInt(0, len(nodes)-1)
		dest := rng.RandInt(0, len(nodes)-1)
		for dest == origin {
			dest = rng.RandInt(0, len(nodes)-1)
		}

		bw := minBw + rng.RandU01()*(maxBw-minBw)
		out = append(out, rmlsa.Demand{
			Origin:        nodes[origin],
			Destination:   nodes[dest],
			BandwidthGbps: bw,
		})
	}

	return out, nil
}
