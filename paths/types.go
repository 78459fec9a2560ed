// File: types.go
// Role: Path value type and sentinel errors for the paths package.

package paths

import "errors"

// Sentinel errors returned by the paths package.
var (
	// ErrNilGraph indicates a nil *core.Graph was provided.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrEmptyEndpoint indicates an empty origin or destination ID.
	ErrEmptyEndpoint = errors.New("paths: endpoint ID is empty")

	// ErrNodeNotFound indicates an endpoint absent from the graph.
	ErrNodeNotFound = errors.New("paths: endpoint not found in graph")

	// ErrNoPath indicates the endpoints are disconnected.
	ErrNoPath = errors.New("paths: no path between endpoints")

	// ErrBadK indicates a non-positive path fan-out was requested.
	ErrBadK = errors.New("paths: k must be at least 1")
)

// Path is one loop-free route through the network.
type Path struct {
	// Nodes is the node sequence from origin to destination inclusive.
	Nodes []string

	// DistanceKm is the summed length of the traversed spans.
	DistanceKm float64
}

// Hops returns the number of links the path traverses.
func (p Path) Hops() int {
	if len(p.Nodes) < 2 {
		return 0
	}

	return len(p.Nodes) - 1
}
