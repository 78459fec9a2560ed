// Package core_test validates Graph construction, stable edge ordering,
// and path-distance queries.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/spectra/core"
)

func TestAddEdge_CreatesNodesAndStableIndices(t *testing.T) {
	g := core.NewGraph()

	// Edge indices must follow insertion order exactly.
	for i, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		idx, err := g.AddEdge(pair[0], pair[1], float64(100*(i+1)))
		if err != nil {
			t.Fatalf("AddEdge(%v): %v", pair, err)
		}
		if idx != i {
			t.Errorf("AddEdge(%v) index = %d; want %d", pair, idx, i)
		}
	}

	if got, want := g.NodeCount(), 3; got != want {
		t.Errorf("NodeCount = %d; want %d", got, want)
	}
	edges := g.Edges()
	if len(edges) != 3 {
		t.Fatalf("EdgeCount = %d; want 3", len(edges))
	}
	for i, e := range edges {
		if e.Index != i {
			t.Errorf("Edges()[%d].Index = %d; want %d", i, e.Index, i)
		}
	}
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	if _, err := g.AddEdge("", "B", 1); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Errorf("empty ID: got %v; want ErrEmptyNodeID", err)
	}
	if _, err := g.AddEdge("A", "A", 1); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self loop: got %v; want ErrSelfLoop", err)
	}
	if _, err := g.AddEdge("A", "B", -5); !errors.Is(err, core.ErrNegativeDistance) {
		t.Errorf("negative distance: got %v; want ErrNegativeDistance", err)
	}

	if _, err := g.AddEdge("A", "B", 10); err != nil {
		t.Fatal(err)
	}
	// The reverse orientation is the same undirected pair.
	if _, err := g.AddEdge("B", "A", 10); !errors.Is(err, core.ErrDuplicateEdge) {
		t.Errorf("duplicate: got %v; want ErrDuplicateEdge", err)
	}
}

func TestEdgeBetween_EitherOrientation(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("X", "Y", 42); err != nil {
		t.Fatal(err)
	}

	if e, ok := g.EdgeBetween("X", "Y"); !ok || e.DistanceKm != 42 {
		t.Errorf("EdgeBetween(X,Y) = %+v, %v; want distance 42, true", e, ok)
	}
	if e, ok := g.EdgeBetween("Y", "X"); !ok || e.Index != 0 {
		t.Errorf("EdgeBetween(Y,X) = %+v, %v; want index 0, true", e, ok)
	}
	if _, ok := g.EdgeBetween("X", "Z"); ok {
		t.Error("EdgeBetween(X,Z) = true; want false")
	}
}

func TestPathDistance(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B", 100)
	mustEdge(t, g, "B", "C", 250)

	d, err := g.PathDistance([]string{"A", "B", "C"})
	if err != nil {
		t.Fatal(err)
	}
	if d != 350 {
		t.Errorf("PathDistance = %g; want 350", d)
	}

	// Traversal against insertion orientation must work identically.
	d, err = g.PathDistance([]string{"C", "B", "A"})
	if err != nil {
		t.Fatal(err)
	}
	if d != 350 {
		t.Errorf("reverse PathDistance = %g; want 350", d)
	}

	if d, err = g.PathDistance([]string{"A"}); err != nil || d != 0 {
		t.Errorf("single-node path = %g, %v; want 0, nil", d, err)
	}

	if _, err = g.PathDistance([]string{"A", "C"}); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("missing edge: got %v; want ErrEdgeNotFound", err)
	}
}

func TestNeighbors(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "C", "A", 2)

	nbrs, err := g.Neighbors("A")
	if err != nil {
		t.Fatal(err)
	}
	if len(nbrs) != 2 {
		t.Fatalf("Neighbors(A) = %d edges; want 2", len(nbrs))
	}
	// Incident edges arrive in edge insertion order.
	if nbrs[0].Index != 0 || nbrs[1].Index != 1 {
		t.Errorf("Neighbors(A) order = [%d %d]; want [0 1]", nbrs[0].Index, nbrs[1].Index)
	}

	if _, err = g.Neighbors("Z"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("Neighbors(Z): got %v; want ErrNodeNotFound", err)
	}
}

func mustEdge(t *testing.T, g *core.Graph, u, v string, d float64) {
	t.Helper()
	if _, err := g.AddEdge(u, v, d); err != nil {
		t.Fatalf("AddEdge(%s,%s): %v", u, v, err)
	}
}
