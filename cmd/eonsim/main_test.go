package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTopology(t *testing.T) {
	g, err := buildTopology("nsfnet")
	require.NoError(t, err)
	require.Equal(t, 14, g.NodeCount())
	require.Equal(t, 23, g.EdgeCount())

	g, err = buildTopology("ring:8:500")
	require.NoError(t, err)
	require.Equal(t, 8, g.NodeCount())
	require.Equal(t, 8, g.EdgeCount())

	g, err = buildTopology("mesh:5:400")
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 10, g.EdgeCount())
}

func TestBuildTopology_Malformed(t *testing.T) {
	for _, spec := range []string{"", "ring", "ring:8", "ring:x:500", "ring:8:y", "torus:3:100"} {
		if _, err := buildTopology(spec); err == nil {
			t.Fatalf("expected error for topology %q", spec)
		}
	}
}
