package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duanbmssp/bmssp/bmssp"
	"github.com/duanbmssp/bmssp/config"
	"github.com/duanbmssp/bmssp/graph"
	"github.com/duanbmssp/bmssp/normalize"
)

func maxOutDegree(g *graph.Graph) int {
	max := 0
	for u := 0; u < g.V; u++ {
		if d := g.OutDegree(u); d > max {
			max = d
		}
	}
	return max
}

// TestNormalizeBoundsOutDegree checks every vertex of G' has out-degree
// <= 2, including a hub with out-degree 3 in the original graph.
func TestNormalizeBoundsOutDegree(t *testing.T) {
	g := graph.New(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 2)
	g.AddEdge(0, 3, 3)

	tr := normalize.Normalize(g)
	assert.LessOrEqual(t, maxOutDegree(tr.G), 2)
}

// TestNormalizeVertexAndEdgeCounts checks the exact |V'| = n+2m,
// |E'| = n+3m counts spec.md §6 states for a graph where every vertex
// has at least one outgoing edge.
func TestNormalizeVertexAndEdgeCounts(t *testing.T) {
	g := graph.New(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 0, 1)
	m := 3

	tr := normalize.Normalize(g)
	assert.Equal(t, 3+2*m, tr.G.V)

	edgeCount := 0
	for u := 0; u < tr.G.V; u++ {
		edgeCount += tr.G.OutDegree(u)
	}
	assert.Equal(t, 3+3*m, edgeCount)
}

// TestNormalizePreservesDistances drives a full bmssp.Solve over G'
// and checks the hub-indexed distances match a solve over the original
// graph directly (P1-style correctness check across the transform).
func TestNormalizePreservesDistances(t *testing.T) {
	g := graph.New(4)
	g.AddEdge(0, 1, 10)
	g.AddEdge(0, 2, 3)
	g.AddEdge(2, 1, 2)
	g.AddEdge(1, 3, 1)

	direct, err := bmssp.Solve(g, config.WithK(2), config.WithT(2))
	require.NoError(t, err)

	tr := normalize.Normalize(g)
	normalized, err := bmssp.Solve(tr.G, config.WithK(2), config.WithT(2))
	require.NoError(t, err)

	assert.Equal(t, direct, tr.Distances(normalized))
}
