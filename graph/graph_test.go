package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duanbmssp/bmssp/graph"
)

func TestLoadWellFormed(t *testing.T) {
	input := "4 3\n0 1 1\n1 2 2\n2 3 3\n"
	g, err := graph.Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, g.V)
	assert.Equal(t, 1, g.OutDegree(0))
	assert.Equal(t, graph.Edge{To: 1, Weight: 1}, g.Adj[0][0])
}

func TestLoadMalformedHeader(t *testing.T) {
	_, err := graph.Load(strings.NewReader("not a header\n"))
	assert.ErrorIs(t, err, graph.ErrMalformedHeader)
}

func TestLoadTruncatedInput(t *testing.T) {
	_, err := graph.Load(strings.NewReader("2 2\n0 1 1\n"))
	assert.ErrorIs(t, err, graph.ErrTruncatedInput)
}

func TestLoadVertexOutOfRange(t *testing.T) {
	_, err := graph.Load(strings.NewReader("2 1\n0 5 1\n"))
	assert.ErrorIs(t, err, graph.ErrVertexIndexRange)
}

func TestLoadNegativeWeight(t *testing.T) {
	_, err := graph.Load(strings.NewReader("2 1\n0 1 -3\n"))
	assert.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestRandomGraphReproducibleWithSeed(t *testing.T) {
	a := graph.RandomGraph(20, 40, graph.WithSeed(7))
	b := graph.RandomGraph(20, 40, graph.WithSeed(7))
	require.Equal(t, a.V, b.V)
	for v := 0; v < a.V; v++ {
		assert.Equal(t, a.Adj[v], b.Adj[v])
	}
}

func TestRandomGraphRespectsWeightBounds(t *testing.T) {
	g := graph.RandomGraph(10, 50, graph.WithSeed(3), graph.WithMinWeight(5), graph.WithMaxWeight(9))
	for _, edges := range g.Adj {
		for _, e := range edges {
			assert.GreaterOrEqual(t, e.Weight, 5.0)
			assert.Less(t, e.Weight, 9.0)
		}
	}
}

func TestRandomGraphNoSelfLoops(t *testing.T) {
	g := graph.RandomGraph(5, 100, graph.WithSeed(11))
	for u, edges := range g.Adj {
		for _, e := range edges {
			assert.NotEqual(t, u, e.To)
		}
	}
}
