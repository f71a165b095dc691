package bmssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duanbmssp/bmssp/bmssp"
	"github.com/duanbmssp/bmssp/config"
	"github.com/duanbmssp/bmssp/graph"
	"github.com/duanbmssp/bmssp/refdijkstra"
)

// TestSolveMatchesReferenceDijkstra is the randomized property test
// spec.md §8 names: bmssp.Solve's output compared edge-by-edge against
// refdijkstra's independent implementation across several seeded
// random graphs. Infinities are compared by IsInf rather than
// subtraction, since Inf - Inf is NaN under plain delta comparison.
func TestSolveMatchesReferenceDijkstra(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 1337} {
		g := graph.RandomGraph(30, 80, graph.WithSeed(seed), graph.WithMinWeight(1), graph.WithMaxWeight(20))

		got, err := bmssp.Solve(g, config.WithK(3), config.WithT(2))
		require.NoError(t, err)

		want := refdijkstra.Solve(g)
		require.Len(t, got, len(want))
		for v := range want {
			if math.IsInf(want[v], 1) {
				assert.True(t, math.IsInf(got[v], 1), "seed=%d vertex=%d: want +Inf, got %v", seed, v, got[v])
				continue
			}
			assert.InDelta(t, want[v], got[v], 1e-9, "seed=%d vertex=%d", seed, v)
		}
	}
}
