// Package refdijkstra is the alternative-Dijkstra collaborator named in
// spec.md §6: an independent comparator bmssp's own solve can be
// checked against, built on a real third-party graph library rather
// than reimplementing Dijkstra by hand.
//
// Grounded on the retrieved gonum.org/v1/gonum example repo: builds a
// gonum.org/v1/gonum/graph/simple.WeightedDirectedGraph and runs
// gonum.org/v1/gonum/graph/path.DijkstraFrom over it, adapting the
// resulting path.Shortest back into a []float64 indexed by vertex id —
// the same shape bmssp.Solve returns, so the two are directly
// comparable.
package refdijkstra

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/duanbmssp/bmssp/graph"
)

// Solve computes single-source shortest paths from vertex 0 on g using
// gonum's Dijkstra implementation, returning distances indexed by
// vertex id in the same shape as bmssp.Solve — +Inf for an unreachable
// vertex.
func Solve(g *graph.Graph) []float64 {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < g.V; v++ {
		wg.AddNode(simple.Node(v))
	}
	for u := 0; u < g.V; u++ {
		for _, e := range g.Adj[u] {
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(u), simple.Node(e.To), e.Weight))
		}
	}

	if g.V == 0 {
		return nil
	}

	shortest := path.DijkstraFrom(simple.Node(0), wg)

	out := make([]float64, g.V)
	for v := 0; v < g.V; v++ {
		out[v] = shortest.WeightTo(int64(v))
	}
	return out
}
