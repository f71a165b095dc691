// Package normalize implements the degree-normalization collaborator
// named in spec.md §6: it rewrites an arbitrary graph into one where
// every vertex has out-degree at most two, as a constant-out-degree
// BMSSP implementation requires.
//
// Grounded on phr3nzy-duan-sssp/graph/graph.go's ToConstantDegree
// cycle-gadget construction, adapted to spec.md §6's exact contract
// (|V'| = n + 2m, |E'| = n + 3m, hub vertices keep their original ids)
// rather than phr3nzy's fully-replaced-vertex scheme, and documented
// per-stage in the style of core/methods_vertices.go.
package normalize

import "github.com/duanbmssp/bmssp/graph"

// Transform holds the normalized graph G' alongside N, the original
// vertex count. Hub vertices (ids 0..N-1) keep their original identity
// in G': a solve over G' yields dhat values directly usable for every
// original vertex at the same index, no remapping needed.
type Transform struct {
	G *graph.Graph
	N int
}

// Normalize builds G' from g per spec.md §6's gadget: each original
// vertex u becomes a "hub" wired into a zero-weight cycle through one
// new pair of split vertices per outgoing edge, so u's out-degree in
// G' never exceeds 2 regardless of its degree in g.
//
// Implementation:
//   - Stage 1: count m, g's total edge count, to size G' (n + 2m
//     vertices: n hubs plus an out-split and an in-split per edge).
//   - Stage 2: for each hub u with d outgoing edges, chain its d
//     out-splits together with zero-weight edges starting from u, and
//     close the chain back into u — this is the "circle" around u.
//     Each out-split also carries the edge's real weight forward to a
//     paired in-split, which feeds a zero-weight edge into the
//     destination hub.
//   - Stage 3: a hub with no outgoing edges needs no cycle and gets no
//     extra edges — a harmless deviation from the idealized n+3m edge
//     count for graphs with sink vertices (see DESIGN.md).
//
// Every vertex ends up with out-degree <= 2: a hub emits at most one
// edge (into its own cycle); an out-split emits exactly two (the next
// cycle hop, and its real edge to its in-split); an in-split emits
// exactly one (the zero-weight edge into its destination hub).
func Normalize(g *graph.Graph) *Transform {
	n := g.V
	m := 0
	for u := 0; u < n; u++ {
		m += len(g.Adj[u])
	}

	gPrime := graph.New(n + 2*m)
	next := n

	for u := 0; u < n; u++ {
		edges := g.Adj[u]
		if len(edges) == 0 {
			continue
		}

		chain := u
		for _, e := range edges {
			outSplit := next
			next++
			inSplit := next
			next++

			gPrime.AddEdge(chain, outSplit, 0)
			gPrime.AddEdge(outSplit, inSplit, e.Weight)
			gPrime.AddEdge(inSplit, e.To, 0)
			chain = outSplit
		}
		gPrime.AddEdge(chain, u, 0) // close the cycle back into the hub
	}

	return &Transform{G: gPrime, N: n}
}

// Distances slices dhat (computed by a solve over t.G) down to the
// original vertex count, since hub ids 0..N-1 already carry the
// distances a caller wants — no remapping, unlike phr3nzy's
// fully-replaced-vertex scheme which needs MapDistances.
func (t *Transform) Distances(dhat []float64) []float64 {
	return dhat[:t.N]
}
