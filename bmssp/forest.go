package bmssp

import (
	"github.com/duanbmssp/bmssp/graph"
	"github.com/duanbmssp/bmssp/length"
)

// buildForest constructs F's adjacency (spec.md §4.6 step 3): for each
// u in w, an edge (u,v,w) belongs to F iff v is also in w and
// dhat[u].relax(v,weight) <= dhat[v] under the current (final for this
// layer) dhat snapshot. isTarget marks every vertex that is some
// edge's destination, i.e. every non-root of F.
func buildForest(g *graph.Graph, dhat []length.Length, inW map[int]bool, w []int) (children map[int][]int, isTarget map[int]bool) {
	children = make(map[int][]int)
	isTarget = make(map[int]bool)
	for _, u := range w {
		for _, e := range g.Adj[u] {
			if !inW[e.To] {
				continue
			}
			candidate := dhat[u].Relax(e.To, e.Weight)
			if candidate.LessEq(dhat[e.To]) {
				children[u] = append(children[u], e.To)
				isTarget[e.To] = true
			}
		}
	}
	return children, isTarget
}
