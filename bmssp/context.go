// Package bmssp implements the Bounded Multi-Source Shortest Path
// recursion itself: FindPivot, the base case, the general recursive
// step, and the top-level Solve entry point (spec.md §4.6-4.9).
//
// Grounded primarily on phr3nzy-duan-sssp/sssp/sssp.go (Solver,
// BMSSP, FindPivots, BaseCase) for control flow and on
// mfreeman451-bmssp-go/bmssp.go for doc-comment density on the
// recursive entry point. Diverges from both wherever spec.md's
// §4.6-4.9 algorithm differs from either: a full frontier/block based
// D structure instead of a bucket queue or map, and lexicographic
// Length relaxation instead of epsilon-tolerant float compares.
package bmssp

import (
	"github.com/duanbmssp/bmssp/block"
	"github.com/duanbmssp/bmssp/config"
	"github.com/duanbmssp/bmssp/graph"
	"github.com/duanbmssp/bmssp/length"
	"github.com/duanbmssp/bmssp/llist"
)

// solver carries the state a single Solve call threads through every
// level of the recursion: the graph, the shared distance array, the
// list pool every Block borrows from, and the caller's config.Options.
type solver struct {
	g    *graph.Graph
	dhat []length.Length
	ctx  *block.Context
	opts *config.Options
}

// relax applies one candidate relaxation u -(w)-> v. Returns the
// candidate Length and whether it strictly improved (or tied, under
// the lexicographic order) dhat[v] and stayed under bound.
func (s *solver) relax(u, v int, w float64, bound length.Length) (length.Length, bool) {
	candidate := s.dhat[u].Relax(v, w)
	if candidate.LessEq(s.dhat[v]) && candidate.Less(bound) {
		return candidate, true
	}
	return candidate, false
}

func (s *solver) newList() *llist.List { return s.ctx.Pool.NewList() }
