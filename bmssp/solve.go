package bmssp

import (
	"fmt"
	"math"

	"github.com/duanbmssp/bmssp/block"
	"github.com/duanbmssp/bmssp/config"
	"github.com/duanbmssp/bmssp/graph"
	"github.com/duanbmssp/bmssp/length"
	"github.com/duanbmssp/bmssp/llist"
	"github.com/duanbmssp/bmssp/normalize"
)

// Solve computes single-source shortest paths from vertex 0 on g via
// the BMSSP recursion (spec.md §4.9), returning dhat's final lengths
// indexed by vertex id. +Inf marks an unreachable vertex.
func Solve(g *graph.Graph, opts ...config.Option) ([]float64, error) {
	o := config.New(opts...)
	n := g.V

	dhat := make([]length.Length, n)
	for v := 0; v < n; v++ {
		dhat[v] = length.Infinity(v)
	}
	if n > 0 {
		dhat[0] = length.Zero(0)
	}

	s := &solver{
		g:    g,
		dhat: dhat,
		ctx:  &block.Context{Dhat: dhat, Pool: llist.NewPool(n)},
		opts: o,
	}

	l, k, t := deriveParams(n, o)
	o.Log().Debug("bmssp solve starting", "n", n, "l", l, "k", k, "t", t)

	initial := block.New(s.ctx, s.ctx.Pool.NewList(), length.PosInf(), length.Zero(0), 0)
	if n > 0 {
		initial.AddItem(0)
	}

	s.opts.Listener.OnPhaseChange("Solve", l)
	_, u, err := s.recurse(l, k, t, length.PosInf(), initial)
	initial.Close()
	if err != nil {
		return nil, fmt.Errorf("bmssp: solve: %w", err)
	}
	u.Close()

	out := make([]float64, n)
	for v := 0; v < n; v++ {
		out[v] = s.dhat[v].Len
	}
	return out, nil
}

// SolveNormalized is Solve preceded by degree normalization (spec.md
// §6): it rewrites g into the constant-out-degree graph G' via
// normalize.Normalize, solves over G' (so l/k/t are derived from G''s
// n+2m vertex count, not g's raw n, per spec.md §4.9's size-dependent
// recursion depth), and slices the result back down to g's original
// vertex count. Grounded on original_source/BMSSP.cpp:232, whose
// solve() runs entirely over constDegGraph rather than the caller's
// raw graph.
func SolveNormalized(g *graph.Graph, opts ...config.Option) ([]float64, error) {
	t := normalize.Normalize(g)
	out, err := Solve(t.G, opts...)
	if err != nil {
		return nil, fmt.Errorf("bmssp: solve normalized: %w", err)
	}
	return t.Distances(out), nil
}

// deriveParams computes l, k, t (spec.md §4.9): l = ceil((log2 n)^(1/3)),
// k = l, t = l^2, each floored at 1 so a solve on a tiny graph still
// recurses at least one level. WithK/WithT override the derived values,
// for tests exercising small graphs where the natural derivation would
// otherwise collapse to 1.
func deriveParams(n int, o *config.Options) (l, k, t int) {
	l = 1
	if n > 1 {
		log2n := math.Log2(float64(n))
		l = int(math.Ceil(math.Pow(log2n, 1.0/3.0)))
		if l < 1 {
			l = 1
		}
	}
	k, t = l, l*l

	if o.KSet {
		k = o.K
	}
	if o.TSet {
		t = o.T
	}
	return l, k, t
}
