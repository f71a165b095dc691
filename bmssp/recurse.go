package bmssp

import (
	"fmt"

	"github.com/duanbmssp/bmssp/block"
	"github.com/duanbmssp/bmssp/frontier"
	"github.com/duanbmssp/bmssp/length"
)

// recurse implements BMSSP_recurse (spec.md §4.7): at l=0 it delegates
// to the base case; otherwise it drives a Frontier Manager through
// FindPivot's pivot set, recursing one level down on each Pull batch
// and relaying freshly-relaxed vertices back into the frontier or into
// a re-prepend batch K.
//
// seed is borrowed, not owned: the caller retains and is responsible
// for closing it (spec.md §4.7 step e reuses S_i — the very Block
// passed in as seed — after the recursive call returns).
func (s *solver) recurse(l, k, t int, bound length.Length, seed *block.Block) (length.Length, *block.Block, error) {
	if l == 0 {
		vals := seed.Values()
		if len(vals) != 1 {
			return length.Length{}, nil, fmt.Errorf("%w: got %d", wrapInvariant(ErrBaseCaseSizeMismatch), len(vals))
		}
		s.opts.Listener.OnPhaseChange("BaseCase", l)
		return s.basecase(k, bound, vals[0])
	}

	s.opts.Listener.OnPhaseChange("FindPivot", l)
	seedVals := seed.Values()

	pivots, w, err := s.findPivot(k, bound, seedVals)
	if err != nil {
		return length.Length{}, nil, err
	}

	m := powInt(2, (l-1)*t)
	largeWorkload := k * powInt(2, l*t)

	d := frontier.New(s.ctx, m, bound)
	for _, p := range pivots {
		if err := d.Insert(p); err != nil {
			return length.Length{}, nil, fmt.Errorf("bmssp: recurse insert pivot: %w", err)
		}
	}

	bPrime := bound
	if len(pivots) > 0 {
		bPrime = d.CurrentLowerBound()
	}

	u := block.New(s.ctx, s.ctx.Pool.NewList(), bound, bPrime, largeWorkload)

	s.opts.Listener.OnPhaseChange("PullLoop", l)
	for {
		si, bi, err := d.Pull()
		if err != nil {
			return length.Length{}, nil, fmt.Errorf("bmssp: recurse pull: %w", err)
		}
		if si.Size() == 0 {
			si.Close()
			break
		}

		bPrimeNext, ui, err := s.recurse(l-1, k, t, bi, si)
		if err != nil {
			return length.Length{}, nil, err
		}
		s.opts.Listener.OnPull(l, bi.Len, ui.Size())

		if u.Size()+ui.Size() > largeWorkload {
			u.Merge(ui)
			ui.Close()
			si.Close()
			bPrime = bPrimeNext
			break
		}

		k2 := block.New(s.ctx, s.ctx.Pool.NewList(), bi, bPrimeNext, m)
		for _, uv := range ui.Values() {
			for _, e := range s.g.Adj[uv] {
				candidate, ok := s.relax(uv, e.To, e.Weight, bound)
				if !ok {
					continue
				}
				s.dhat[e.To] = candidate
				if !candidate.Less(bi) {
					if err := d.Insert(e.To); err != nil {
						return length.Length{}, nil, fmt.Errorf("bmssp: recurse relax insert: %w", err)
					}
				} else {
					k2.AddItem(e.To)
				}
			}
		}

		u.Merge(ui)
		ui.Close()
		k2.Merge(si)
		si.Close()

		if err := d.BatchPrepend(k2); err != nil {
			return length.Length{}, nil, fmt.Errorf("bmssp: recurse batch-prepend: %w", err)
		}
		bPrime = bPrimeNext
	}

	d.Close()

	for _, v := range w {
		if s.dhat[v].Less(bPrime) {
			u.AddItem(v)
		}
	}

	return bPrime, u, nil
}

// powInt computes base^exp for small non-negative integer exponents,
// the way M and LargeWorkload (spec.md §4.7 step 2) are derived —
// integer exponentiation, not math.Pow's float64 round-trip.
func powInt(base, exp int) int {
	if exp < 0 {
		return 1
	}
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
