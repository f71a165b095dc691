// Package frontier implements the Frontier Manager (spec.md §4.5, the
// "D" of Lemma 3.3): two cooperating sequences of Blocks — D0 (a
// block-wise monotone sequence fed by BatchPrepend) and D1 (blocks kept
// in sorted order by upper bound, fed by Insert) — exposing Insert,
// BatchPrepend, and Pull with the amortized bounds the BMSSP recursion
// depends on.
//
// Grounded on phr3nzy-duan-sssp/ds.go's DataStructure (the closest
// structural match in the retrieved pack: a D0 slice and a D1 sequence
// kept sorted by upper bound, split on overflow), reworked against
// block.Block/llist.List ownership and selectk-based linear selection
// instead of sort.Slice, to meet spec.md §4.5's amortized cost.
//
// Bounds and keys are length.Length, not bare float64, for the same
// reason block.Block's are: original_source/FrontierManager.cpp keys D1
// by Length and guards Insert with a suit() check before routing a
// vertex into a block (spec.md §3/§9).
package frontier

import (
	"fmt"
	"sort"

	"github.com/duanbmssp/bmssp/block"
	"github.com/duanbmssp/bmssp/length"
	"github.com/duanbmssp/bmssp/selectk"
)

// ErrNoSuitableBlock is an InvariantViolation (spec.md §7): Insert could
// not locate a D1 block whose interval contains the vertex's distance.
// Indicates D1's intervals no longer cover [currentLowerBound, B).
var ErrNoSuitableBlock = fmt.Errorf("frontier: no suitable block for insert")

// Manager is the Frontier Manager: D0 + D1, plus the target block
// capacity M and the fixed upper bound B (spec.md §4.5).
type Manager struct {
	ctx               *block.Context
	m                 int
	upperBound        length.Length
	currentLowerBound length.Length
	d0                []*block.Block // front = index 0; strictly increasing UpperBound toward the back
	d1                []*block.Block // sorted ascending by UpperBound; disjoint, covers [currentLowerBound, upperBound)
}

// New constructs an empty Frontier Manager with soft capacity m and
// fixed upper bound B.
func New(ctx *block.Context, m int, upperBound length.Length) *Manager {
	return &Manager{
		ctx:               ctx,
		m:                 m,
		upperBound:        upperBound,
		currentLowerBound: length.PosInf(),
	}
}

// CurrentLowerBound returns the lower bound over every item in D0 ∪ D1
// as set by the last Insert or Pull. BatchPrepend does not lower it, so
// after a BatchPrepend it can exceed the smallest distance in D0 until
// the next Pull recomputes it.
func (m *Manager) CurrentLowerBound() length.Length { return m.currentLowerBound }

// UpperBound returns B, fixed at construction.
func (m *Manager) UpperBound() length.Length { return m.upperBound }

// Empty reports whether both D0 and D1 hold no vertices.
func (m *Manager) Empty() bool {
	for _, b := range m.d0 {
		if b.Size() > 0 {
			return false
		}
	}
	for _, b := range m.d1 {
		if b.Size() > 0 {
			return false
		}
	}
	return true
}

// Insert adds v to the frontier (spec.md §4.5.1). Ignored if
// dhat[v] >= B.
func (m *Manager) Insert(v int) error {
	d := m.ctx.Dhat[v]
	if !d.Less(m.upperBound) {
		return nil
	}
	if d.Less(m.currentLowerBound) {
		m.currentLowerBound = d
	}

	if len(m.d1) == 0 {
		m.d1 = append(m.d1, block.New(m.ctx, m.ctx.Pool.NewList(), m.upperBound, length.Bound(0), m.m))
	}

	idx := sort.Search(len(m.d1), func(i int) bool { return d.Less(m.d1[i].UpperBound()) })
	if idx == len(m.d1) || !m.d1[idx].Suit(d) {
		return fmt.Errorf("%w: d=%v", ErrNoSuitableBlock, d)
	}
	target := m.d1[idx]
	target.AddItem(v)

	if target.Oversized() {
		smaller, err := target.SplitAtMedian()
		if err != nil {
			return fmt.Errorf("frontier: insert split: %w", err)
		}
		m.d1 = insertBlockAt(m.d1, idx, smaller)
	}
	return nil
}

// BatchPrepend adds K to the front of D0 (spec.md §4.5.2). Precondition
// (caller's responsibility): K.UpperBound() <= currentLowerBound.
// BatchPrepend never mutates currentLowerBound, and Manager offers no
// other way to lower it: the bmssp recursion does not adjust it after a
// BatchPrepend, and it is next recomputed by Pull.
func (m *Manager) BatchPrepend(k *block.Block) error {
	if k == nil || k.Size() == 0 {
		if k != nil {
			k.Close()
		}
		return nil
	}
	return m.pushD0Monotone(k)
}

// pushD0Monotone recursively splits an oversized block and pushes both
// halves to the front of D0, larger remainder first so the smaller half
// ends up strictly in front of it — this is what keeps D0 block-wise
// monotone (spec.md §9: "preserve D0's block-wise monotone property").
func (m *Manager) pushD0Monotone(b *block.Block) error {
	if b.Size() == 0 {
		b.Close()
		return nil
	}
	if b.Oversized() {
		smaller, err := b.SplitAtMedian()
		if err != nil {
			return fmt.Errorf("frontier: batch-prepend split: %w", err)
		}
		if err := m.pushD0Monotone(b); err != nil {
			return err
		}
		return m.pushD0Monotone(smaller)
	}
	m.d0 = append([]*block.Block{b}, m.d0...)
	return nil
}

// pushD1Sorted is D1's analogue of pushD0Monotone: it re-keys by each
// block's own upper bound instead of always inserting at the front.
func (m *Manager) pushD1Sorted(b *block.Block) error {
	if b.Size() == 0 {
		b.Close()
		return nil
	}
	if b.Oversized() {
		smaller, err := b.SplitAtMedian()
		if err != nil {
			return fmt.Errorf("frontier: reinsert split: %w", err)
		}
		if err := m.pushD1Sorted(b); err != nil {
			return err
		}
		return m.pushD1Sorted(smaller)
	}
	idx := sort.Search(len(m.d1), func(i int) bool { return !m.d1[i].UpperBound().Less(b.UpperBound()) })
	m.d1 = insertBlockAt(m.d1, idx, b)
	return nil
}

// Pull returns up to M smallest vertices, updating currentLowerBound
// (spec.md §4.5.3). Amortized O(output size) across a solve.
func (m *Manager) Pull() (*block.Block, length.Length, error) {
	if m.m == 1 {
		return m.pullM1()
	}

	s0 := block.New(m.ctx, m.ctx.Pool.NewList(), m.upperBound, length.Bound(0), m.m)
	for len(m.d0) > 0 && s0.Size() <= m.m {
		front := m.d0[0]
		m.d0 = m.d0[1:]
		s0.Merge(front)
		front.Close()
	}

	// s1 starts with an empty interval so that Merge widens it to exactly
	// the range of the D1 blocks drained into it; its residual is then
	// re-keyed under that range rather than under B.
	s1 := block.New(m.ctx, m.ctx.Pool.NewList(), length.Bound(0), m.upperBound, m.m)
	for len(m.d1) > 0 && s1.Size() <= m.m {
		front := m.d1[0]
		m.d1 = m.d1[1:]
		s1.Merge(front)
		front.Close()
	}

	if s0.Size()+s1.Size() <= m.m {
		s0.Merge(s1)
		s1.Close()
		m.currentLowerBound = m.upperBound
		return s0, m.upperBound, nil
	}

	values := append(append([]length.Length{}, lengths(m.ctx, s0)...), lengths(m.ctx, s1)...)

	x, err := selectk.LocateMinQ(values, m.m+1, 0, len(values))
	if err != nil {
		return nil, length.Length{}, fmt.Errorf("frontier: pull select: %w", err)
	}

	output := s0.ExtractLessThanOrEqual(x, true)
	s1L := s1.ExtractLessThanOrEqual(x, true)
	output.Merge(s1L)
	s1L.Close()

	if err := m.reinsertD0(s0); err != nil {
		return nil, length.Length{}, err
	}
	if err := m.reinsertD1(s1); err != nil {
		return nil, length.Length{}, err
	}
	// Keep D1 covering [x, B): the drained range below its front block
	// now belongs to that front block.
	if len(m.d1) > 0 {
		m.d1[0].ExtendLowerBound(x)
	}

	m.currentLowerBound = x
	return output, x, nil
}

// reinsertD0 puts S0G (the D0 residual) back, merging into D0's
// current front first when undersized (spec.md §4.5.3 step 6).
func (m *Manager) reinsertD0(s0G *block.Block) error {
	if s0G.Size() == 0 {
		s0G.Close()
		return nil
	}
	if s0G.Undersized() && len(m.d0) > 0 {
		front := m.d0[0]
		m.d0 = m.d0[1:]
		front.Merge(s0G)
		s0G.Close()
		s0G = front
	}
	return m.pushD0Monotone(s0G)
}

// reinsertD1 puts S1G (the D1 residual) back, merging into D1's
// smallest remaining block first when undersized.
func (m *Manager) reinsertD1(s1G *block.Block) error {
	if s1G.Size() == 0 {
		s1G.Close()
		return nil
	}
	if s1G.Undersized() && len(m.d1) > 0 {
		front := m.d1[0]
		m.d1 = m.d1[1:]
		front.Merge(s1G)
		s1G.Close()
		s1G = front
	}
	return m.pushD1Sorted(s1G)
}

// pullM1 implements the M=1 special case (spec.md §4.5.3): return the
// first non-empty block from the head of D0 or D1, whichever has the
// smaller minimum, after skipping empty prefixes.
func (m *Manager) pullM1() (*block.Block, length.Length, error) {
	for len(m.d0) > 0 && m.d0[0].Size() == 0 {
		m.d0[0].Close()
		m.d0 = m.d0[1:]
	}
	for len(m.d1) > 0 && m.d1[0].Size() == 0 {
		m.d1[0].Close()
		m.d1 = m.d1[1:]
	}

	var out *block.Block
	switch {
	case len(m.d0) == 0 && len(m.d1) == 0:
		out = block.New(m.ctx, m.ctx.Pool.NewList(), m.upperBound, m.currentLowerBound, m.m)
	case len(m.d0) == 0:
		out = m.d1[0]
		m.d1 = m.d1[1:]
	case len(m.d1) == 0:
		out = m.d0[0]
		m.d0 = m.d0[1:]
	case m.d0[0].Min().LessEq(m.d1[0].Min()):
		out = m.d0[0]
		m.d0 = m.d0[1:]
	default:
		out = m.d1[0]
		m.d1 = m.d1[1:]
	}

	bound := m.upperBound
	if len(m.d0) > 0 && m.d0[0].Min().Less(bound) {
		bound = m.d0[0].Min()
	}
	if len(m.d1) > 0 && m.d1[0].Min().Less(bound) {
		bound = m.d1[0].Min()
	}
	// Keep D1 covering [bound, B) now that its popped prefix is gone.
	if len(m.d1) > 0 {
		m.d1[0].ExtendLowerBound(bound)
	}
	m.currentLowerBound = bound
	return out, bound, nil
}

// Close releases every block still resident in D0 and D1, for clean
// teardown when a BMSSP recursion level returns early (e.g. the
// workload cap is reached before D is drained).
func (m *Manager) Close() {
	for _, b := range m.d0 {
		b.Close()
	}
	for _, b := range m.d1 {
		b.Close()
	}
	m.d0, m.d1 = nil, nil
}

// lengths collects a Block's live dhat Lengths (vertex id travels in
// each element's This field), for feeding into selectk.LocateMinQ.
func lengths(ctx *block.Context, b *block.Block) []length.Length {
	ids := b.Values()
	out := make([]length.Length, len(ids))
	for i, v := range ids {
		out[i] = ctx.Dhat[v]
	}
	return out
}

// insertBlockAt inserts b at index idx in a slice of *block.Block,
// shifting later elements right.
func insertBlockAt(s []*block.Block, idx int, b *block.Block) []*block.Block {
	s = append(s, nil)
	copy(s[idx+1:], s[idx:])
	s[idx] = b
	return s
}
