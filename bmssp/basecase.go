package bmssp

import (
	"container/heap"

	"github.com/duanbmssp/bmssp/block"
	"github.com/duanbmssp/bmssp/length"
)

// lengthHeapItem is a single (Length, stale-check) entry in the base
// case's priority queue H. Grounded jointly on
// phr3nzy-duan-sssp/sssp.go's PQItem and
// katalvlaran-lvlath/dijkstra's node priority queue: both use a
// container/heap min-heap with a lazy "push duplicate, skip stale pop"
// decrease-key strategy rather than a true decrease-key heap, since
// container/heap has no O(log n) decrease-key primitive.
type lengthHeapItem struct {
	v int
	l length.Length
}

// lengthHeap is a container/heap min-heap over lengthHeapItem, ordered
// by Length's lexicographic (Len, NumEdges, Prev, This) comparison —
// this is H, spec.md §4.8's "balanced ordered map keyed by Length".
type lengthHeap []lengthHeapItem

func (h lengthHeap) Len() int            { return len(h) }
func (h lengthHeap) Less(i, j int) bool  { return h[i].l.Less(h[j].l) }
func (h lengthHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *lengthHeap) Push(x interface{}) { *h = append(*h, x.(lengthHeapItem)) }
func (h *lengthHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// basecase implements BMSSP_basecase (spec.md §4.8): x is S's unique
// element. It grows U via a bounded mini-Dijkstra capped at k entries,
// and returns the achieved bound B' alongside U.
func (s *solver) basecase(k int, bound length.Length, x int) (length.Length, *block.Block, error) {
	u := block.New(s.ctx, s.newList(), bound, s.dhat[x], k)

	h := &lengthHeap{{v: x, l: s.dhat[x]}}
	heap.Init(h)

	for h.Len() > 0 && !u.Oversized() {
		top := heap.Pop(h).(lengthHeapItem)
		if top.l != s.dhat[top.v] {
			continue // stale: dhat[top.v] has since improved past this entry
		}
		if u.List().Contains(top.v) {
			continue
		}
		u.AddItem(top.v)
		s.opts.Listener.OnVertexFinalized(top.v, top.l.Len)

		for _, e := range s.g.Adj[top.v] {
			candidate, ok := s.relax(top.v, e.To, e.Weight, bound)
			if !ok {
				continue
			}
			s.dhat[e.To] = candidate
			heap.Push(h, lengthHeapItem{v: e.To, l: candidate})
		}
	}

	if u.Size() <= k {
		return bound, u, nil
	}

	bPrime := u.Max()
	extracted := u.ExtractLessThanOrEqual(bPrime, true)
	u.Close()
	return bPrime, extracted, nil
}
