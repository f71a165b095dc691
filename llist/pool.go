// Package llist implements the intrusive, pool-backed doubly-linked-list
// substrate that gives BMSSP's frontier manager O(1) removal-by-vertex-
// identity without per-vertex allocation (spec.md §4.3, §9 "Intrusive list
// under strict ownership").
//
// A single Pool owns three parallel integer arrays (prev, next, head)
// indexed by a unified namespace: vertex ids 0..n-1 and dynamically
// allocated list-header ids n, n+1, .... For a vertex v currently in a
// list headed by h: head[v]=h and prev[v]/next[v] link its neighbors
// inside that list. For a header h: prev[h] is the list's size, next[h]
// is its first vertex, head[h] is its last vertex. Released headers are
// pushed onto a free stack and reused by the next NewList call, so the
// pool never grows unbounded across a solve (P8).
package llist

import "fmt"

// invalidID marks "no header" (head[v]) or "no neighbor"/"empty list"
// (prev[v], next[v], next[h], head[h]).
const invalidID = -1

// Pool owns the shared prev/next/head arrays backing every List handed
// out by NewList. A Pool is not safe for concurrent use; the BMSSP core
// is single-threaded by design (spec.md §5).
type Pool struct {
	n        int   // number of vertex ids; vertices occupy [0, n)
	prev     []int // prev[v] = predecessor in list; prev[h] = size
	next     []int // next[v] = successor in list; next[h] = first vertex
	head     []int // head[v] = owning header id, or invalidID; head[h] = last vertex
	freeList []int // stack of released header ids, ready for reuse
}

// NewPool allocates a Pool over n vertex ids (0..n-1), all initially in
// no list.
func NewPool(n int) *Pool {
	p := &Pool{
		n:    n,
		prev: make([]int, n),
		next: make([]int, n),
		head: make([]int, n),
	}
	for v := 0; v < n; v++ {
		p.head[v] = invalidID
	}
	return p
}

// LiveHeaders reports the number of header ids currently allocated but
// not yet released back to the free stack — the pool's high-water mark
// is this value's running maximum across a solve (P8).
func (p *Pool) LiveHeaders() int {
	return len(p.head) - p.n - len(p.freeList)
}

// NewList allocates a header (reusing a released one if available) and
// returns an owning handle to a fresh, empty list.
func (p *Pool) NewList() *List {
	var h int
	if n := len(p.freeList); n > 0 {
		h = p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
	} else {
		h = len(p.head)
		p.prev = append(p.prev, 0)
		p.next = append(p.next, invalidID)
		p.head = append(p.head, invalidID)
	}
	p.prev[h] = 0
	p.next[h] = invalidID
	p.head[h] = invalidID

	return &List{pool: p, id: h}
}

// size returns the number of vertices currently in the list headed by h.
func (p *Pool) size(h int) int {
	return p.prev[h]
}

// inList reports whether v currently belongs to the list headed by h.
func (p *Pool) inList(h, v int) bool {
	return p.head[v] == h
}

// addToList splices v into the list headed by h. If v already belongs to
// h, it is a no-op. If v belongs to a different list, it is first removed
// from that list in O(1). Insertion position is unspecified (lists are
// unordered per spec.md §4.3) — v is spliced in as the new first element.
func (p *Pool) addToList(h, v int) {
	if p.head[v] == h {
		return
	}
	p.removeFromList(v)

	oldFirst := p.next[h]
	p.prev[v] = invalidID
	p.next[v] = oldFirst
	if oldFirst != invalidID {
		p.prev[oldFirst] = v
	} else {
		p.head[h] = v // list was empty: v is also the tail
	}
	p.next[h] = v
	p.prev[h]++
	p.head[v] = h
}

// removeFromList detaches v from whatever list it currently belongs to.
// No-op if v is in no list.
func (p *Pool) removeFromList(v int) {
	h := p.head[v]
	if h == invalidID {
		return
	}
	before, after := p.prev[v], p.next[v]
	if before != invalidID {
		p.next[before] = after
	} else {
		p.next[h] = after // v was first
	}
	if after != invalidID {
		p.prev[after] = before
	} else {
		p.head[h] = before // v was last
	}
	p.prev[h]--
	p.head[v] = invalidID
	p.prev[v] = invalidID
	p.next[v] = invalidID
}

// merge appends the chain owned by hSrc onto the chain owned by hDst,
// rewriting head[] for every moved vertex (O(|src|)), and leaves hSrc
// empty but still allocated — the caller decides whether to release it.
func (p *Pool) merge(hDst, hSrc int) {
	if p.prev[hSrc] == 0 {
		return
	}
	srcFirst, srcLast := p.next[hSrc], p.head[hSrc]
	for v := srcFirst; v != invalidID; v = p.next[v] {
		p.head[v] = hDst
	}

	dstLast := p.head[hDst]
	if dstLast == invalidID {
		p.next[hDst] = srcFirst
	} else {
		p.next[dstLast] = srcFirst
		p.prev[srcFirst] = dstLast
	}
	p.head[hDst] = srcLast
	p.prev[hDst] += p.prev[hSrc]

	p.next[hSrc] = invalidID
	p.head[hSrc] = invalidID
	p.prev[hSrc] = 0
}

// forEach visits every vertex currently in the list headed by h, in
// unspecified order.
func (p *Pool) forEach(h int, f func(v int)) {
	for v := p.next[h]; v != invalidID; v = p.next[v] {
		f(v)
	}
}

// release clears head[] for every remaining vertex in the list headed by
// h and returns h to the free stack for reuse. h must not be used again
// by its former owner after this call.
func (p *Pool) release(h int) {
	for v := p.next[h]; v != invalidID; {
		nextV := p.next[v]
		p.head[v] = invalidID
		v = nextV
	}
	p.prev[h] = 0
	p.next[h] = invalidID
	p.head[h] = invalidID
	p.freeList = append(p.freeList, h)
}

// String is a debugging aid reporting the pool's vertex count and current
// live-header count.
func (p *Pool) String() string {
	return fmt.Sprintf("llist.Pool{vertices=%d, liveHeaders=%d}", p.n, p.LiveHeaders())
}
