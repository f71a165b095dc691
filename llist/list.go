package llist

// List is an owning handle to a single list header allocated from a Pool.
// It carries only the header id and a back-pointer to its Pool; the
// actual link structure lives in the Pool's shared arrays.
//
// Ownership discipline: a List returned by Pool.NewList (the only way
// to obtain one) is owned by exactly one holder at a time
// (the frontier manager's D0/D1, an in-flight recursion variable, or the
// BMSSP output accumulator U — see spec.md §5). The owner must call
// Close when it is done, which releases the header back to the pool.
// Close is idempotent: a List whose header has already been released
// (id == invalidID) treats a second Close as a no-op, which is what lets
// us hand out a List by value/pointer without a distinct "moved-from"
// type — the zero-value-after-close sentinel does the same job.
type List struct {
	pool *Pool
	id   int
}

// ID returns the header id backing this list. Mainly useful for logging
// and tests; callers should not interpret the value beyond equality.
func (l *List) ID() int {
	return l.id
}

// Len returns the number of vertices currently in the list. O(1).
func (l *List) Len() int {
	if l.pool == nil {
		return 0
	}
	return l.pool.size(l.id)
}

// Empty reports whether the list has no vertices.
func (l *List) Empty() bool {
	return l.Len() == 0
}

// Contains reports whether v currently belongs to this list.
func (l *List) Contains(v int) bool {
	if l.pool == nil {
		return false
	}
	return l.pool.inList(l.id, v)
}

// Add inserts v into the list. A no-op if v is already here; if v
// belongs to a different list, it is first removed from that list in
// O(1) (spec.md §4.3).
func (l *List) Add(v int) {
	l.pool.addToList(l.id, v)
}

// Erase removes v from whatever list it currently belongs to. Undefined
// (but safe: a no-op) if v is in no list at all.
func (l *List) Erase(v int) {
	l.pool.removeFromList(v)
}

// Merge appends other's chain onto l's chain in O(|other|). After Merge,
// other is empty but keeps its own header id; it is not released — the
// caller still owns it and must Close it separately when done.
func (l *List) Merge(other *List) {
	if other == nil || other.pool == nil || other.Empty() {
		return
	}
	l.pool.merge(l.id, other.id)
}

// ForEach visits every vertex currently in the list, in unspecified
// order (lists are unordered, spec.md §5).
func (l *List) ForEach(f func(v int)) {
	if l.pool == nil {
		return
	}
	l.pool.forEach(l.id, f)
}

// Values collects every vertex currently in the list into a fresh slice,
// in unspecified order. O(size).
func (l *List) Values() []int {
	if l.pool == nil {
		return nil
	}
	out := make([]int, 0, l.Len())
	l.ForEach(func(v int) { out = append(out, v) })
	return out
}

// Close clears head[] for every remaining vertex and returns this list's
// header id to the pool's free stack for reuse. Idempotent: calling
// Close more than once, or on a List that was never holding live data,
// is a no-op. After Close, the List must not be used again.
func (l *List) Close() {
	if l.pool == nil || l.id == invalidID {
		return
	}
	l.pool.release(l.id)
	l.pool = nil
	l.id = invalidID
}
