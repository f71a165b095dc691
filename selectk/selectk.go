// Package selectk implements worst-case linear-time k-th-order-statistic
// selection via the deterministic median-of-medians recurrence, over
// length.Length's lexicographic order.
//
// This is a prerequisite for the frontier manager's amortized Pull bound
// (spec.md §4.2): Block.locateMinQ must run in O(size), not O(size log size),
// or the amortized analysis the frontier manager depends on does not hold.
// It operates on Length rather than a bare float64 because spec.md §3/§9
// require every ordering in the system to resolve equal-distance ties via
// the full (length, hops, prev, this) tuple — confirmed by
// original_source/Length.h's linearLocateMinQ<Length>, which selects over
// a vector<Length>, never a vector of bare doubles.
// No retrieved example repo implements true linear selection — every pack
// Dijkstra/BMSSP variant reaches for sort.Slice or container/heap instead —
// so this package has no direct teacher; it is grounded on the *shape* of
// phr3nzy-duan-sssp's ds.go split() (which wants a median but settles for an
// O(n log n) sort) and replaces that shortcut with the real algorithm.
package selectk

import (
	"fmt"

	"github.com/duanbmssp/bmssp/length"
)

// ErrParameterOutOfRange is returned when q is not in [1, last-first] for
// the addressed subsequence, or when first > last.
var ErrParameterOutOfRange = fmt.Errorf("selectk: q out of range")

// groupSize is the classic median-of-medians group size. 5 is the smallest
// size that yields a worst-case linear recurrence (T(n) = T(n/5) + T(7n/10) + O(n)).
const groupSize = 5

// LocateMinQ permutes values[first:last] such that the q-th smallest
// value (1-indexed) within that range, under Length's lexicographic
// order, lands at index first+q-1: every index in [first, first+q-1)
// holds a Length <= it, every index in [first+q, last) holds a Length
// >= it. It returns that Length (vertex id recoverable from its This
// field, so no parallel payload slice is needed).
//
// q=1 (minimum) and q=last-first (maximum) are short-circuited to a single
// O(n) scan; every other q runs the full median-of-medians recursion.
// Worst-case O(last-first) regardless of input order.
func LocateMinQ(values []length.Length, q, first, last int) (length.Length, error) {
	if first < 0 || last > len(values) || first > last {
		return length.Length{}, fmt.Errorf("%w: first=%d last=%d len=%d", ErrParameterOutOfRange, first, last, len(values))
	}
	n := last - first
	if q < 1 || q > n {
		return length.Length{}, fmt.Errorf("%w: q=%d n=%d", ErrParameterOutOfRange, q, n)
	}

	if q == 1 {
		idx := scanExtreme(values, first, last, false)
		swap(values, first, idx)
		return values[first], nil
	}
	if q == n {
		idx := scanExtreme(values, first, last, true)
		swap(values, last-1, idx)
		return values[last-1], nil
	}

	selectNth(values, first, last, first+q-1)

	return values[first+q-1], nil
}

// scanExtreme returns the index of the minimum (max=false) or maximum
// (max=true) Length in values[first:last).
func scanExtreme(values []length.Length, first, last int, max bool) int {
	best := first
	for i := first + 1; i < last; i++ {
		if (max && values[best].Less(values[i])) || (!max && values[i].Less(values[best])) {
			best = i
		}
	}
	return best
}

// swap exchanges values[i]/values[j].
func swap(values []length.Length, i, j int) {
	if i == j {
		return
	}
	values[i], values[j] = values[j], values[i]
}

// selectNth rearranges values[first:last) so that the element that
// would occupy index `target` in sorted order is actually there, with
// everything before it <= it and everything after >= it. Deterministic
// median-of-medians pivot selection guarantees O(last-first) worst case.
func selectNth(values []length.Length, first, last, target int) {
	for {
		n := last - first
		if n <= groupSize {
			insertionSort(values, first, last)
			return
		}

		pivotValue := medianOfMedians(values, first, last)
		lo, hi := partition(values, first, last, pivotValue)

		switch {
		case target < lo:
			last = lo
		case target >= hi:
			first = hi
		default:
			// target is in [lo, hi), every index of which already holds
			// pivotValue: the invariant selectNth promises is satisfied.
			return
		}
	}
}

// medianOfMedians computes the median-of-medians pivot value for
// values[first:last) without disturbing the caller's ability to continue
// partitioning: it sorts each group of groupSize in place (cheap, O(n)
// total across all groups) and then recursively selects the median of the
// per-group medians, which it gathers into a small auxiliary slice.
func medianOfMedians(values []length.Length, first, last int) length.Length {
	n := last - first
	numGroups := (n + groupSize - 1) / groupSize

	medians := make([]length.Length, 0, numGroups)
	for g := 0; g < numGroups; g++ {
		gFirst := first + g*groupSize
		gLast := gFirst + groupSize
		if gLast > last {
			gLast = last
		}
		insertionSort(values, gFirst, gLast)
		mid := gFirst + (gLast-gFirst-1)/2
		medians = append(medians, values[mid])
	}

	// medians is a disposable scratch copy, not the caller's data, so
	// selecting within it in place is safe.
	midTarget := (len(medians) - 1) / 2
	selectNth(medians, 0, len(medians), midTarget)

	return medians[midTarget]
}

// partition rearranges values[first:last) into three contiguous runs:
// < pivotValue, == pivotValue, > pivotValue, and returns the [lo, hi)
// bounds of the equal-to-pivot run — the classic Dutch-national-flag
// partition, needed because pivotValue may repeat.
func partition(values []length.Length, first, last int, pivotValue length.Length) (lo, hi int) {
	lt, i, gt := first, first, last
	for i < gt {
		switch {
		case values[i].Less(pivotValue):
			swap(values, lt, i)
			lt++
			i++
		case pivotValue.Less(values[i]):
			gt--
			swap(values, i, gt)
		default:
			i++
		}
	}
	return lt, gt
}

// insertionSort sorts values[first:last) in place. O(groupSize^2) = O(1)
// per call since it is only ever used on fixed-size groups of at most
// groupSize elements.
func insertionSort(values []length.Length, first, last int) {
	for i := first + 1; i < last; i++ {
		for j := i; j > first && values[j].Less(values[j-1]); j-- {
			swap(values, j-1, j)
		}
	}
}
