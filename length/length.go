// Package length defines the comparison-addition key attached to every
// vertex during a BMSSP solve: the current best distance plus enough
// tie-break metadata to make the key unique across vertices that happen
// to share a numeric distance.
//
// A plain float64 distance is not enough here. The frontier manager keys
// its D1 map on Length and the base case keys its H map on Length too;
// both require a *total* order with no collisions between distinct
// vertices. Length supplies that by carrying hop count and the last two
// vertices on the best known path alongside the numeric length, and
// ordering lexicographically over the full tuple.
package length

import "math"

// Length is the lexicographic key (length, numOfEdges, prev, this).
//
// It is a small, comparable value type: two Lengths are equal iff all
// four fields match, which is exactly the equality Go gives a struct of
// comparable fields for free, so Length can be used directly as a map
// key without a custom Equal method.
type Length struct {
	// Len is the current best-known path distance. Non-negative, or
	// +Inf for "unreached".
	Len float64
	// NumEdges is the hop count of the path achieving Len.
	NumEdges int
	// Prev is the vertex immediately before This on that path.
	Prev int
	// This is the vertex this Length describes.
	This int
}

// Zero returns the identity Length for vertex v: zero distance, zero
// hops, no predecessor. Solve seeds dhat[0] with Zero(0).
func Zero(v int) Length {
	return Length{Len: 0, NumEdges: 0, Prev: noPrev, This: v}
}

// noPrev marks "no predecessor on the path yet" (the source vertex).
const noPrev = -1

// Infinity returns the Length used to initialize every non-source
// vertex: it compares greater than any finite Length regardless of the
// remaining fields, since Less/Compare checks Len first.
func Infinity(v int) Length {
	return Length{Len: math.Inf(1), NumEdges: 0, Prev: noPrev, This: v}
}

// Bound constructs a pure Length threshold at distance d, not tied to
// any vertex's path. Blocks and the Frontier Manager carry their B/
// upperBound/currentLowerBound as full Length values per spec.md §3/§9
// (so D1's keys and Block thresholds never collapse to a bare float),
// but the one bound every solve starts with — "no limit yet" — isn't
// any vertex's achieved distance. Mirrors original_source/Length.h's
// default-constructed Length(), which likewise carries no real vertex
// in its Prev/This fields.
func Bound(d float64) Length {
	return Length{Len: d, NumEdges: 0, Prev: noPrev, This: noPrev}
}

// PosInf is Bound(+Inf): the top-level upper bound a BMSSP solve
// begins with, before any recursion has narrowed it.
func PosInf() Length {
	return Bound(math.Inf(1))
}

// IsInfinite reports whether l's numeric distance is +Inf, i.e. whether
// the vertex it describes is (so far, or finally) unreached.
func (l Length) IsInfinite() bool {
	return math.IsInf(l.Len, 1)
}

// Relax computes the candidate Length obtained by extending the path
// ending at l with an edge (l.This, v, w). The result always has one
// more hop and records l.This as the new predecessor.
//
// Addition saturates at +Inf: if l.Len is already +Inf, the result stays
// +Inf no matter how small w is, since IEEE-754 float addition already
// gives Inf + finite = Inf.
func (l Length) Relax(v int, w float64) Length {
	return Length{Len: l.Len + w, NumEdges: l.NumEdges + 1, Prev: l.This, This: v}
}

// Compare returns -1, 0, or 1 as l sorts before, equal to, or after o,
// comparing (Len, NumEdges, Prev, This) in that order.
func (l Length) Compare(o Length) int {
	if l.Len != o.Len {
		if l.Len < o.Len {
			return -1
		}
		return 1
	}
	if l.NumEdges != o.NumEdges {
		if l.NumEdges < o.NumEdges {
			return -1
		}
		return 1
	}
	if l.Prev != o.Prev {
		if l.Prev < o.Prev {
			return -1
		}
		return 1
	}
	if l.This != o.This {
		if l.This < o.This {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether l sorts strictly before o under the lexicographic
// order (Len, NumEdges, Prev, This).
func (l Length) Less(o Length) bool {
	return l.Compare(o) < 0
}

// LessEq reports whether l sorts before or equal to o.
func (l Length) LessEq(o Length) bool {
	return l.Compare(o) <= 0
}
