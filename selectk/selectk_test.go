package selectk_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duanbmssp/bmssp/length"
	"github.com/duanbmssp/bmssp/selectk"
)

// build turns a slice of bare distances into Lengths whose This field is
// the original index, so permutation can be checked after the fact without
// a separate payload array.
func build(lens []float64) []length.Length {
	out := make([]length.Length, len(lens))
	for i, l := range lens {
		out[i] = length.Length{Len: l, This: i, Prev: -1}
	}
	return out
}

// TestLocateMinQAgainstSortedOracle fuzzes LocateMinQ against sort.Float64s
// for every q in range, checking both the returned value and that the
// multiset of addressed values is preserved (P7).
func TestLocateMinQAgainstSortedOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(60) + 1
		base := make([]float64, n)
		for i := range base {
			base[i] = float64(rng.Intn(30))
		}

		sorted := append([]float64(nil), base...)
		sort.Float64s(sorted)

		for q := 1; q <= n; q++ {
			values := build(base)
			got, err := selectk.LocateMinQ(values, q, 0, n)
			require.NoError(t, err)
			assert.Equalf(t, sorted[q-1], got.Len, "n=%d q=%d", n, q)

			gotSorted := make([]float64, len(values))
			for i, v := range values {
				gotSorted[i] = v.Len
			}
			sort.Float64s(gotSorted)
			assert.Equal(t, sorted, gotSorted, "multiset of addressed values must be preserved")

			// Partition invariant: everything before the selected index is
			// <= it, everything after is >=.
			for i := 0; i < q-1; i++ {
				assert.LessOrEqual(t, values[i].Len, values[q-1].Len)
			}
			for i := q; i < n; i++ {
				assert.GreaterOrEqual(t, values[i].Len, values[q-1].Len)
			}
		}
	}
}

// TestLocateMinQThisFollowsValue verifies each Length's This field (the
// vertex id) is permuted in lock step with its value, so callers can
// recover which vertex ended up selected without a parallel payload slice.
func TestLocateMinQThisFollowsValue(t *testing.T) {
	values := build([]float64{5, 1, 4, 2, 3})
	for i := range values {
		values[i].This = int(values[i].Len) * 10
	}

	got, err := selectk.LocateMinQ(values, 3, 0, len(values))
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Len)
	assert.Equal(t, 30, got.This)
	assert.Equal(t, 30, values[2].This)
}

// TestLocateMinQBoundaryShortCircuits exercises q=1 (min) and q=n (max).
func TestLocateMinQBoundaryShortCircuits(t *testing.T) {
	values := build([]float64{9, 2, 7, 1, 8})

	minV, err := selectk.LocateMinQ(values, 1, 0, len(values))
	require.NoError(t, err)
	assert.Equal(t, 1.0, minV.Len)

	values = build([]float64{9, 2, 7, 1, 8})
	maxV, err := selectk.LocateMinQ(values, len(values), 0, len(values))
	require.NoError(t, err)
	assert.Equal(t, 9.0, maxV.Len)
}

// TestLocateMinQSubrange verifies the addressed subsequence can be a
// sub-range [first,last) rather than the whole slice.
func TestLocateMinQSubrange(t *testing.T) {
	values := build([]float64{100, 5, 1, 9, 3, 100})

	got, err := selectk.LocateMinQ(values, 2, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Len)
	assert.Equal(t, 100.0, values[0].Len)
	assert.Equal(t, 100.0, values[5].Len)
}

// TestLocateMinQOutOfRange verifies invariant-violation errors for bad q.
func TestLocateMinQOutOfRange(t *testing.T) {
	values := build([]float64{1, 2, 3})
	_, err := selectk.LocateMinQ(values, 0, 0, 3)
	assert.ErrorIs(t, err, selectk.ErrParameterOutOfRange)

	_, err = selectk.LocateMinQ(values, 4, 0, 3)
	assert.ErrorIs(t, err, selectk.ErrParameterOutOfRange)
}

// TestLocateMinQTieBreakIsStable verifies that when multiple Lengths share
// the same numeric distance, LocateMinQ still produces a clean split keyed
// on the full tuple rather than an arbitrary/unstable ordering among ties.
func TestLocateMinQTieBreakIsStable(t *testing.T) {
	values := []length.Length{
		{Len: 5, NumEdges: 2, Prev: 0, This: 3},
		{Len: 5, NumEdges: 1, Prev: 0, This: 3},
		{Len: 5, NumEdges: 1, Prev: 0, This: 1},
		{Len: 3, NumEdges: 0, Prev: 0, This: 0},
	}
	got, err := selectk.LocateMinQ(values, 2, 0, len(values))
	require.NoError(t, err)
	assert.Equal(t, length.Length{Len: 5, NumEdges: 1, Prev: 0, This: 1}, got)
}
