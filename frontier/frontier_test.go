package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duanbmssp/bmssp/block"
	"github.com/duanbmssp/bmssp/frontier"
	"github.com/duanbmssp/bmssp/length"
	"github.com/duanbmssp/bmssp/llist"
)

func newManager(t *testing.T, m int, upperBound float64, lens ...float64) (*frontier.Manager, *block.Context) {
	t.Helper()
	dhat := make([]length.Length, len(lens))
	for i, l := range lens {
		dhat[i] = length.Length{Len: l, This: i, Prev: -1}
	}
	ctx := &block.Context{Dhat: dhat, Pool: llist.NewPool(len(lens))}
	return frontier.New(ctx, m, length.Bound(upperBound)), ctx
}

// TestInsertBasic verifies Insert places vertices reachable via
// Pull and tracks currentLowerBound (P4).
func TestInsertBasic(t *testing.T) {
	fm, _ := newManager(t, 4, 100, 5, 1, 9, 3)
	for v := 0; v < 4; v++ {
		require.NoError(t, fm.Insert(v))
	}
	assert.Equal(t, 1.0, fm.CurrentLowerBound().Len)

	out, bound, err := fm.Pull()
	require.NoError(t, err)
	assert.Equal(t, 100.0, bound.Len)
	assert.Equal(t, 4, out.Size())
	assert.True(t, fm.Empty())
}

// TestInsertIgnoresAtOrAboveUpperBound verifies vertices with
// dhat >= B never enter the frontier: of lengths 10, 20, 5 under B=10,
// only vertex 2 comes back out.
func TestInsertIgnoresAtOrAboveUpperBound(t *testing.T) {
	fm, _ := newManager(t, 4, 10, 10, 20, 5)
	for v := 0; v < 3; v++ {
		require.NoError(t, fm.Insert(v))
	}
	out, _, err := fm.Pull()
	require.NoError(t, err)
	assert.Equal(t, []int{2}, out.Values())
	assert.True(t, fm.Empty())
}

// TestInsertSplitsOversizedBlock inserts far more vertices than one
// block's capacity, forcing repeated D1 splits, and verifies every
// vertex is still returned by the Pulls that drain the frontier.
func TestInsertSplitsOversizedBlock(t *testing.T) {
	lens := make([]float64, 20)
	for i := range lens {
		lens[i] = float64(20 - i)
	}
	fm, _ := newManager(t, 4, 100, lens...)
	for v := 0; v < 20; v++ {
		require.NoError(t, fm.Insert(v))
	}

	total := 0
	for {
		out, _, err := fm.Pull()
		require.NoError(t, err)
		total += out.Size()
		out.Close()
		if fm.Empty() {
			break
		}
	}
	assert.Equal(t, 20, total)
}

// TestBatchPrependThenPullOrdersByBound verifies BatchPrepend makes
// its contents available and Pull drains D0 before inflating from D1.
func TestBatchPrependThenPullOrdersByBound(t *testing.T) {
	fm, ctx := newManager(t, 2, 100, 1, 2, 3, 4)
	pool := ctx.Pool

	k := block.New(ctx, pool.NewList(), length.Bound(2), length.Bound(0), 10)
	k.AddItem(0)
	k.AddItem(1)
	require.NoError(t, fm.BatchPrepend(k))

	require.NoError(t, fm.Insert(2))
	require.NoError(t, fm.Insert(3))

	out, _, err := fm.Pull()
	require.NoError(t, err)
	for _, v := range out.Values() {
		assert.Contains(t, []int{0, 1}, v, "D0's contents should drain before D1 inflates the pull")
	}
	out.Close()
}

// TestPullProgress verifies each Pull either returns at least one
// vertex or leaves both D0 and D1 empty (P4).
func TestPullProgress(t *testing.T) {
	fm, _ := newManager(t, 3, 50, 4, 8, 15, 23, 30, 41)
	for v := 0; v < 6; v++ {
		require.NoError(t, fm.Insert(v))
	}

	for !fm.Empty() {
		out, _, err := fm.Pull()
		require.NoError(t, err)
		assert.Greater(t, out.Size(), 0)
		out.Close()
	}
}

// TestPullM1DrainsSmallestFirst verifies the M=1 special case returns
// the globally smallest remaining vertex each time.
func TestPullM1DrainsSmallestFirst(t *testing.T) {
	fm, ctx := newManager(t, 1, 100, 5, 1, 9, 3)
	for v := 0; v < 4; v++ {
		require.NoError(t, fm.Insert(v))
	}

	var order []float64
	for !fm.Empty() {
		out, _, err := fm.Pull()
		require.NoError(t, err)
		for _, v := range out.Values() {
			order = append(order, ctx.Dhat[v].Len)
		}
		out.Close()
	}
	assert.Equal(t, []float64{1, 3, 5, 9}, order)
}

// TestPullWhenTotalFitsUnderCapacityDrainsEverything verifies the
// size(S0)+size(S1) <= M short-circuit path.
func TestPullWhenTotalFitsUnderCapacityDrainsEverything(t *testing.T) {
	fm, _ := newManager(t, 10, 50, 1, 2, 3)
	for v := 0; v < 3; v++ {
		require.NoError(t, fm.Insert(v))
	}

	out, bound, err := fm.Pull()
	require.NoError(t, err)
	assert.Equal(t, 50.0, bound.Len)
	assert.Equal(t, 3, out.Size())
	assert.True(t, fm.Empty())
}

// TestInsertTiesProduceCleanSplit verifies that when several vertices
// share the exact same Len, the Length tuple's hop/prev/this tie-break
// still gives Insert/SplitAtMedian a well-defined, total order to split
// on — the scenario where a bare-float64 key would collapse distinct
// vertices into one indistinguishable bucket.
func TestInsertTiesProduceCleanSplit(t *testing.T) {
	dhat := make([]length.Length, 8)
	for i := range dhat {
		// All tied at Len=5; only NumEdges/This distinguish them.
		dhat[i] = length.Length{Len: 5, NumEdges: i, Prev: -1, This: i}
	}
	ctx := &block.Context{Dhat: dhat, Pool: llist.NewPool(len(dhat))}
	fm := frontier.New(ctx, 2, length.Bound(100))

	for v := range dhat {
		require.NoError(t, fm.Insert(v))
	}

	total := 0
	for !fm.Empty() {
		out, _, err := fm.Pull()
		require.NoError(t, err)
		total += out.Size()
		out.Close()
	}
	assert.Equal(t, len(dhat), total, "every tied vertex must still be reachable via Pull (P4)")
}
