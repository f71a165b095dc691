// Package block implements Block (spec.md §4.4): an unordered collection
// of vertices associated with a half-open distance interval
// [lowerBound, upperBound) and a soft capacity M, backed by a
// llist.List. Grounded on phr3nzy-duan-sssp/ds.go's block struct
// (head/tail/size/upperBound), reworked against llist.List and selectk
// instead of sort.Slice so Block.LocateMinQ meets the O(size) bound
// spec.md §4.2 requires of the frontier manager's amortized analysis.
//
// Bounds and thresholds are full length.Length values, not bare float64
// distances: original_source/Block.cpp's locateMinQ/extractLessThanOrEqual/
// min/max/upperBound/lowerBound are all typed Length, comparing under
// Length's full lexicographic order so that two vertices tied on distance
// never collapse into indistinguishable keys (spec.md §3/§9).
package block

import (
	"fmt"

	"github.com/duanbmssp/bmssp/length"
	"github.com/duanbmssp/bmssp/llist"
	"github.com/duanbmssp/bmssp/selectk"
)

// ErrThresholdOutOfRange names the "threshold outside [lowerBound,
// upperBound]" invariant violation. No Block method returns it:
// ExtractLessThanOrEqual accepts any threshold without checking it
// (one at or above upperBound drains the block), and LocateMinQ reports
// a bad q as a wrapped selectk.ErrParameterOutOfRange.
var ErrThresholdOutOfRange = fmt.Errorf("block: threshold out of range")

// Context supplies the shared state every Block operation needs: the
// distance array dhat (read-only from Block's perspective; relaxation
// happens elsewhere) and the list allocator backing every Block's items.
type Context struct {
	Dhat []length.Length
	Pool *llist.Pool
}

// Block is an unordered set of vertices with an associated half-open
// distance interval and a soft capacity. See spec.md §4.4.
type Block struct {
	ctx        *Context
	items      *llist.List
	upperBound length.Length // exclusive; changed only by Merge
	lowerBound length.Length // inclusive, may move per extend/extract/merge
	capacity   int           // soft cap M
}

// New constructs a Block over list with the given bounds and capacity.
// Argument order is fixed as (list, upperBound, lowerBound, capacity)
// per spec.md §9's resolution of that naming ambiguity; upperBound must
// be > lowerBound.
func New(ctx *Context, list *llist.List, upperBound, lowerBound length.Length, capacity int) *Block {
	return &Block{ctx: ctx, items: list, upperBound: upperBound, lowerBound: lowerBound, capacity: capacity}
}

// UpperBound returns the block's exclusive upper bound. Only Merge
// changes it.
func (b *Block) UpperBound() length.Length { return b.upperBound }

// LowerBound returns the block's inclusive lower bound.
func (b *Block) LowerBound() length.Length { return b.lowerBound }

// Capacity returns the block's soft capacity M.
func (b *Block) Capacity() int { return b.capacity }

// Size returns the number of vertices currently in the block. O(1).
func (b *Block) Size() int { return b.items.Len() }

// Oversized reports size > M.
func (b *Block) Oversized() bool { return b.Size() > b.capacity }

// Undersized reports size < M/2.
func (b *Block) Undersized() bool { return b.Size() < b.capacity/2 }

// Values returns the vertex ids currently in the block, unspecified
// order.
func (b *Block) Values() []int { return b.items.Values() }

// List exposes the underlying list handle, for callers (the frontier
// manager) that need to Merge/Close blocks directly.
func (b *Block) List() *llist.List { return b.items }

// AddItem appends v to the block's items. Suitability — whether
// dhat[v] actually lies in [lowerBound, upperBound) — is the caller's
// responsibility; RemoveUnsuit restores the invariant after bulk
// relaxations temporarily violate it.
func (b *Block) AddItem(v int) { b.items.Add(v) }

// ExtendLowerBound relaxes lowerBound downward. lowerBound moves
// downward only via this method or Merge, and upward only via
// ExtractLessThanOrEqual.
func (b *Block) ExtendLowerBound(newLower length.Length) {
	if newLower.Less(b.lowerBound) {
		b.lowerBound = newLower
	}
}

// Suit reports whether l lies in [lowerBound, upperBound), mirroring
// original_source/Block.cpp's suit(): the guard the frontier manager's
// Insert must pass before routing a vertex into this block.
func (b *Block) Suit(l length.Length) bool {
	return !l.Less(b.lowerBound) && l.Less(b.upperBound)
}

// CountNoGreater counts items with dhat[u] <= threshold. O(size).
func (b *Block) CountNoGreater(threshold length.Length) int {
	count := 0
	b.items.ForEach(func(v int) {
		if b.ctx.Dhat[v].LessEq(threshold) {
			count++
		}
	})
	return count
}

// Min returns the minimum dhat[u] over items, or upperBound if the
// block is empty (spec.md §4.4: "defaulting to upperBound/lowerBound
// when empty").
func (b *Block) Min() length.Length {
	if b.Size() == 0 {
		return b.upperBound
	}
	min := b.ctx.Dhat[b.firstVertex()]
	b.items.ForEach(func(v int) {
		if d := b.ctx.Dhat[v]; d.Less(min) {
			min = d
		}
	})
	return min
}

// Max returns the maximum dhat[u] over items, or lowerBound if the
// block is empty.
func (b *Block) Max() length.Length {
	if b.Size() == 0 {
		return b.lowerBound
	}
	max := b.ctx.Dhat[b.firstVertex()]
	b.items.ForEach(func(v int) {
		if d := b.ctx.Dhat[v]; max.Less(d) {
			max = d
		}
	})
	return max
}

// firstVertex returns an arbitrary member of the block, used to seed
// Min/Max scans. Only ever called when Size() > 0.
func (b *Block) firstVertex() int {
	var first int
	found := false
	b.items.ForEach(func(v int) {
		if !found {
			first = v
			found = true
		}
	})
	return first
}

// values builds the transient vector LocateMinQ needs: dhat[v] for every
// v currently in the block. The vertex id travels with each element via
// its This field, so no parallel id slice is needed.
func (b *Block) values() []length.Length {
	n := b.Size()
	values := make([]length.Length, 0, n)
	b.items.ForEach(func(v int) {
		values = append(values, b.ctx.Dhat[v])
	})
	return values
}

// LocateMinQ returns the q-th smallest dhat[u] among items, via
// linear-time selection (selectk.LocateMinQ), in O(size).
func (b *Block) LocateMinQ(q int) (length.Length, error) {
	values := b.values()
	val, err := selectk.LocateMinQ(values, q, 0, len(values))
	if err != nil {
		return length.Length{}, fmt.Errorf("block: locate min-q: %w", err)
	}
	return val, nil
}

// ExtractLessThanOrEqual partitions items into a new Block holding every
// item with dhat[u] < threshold (strict=true) or <= threshold
// (strict=false), leaving the rest in self. self.lowerBound becomes
// threshold. If threshold >= upperBound, the entire block drains into
// the returned Block (spec.md §4.4).
func (b *Block) ExtractLessThanOrEqual(threshold length.Length, strict bool) *Block {
	extracted := b.ctx.Pool.NewList()
	oldLower := b.lowerBound

	var toMove []int
	b.items.ForEach(func(v int) {
		d := b.ctx.Dhat[v]
		if (strict && d.Less(threshold)) || (!strict && d.LessEq(threshold)) {
			toMove = append(toMove, v)
		}
	})
	for _, v := range toMove {
		b.items.Erase(v)
		extracted.Add(v)
	}

	newUpper := threshold
	if b.upperBound.Less(newUpper) {
		newUpper = b.upperBound
	}
	b.lowerBound = threshold
	if b.upperBound.Less(b.lowerBound) {
		b.lowerBound = b.upperBound
	}

	return New(b.ctx, extracted, newUpper, oldLower, b.capacity)
}

// ExtractMinQ extracts the q smallest items via
// ExtractLessThanOrEqual(LocateMinQ(q), strict=false).
func (b *Block) ExtractMinQ(q int) (*Block, error) {
	threshold, err := b.LocateMinQ(q)
	if err != nil {
		return nil, err
	}
	return b.ExtractLessThanOrEqual(threshold, false), nil
}

// SplitAtMedian extracts the smaller half (extractMinQ(size/2)); the
// caller receives that smaller half, self retains the rest.
func (b *Block) SplitAtMedian() (*Block, error) {
	return b.ExtractMinQ(b.Size() / 2)
}

// Merge unites other's items into self; upperBound becomes the max of
// both, lowerBound the min (an empty other leaves lowerBound and the
// items unchanged and only widens upperBound). other's list is left empty but still
// allocated — the caller owns other and must Close it when done.
func (b *Block) Merge(other *Block) {
	if other == nil || other.Size() == 0 {
		if other != nil && b.upperBound.Less(other.upperBound) {
			b.upperBound = other.upperBound
		}
		return
	}
	b.items.Merge(other.items)
	if b.upperBound.Less(other.upperBound) {
		b.upperBound = other.upperBound
	}
	if other.lowerBound.Less(b.lowerBound) {
		b.lowerBound = other.lowerBound
	}
}

// RemoveUnsuit drops items whose dhat no longer lies in
// [lowerBound, upperBound), restoring the Block invariant after bulk
// relaxations elsewhere may have violated it.
func (b *Block) RemoveUnsuit() {
	var unsuit []int
	b.items.ForEach(func(v int) {
		if !b.Suit(b.ctx.Dhat[v]) {
			unsuit = append(unsuit, v)
		}
	})
	for _, v := range unsuit {
		b.items.Erase(v)
	}
}

// Close releases the block's underlying list back to the pool. The
// owner must call this on every path out of a Block-owning scope
// (spec.md §5).
func (b *Block) Close() {
	b.items.Close()
}
