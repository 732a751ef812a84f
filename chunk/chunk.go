// Package chunk implements the fixed-capacity chunk: a ring buffer plus a
// cached monoidal measure of its contents.
package chunk

import (
	"github.com/jwhiteside11/chunkseq/measure"
	"github.com/jwhiteside11/chunkseq/ring"
)

// Chunk wraps a ring.Buffer[T] with a cached fold of its contents under a
// measure.Measurer[T, M]. Every mutating method takes the measurer
// explicitly: chunks are stateless with respect to which measure is in
// play, which lets the same Chunk type serve every recursion depth of the
// bootstrapped engine (see node.Ptr).
type Chunk[T, M any] struct {
	buf    *ring.Buffer[T]
	cached M
}

// New allocates an empty chunk with the given capacity (K in the core
// design, typically 512, always >= 2... but these internal chunks
// (front_inner / back_inner of inner layers) tolerate any capacity >= 1).
func New[T, M any](capacity int, meas measure.Measurer[T, M]) *Chunk[T, M] {
	return &Chunk[T, M]{buf: ring.New[T](capacity), cached: meas.Identity()}
}

func (c *Chunk[T, M]) Len() int      { return c.buf.Len() }
func (c *Chunk[T, M]) Cap() int      { return c.buf.Cap() }
func (c *Chunk[T, M]) Full() bool    { return c.buf.Full() }
func (c *Chunk[T, M]) Empty() bool   { return c.buf.Empty() }
func (c *Chunk[T, M]) Cached() M     { return c.cached }
func (c *Chunk[T, M]) At(i int) T    { return c.buf.At(i) }
func (c *Chunk[T, M]) Set(meas measure.Measurer[T, M], i int, x T) {
	c.buf.Set(i, x)
	c.Recompute(meas)
}
func (c *Chunk[T, M]) Front() T      { return c.buf.Front() }
func (c *Chunk[T, M]) Back() T       { return c.buf.Back() }
func (c *Chunk[T, M]) ToSlice() []T  { return c.buf.ToSlice() }

func (c *Chunk[T, M]) ForEachSegment(lo, hi int, f func([]T)) {
	c.buf.ForEachSegment(lo, hi, f)
}

// Recompute refolds the cache from scratch; used on the no-inverse pop path
// and whenever a bulk structural change makes incremental maintenance not
// worth the bookkeeping (chunks are capacity-bounded, so this is O(K)).
func (c *Chunk[T, M]) Recompute(meas measure.Measurer[T, M]) {
	c.cached = meas.Range(c.buf.ToSlice())
}

func (c *Chunk[T, M]) PushFront(meas measure.Measurer[T, M], x T) {
	c.buf.PushFront(x)
	c.cached = meas.Combine(meas.Item(x), c.cached)
}

func (c *Chunk[T, M]) PushBack(meas measure.Measurer[T, M], x T) {
	c.buf.PushBack(x)
	c.cached = meas.Combine(c.cached, meas.Item(x))
}

func (c *Chunk[T, M]) PopFront(meas measure.Measurer[T, M]) T {
	x := c.buf.PopFront()
	if inv, ok := measure.HasInverse[M](meas); ok {
		c.cached = meas.Combine(inv.Inverse(meas.Item(x)), c.cached)
	} else {
		c.Recompute(meas)
	}
	return x
}

func (c *Chunk[T, M]) PopBack(meas measure.Measurer[T, M]) T {
	x := c.buf.PopBack()
	if inv, ok := measure.HasInverse[M](meas); ok {
		c.cached = meas.Combine(c.cached, inv.Inverse(meas.Item(x)))
	} else {
		c.Recompute(meas)
	}
	return x
}

// PushNBack appends xs in order; equivalent to, but cheaper than, calling
// PushBack in a loop.
func (c *Chunk[T, M]) PushNBack(meas measure.Measurer[T, M], xs []T) {
	for _, x := range xs {
		c.buf.PushBack(x)
	}
	c.cached = meas.Combine(c.cached, meas.Range(xs))
}

// PopNBack removes and returns the last n items, preserving their relative
// order in the returned slice.
func (c *Chunk[T, M]) PopNBack(meas measure.Measurer[T, M], n int) []T {
	out := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = c.buf.PopBack()
	}
	c.Recompute(meas)
	return out
}

// Locate finds the item within this chunk at which pred first becomes true
// over the fold starting from base, without mutating the chunk, and returns
// the prefix measure accumulated strictly before that item together with
// the item itself.
//
// Precondition: pred holds somewhere within this chunk's contents.
func (c *Chunk[T, M]) Locate(meas measure.Measurer[T, M], base M, pred func(M) bool) (prefix M, item T) {
	acc := base
	n := c.buf.Len()
	for i := 0; i < n; i++ {
		x := c.buf.At(i)
		next := meas.Combine(acc, meas.Item(x))
		if pred(next) {
			return acc, x
		}
		acc = next
	}
	panic("chunk: locate predicate not satisfied within chunk")
}

// TransferFromBackToFront moves the last n items of src onto the front of
// dst, preserving relative order, and keeps both caches consistent.
func TransferFromBackToFront[T, M any](meas measure.Measurer[T, M], src, dst *Chunk[T, M], n int) {
	ring.TransferBackToFront(src.buf, dst.buf, n)
	src.Recompute(meas)
	dst.Recompute(meas)
}

// TransferFromFrontToBack moves the first n items of src onto the back of
// dst, preserving relative order.
func TransferFromFrontToBack[T, M any](meas measure.Measurer[T, M], src, dst *Chunk[T, M], n int) {
	ring.TransferFrontToBack(src.buf, dst.buf, n)
	src.Recompute(meas)
	dst.Recompute(meas)
}

// AppendAll moves every item of src onto the back of dst, in order. src ends
// up empty.
func AppendAll[T, M any](meas measure.Measurer[T, M], src, dst *Chunk[T, M]) {
	ring.AppendAllBack(src.buf, dst.buf)
	src.Recompute(meas)
	dst.Recompute(meas)
}

// Split finds the smallest prefix of this chunk (starting the fold from
// base) whose accumulated measure
// satisfies pred, moves everything strictly right of that position into a
// freshly allocated chunk (which must not later be merged without checking
// capacity), and returns the prefix measure accumulated strictly before the
// pivot together with the pivot item itself.
//
// Precondition: pred holds somewhere within this chunk's contents, i.e. the
// caller has already established that base combined with this chunk's full
// cache satisfies pred but base alone does not.
func (c *Chunk[T, M]) Split(meas measure.Measurer[T, M], base M, pred func(M) bool) (prefix M, pivot T, other *Chunk[T, M]) {
	items := c.buf.ToSlice()
	acc := base
	pivotIdx := -1
	for i, x := range items {
		acc = meas.Combine(acc, meas.Item(x))
		if pred(acc) {
			pivotIdx = i
			break
		}
	}
	if pivotIdx < 0 {
		panic("chunk: split predicate not satisfied within chunk")
	}
	prefix = base
	for i := 0; i < pivotIdx; i++ {
		prefix = meas.Combine(prefix, meas.Item(items[i]))
	}
	pivot = items[pivotIdx]

	other = New[T, M](c.buf.Cap(), meas)
	for i := pivotIdx + 1; i < len(items); i++ {
		other.buf.PushBack(items[i])
	}
	other.Recompute(meas)

	c.buf.Clear()
	for i := 0; i < pivotIdx; i++ {
		c.buf.PushBack(items[i])
	}
	c.Recompute(meas)
	return prefix, pivot, other
}
