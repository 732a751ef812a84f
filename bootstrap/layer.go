// Package bootstrap implements the bootstrapped recursive chunked-sequence
// engine: a layer is either shallow (one chunk) or deep (two outer
// chunks, two inner chunks, and a recursively defined middle sequence whose
// items are pointers to chunks). Layer resolves the bootstrapping
// recursion by being generic over both its own item type T and the
// combined measure type M,
// and its middle field is fixed at Layer[node.Ptr[M], M] regardless of T —
// a single, finite, self-referential type rather than an unboundedly deep
// family of distinct types.
package bootstrap

import (
	"github.com/jwhiteside11/chunkseq/chunk"
	"github.com/jwhiteside11/chunkseq/measure"
	"github.com/jwhiteside11/chunkseq/node"
)

// Layer is the recursive engine. T is the item type held directly
// at this depth; every layer's middle holds pointers to this layer's own
// chunks, erased to node.Ptr[M], which is why middle's type never depends
// on T.
type Layer[T, M any] struct {
	monoid  measure.Monoid[M]
	meas    measure.Measurer[T, M]
	midMeas measure.Measurer[node.Ptr[M], M]
	capK    int

	deep    bool
	shallow *chunk.Chunk[T, M]

	frontOuter, frontInner *chunk.Chunk[T, M]
	middle                 *Layer[node.Ptr[M], M]
	backInner, backOuter   *chunk.Chunk[T, M]

	cached M
}

// New returns an empty (shallow) layer with chunk capacity capK, measuring
// items with meas.
func New[T, M any](meas measure.Measurer[T, M], capK int) *Layer[T, M] {
	if capK < 1 {
		panic("bootstrap: capacity must be >= 1")
	}
	l := &Layer[T, M]{monoid: meas, meas: meas, capK: capK}
	l.midMeas = newNodeMeasurer[M](meas)
	l.shallow = chunk.New[T, M](capK, meas)
	return l
}

func (l *Layer[T, M]) newChunk() *chunk.Chunk[T, M] { return chunk.New[T, M](l.capK, l.meas) }

func (l *Layer[T, M]) newMiddle() *Layer[node.Ptr[M], M] {
	m := &Layer[node.Ptr[M], M]{monoid: l.monoid, meas: l.midMeas, midMeas: l.midMeas, capK: l.capK}
	m.shallow = chunk.New[node.Ptr[M], M](l.capK, l.midMeas)
	return m
}

// IsShallow reports whether the layer is in its single-chunk shape.
func (l *Layer[T, M]) IsShallow() bool { return !l.deep }

// Empty reports whether the layer holds zero items.
func (l *Layer[T, M]) Empty() bool {
	if !l.deep {
		return l.shallow.Empty()
	}
	return l.frontOuter.Empty() && l.backOuter.Empty()
}

// Cached returns the fold of every item held, left to right.
func (l *Layer[T, M]) Cached() M {
	if !l.deep {
		return l.shallow.Cached()
	}
	return l.cached
}

// Len counts items by full traversal; used for debug checking and tests,
// never on a hot path.
func (l *Layer[T, M]) Len() int {
	n := 0
	l.Walk(func(T) { n++ })
	return n
}

func (l *Layer[T, M]) resetCached() {
	if !l.deep {
		return
	}
	acc := l.monoid.Identity()
	acc = l.monoid.Combine(acc, l.frontOuter.Cached())
	acc = l.monoid.Combine(acc, l.frontInner.Cached())
	acc = l.monoid.Combine(acc, l.middle.Cached())
	acc = l.monoid.Combine(acc, l.backInner.Cached())
	acc = l.monoid.Combine(acc, l.backOuter.Cached())
	l.cached = acc
}

func (l *Layer[T, M]) convertDeepToShallow() {
	l.deep = false
	l.shallow = l.newChunk()
	l.middle = nil
	l.frontOuter, l.frontInner, l.backInner, l.backOuter = nil, nil, nil, nil
}

func (l *Layer[T, M]) convertShallowToDeep(pushBack bool) {
	old := l.shallow
	l.shallow = nil
	l.deep = true
	l.middle = l.newMiddle()
	l.frontInner = l.newChunk()
	l.backInner = l.newChunk()
	if pushBack {
		l.frontOuter = old
		l.backOuter = l.newChunk()
	} else {
		l.backOuter = old
		l.frontOuter = l.newChunk()
	}
	l.cached = old.Cached()
}

// PushFront pushes x to the logical front of the sequence, in O(1)
// amortized time.
func (l *Layer[T, M]) PushFront(x T) {
	if !l.deep {
		if !l.shallow.Full() {
			l.shallow.PushFront(l.meas, x)
			return
		}
		l.convertShallowToDeep(false)
	}
	if l.frontOuter.Full() {
		if l.frontInner.Full() {
			l.pushBufferFrontForce(l.frontInner)
		}
		l.frontOuter, l.frontInner = l.frontInner, l.frontOuter
	}
	l.cached = l.monoid.Combine(l.meas.Item(x), l.cached)
	l.frontOuter.PushFront(l.meas, x)
}

// PushBack pushes x to the logical back of the sequence, in O(1) amortized
// time.
func (l *Layer[T, M]) PushBack(x T) {
	if !l.deep {
		if !l.shallow.Full() {
			l.shallow.PushBack(l.meas, x)
			return
		}
		l.convertShallowToDeep(true)
	}
	if l.backOuter.Full() {
		if l.backInner.Full() {
			l.pushBufferBackForce(l.backInner)
		}
		l.backOuter, l.backInner = l.backInner, l.backOuter
	}
	l.cached = l.monoid.Combine(l.cached, l.meas.Item(x))
	l.backOuter.PushBack(l.meas, x)
}

// PushNBack appends xs in order. When they fit in the chunk currently at
// the logical back (the shallow chunk, or backOuter once deep), this is a
// single bulk append into that chunk instead of len(xs) separate calls;
// otherwise it falls back to pushing one item at a time, which remains
// correct for a batch that spans a chunk boundary.
func (l *Layer[T, M]) PushNBack(xs []T) {
	if len(xs) == 0 {
		return
	}
	if !l.deep && l.shallow.Len()+len(xs) <= l.capK {
		l.shallow.PushNBack(l.meas, xs)
		return
	}
	if l.deep && l.backOuter.Len()+len(xs) <= l.capK {
		l.backOuter.PushNBack(l.meas, xs)
		l.cached = l.monoid.Combine(l.cached, l.meas.Range(xs))
		return
	}
	for _, x := range xs {
		l.PushBack(x)
	}
}

// PushNFront pushes xs to the logical front, preserving their relative
// order, so that the sequence reads xs... followed by whatever was already
// present. chunk has no PushNFront counterpart to fast-path into, so this
// is always a loop of single-item pushes.
func (l *Layer[T, M]) PushNFront(xs []T) {
	for i := len(xs) - 1; i >= 0; i-- {
		l.PushFront(xs[i])
	}
}

// PopNBack removes and returns the last n items, in their relative order.
// Mirrors PushNBack's fast path: when the current back chunk already holds
// all n items, this is a single chunk.PopNBack call rather than n separate
// pops.
func (l *Layer[T, M]) PopNBack(n int) []T {
	if n == 0 {
		return nil
	}
	if !l.deep && n <= l.shallow.Len() {
		return l.shallow.PopNBack(l.meas, n)
	}
	if l.deep && n <= l.backOuter.Len() {
		out := l.backOuter.PopNBack(l.meas, n)
		l.resetCached()
		l.tryPopulateBackOuter()
		return out
	}
	out := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = l.PopBack()
	}
	return out
}

// PopNFront removes and returns the first n items, in their relative
// order. No chunk-level fast path exists for the front; see PushNFront.
func (l *Layer[T, M]) PopNFront(n int) []T {
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = l.PopFront()
	}
	return out
}

// pushBufferFrontForce moves the whole (possibly empty) chunk c into the
// front of middle as a freshly allocated chunk pointer; c is left empty (its
// contents are swapped out in place, since c is a field passed by value and
// reassigning the local copy would not reach the caller's field).
func (l *Layer[T, M]) pushBufferFrontForce(c *chunk.Chunk[T, M]) {
	fresh := l.newChunk()
	*c, *fresh = *fresh, *c
	l.middle.PushFront(fresh)
}

func (l *Layer[T, M]) pushBufferBackForce(c *chunk.Chunk[T, M]) {
	fresh := l.newChunk()
	*c, *fresh = *fresh, *c
	l.middle.PushBack(fresh)
}

// pushBufferFront is the merging "push buffer" variant used by Concat:
// if c is empty, no-op; if middle is empty, push c as a new
// chunk; else try to merge c's contents into middle's front chunk when they
// jointly fit in one chunk, otherwise push c as a new chunk.
func (l *Layer[T, M]) pushBufferFront(c *chunk.Chunk[T, M]) {
	n := c.Len()
	if n == 0 {
		return
	}
	if l.middle.Empty() {
		l.pushBufferFrontForce(c)
		return
	}
	b := l.middle.Front().(*chunk.Chunk[T, M])
	if b.Len()+n > l.capK {
		l.pushBufferFrontForce(c)
		return
	}
	l.middle.PopFront()
	chunk.TransferFromBackToFront(l.meas, c, b, n)
	l.middle.PushFront(b)
}

func (l *Layer[T, M]) pushBufferBack(c *chunk.Chunk[T, M]) {
	n := c.Len()
	if n == 0 {
		return
	}
	if l.middle.Empty() {
		l.pushBufferBackForce(c)
		return
	}
	b := l.middle.Back().(*chunk.Chunk[T, M])
	if b.Len()+n > l.capK {
		l.pushBufferBackForce(c)
		return
	}
	l.middle.PopBack()
	chunk.TransferFromFrontToBack(l.meas, c, b, n)
	l.middle.PushBack(b)
}

// ensureEmptyInner forces front_inner and back_inner empty by pushing their
// contents, whole, into middle; used before a split so that only three
// sections (front_outer, middle, back_outer) need to be considered.
func (l *Layer[T, M]) ensureEmptyInner() {
	if !l.frontInner.Empty() {
		l.pushBufferFrontForce(l.frontInner)
	}
	if !l.backInner.Empty() {
		l.pushBufferBackForce(l.backInner)
	}
}

// Front returns the logically-first item without removing it.
func (l *Layer[T, M]) Front() T {
	if !l.deep {
		return l.shallow.Front()
	}
	switch {
	case !l.frontOuter.Empty():
		return l.frontOuter.Front()
	case !l.middle.Empty():
		return l.middle.Front().(*chunk.Chunk[T, M]).Front()
	case !l.backInner.Empty():
		return l.backInner.Front()
	default:
		return l.backOuter.Front()
	}
}

// Back returns the logically-last item without removing it.
func (l *Layer[T, M]) Back() T {
	if !l.deep {
		return l.shallow.Back()
	}
	switch {
	case !l.backOuter.Empty():
		return l.backOuter.Back()
	case !l.middle.Empty():
		return l.middle.Back().(*chunk.Chunk[T, M]).Back()
	case !l.frontInner.Empty():
		return l.frontInner.Back()
	default:
		return l.frontOuter.Back()
	}
}

func (l *Layer[T, M]) tryPopulateFrontOuter() {
	if !l.frontOuter.Empty() {
		return
	}
	switch {
	case !l.frontInner.Empty():
		l.frontOuter, l.frontInner = l.frontInner, l.frontOuter
	case !l.middle.Empty():
		l.frontOuter = l.middle.PopFront().(*chunk.Chunk[T, M])
	case !l.backInner.Empty():
		l.frontOuter, l.backInner = l.backInner, l.frontOuter
	case !l.backOuter.Empty():
		l.frontOuter, l.backOuter = l.backOuter, l.frontOuter
	default:
		l.convertDeepToShallow()
	}
}

func (l *Layer[T, M]) tryPopulateBackOuter() {
	if !l.backOuter.Empty() {
		return
	}
	switch {
	case !l.backInner.Empty():
		l.backOuter, l.backInner = l.backInner, l.backOuter
	case !l.middle.Empty():
		l.backOuter = l.middle.PopBack().(*chunk.Chunk[T, M])
	case !l.frontInner.Empty():
		l.backOuter, l.frontInner = l.frontInner, l.backOuter
	case !l.frontOuter.Empty():
		l.backOuter, l.frontOuter = l.frontOuter, l.backOuter
	default:
		l.convertDeepToShallow()
	}
}

// PopFront removes and returns the logically-first item.
func (l *Layer[T, M]) PopFront() T {
	if !l.deep {
		return l.shallow.PopFront(l.meas)
	}
	if l.frontOuter.Empty() {
		switch {
		case !l.middle.Empty():
			l.frontOuter = l.middle.PopFront().(*chunk.Chunk[T, M])
		case !l.backInner.Empty():
			l.frontOuter, l.backInner = l.backInner, l.frontOuter
		case !l.backOuter.Empty():
			l.frontOuter, l.backOuter = l.backOuter, l.frontOuter
		}
	}
	x := l.frontOuter.PopFront(l.meas)
	if inv, ok := measure.HasInverse[M](l.monoid); ok {
		l.cached = l.monoid.Combine(inv.Inverse(l.meas.Item(x)), l.cached)
	} else {
		l.resetCached()
	}
	l.tryPopulateFrontOuter()
	return x
}

// PopBack removes and returns the logically-last item.
func (l *Layer[T, M]) PopBack() T {
	if !l.deep {
		return l.shallow.PopBack(l.meas)
	}
	if l.backOuter.Empty() {
		switch {
		case !l.middle.Empty():
			l.backOuter = l.middle.PopBack().(*chunk.Chunk[T, M])
		case !l.frontInner.Empty():
			l.backOuter, l.frontInner = l.frontInner, l.backOuter
		case !l.frontOuter.Empty():
			l.backOuter, l.frontOuter = l.frontOuter, l.backOuter
		}
	}
	x := l.backOuter.PopBack(l.meas)
	if inv, ok := measure.HasInverse[M](l.monoid); ok {
		l.cached = l.monoid.Combine(l.cached, inv.Inverse(l.meas.Item(x)))
	} else {
		l.resetCached()
	}
	l.tryPopulateBackOuter()
	return x
}

// restoreBothOuterEmptyMiddleEmpty restores deep-layer invariant 4 after an
// operation (typically concat) may have broken it: if both outers are empty,
// the middle must be empty too, or the layer collapses to shallow.
func (l *Layer[T, M]) restoreBothOuterEmptyMiddleEmpty() {
	if !l.deep {
		return
	}
	if l.frontOuter.Empty() && l.backOuter.Empty() {
		if l.middle.Empty() {
			l.convertDeepToShallow()
			return
		}
		l.frontOuter = l.middle.PopFront().(*chunk.Chunk[T, M])
	}
}

// Concat appends other's items after this layer's items; other is left
// empty (shallow, zero-length).
func (l *Layer[T, M]) Concat(other *Layer[T, M]) {
	switch {
	case !other.deep:
		n := other.shallow.Len()
		for i := 0; i < n; i++ {
			l.PushBack(other.shallow.PopFront(other.meas))
		}
	case !l.deep:
		*l, *other = *other, *l
		n := other.shallow.Len()
		for i := 0; i < n; i++ {
			l.PushFront(other.shallow.PopBack(other.meas))
		}
	default:
		l.pushBufferBack(l.backInner)
		l.pushBufferBack(l.backOuter)
		other.pushBufferFront(other.frontInner)
		other.pushBufferFront(other.frontOuter)
		if !l.middle.Empty() && !other.middle.Empty() {
			c1 := l.middle.Back().(*chunk.Chunk[T, M])
			c2 := other.middle.Front().(*chunk.Chunk[T, M])
			if c1.Len()+c2.Len() <= l.capK {
				l.middle.PopBack()
				other.middle.PopFront()
				chunk.TransferFromFrontToBack(l.meas, c2, c1, c2.Len())
				l.middle.PushBack(c1)
			}
		}
		l.backInner, other.backInner = other.backInner, l.backInner
		l.backOuter, other.backOuter = other.backOuter, l.backOuter
		l.middle.Concat(other.middle)
		l.cached = l.monoid.Combine(l.cached, other.cached)
		l.restoreBothOuterEmptyMiddleEmpty()
		other.convertDeepToShallow()
	}
}

// section identifies where, in a layer's five parts, a split predicate
// transition was located.
type section int

const (
	sectionNowhere section = iota
	sectionFrontOuter
	sectionFrontInner
	sectionMiddle
	sectionBackInner
	sectionBackOuter
)

// searchInLayer scans the (up to) five sections left to right, combining
// their cached measures against prefix, and returns the prefix measure just
// before the section in which pred first becomes true.
func (l *Layer[T, M]) searchInLayer(pred func(M) bool, prefix M) (M, section) {
	cur := prefix
	if !l.deep {
		return prefix, sectionNowhere
	}
	if !l.frontOuter.Empty() {
		p := cur
		cur = l.monoid.Combine(cur, l.frontOuter.Cached())
		if pred(cur) {
			return p, sectionFrontOuter
		}
	}
	if !l.frontInner.Empty() {
		p := cur
		cur = l.monoid.Combine(cur, l.frontInner.Cached())
		if pred(cur) {
			return p, sectionFrontInner
		}
	}
	if !l.middle.Empty() {
		p := cur
		cur = l.monoid.Combine(cur, l.middle.Cached())
		if pred(cur) {
			return p, sectionMiddle
		}
	}
	if !l.backInner.Empty() {
		p := cur
		cur = l.monoid.Combine(cur, l.backInner.Cached())
		if pred(cur) {
			return p, sectionBackInner
		}
	}
	if !l.backOuter.Empty() {
		p := cur
		cur = l.monoid.Combine(cur, l.backOuter.Cached())
		if pred(cur) {
			return p, sectionBackOuter
		}
	}
	return cur, sectionNowhere
}

// Split partitions the layer at the point pred first becomes true over the
// left-to-right fold starting from prefix. On success it returns the prefix
// measure strictly before the pivot, the pivot item itself, a fresh layer
// holding everything after the pivot, and ok=true. l is mutated in place to
// hold everything before the pivot. If pred never becomes true, ok is false
// and l is left unmodified.
func (l *Layer[T, M]) Split(pred func(M) bool, prefix M) (resultPrefix M, pivot T, other *Layer[T, M], ok bool) {
	other = &Layer[T, M]{monoid: l.monoid, meas: l.meas, midMeas: l.midMeas, capK: l.capK}
	if !l.deep {
		other.shallow = l.newChunk()
		if l.shallow.Empty() {
			return prefix, pivot, other, false
		}
		full := l.monoid.Combine(prefix, l.shallow.Cached())
		if !pred(full) {
			return prefix, pivot, other, false
		}
		var rest *chunk.Chunk[T, M]
		resultPrefix, pivot, rest = l.shallow.Split(l.meas, prefix, pred)
		other.shallow = rest
		return resultPrefix, pivot, other, true
	}

	other.deep = true
	other.middle = other.newMiddle()
	other.frontInner = other.newChunk()
	other.backInner = other.newChunk()
	other.frontOuter = other.newChunk()
	other.backOuter = other.newChunk()

	l.ensureEmptyInner()
	p, pos := l.searchInLayer(pred, prefix)
	switch pos {
	case sectionFrontOuter:
		var rest *chunk.Chunk[T, M]
		resultPrefix, pivot, rest = l.frontOuter.Split(l.meas, p, pred)
		other.frontOuter = rest
		l.middle, other.middle = other.middle, l.middle
		l.backOuter, other.backOuter = other.backOuter, l.backOuter
	case sectionMiddle:
		l.backOuter, other.backOuter = other.backOuter, l.backOuter
		midPrefix, y, restMiddle, midOK := l.middle.Split(pred, p)
		if !midOK {
			panic("bootstrap: split predicate inconsistent with middle section")
		}
		other.middle = restMiddle
		l.backOuter = y.(*chunk.Chunk[T, M])
		var rest *chunk.Chunk[T, M]
		resultPrefix, pivot, rest = l.backOuter.Split(l.meas, midPrefix, pred)
		other.frontOuter = rest
	case sectionBackOuter:
		var rest *chunk.Chunk[T, M]
		resultPrefix, pivot, rest = l.backOuter.Split(l.meas, p, pred)
		other.backOuter = rest
	case sectionFrontInner, sectionBackInner:
		panic("bootstrap: inner section reached after ensureEmptyInner")
	case sectionNowhere:
		return prefix, pivot, other, false
	}

	l.resetCached()
	other.resetCached()
	l.restoreBothOuterEmptyMiddleEmpty()
	other.restoreBothOuterEmptyMiddleEmpty()
	return resultPrefix, pivot, other, true
}

// Locate finds the item at which pred first becomes true over the
// left-to-right fold starting from base, without mutating the layer, and
// returns the prefix measure accumulated strictly before that item.
//
// Precondition: pred holds somewhere within this layer's contents.
func (l *Layer[T, M]) Locate(pred func(M) bool, base M) (M, T) {
	if !l.deep {
		return l.shallow.Locate(l.meas, base, pred)
	}
	p, pos := l.searchInLayer(pred, base)
	switch pos {
	case sectionFrontOuter:
		return l.frontOuter.Locate(l.meas, p, pred)
	case sectionFrontInner:
		return l.frontInner.Locate(l.meas, p, pred)
	case sectionMiddle:
		chunkPrefix, ptr := l.middle.Locate(pred, p)
		return ptr.(*chunk.Chunk[T, M]).Locate(l.meas, chunkPrefix, pred)
	case sectionBackInner:
		return l.backInner.Locate(l.meas, p, pred)
	case sectionBackOuter:
		return l.backOuter.Locate(l.meas, p, pred)
	default:
		panic("bootstrap: locate predicate not satisfied")
	}
}

// ForEachSegment visits every underlying chunk's contents as one contiguous
// slice, left to right, skipping empty chunks. This gives a caller the
// chunk boundaries directly, which is cheaper than per-item iteration when
// the consumer can work on a whole contiguous run at once (e.g. a bulk
// copy).
func (l *Layer[T, M]) ForEachSegment(f func([]T)) {
	if !l.deep {
		if !l.shallow.Empty() {
			f(l.shallow.ToSlice())
		}
		return
	}
	emit := func(c *chunk.Chunk[T, M]) {
		if !c.Empty() {
			f(c.ToSlice())
		}
	}
	emit(l.frontOuter)
	emit(l.frontInner)
	l.middle.Walk(func(p node.Ptr[M]) { emit(p.(*chunk.Chunk[T, M])) })
	emit(l.backInner)
	emit(l.backOuter)
}

// Walk visits every item, left to right. It is O(n) and intended for
// testing, debug checking and the rarely-hot Len/ToSlice style helpers.
func (l *Layer[T, M]) Walk(f func(T)) {
	if !l.deep {
		n := l.shallow.Len()
		for i := 0; i < n; i++ {
			f(l.shallow.At(i))
		}
		return
	}
	walkChunk := func(c *chunk.Chunk[T, M]) {
		n := c.Len()
		for i := 0; i < n; i++ {
			f(c.At(i))
		}
	}
	walkChunk(l.frontOuter)
	walkChunk(l.frontInner)
	l.middle.Walk(func(p node.Ptr[M]) { walkChunk(p.(*chunk.Chunk[T, M])) })
	walkChunk(l.backInner)
	walkChunk(l.backOuter)
}
