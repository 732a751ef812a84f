// Package chunkseq is the public surface of the library: Sequence wraps the
// bootstrapped layer engine behind a combined size/client measure,
// giving O(log n) indexing and predicate search on top of whatever client
// measure the caller supplies, with O(1) amortized push/pop at both ends.
package chunkseq

import (
	"github.com/jwhiteside11/chunkseq/bootstrap"
	"github.com/jwhiteside11/chunkseq/measure"
	"github.com/pkg/errors"
)

// DefaultChunkCapacity is the capacity (K) used when a caller does not have
// a specific reason to pick another value. 32 keeps chunk-local operations
// cheap (linear scans, full refolds) while still amortizing the per-push
// bookkeeping over a useful number of items.
const DefaultChunkCapacity = 32

// ErrOutOfRange is the panic value (wrapped with context) when At is given
// an index outside [0, Len()) or SplitAt a negative index.
var ErrOutOfRange = errors.New("chunkseq: index out of range")

// Sequence is a chunked sequence of T, cached under a client measure of
// type C combined with an automatic size measure via the Pair combinator:
// Len, At and index-based Split are always O(log n), regardless of what C
// is or how expensive it is to combine.
type Sequence[T, C any] struct {
	layer *bootstrap.Layer[T, measure.Pair[int, C]]
	meas  measure.Measurer[T, measure.Pair[int, C]]
	capK  int
}

// New returns an empty sequence measuring items with client, using chunks
// of capacity capK.
func New[T, C any](client measure.Measurer[T, C], capK int) *Sequence[T, C] {
	meas := measure.NewPairMeasurer[T, C](client)
	return &Sequence[T, C]{
		layer: bootstrap.New[T, measure.Pair[int, C]](meas, capK),
		meas:  meas,
		capK:  capK,
	}
}

// Len returns the number of items, in O(1).
func (s *Sequence[T, C]) Len() int { return measure.SizeOf(s.layer.Cached()) }

// Empty reports whether the sequence holds zero items.
func (s *Sequence[T, C]) Empty() bool { return s.layer.Empty() }

// Measure returns the fold of the client measure over every item, in O(1).
func (s *Sequence[T, C]) Measure() C { return s.layer.Cached().Client }

func (s *Sequence[T, C]) PushFront(x T) { s.layer.PushFront(x) }
func (s *Sequence[T, C]) PushBack(x T)  { s.layer.PushBack(x) }

func (s *Sequence[T, C]) PopFront() T { return s.layer.PopFront() }
func (s *Sequence[T, C]) PopBack() T  { return s.layer.PopBack() }

// PushNBack appends xs in order at the back. When the batch fits in the
// chunk currently at the back it is appended there in one bulk step with a
// single cache update, rather than len(xs) separate pushes; otherwise the
// items are pushed one at a time.
func (s *Sequence[T, C]) PushNBack(xs []T) { s.layer.PushNBack(xs) }

// PushNFront pushes xs at the front, preserving their relative order, so
// the sequence reads xs... followed by whatever was already present.
func (s *Sequence[T, C]) PushNFront(xs []T) { s.layer.PushNFront(xs) }

// PopNBack removes and returns the last n items, in their relative order.
func (s *Sequence[T, C]) PopNBack(n int) []T { return s.layer.PopNBack(n) }

// PopNFront removes and returns the first n items, in their relative order.
func (s *Sequence[T, C]) PopNFront(n int) []T { return s.layer.PopNFront(n) }

// Swap exchanges the contents of s and other in O(1), without touching any
// item or chunk.
func (s *Sequence[T, C]) Swap(other *Sequence[T, C]) {
	s.layer, other.layer = other.layer, s.layer
	s.meas, other.meas = other.meas, s.meas
	s.capK, other.capK = other.capK, s.capK
}

func (s *Sequence[T, C]) Front() T { return s.layer.Front() }
func (s *Sequence[T, C]) Back() T  { return s.layer.Back() }

// At returns the item at index i in O(log n), without mutating the
// sequence.
func (s *Sequence[T, C]) At(i int) T {
	if i < 0 || i >= s.Len() {
		panic(errors.Wrapf(ErrOutOfRange, "At(%d), len=%d", i, s.Len()))
	}
	identity := s.meas.Identity()
	_, x := s.layer.Locate(func(m measure.Pair[int, C]) bool { return m.Size > i }, identity)
	return x
}

// ForEach visits every item, left to right.
func (s *Sequence[T, C]) ForEach(f func(T)) { s.layer.Walk(f) }

// ForEachSegment visits each underlying chunk's contents as one contiguous
// slice, left to right.
func (s *Sequence[T, C]) ForEachSegment(f func([]T)) { s.layer.ForEachSegment(f) }

// Concat appends other's items after s's items in amortized O(log(min(m,
// n))). other is left empty.
func (s *Sequence[T, C]) Concat(other *Sequence[T, C]) {
	s.layer.Concat(other.layer)
}

// Split partitions s at the point pred first becomes true over the
// left-to-right fold of the combined measure. s is mutated to hold
// everything before the pivot; the returned sequence holds everything
// after it (the pivot itself is not included in either half — see SplitAt
// and SplitBy for the common index/client-measure cases, which restore the
// pivot to the right half). ok is false if pred never becomes true, in
// which case s is unchanged and the returned sequence is empty.
func (s *Sequence[T, C]) Split(pred func(measure.Pair[int, C]) bool) (pivot T, right *Sequence[T, C], ok bool) {
	_, pivot, restLayer, ok := s.layer.Split(pred, s.meas.Identity())
	right = &Sequence[T, C]{layer: restLayer, meas: s.meas, capK: s.capK}
	return pivot, right, ok
}

// SplitAt splits s into [0, i) and [i, Len()). s is mutated to hold the
// left half; the right half is returned as a new sequence. Panics if i is
// negative.
func (s *Sequence[T, C]) SplitAt(i int) *Sequence[T, C] {
	if i < 0 {
		panic(errors.Wrapf(ErrOutOfRange, "SplitAt(%d)", i))
	}
	if i >= s.Len() {
		return New[T, C](pairClient(s.meas), s.capK)
	}
	pivot, right, ok := s.Split(func(m measure.Pair[int, C]) bool { return m.Size > i })
	if !ok {
		return New[T, C](pairClient(s.meas), s.capK)
	}
	right.PushFront(pivot)
	return right
}

// SplitBy splits s at the first point where pred becomes true over the
// fold of the client measure alone. The pivot item is restored to the
// front of the right half, matching SplitAt's convention.
func (s *Sequence[T, C]) SplitBy(pred func(C) bool) (right *Sequence[T, C], ok bool) {
	pivot, right, ok := s.Split(func(m measure.Pair[int, C]) bool { return pred(m.Client) })
	if !ok {
		return right, false
	}
	right.PushFront(pivot)
	return right, true
}

// Insert places x at the position it points to, pushing the item formerly
// there (and everything after it) one slot to the right, and returns a
// cursor positioned at x. it is not usable after the call.
func (s *Sequence[T, C]) Insert(it *Iterator[T, C], x T) *Iterator[T, C] {
	i := it.Index()
	right := s.SplitAt(i)
	right.PushFront(x)
	s.Concat(right)
	return &Iterator[T, C]{seq: s, i: i}
}

// Erase removes the items in [first, last), closing the gap, and returns a
// cursor positioned where the erased range began. first and last are not
// usable after the call.
func (s *Sequence[T, C]) Erase(first, last *Iterator[T, C]) *Iterator[T, C] {
	lo, hi := first.Index(), last.Index()
	tail := s.SplitAt(hi)
	s.SplitAt(lo)
	s.Concat(tail)
	return &Iterator[T, C]{seq: s, i: lo}
}

// pairClient recovers a client-only measurer for building fresh sequences
// out of split/instantiation helpers without asking the caller to keep a
// second reference around. It relies on Pair measurers always being built
// through NewPairMeasurer.
func pairClient[T, C any](m measure.Measurer[T, measure.Pair[int, C]]) measure.Measurer[T, C] {
	return clientOnly[T, C]{pair: m}
}

// clientOnly adapts a combined Pair measurer back into a plain client
// measurer by projecting out the Client component; Item/Range results are
// computed directly rather than by calling the wrapped pair measurer twice,
// since Pair itself has no public way to go the other direction.
type clientOnly[T, C any] struct {
	pair measure.Measurer[T, measure.Pair[int, C]]
}

func (c clientOnly[T, C]) Identity() C           { return c.pair.Identity().Client }
func (c clientOnly[T, C]) Combine(a, b C) C      { return c.pair.Combine(measure.Pair[int, C]{Client: a}, measure.Pair[int, C]{Client: b}).Client }
func (c clientOnly[T, C]) Item(x T) C            { return c.pair.Item(x).Client }
func (c clientOnly[T, C]) Range(xs []T) C        { return c.pair.Range(xs).Client }
