package chunkseq

import "github.com/jwhiteside11/chunkseq/measure"

// Deque is a plain double-ended queue: push/pop at both ends in O(1)
// amortized, indexed access in O(log n), no client-supplied measure.
type Deque[T any] struct {
	*Sequence[T, struct{}]
}

// NewDeque returns an empty Deque with the given chunk capacity.
func NewDeque[T any](capK int) *Deque[T] {
	return &Deque[T]{Sequence: New[T, struct{}](measure.TrivialMeasurer[T]{}, capK)}
}

// IndexedDeque is a Deque whose only client measure is an explicit weight
// function, letting Split locate a position by accumulated weight instead
// of raw item count.
type IndexedDeque[T any] struct {
	*Sequence[T, int]
}

// NewIndexedDeque returns an empty IndexedDeque measuring each item's
// weight with weight.
func NewIndexedDeque[T any](weight func(T) int, capK int) *IndexedDeque[T] {
	return &IndexedDeque[T]{Sequence: New[T, int](measure.WeightFunc[T]{Weight: weight}, capK)}
}

// SplitByWeight splits at the first position where the accumulated weight
// exceeds target.
func (d *IndexedDeque[T]) SplitByWeight(target int) (right *IndexedDeque[T], ok bool) {
	r, ok := d.Sequence.SplitBy(func(w int) bool { return w > target })
	return &IndexedDeque[T]{Sequence: r}, ok
}

// Stack is a LIFO built on the same engine, pushing and popping from the
// back only; the embedded Sequence's Front/PushFront/PopFront reach the
// opposite end when a caller needs it (e.g. bulk draining into another
// container).
type Stack[T any] struct {
	*Sequence[T, struct{}]
}

// NewStack returns an empty Stack with the given chunk capacity.
func NewStack[T any](capK int) *Stack[T] {
	return &Stack[T]{Sequence: New[T, struct{}](measure.TrivialMeasurer[T]{}, capK)}
}

func (s *Stack[T]) Push(x T) { s.PushBack(x) }
func (s *Stack[T]) Pop() T   { return s.PopBack() }
func (s *Stack[T]) Peek() T  { return s.Back() }

// Bag is an unordered multiset view over the same engine: items keep
// whatever physical order push left them in (no reordering is ever
// performed), but callers are expected to treat that order as
// unobservable. It exists for workloads that only need fast bulk
// insert/removal and a cheap client-measure fold (e.g. a running total)
// without paying for positional semantics.
type Bag[T, C any] struct {
	*Sequence[T, C]
}

// NewBag returns an empty Bag measuring items with client.
func NewBag[T, C any](client measure.Measurer[T, C], capK int) *Bag[T, C] {
	return &Bag[T, C]{Sequence: New[T, C](client, capK)}
}

// Insert adds x; which end it lands on is unspecified.
func (b *Bag[T, C]) Insert(x T) { b.PushBack(x) }

// PushFront is overridden to behave as PushBack: a Bag has no front/back
// distinction, and leaving the embedded Sequence.PushFront promoted would
// give callers a real front push that the rest of the type's contract
// says not to rely on.
func (b *Bag[T, C]) PushFront(x T) { b.PushBack(x) }

// Extract removes and returns some item, or panics if the bag is empty.
func (b *Bag[T, C]) Extract() T { return b.PopBack() }
