package chunkseq

// Iterator walks a Sequence by position. It is a thin index cursor rather
// than a full finger-search structure: each Next/Prev call costs the same
// O(log n) as Sequence.At, while Seek and Index only touch the cursor. The original finger-search annotation machinery
// (a parent-pointer cache that lets a nearby lookup short-circuit most of
// the tree) is a pure performance optimization over this same observable
// behavior, and is not reimplemented here — see DESIGN.md for the tradeoff.
type Iterator[T, C any] struct {
	seq *Sequence[T, C]
	i   int
}

// Iterator returns a cursor positioned at index 0.
func (s *Sequence[T, C]) Iterator() *Iterator[T, C] {
	return &Iterator[T, C]{seq: s}
}

// HasNext reports whether Next can be called without going out of range.
func (it *Iterator[T, C]) HasNext() bool { return it.i < it.seq.Len() }

// Next returns the item at the current position and advances by one.
func (it *Iterator[T, C]) Next() T {
	x := it.seq.At(it.i)
	it.i++
	return x
}

// HasPrev reports whether Prev can be called.
func (it *Iterator[T, C]) HasPrev() bool { return it.i > 0 }

// Prev steps back by one and returns the item now at the current position.
func (it *Iterator[T, C]) Prev() T {
	it.i--
	return it.seq.At(it.i)
}

// Index returns the cursor's current position.
func (it *Iterator[T, C]) Index() int { return it.i }

// Seek moves the cursor to index i without reading anything.
func (it *Iterator[T, C]) Seek(i int) { it.i = i }
