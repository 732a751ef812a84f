// Package orderedmap is a worked example: an ordered key/value map
// built directly on chunkseq.Sequence, using the cached measure to do
// binary search instead of maintaining a separate tree. It mirrors the STL
// map example from the original chunked-sequence library, which keys its
// cached measure on "the last item seen so far" and relies on the sequence
// staying sorted by key at all times.
package orderedmap

import (
	"github.com/jwhiteside11/chunkseq/chunkseq"
	"github.com/jwhiteside11/chunkseq/measure"
)

// Entry is one key/value pair stored in the map, in sorted-by-key order.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is a sorted association list backed by a chunked sequence. Lookup,
// insert and delete are all O(log n) amortized: each works by splitting the
// sequence at the lower bound of the target key (using the cached
// last-key-seen measure, which is exactly the running maximum since the
// sequence is kept sorted), and reassembling it afterward.
type Map[K, V any] struct {
	seq  *chunkseq.Sequence[Entry[K, V], measure.Option[K]]
	less func(a, b K) bool
}

// New returns an empty Map ordered by less.
func New[K, V any](less func(a, b K) bool, capK int) *Map[K, V] {
	client := measure.RangeMeasurer[Entry[K, V], measure.Option[K]]{
		Monoid:   measure.TakeRight[K]{},
		ItemFunc: func(e Entry[K, V]) measure.Option[K] { return measure.Some(e.Key) },
	}
	return &Map[K, V]{
		seq:  chunkseq.New[Entry[K, V], measure.Option[K]](client, capK),
		less: less,
	}
}

func (m *Map[K, V]) equal(a, b K) bool { return !m.less(a, b) && !m.less(b, a) }

// lowerBound splits m.seq in place so that everything with key strictly
// less than key stays in m.seq, and the rest (starting at the first entry
// whose key is >= key) is returned as a fresh sequence. The caller must
// Concat the result back before the map is used again.
func (m *Map[K, V]) lowerBound(key K) *chunkseq.Sequence[Entry[K, V], measure.Option[K]] {
	// SplitBy already returns a valid, empty-or-not sequence even when the
	// predicate never triggers (key is greater than every existing key),
	// so there is no not-found case to special-case here.
	right, _ := m.seq.SplitBy(func(opt measure.Option[K]) bool {
		return opt.Present && !m.less(opt.Value, key)
	})
	return right
}

// Put inserts key/val, replacing any existing entry for key.
func (m *Map[K, V]) Put(key K, val V) {
	right := m.lowerBound(key)
	if right.Len() > 0 && m.equal(right.Front().Key, key) {
		right.PopFront()
	}
	right.PushFront(Entry[K, V]{Key: key, Value: val})
	m.seq.Concat(right)
}

// Get returns the value stored for key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	right := m.lowerBound(key)
	defer m.seq.Concat(right)
	if right.Len() > 0 && m.equal(right.Front().Key, key) {
		return right.Front().Value, true
	}
	var zero V
	return zero, false
}

// Delete removes key from the map, if present, and reports whether it was.
func (m *Map[K, V]) Delete(key K) bool {
	right := m.lowerBound(key)
	found := right.Len() > 0 && m.equal(right.Front().Key, key)
	if found {
		right.PopFront()
	}
	m.seq.Concat(right)
	return found
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.seq.Len() }

// ForEach visits every entry in ascending key order.
func (m *Map[K, V]) ForEach(f func(K, V)) {
	m.seq.ForEach(func(e Entry[K, V]) { f(e.Key, e.Value) })
}
