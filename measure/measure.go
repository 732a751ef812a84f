// Package measure defines the monoidal cached-measurement policy threaded
// through every chunk and every layer of the chunked-sequence engine.
package measure

// Monoid is an associative combine with a two-sided identity. Combine is
// not required to be commutative: callers must respect left/right order,
// in particular when folding a freshly pushed front item against an
// existing cache.
type Monoid[M any] interface {
	Identity() M
	Combine(a, b M) M
}

// Invertible is a Monoid that additionally supports O(1) decremental
// update on pop. Measures without an inverse force chunks to refold on
// every pop; a measure should pick one strategy and keep it, never mix.
type Invertible[M any] interface {
	Monoid[M]
	Inverse(m M) M
}

// HasInverse reports whether m also implements Invertible[M].
func HasInverse[M any](m Monoid[M]) (Invertible[M], bool) {
	inv, ok := m.(Invertible[M])
	return inv, ok
}

// Measurer maps items to measures. Range folds a contiguous slice in one
// call; the zero-value behavior (no Range override) is provided by
// RangeMeasurer for measurers that only implement Item.
type Measurer[T, M any] interface {
	Monoid[M]
	Item(x T) M
	Range(xs []T) M
}

// RangeMeasurer adapts a type implementing only Item (plus the Monoid
// methods) into a full Measurer by folding left to right.
type RangeMeasurer[T, M any] struct {
	Monoid[M]
	ItemFunc func(T) M
}

func (r RangeMeasurer[T, M]) Item(x T) M { return r.ItemFunc(x) }

func (r RangeMeasurer[T, M]) Range(xs []T) M {
	acc := r.Identity()
	for _, x := range xs {
		acc = r.Combine(acc, r.ItemFunc(x))
	}
	return acc
}
