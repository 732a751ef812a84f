package measure

// Pair is the internal combiner for indexed access: a combined measure that
// carries a size component alongside an arbitrary client measure, so that
// every backing (and, in this implementation, every chunk at every depth)
// can answer "skip to index i" in O(1) per node without ever touching the
// client measure function.
type Pair[A, B any] struct {
	Size   A
	Client B
}

// SizeOf extracts the size component of a combined measure, the
// "size_access" accessor.
func SizeOf[B any](m Pair[int, B]) int { return m.Size }

// pairMonoid and pairMonoidInv mirror the split used for node measures in
// the bootstrap package: an Inverse method must only exist on the concrete
// type when both components genuinely support it, or HasInverse would
// falsely report every PairMonoid as invertible regardless of its
// components.
type pairMonoid[A, B any] struct {
	sizeM   Monoid[A]
	clientM Monoid[B]
}

func (p pairMonoid[A, B]) Identity() Pair[A, B] {
	return Pair[A, B]{Size: p.sizeM.Identity(), Client: p.clientM.Identity()}
}

func (p pairMonoid[A, B]) Combine(x, y Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{Size: p.sizeM.Combine(x.Size, y.Size), Client: p.clientM.Combine(x.Client, y.Client)}
}

type pairMonoidInv[A, B any] struct {
	sizeM   Invertible[A]
	clientM Invertible[B]
}

func (p pairMonoidInv[A, B]) Identity() Pair[A, B] {
	return Pair[A, B]{Size: p.sizeM.Identity(), Client: p.clientM.Identity()}
}

func (p pairMonoidInv[A, B]) Combine(x, y Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{Size: p.sizeM.Combine(x.Size, y.Size), Client: p.clientM.Combine(x.Client, y.Client)}
}

func (p pairMonoidInv[A, B]) Inverse(x Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{Size: p.sizeM.Inverse(x.Size), Client: p.clientM.Inverse(x.Client)}
}

// NewPairMonoid combines two monoids pointwise, returning the invertible
// variant only when both sizeM and clientM are themselves invertible.
func NewPairMonoid[A, B any](sizeM Monoid[A], clientM Monoid[B]) Monoid[Pair[A, B]] {
	sizeInv, okA := HasInverse(sizeM)
	clientInv, okB := HasInverse(clientM)
	if okA && okB {
		return pairMonoidInv[A, B]{sizeM: sizeInv, clientM: clientInv}
	}
	return pairMonoid[A, B]{sizeM: sizeM, clientM: clientM}
}

// pairMeasurer and pairMeasurerInv lift a client Measurer[T,B] into a
// combined Measurer[T, Pair[int,B]] that also counts items — this is the
// measurer every chunk in this implementation actually uses, so that random
// access stays O(log n) independent of the client measure. The size component
// is always invertible (plain integer subtraction), so the combined
// measurer is invertible exactly when the client measurer is.
type pairMeasurer[T, B any] struct {
	client Measurer[T, B]
}

func (p pairMeasurer[T, B]) Identity() Pair[int, B] {
	return Pair[int, B]{Size: 0, Client: p.client.Identity()}
}

func (p pairMeasurer[T, B]) Combine(a, b Pair[int, B]) Pair[int, B] {
	return Pair[int, B]{Size: a.Size + b.Size, Client: p.client.Combine(a.Client, b.Client)}
}

func (p pairMeasurer[T, B]) Item(x T) Pair[int, B] {
	return Pair[int, B]{Size: 1, Client: p.client.Item(x)}
}

func (p pairMeasurer[T, B]) Range(xs []T) Pair[int, B] {
	return Pair[int, B]{Size: len(xs), Client: p.client.Range(xs)}
}

type pairMeasurerInv[T, B any] struct {
	client    Measurer[T, B]
	clientInv Invertible[B]
}

func (p pairMeasurerInv[T, B]) Identity() Pair[int, B] {
	return Pair[int, B]{Size: 0, Client: p.client.Identity()}
}

func (p pairMeasurerInv[T, B]) Combine(a, b Pair[int, B]) Pair[int, B] {
	return Pair[int, B]{Size: a.Size + b.Size, Client: p.client.Combine(a.Client, b.Client)}
}

func (p pairMeasurerInv[T, B]) Item(x T) Pair[int, B] {
	return Pair[int, B]{Size: 1, Client: p.client.Item(x)}
}

func (p pairMeasurerInv[T, B]) Range(xs []T) Pair[int, B] {
	return Pair[int, B]{Size: len(xs), Client: p.client.Range(xs)}
}

func (p pairMeasurerInv[T, B]) Inverse(a Pair[int, B]) Pair[int, B] {
	return Pair[int, B]{Size: -a.Size, Client: p.clientInv.Inverse(a.Client)}
}

// NewPairMeasurer lifts client into a combined Measurer[T, Pair[int,B]],
// selecting the invertible variant iff client's monoid is invertible.
func NewPairMeasurer[T, B any](client Measurer[T, B]) Measurer[T, Pair[int, B]] {
	if inv, ok := HasInverse[B](client); ok {
		return pairMeasurerInv[T, B]{client: client, clientInv: inv}
	}
	return pairMeasurer[T, B]{client: client}
}
