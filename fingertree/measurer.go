package fingertree

import (
	"github.com/jwhiteside11/chunkseq/measure"
	"github.com/jwhiteside11/chunkseq/node"
)

// nodeMeasurer lifts a client monoid on M into a Measurer[node.Ptr[M], M]
// for the spine, the same trick bootstrap/measurer.go uses for Layer's
// middle chunks: a node.Ptr's own Cached() is already its fold, so Item is
// just that. Duplicated rather than shared because it's a handful of
// lines and keeping fingertree free of any bootstrap import keeps the two
// backings genuinely swappable, not secretly coupled.
type nodeMeasurer[M any] struct {
	monoid measure.Monoid[M]
}

func (n nodeMeasurer[M]) Identity() M          { return n.monoid.Identity() }
func (n nodeMeasurer[M]) Combine(a, b M) M     { return n.monoid.Combine(a, b) }
func (n nodeMeasurer[M]) Item(p node.Ptr[M]) M { return p.Cached() }
func (n nodeMeasurer[M]) Range(ps []node.Ptr[M]) M {
	acc := n.monoid.Identity()
	for _, p := range ps {
		acc = n.monoid.Combine(acc, p.Cached())
	}
	return acc
}

type nodeMeasurerInv[M any] struct {
	monoid measure.Invertible[M]
}

func (n nodeMeasurerInv[M]) Identity() M          { return n.monoid.Identity() }
func (n nodeMeasurerInv[M]) Combine(a, b M) M     { return n.monoid.Combine(a, b) }
func (n nodeMeasurerInv[M]) Inverse(m M) M        { return n.monoid.Inverse(m) }
func (n nodeMeasurerInv[M]) Item(p node.Ptr[M]) M { return p.Cached() }
func (n nodeMeasurerInv[M]) Range(ps []node.Ptr[M]) M {
	acc := n.monoid.Identity()
	for _, p := range ps {
		acc = n.monoid.Combine(acc, p.Cached())
	}
	return acc
}

// newNodeMeasurer picks the invertible wrapper only when the underlying
// monoid genuinely supports it, for the same reason bootstrap's version
// does: an unconditional Inverse method here would make
// measure.HasInverse lie about every spine regardless of M.
func newNodeMeasurer[M any](m measure.Monoid[M]) measure.Measurer[node.Ptr[M], M] {
	if inv, ok := measure.HasInverse[M](m); ok {
		return nodeMeasurerInv[M]{monoid: inv}
	}
	return nodeMeasurer[M]{monoid: m}
}
