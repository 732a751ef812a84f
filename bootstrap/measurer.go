package bootstrap

import (
	"github.com/jwhiteside11/chunkseq/measure"
	"github.com/jwhiteside11/chunkseq/node"
)

// nodeMeasurer lifts a client monoid on M into a Measurer[node.Ptr[M], M]:
// the measure of a chunk pointer is simply its own cached fold, since that
// chunk already maintains it. This is what lets a Layer's own chunks
// (front_outer, back_outer, ...) be measured the same way regardless of
// recursion depth.
//
// Two concrete types exist, selected by newNodeMeasurer, so that a
// non-invertible client monoid does not accidentally gain an Inverse method
// through this wrapper: measure.HasInverse inspects the concrete type via
// interface assertion, and a method defined unconditionally here would make
// every nodeMeasurer falsely report invertible.
type nodeMeasurer[M any] struct {
	monoid measure.Monoid[M]
}

func (n nodeMeasurer[M]) Identity() M             { return n.monoid.Identity() }
func (n nodeMeasurer[M]) Combine(a, b M) M        { return n.monoid.Combine(a, b) }
func (n nodeMeasurer[M]) Item(p node.Ptr[M]) M    { return p.Cached() }
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

func (n nodeMeasurerInv[M]) Identity() M             { return n.monoid.Identity() }
func (n nodeMeasurerInv[M]) Combine(a, b M) M        { return n.monoid.Combine(a, b) }
func (n nodeMeasurerInv[M]) Inverse(m M) M           { return n.monoid.Inverse(m) }
func (n nodeMeasurerInv[M]) Item(p node.Ptr[M]) M    { return p.Cached() }
func (n nodeMeasurerInv[M]) Range(ps []node.Ptr[M]) M {
	acc := n.monoid.Identity()
	for _, p := range ps {
		acc = n.monoid.Combine(acc, p.Cached())
	}
	return acc
}

// newNodeMeasurer selects the invertible or non-invertible wrapper so that
// measure.HasInverse reports the correct answer for the chosen concrete
// type, preserving invertibility information through the recursive engine.
func newNodeMeasurer[M any](m measure.Monoid[M]) measure.Measurer[node.Ptr[M], M] {
	if inv, ok := measure.HasInverse[M](m); ok {
		return nodeMeasurerInv[M]{monoid: inv}
	}
	return nodeMeasurer[M]{monoid: m}
}
