// Package node defines the type-erased "chunk pointer" used to resolve the
// bootstrapping recursion of the chunked-sequence design: the recursive
// engine at depth > 0 only ever needs to move, measure and merge pointers
// to chunks, never their item type.
package node

// Ptr stands in for "a pointer to a chunk, whatever its item type." Any
// *chunk.Chunk[T, M] satisfies it for every T, which lets
// bootstrap.Layer[T, M] and fingertree.Tree[T, M] fix their middle/spine
// item type at Ptr[M] whatever T is, instead of needing one Go type per
// recursion depth.
type Ptr[M any] interface {
	Cached() M
	Len() int
}
