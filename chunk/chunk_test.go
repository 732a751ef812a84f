package chunk_test

import (
	"testing"

	"github.com/jwhiteside11/chunkseq/chunk"
	"github.com/jwhiteside11/chunkseq/measure"
	"github.com/stretchr/testify/require"
)

func sizeMeasurer() measure.CountMeasurer[int] { return measure.CountMeasurer[int]{} }

func TestPushPopCacheTracksSize(t *testing.T) {
	m := sizeMeasurer()
	c := chunk.New[int, int](8, m)
	for i := 1; i <= 5; i++ {
		c.PushBack(m, i)
	}
	require.Equal(t, 5, c.Cached())
	c.PopFront(m)
	require.Equal(t, 4, c.Cached())
	c.PopBack(m)
	require.Equal(t, 3, c.Cached())
	require.Equal(t, []int{2, 3, 4}, c.ToSlice())
}

func TestTrivialMeasureCacheOnPushPop(t *testing.T) {
	trivial := measure.TrivialMeasurer[int]{}
	c := chunk.New[int, struct{}](4, trivial)
	c.PushBack(trivial, 1)
	c.PushBack(trivial, 2)
	require.Equal(t, struct{}{}, c.Cached())
	c.PopFront(trivial)
	require.Equal(t, struct{}{}, c.Cached())
}

func TestSplitMovesTailAndReturnsPivot(t *testing.T) {
	m := sizeMeasurer()
	c := chunk.New[int, int](8, m)
	for i := 0; i < 6; i++ {
		c.PushBack(m, i) // [0,1,2,3,4,5]
	}
	// pred: accumulated count >= 4 -> pivot should be item index 3 (value 3)
	prefix, pivot, other := c.Split(m, 0, func(acc int) bool { return acc >= 4 })
	require.Equal(t, 3, prefix)
	require.Equal(t, 3, pivot)
	require.Equal(t, []int{0, 1, 2}, c.ToSlice())
	require.Equal(t, []int{4, 5}, other.ToSlice())
}

func TestSplitPivotAtFirstPosition(t *testing.T) {
	m := sizeMeasurer()
	c := chunk.New[int, int](8, m)
	for i := 0; i < 4; i++ {
		c.PushBack(m, i)
	}
	prefix, pivot, other := c.Split(m, 0, func(acc int) bool { return acc >= 1 })
	require.Equal(t, 0, prefix)
	require.Equal(t, 0, pivot)
	require.Empty(t, c.ToSlice())
	require.Equal(t, []int{1, 2, 3}, other.ToSlice())
}

func TestSplitPivotAtLastPosition(t *testing.T) {
	m := sizeMeasurer()
	c := chunk.New[int, int](8, m)
	for i := 0; i < 4; i++ {
		c.PushBack(m, i)
	}
	prefix, pivot, other := c.Split(m, 0, func(acc int) bool { return acc >= 4 })
	require.Equal(t, 3, prefix)
	require.Equal(t, 3, pivot)
	require.Equal(t, []int{0, 1, 2}, c.ToSlice())
	require.True(t, other.Empty())
}

func TestLocateFindsItemWithoutMutating(t *testing.T) {
	m := sizeMeasurer()
	c := chunk.New[int, int](8, m)
	for i := 0; i < 6; i++ {
		c.PushBack(m, i)
	}
	prefix, item := c.Locate(m, 0, func(acc int) bool { return acc >= 4 })
	require.Equal(t, 3, prefix)
	require.Equal(t, 3, item)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, c.ToSlice())
	require.Equal(t, 6, c.Cached())
}

func TestTransferPreservesCache(t *testing.T) {
	m := sizeMeasurer()
	src := chunk.New[int, int](8, m)
	dst := chunk.New[int, int](8, m)
	for i := 0; i < 4; i++ {
		src.PushBack(m, i)
	}
	chunk.TransferFromBackToFront(m, src, dst, 2)
	require.Equal(t, []int{2, 3}, dst.ToSlice())
	require.Equal(t, 2, dst.Cached())
	require.Equal(t, []int{0, 1}, src.ToSlice())
	require.Equal(t, 2, src.Cached())
}
