package chunkseq_test

import (
	"testing"

	"github.com/jwhiteside11/chunkseq/chunkseq"
	"github.com/jwhiteside11/chunkseq/measure"
	"github.com/stretchr/testify/require"
)

func newSeq(capK int) *chunkseq.Sequence[int, int] {
	return chunkseq.New[int, int](measure.CountMeasurer[int]{}, capK)
}

func TestFIFORoundTrip(t *testing.T) {
	s := newSeq(4)
	for i := 0; i < 500; i++ {
		s.PushBack(i)
	}
	require.Equal(t, 500, s.Len())
	for i := 0; i < 500; i++ {
		require.Equal(t, i, s.PopFront())
	}
	require.True(t, s.Empty())
}

func TestLIFORoundTrip(t *testing.T) {
	s := newSeq(4)
	for i := 0; i < 500; i++ {
		s.PushBack(i)
	}
	for i := 499; i >= 0; i-- {
		require.Equal(t, i, s.PopBack())
	}
	require.True(t, s.Empty())
}

func TestAtMatchesReferenceSliceUnderMixedPushes(t *testing.T) {
	const n = 10000
	s := newSeq(6)
	var want []int
	for i := 0; i < n; i++ {
		if i%3 == 0 {
			s.PushBack(i)
			want = append(want, i)
		} else {
			s.PushFront(i)
			want = append([]int{i}, want...)
		}
	}
	require.Equal(t, len(want), s.Len())
	for i := 0; i < len(want); i += 37 { // sample, full scan would be O(n log n) but still correct
		require.Equal(t, want[i], s.At(i))
	}
	require.Equal(t, want[0], s.At(0))
	require.Equal(t, want[len(want)-1], s.At(len(want)-1))
}

func TestSplitThenConcatRoundTrip(t *testing.T) {
	const n = 100
	s := newSeq(4)
	for i := 0; i < n; i++ {
		s.PushBack(i)
	}
	right := s.SplitAt(42)
	require.Equal(t, 42, s.Len())
	require.Equal(t, n-42, right.Len())
	s.Concat(right)
	require.Equal(t, n, s.Len())
	for i := 0; i < n; i++ {
		require.Equal(t, i, s.At(i))
	}
}

func TestSplitAtZeroAndLen(t *testing.T) {
	s := newSeq(4)
	for i := 0; i < 10; i++ {
		s.PushBack(i)
	}
	right := s.SplitAt(0)
	require.True(t, s.Empty())
	require.Equal(t, 10, right.Len())

	s2 := newSeq(4)
	for i := 0; i < 10; i++ {
		s2.PushBack(i)
	}
	right2 := s2.SplitAt(10)
	require.Equal(t, 10, s2.Len())
	require.True(t, right2.Empty())
}

func TestFilterViaRecursiveSplitConcat(t *testing.T) {
	const n = 200
	var filterOdd func(seq *chunkseq.Sequence[int, int]) *chunkseq.Sequence[int, int]
	filterOdd = func(seq *chunkseq.Sequence[int, int]) *chunkseq.Sequence[int, int] {
		if seq.Len() <= 1 {
			out := newSeq(8)
			if seq.Len() == 1 && seq.Front()%2 == 1 {
				out.PushBack(seq.Front())
			}
			return out
		}
		mid := seq.Len() / 2
		right := seq.SplitAt(mid)
		left := filterOdd(seq)
		rightFiltered := filterOdd(right)
		left.Concat(rightFiltered)
		return left
	}

	s := newSeq(8)
	for i := 0; i < n; i++ {
		s.PushBack(i)
	}
	result := filterOdd(s)
	require.Equal(t, n/2, result.Len())
	sum := 0
	result.ForEach(func(x int) { sum += x })
	require.Equal(t, (n/2)*(n/2), sum) // sum of first n/2 odd numbers is (n/2)^2
}

func TestForEachSegmentCoversEveryItemInOrder(t *testing.T) {
	const n = 300
	s := newSeq(5)
	for i := 0; i < n; i++ {
		s.PushBack(i)
	}
	var got []int
	s.ForEachSegment(func(seg []int) { got = append(got, seg...) })
	require.Len(t, got, n)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestIteratorWalksInOrder(t *testing.T) {
	s := newSeq(3)
	for i := 0; i < 20; i++ {
		s.PushBack(i)
	}
	it := s.Iterator()
	i := 0
	for it.HasNext() {
		require.Equal(t, i, it.Next())
		i++
	}
	require.Equal(t, 20, i)
}

func TestSwapExchangesContents(t *testing.T) {
	a := newSeq(4)
	for i := 0; i < 10; i++ {
		a.PushBack(i)
	}
	b := newSeq(4)
	for i := 100; i < 103; i++ {
		b.PushBack(i)
	}
	a.Swap(b)
	require.Equal(t, 3, a.Len())
	require.Equal(t, []int{100, 101, 102}, drainSeq(a))
	require.Equal(t, 10, b.Len())
	for i := 0; i < 10; i++ {
		require.Equal(t, i, b.PopFront())
	}
}

func drainSeq(s *chunkseq.Sequence[int, int]) []int {
	var out []int
	for !s.Empty() {
		out = append(out, s.PopFront())
	}
	return out
}

func TestPushNBackPopNBackRoundTrip(t *testing.T) {
	s := newSeq(4)
	for i := 0; i < 5; i++ {
		s.PushBack(i)
	}
	s.PushNBack([]int{5, 6, 7, 8, 9, 10, 11})
	require.Equal(t, 12, s.Len())
	for i := 0; i < 12; i++ {
		require.Equal(t, i, s.At(i))
	}
	got := s.PopNBack(4)
	require.Equal(t, []int{8, 9, 10, 11}, got)
	require.Equal(t, 8, s.Len())
}

func TestPushNFrontPopNFrontRoundTrip(t *testing.T) {
	s := newSeq(4)
	for i := 4; i < 9; i++ {
		s.PushBack(i)
	}
	s.PushNFront([]int{0, 1, 2, 3})
	require.Equal(t, 9, s.Len())
	for i := 0; i < 9; i++ {
		require.Equal(t, i, s.At(i))
	}
	got := s.PopNFront(4)
	require.Equal(t, []int{0, 1, 2, 3}, got)
	require.Equal(t, 5, s.Len())
	require.Equal(t, 4, s.At(0))
}

func TestInsertPlacesItemAtIteratorPosition(t *testing.T) {
	s := newSeq(4)
	for _, v := range []int{0, 1, 3, 4} {
		s.PushBack(v)
	}
	it := s.Iterator()
	it.Seek(2)
	s.Insert(it, 2)
	require.Equal(t, 5, s.Len())
	for i := 0; i < 5; i++ {
		require.Equal(t, i, s.At(i))
	}
}

func TestEraseRemovesRangeAndClosesGap(t *testing.T) {
	s := newSeq(4)
	for i := 0; i < 10; i++ {
		s.PushBack(i)
	}
	first, last := s.Iterator(), s.Iterator()
	first.Seek(3)
	last.Seek(7)
	it := s.Erase(first, last)
	require.Equal(t, 3, it.Index())
	require.Equal(t, 6, s.Len())
	want := []int{0, 1, 2, 7, 8, 9}
	for i, v := range want {
		require.Equal(t, v, s.At(i))
	}
}

func TestWeightedSplit(t *testing.T) {
	words := []string{"a", "bb", "ccc", "dddd", "e", "ff", "ggg", "hhhh", "i"}
	d := chunkseq.NewIndexedDeque[string](func(s string) int { return len(s) }, 4)
	for _, w := range words {
		d.PushBack(w)
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	require.Equal(t, total, d.Measure())

	right, ok := d.SplitByWeight(10)
	require.True(t, ok)
	leftWeight := d.Measure()
	require.Equal(t, 10, leftWeight)
	rightWeight := right.Measure()
	require.Equal(t, total, leftWeight+rightWeight)
}
