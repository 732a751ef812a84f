package chunkseq_test

import (
	"testing"

	"github.com/jwhiteside11/chunkseq/chunkseq"
	"github.com/jwhiteside11/chunkseq/measure"
	"pgregory.net/rapid"
)

// TestPushBackThenPopFrontIsFIFOForAnyN checks that, for any sequence of
// push_back calls, draining from the front reproduces the push order,
// regardless of chunk capacity.
func TestPushBackThenPopFrontIsFIFOForAnyN(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capK := rapid.IntRange(1, 8).Draw(rt, "capK")
		xs := rapid.SliceOfN(rapid.IntRange(0, 1000), 0, 300).Draw(rt, "xs")

		s := chunkseq.New[int, int](measure.CountMeasurer[int]{}, capK)
		for _, x := range xs {
			s.PushBack(x)
		}
		if s.Len() != len(xs) {
			rt.Fatalf("len mismatch: got %d want %d", s.Len(), len(xs))
		}
		for _, want := range xs {
			got := s.PopFront()
			if got != want {
				rt.Fatalf("got %d want %d", got, want)
			}
		}
		if !s.Empty() {
			rt.Fatalf("expected empty after draining")
		}
	})
}

// TestSplitAtThenConcatIsIdentity checks that splitting anywhere and
// concatenating the halves back together reproduces the original sequence,
// for any chunk capacity, length and split point.
func TestSplitAtThenConcatIsIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capK := rapid.IntRange(1, 8).Draw(rt, "capK")
		xs := rapid.SliceOfN(rapid.IntRange(0, 1000), 0, 200).Draw(rt, "xs")

		s := chunkseq.New[int, int](measure.CountMeasurer[int]{}, capK)
		for _, x := range xs {
			s.PushBack(x)
		}
		i := 0
		if len(xs) > 0 {
			i = rapid.IntRange(0, len(xs)).Draw(rt, "splitAt")
		}
		right := s.SplitAt(i)
		if s.Len() != i {
			rt.Fatalf("left half length mismatch: got %d want %d", s.Len(), i)
		}
		if right.Len() != len(xs)-i {
			rt.Fatalf("right half length mismatch: got %d want %d", right.Len(), len(xs)-i)
		}
		s.Concat(right)
		if s.Len() != len(xs) {
			rt.Fatalf("recombined length mismatch: got %d want %d", s.Len(), len(xs))
		}
		for idx, want := range xs {
			if got := s.At(idx); got != want {
				rt.Fatalf("At(%d): got %d want %d", idx, got, want)
			}
		}
	})
}

// TestAtMatchesPushOrderForAnyMixOfPushes checks that At(i) always matches
// a reference slice built the same way, under any interleaving of
// push_front and push_back.
func TestAtMatchesPushOrderForAnyMixOfPushes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capK := rapid.IntRange(1, 6).Draw(rt, "capK")
		ops := rapid.SliceOfN(rapid.IntRange(0, 1), 0, 200).Draw(rt, "ops")

		s := chunkseq.New[int, int](measure.CountMeasurer[int]{}, capK)
		var want []int
		for i, op := range ops {
			if op == 0 {
				s.PushBack(i)
				want = append(want, i)
			} else {
				s.PushFront(i)
				want = append([]int{i}, want...)
			}
		}
		if s.Len() != len(want) {
			rt.Fatalf("len mismatch: got %d want %d", s.Len(), len(want))
		}
		for idx, w := range want {
			if got := s.At(idx); got != w {
				rt.Fatalf("At(%d): got %d want %d", idx, got, w)
			}
		}
	})
}
