package orderedmap_test

import (
	"testing"

	"github.com/jwhiteside11/chunkseq/orderedmap"
	"github.com/stretchr/testify/require"
)

func less(a, b int) bool { return a < b }

func TestPutGetOverwrite(t *testing.T) {
	m := orderedmap.New[int, string](less, 4)
	m.Put(3, "three")
	m.Put(1, "one")
	m.Put(2, "two")
	require.Equal(t, 3, m.Len())

	v, ok := m.Get(2)
	require.True(t, ok)
	require.Equal(t, "two", v)

	m.Put(2, "TWO")
	require.Equal(t, 3, m.Len())
	v, ok = m.Get(2)
	require.True(t, ok)
	require.Equal(t, "TWO", v)
}

func TestGetMissing(t *testing.T) {
	m := orderedmap.New[int, string](less, 4)
	m.Put(5, "five")
	_, ok := m.Get(99)
	require.False(t, ok)
}

func TestDelete(t *testing.T) {
	m := orderedmap.New[int, string](less, 4)
	for i := 0; i < 10; i++ {
		m.Put(i, "v")
	}
	require.True(t, m.Delete(5))
	require.False(t, m.Delete(5))
	require.Equal(t, 9, m.Len())
	_, ok := m.Get(5)
	require.False(t, ok)
}

func TestForEachIsSortedByKey(t *testing.T) {
	m := orderedmap.New[int, int](less, 3)
	keys := []int{5, 2, 8, 1, 9, 3, 7, 4, 6, 0}
	for _, k := range keys {
		m.Put(k, k*10)
	}
	var got []int
	m.ForEach(func(k, v int) {
		got = append(got, k)
		require.Equal(t, k*10, v)
	})
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1], got[i])
	}
	require.Len(t, got, 10)
}
