package intset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senderista/bijecthash/hash"
)

func TestBLPRunsSortedByHash(t *testing.T) {
	s, err := NewBLP(16, 1.0, hash.Phi32{})
	require.NoError(t, err)
	for _, k := range []int32{7, 42, 99, 1, 2, 3} {
		ok, err := s.Add(k)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Equal(t, 6, s.Size())

	// Within any maximal run of occupied cells, hash values must be sorted
	// ascending unsigned -- the invariant BLP's bidirectional lookup relies
	// on to decide which way to walk.
	for i := 1; i < len(s.arr); i++ {
		if s.arr[i-1] == 0 || s.arr[i] == 0 {
			continue
		}
		require.LessOrEqual(t, s.arr[i-1], s.arr[i])
	}
	for _, k := range []int32{7, 42, 99, 1, 2, 3} {
		require.True(t, s.Contains(k), k)
	}
}

func TestBLPBasic(t *testing.T) {
	s, err := NewBLP(8, 0.75, hash.Murmur3_32{})
	require.NoError(t, err)
	for i := int32(1); i <= 6; i++ {
		ok, err := s.Add(i)
		require.NoError(t, err)
		require.True(t, ok)
	}
	for i := int32(1); i <= 6; i++ {
		require.True(t, s.Remove(i), i)
	}
	require.Equal(t, 0, s.Size())
	for i := int32(1); i <= 6; i++ {
		require.False(t, s.Contains(i), i)
	}
}

func TestBLPAddDuplicate(t *testing.T) {
	s, err := NewBLP(8, 0.75, hash.Identity32{})
	require.NoError(t, err)
	ok, err := s.Add(4)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.Add(4)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBLPTableFull(t *testing.T) {
	s, err := NewBLP(4, 1.0, hash.Identity32{})
	require.NoError(t, err)
	for i := int32(1); i <= 4; i++ {
		_, err := s.Add(i)
		require.NoError(t, err)
	}
	_, err = s.Add(5)
	var tableFull *TableFullError
	require.ErrorAs(t, err, &tableFull)
}

func TestBLPRemoveInteriorOfRun(t *testing.T) {
	s, err := NewBLP(16, 0.5, hash.Identity32{})
	require.NoError(t, err)
	keys := []int32{10, 11, 12, 13, 14}
	for _, k := range keys {
		_, err := s.Add(k)
		require.NoError(t, err)
	}
	require.True(t, s.Remove(12))
	require.False(t, s.Contains(12))
	for _, k := range []int32{10, 11, 13, 14} {
		require.True(t, s.Contains(k), k)
	}
	require.Equal(t, 4, s.Size())
}
