package intset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senderista/bijecthash/hash"
)

func TestLCFSEvensRemoved(t *testing.T) {
	s, err := NewLCFS(150, 0.75, hash.Phi32{})
	require.NoError(t, err)
	for i := int32(1); i <= 100; i++ {
		ok, err := s.Add(i)
		require.NoError(t, err)
		require.True(t, ok)
	}
	for i := int32(2); i <= 100; i += 2 {
		require.True(t, s.Remove(i), i)
	}
	require.Equal(t, 50, s.Size())
	for i := int32(1); i <= 100; i++ {
		if i%2 == 0 {
			require.False(t, s.Contains(i), i)
		} else {
			require.True(t, s.Contains(i), i)
		}
	}
}

func TestLCFSNewestWinsPreferredBucket(t *testing.T) {
	s, err := NewLCFS(8, 1.0, hash.Identity32{})
	require.NoError(t, err)
	_, err = s.Add(1)
	require.NoError(t, err)
	_, err = s.Add(9) // shares key 1's preferred bucket under an 8-cell table
	require.NoError(t, err)

	h := s.hasher.Hash(9)
	bucket := int((uint64(h) * uint64(len(s.arr))) >> 32)
	require.Equal(t, h, s.arr[bucket], "the most recent insert always occupies its own preferred bucket")
}

func TestLCFSAddDuplicate(t *testing.T) {
	s, err := NewLCFS(8, 0.75, hash.Identity32{})
	require.NoError(t, err)
	ok, err := s.Add(3)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.Add(3)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLCFSRemoveMissing(t *testing.T) {
	s, err := NewLCFS(8, 0.75, hash.Identity32{})
	require.NoError(t, err)
	require.False(t, s.Remove(42))
}
