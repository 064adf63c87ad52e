package intset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senderista/bijecthash/hash"
)

func TestLPBasic(t *testing.T) {
	s, err := NewLP(8, 0.75, hash.Phi32{})
	require.NoError(t, err)
	require.Equal(t, 10, s.Capacity())

	for i := int32(1); i <= 6; i++ {
		ok, err := s.Add(i)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Equal(t, 6, s.Size())
	for i := int32(1); i <= 6; i++ {
		require.True(t, s.Contains(i), i)
	}

	for i := int32(1); i <= 6; i++ {
		require.True(t, s.Remove(i), i)
	}
	require.Equal(t, 0, s.Size())
	for i := int32(1); i <= 6; i++ {
		require.False(t, s.Contains(i), i)
	}
}

func TestLPAddDuplicate(t *testing.T) {
	s, err := NewLP(8, 0.75, hash.Identity32{})
	require.NoError(t, err)
	ok, err := s.Add(5)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.Add(5)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, s.Size())
}

func TestLPRemoveMissing(t *testing.T) {
	s, err := NewLP(8, 0.75, hash.Identity32{})
	require.NoError(t, err)
	require.False(t, s.Remove(5))
}

func TestLPClearIdempotent(t *testing.T) {
	s, err := NewLP(8, 0.75, hash.Identity32{})
	require.NoError(t, err)
	_, _ = s.Add(1)
	_, _ = s.Add(2)
	s.Clear()
	s.Clear()
	require.Equal(t, 0, s.Size())
	require.False(t, s.Contains(1))
	require.False(t, s.Contains(2))
}

func TestLPTableFull(t *testing.T) {
	s, err := NewLP(4, 1.0, hash.Identity32{})
	require.NoError(t, err)
	for i := int32(1); i <= 4; i++ {
		ok, err := s.Add(i)
		require.NoError(t, err)
		require.True(t, ok)
	}
	_, err = s.Add(5)
	var tableFull *TableFullError
	require.ErrorAs(t, err, &tableFull)
}

func TestLPInvalidArgument(t *testing.T) {
	_, err := NewLP(0, 0.75, hash.Identity32{})
	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)

	_, err = NewLP(8, 0, hash.Identity32{})
	require.ErrorAs(t, err, &invalid)

	_, err = NewLP(8, 1.5, hash.Identity32{})
	require.ErrorAs(t, err, &invalid)
}

func TestLPWriteReadRoundTrip(t *testing.T) {
	s, err := NewLP(8, 0.75, hash.Phi32{})
	require.NoError(t, err)
	for i := int32(1); i <= 5; i++ {
		_, err := s.Add(i)
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	require.NoError(t, err)

	s2, err := NewLP(8, 0.75, hash.Phi32{})
	require.NoError(t, err)
	_, err = s2.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, s.Size(), s2.Size())
	for i := int32(1); i <= 5; i++ {
		require.True(t, s2.Contains(i), i)
	}
}
