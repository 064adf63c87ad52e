package intset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senderista/bijecthash/hash"
)

// oracleSet is the reference model a randomized mix test checks every
// variant against: a plain Go map can't get the probing policy wrong.
type oracleSet map[int32]struct{}

func runRandomMix(t *testing.T, newSet func() Set, ops int, keySpace int32) {
	t.Helper()
	s := newSet()
	oracle := oracleSet{}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < ops; i++ {
		key := rng.Int31n(keySpace) + 1 // never 0
		if rng.Intn(2) == 0 {
			ok, err := s.Add(key)
			if err != nil {
				var tableFull *TableFullError
				require.ErrorAs(t, err, &tableFull)
				continue
			}
			_, inOracle := oracle[key]
			require.Equal(t, !inOracle, ok, "add(%d) at op %d", key, i)
			oracle[key] = struct{}{}
		} else {
			ok := s.Remove(key)
			_, inOracle := oracle[key]
			require.Equal(t, inOracle, ok, "remove(%d) at op %d", key, i)
			delete(oracle, key)
		}
		require.Equal(t, len(oracle), s.Size(), "size mismatch at op %d", i)
	}

	for key := range oracle {
		require.True(t, s.Contains(key), key)
	}
}

func TestRandomMixLP(t *testing.T) {
	runRandomMix(t, func() Set {
		s, err := NewLP(2000, 0.5, hash.Phi32{})
		require.NoError(t, err)
		return s
	}, 100000, 1000)
}

func TestRandomMixRH(t *testing.T) {
	runRandomMix(t, func() Set {
		s, err := NewRH(2000, 0.5, hash.Murmur3_32{})
		require.NoError(t, err)
		return s
	}, 100000, 1000)
}

func TestRandomMixLCFS(t *testing.T) {
	runRandomMix(t, func() Set {
		s, err := NewLCFS(2000, 0.5, hash.H2_32{})
		require.NoError(t, err)
		return s
	}, 100000, 1000)
}

func TestRandomMixBLP(t *testing.T) {
	runRandomMix(t, func() Set {
		s, err := NewBLP(2000, 0.5, hash.Prospector2_32{})
		require.NoError(t, err)
		return s
	}, 100000, 1000)
}
