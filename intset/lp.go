package intset

import (
	"fmt"
	"io"

	"github.com/senderista/bijecthash/hash"
)

// LP is a classic linear probing set: an insert walks forward from its
// preferred bucket to the first empty cell, and a delete is undone with
// Goodrich & Tamassia's tombstone-free backward shift (6.3.3), which keeps
// every surviving element reachable from its preferred bucket by a
// gap-free forward walk.
//
// LP is not safe for concurrent use.
type LP[H hash.Hasher32] struct {
	arr    []uint32
	size   int
	hasher H
}

// NewLP constructs an LP set that can hold maxEntries elements at the given
// load factor, hashing keys with hasher.
func NewLP[H hash.Hasher32](maxEntries int, loadFactor float64, hasher H) (*LP[H], error) {
	if err := validateParams(maxEntries, loadFactor); err != nil {
		return nil, err
	}
	return &LP[H]{arr: make([]uint32, capacityFor(maxEntries, loadFactor)), hasher: hasher}, nil
}

func (s *LP[H]) Capacity() int { return len(s.arr) }
func (s *LP[H]) Size() int     { return s.size }

func (s *LP[H]) Contains(key int32) bool {
	checkKey(key)
	h := s.hasher.Hash(uint32(key))
	bucket := lookupLinear(s.arr, h)
	return bucket != -1 && s.arr[bucket] != 0
}

func (s *LP[H]) Add(key int32) (bool, error) {
	checkKey(key)
	h := s.hasher.Hash(uint32(key))
	bucket := lookupLinear(s.arr, h)
	if bucket == -1 {
		return false, newTableFullError(key, len(s.arr))
	}
	if s.arr[bucket] != 0 {
		return false, nil
	}
	if debug {
		fmt.Printf("LP.Add(%d): bucket=%d hash=%d\n", key, bucket, h)
	}
	s.arr[bucket] = h
	s.size++
	s.checkInvariants()
	return true, nil
}

func (s *LP[H]) Remove(key int32) bool {
	checkKey(key)
	h := s.hasher.Hash(uint32(key))
	bucket := lookupLinear(s.arr, h)
	if bucket == -1 || s.arr[bucket] == 0 {
		return false
	}
	s.arr[bucket] = 0
	backwardShiftLP(s.arr, bucket)
	s.size--
	s.checkInvariants()
	return true
}

// Cells returns the raw non-zero hash values currently stored, in bucket
// order. It exists for Rehome, which moves cells between tables of the
// same variant without calling Hash again.
func (s *LP[H]) Cells() []uint32 {
	cells := make([]uint32, 0, s.size)
	for _, h := range s.arr {
		if h != 0 {
			cells = append(cells, h)
		}
	}
	return cells
}

// addHash inserts an already-computed hash directly, bypassing Hash. Used
// only by Rehome.
func (s *LP[H]) addHash(h uint32) (bool, error) {
	bucket := lookupLinear(s.arr, h)
	if bucket == -1 {
		return false, newTableFullError(0, len(s.arr))
	}
	if s.arr[bucket] != 0 {
		return false, nil
	}
	s.arr[bucket] = h
	s.size++
	s.checkInvariants()
	return true, nil
}

func (s *LP[H]) Clear() {
	for i := range s.arr {
		s.arr[i] = 0
	}
	s.size = 0
}

// DebugString renders the whole backing array, one line per cell.
func (s *LP[H]) DebugString() string {
	return debugString("LP", s.arr, s.hasher.Unhash)
}

// WriteTo serializes the backing array as spec'd: len(arr) little-endian
// uint32 cells.
func (s *LP[H]) WriteTo(w io.Writer) (int64, error) { return writeArrTo(w, s.arr) }

// ReadFrom replaces the backing array's contents (which must already be
// sized to the serialized capacity) and resets size from the occupied
// cell count.
func (s *LP[H]) ReadFrom(r io.Reader) (int64, error) {
	size, n, err := readArrInto(r, s.arr)
	if err != nil {
		return n, err
	}
	s.size = size
	return n, nil
}

func (s *LP[H]) checkInvariants() {
	if !invariants {
		return
	}
	count := 0
	for b, h := range s.arr {
		if h == 0 {
			continue
		}
		count++
		// Every occupied cell must be reachable from its preferred bucket
		// by an unbroken forward walk -- the LP invariant from spec.md
		// §4.2 -- which is exactly what lookupLinear performs.
		if got := lookupLinear(s.arr, h); got != b {
			panic(fmt.Sprintf("LP: invariant violated at bucket %d (hash %d unreachable, lookup found %d)\n%s",
				b, h, got, s.DebugString()))
		}
	}
	if count != s.size {
		panic(fmt.Sprintf("LP: size=%d but counted %d occupied cells\n%s", s.size, count, s.DebugString()))
	}
}
