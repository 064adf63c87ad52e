package intset

import (
	"fmt"
	"io"

	"github.com/senderista/bijecthash/hash"
	"github.com/senderista/bijecthash/internal/probe"
)

// LCFS is a last-come-first-served linear probing set: every insert lands
// in its own preferred bucket, shifting the chain that was already there
// one step forward to make room. This dramatically reduces the variance of
// successful-lookup probe length (the newest arrival always has probe
// length 0) but has no effect on the expected probe length, nor on
// unsuccessful lookups, which still walk the whole chain like LP. Deletion
// uses the same tombstone-free backward shift as LP.
//
// LCFS is not safe for concurrent use.
type LCFS[H hash.Hasher32] struct {
	arr    []uint32
	size   int
	hasher H
}

// NewLCFS constructs an LCFS set that can hold maxEntries elements at the
// given load factor, hashing keys with hasher.
func NewLCFS[H hash.Hasher32](maxEntries int, loadFactor float64, hasher H) (*LCFS[H], error) {
	if err := validateParams(maxEntries, loadFactor); err != nil {
		return nil, err
	}
	return &LCFS[H]{arr: make([]uint32, capacityFor(maxEntries, loadFactor)), hasher: hasher}, nil
}

func (s *LCFS[H]) Capacity() int { return len(s.arr) }
func (s *LCFS[H]) Size() int     { return s.size }

func (s *LCFS[H]) Contains(key int32) bool {
	checkKey(key)
	h := s.hasher.Hash(uint32(key))
	bucket := lookupLinear(s.arr, h)
	return bucket != -1 && s.arr[bucket] != 0
}

// slideChainForward moves every cell in [pref, empty) forward by one,
// opening up pref for the newly-inserted hash. This is the heuristic that
// gives LCFS its name: the newcomer always wins its own preferred bucket.
func slideChainForward(arr []uint32, empty, pref int) {
	m := len(arr)
	bucket := empty
	for bucket != pref {
		prevBucket := probe.Wrap(bucket-1, m)
		arr[bucket] = arr[prevBucket]
		bucket = prevBucket
	}
}

func (s *LCFS[H]) Add(key int32) (bool, error) {
	checkKey(key)
	h := s.hasher.Hash(uint32(key))
	bucket := lookupLinear(s.arr, h)
	if bucket == -1 {
		return false, newTableFullError(key, len(s.arr))
	}
	if s.arr[bucket] != 0 {
		return false, nil
	}
	pref := probe.Pref(h, len(s.arr))
	empty := findFirstEmpty(s.arr, pref)
	if debug {
		fmt.Printf("LCFS.Add(%d): pref=%d empty=%d hash=%d\n", key, pref, empty, h)
	}
	slideChainForward(s.arr, empty, pref)
	s.arr[pref] = h
	s.size++
	s.checkInvariants()
	return true, nil
}

func (s *LCFS[H]) Remove(key int32) bool {
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
func (s *LCFS[H]) Cells() []uint32 {
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
func (s *LCFS[H]) addHash(h uint32) (bool, error) {
	bucket := lookupLinear(s.arr, h)
	if bucket == -1 {
		return false, newTableFullError(0, len(s.arr))
	}
	if s.arr[bucket] != 0 {
		return false, nil
	}
	pref := probe.Pref(h, len(s.arr))
	empty := findFirstEmpty(s.arr, pref)
	slideChainForward(s.arr, empty, pref)
	s.arr[pref] = h
	s.size++
	s.checkInvariants()
	return true, nil
}

func (s *LCFS[H]) Clear() {
	for i := range s.arr {
		s.arr[i] = 0
	}
	s.size = 0
}

func (s *LCFS[H]) DebugString() string {
	return debugString("LCFS", s.arr, s.hasher.Unhash)
}

func (s *LCFS[H]) WriteTo(w io.Writer) (int64, error) { return writeArrTo(w, s.arr) }

func (s *LCFS[H]) ReadFrom(r io.Reader) (int64, error) {
	size, n, err := readArrInto(r, s.arr)
	if err != nil {
		return n, err
	}
	s.size = size
	return n, nil
}

func (s *LCFS[H]) checkInvariants() {
	if !invariants {
		return
	}
	count := 0
	for b, h := range s.arr {
		if h == 0 {
			continue
		}
		count++
		if got := lookupLinear(s.arr, h); got != b {
			panic(fmt.Sprintf("LCFS: invariant violated at bucket %d (hash %d unreachable, lookup found %d)\n%s",
				b, h, got, s.DebugString()))
		}
	}
	if count != s.size {
		panic(fmt.Sprintf("LCFS: size=%d but counted %d occupied cells\n%s", s.size, count, s.DebugString()))
	}
}
