package intset

import (
	"fmt"
	"io"

	"github.com/senderista/bijecthash/hash"
	"github.com/senderista/bijecthash/internal/probe"
)

// RH is a Robin Hood linear probing set: on insert, an element displaces
// any occupant that is closer to its own preferred bucket than the
// inserted element is to its preferred bucket (the richer element gives up
// its seat), which bounds the variance of successful-lookup probe length.
// Lookup terminates early on a miss as soon as the current probe length
// exceeds the occupant's probe length -- by the Robin Hood invariant, the
// element being searched for would already have displaced that occupant
// if it were present. Deletion shifts the chain left by one until it hits
// an empty cell or a cell already at its own preferred bucket.
//
// RH is not safe for concurrent use.
type RH[H hash.Hasher32] struct {
	arr    []uint32
	size   int
	hasher H
}

// NewRH constructs an RH set that can hold maxEntries elements at the given
// load factor, hashing keys with hasher.
func NewRH[H hash.Hasher32](maxEntries int, loadFactor float64, hasher H) (*RH[H], error) {
	if err := validateParams(maxEntries, loadFactor); err != nil {
		return nil, err
	}
	return &RH[H]{arr: make([]uint32, capacityFor(maxEntries, loadFactor)), hasher: hasher}, nil
}

func (s *RH[H]) Capacity() int { return len(s.arr) }
func (s *RH[H]) Size() int     { return s.size }

func (s *RH[H]) lookupByHash(h uint32) int {
	m := len(s.arr)
	bucket := probe.Pref(h, m)
	probeLen := 0
	for s.arr[bucket] != 0 {
		if s.arr[bucket] == h {
			return bucket
		}
		// If we are already further from h's preferred bucket than the
		// occupant is from its own, h would have displaced the occupant
		// on insert had it been present -- so it isn't.
		if probeLen == m || probeLen > probe.Dist(s.arr[bucket], bucket, m) {
			break
		}
		bucket = probe.Wrap(bucket+1, m)
		probeLen++
	}
	return -1
}

func (s *RH[H]) Contains(key int32) bool {
	checkKey(key)
	return s.lookupByHash(s.hasher.Hash(uint32(key))) != -1
}

func (s *RH[H]) Add(key int32) (bool, error) {
	checkKey(key)
	h := s.hasher.Hash(uint32(key))
	if s.lookupByHash(h) != -1 {
		return false, nil
	}
	m := len(s.arr)
	// Report a full table before the swap loop below starts displacing
	// occupants, so a failed Add leaves the array untouched.
	if s.size == m {
		return false, newTableFullError(key, m)
	}
	bucket := probe.Pref(h, m)
	insertDist := 0
	totalProbeLen := 0
	for s.arr[bucket] != 0 {
		currDist := probe.Dist(s.arr[bucket], bucket, m)
		if currDist < insertDist {
			if debug {
				fmt.Printf("RH.Add(%d): swapping at bucket=%d (richer hash=%d, dist %d < %d)\n",
					key, bucket, s.arr[bucket], currDist, insertDist)
			}
			s.arr[bucket], h = h, s.arr[bucket]
			insertDist = currDist
		}
		bucket = probe.Wrap(bucket+1, m)
		insertDist++
		totalProbeLen++
		if totalProbeLen == m {
			return false, newTableFullError(key, m)
		}
	}
	s.arr[bucket] = h
	s.size++
	s.checkInvariants()
	return true, nil
}

// findMoveBoundary walks forward from startBucket while cells are occupied
// and not yet at their own preferred bucket: any such cell can be shifted
// left by one without becoming unreachable, since it still sits at or after
// its preferred bucket.
func (s *RH[H]) findMoveBoundary(startBucket int) int {
	m := len(s.arr)
	bucket := startBucket
	for s.arr[bucket] != 0 && bucket != probe.Pref(s.arr[bucket], m) {
		bucket = probe.Wrap(bucket+1, m)
	}
	return bucket
}

func (s *RH[H]) Remove(key int32) bool {
	checkKey(key)
	h := s.hasher.Hash(uint32(key))
	bucket := s.lookupByHash(h)
	if bucket == -1 {
		return false
	}
	m := len(s.arr)
	endBucket := s.findMoveBoundary(probe.Wrap(bucket+1, m))
	curr := bucket
	for endBucket != probe.Wrap(curr+1, m) {
		s.arr[curr] = s.arr[probe.Wrap(curr+1, m)]
		curr = probe.Wrap(curr+1, m)
	}
	s.arr[curr] = 0
	s.size--
	s.checkInvariants()
	return true
}

// Cells returns the raw non-zero hash values currently stored, in bucket
// order. It exists for Rehome, which moves cells between tables of the
// same variant without calling Hash again.
func (s *RH[H]) Cells() []uint32 {
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
func (s *RH[H]) addHash(h uint32) (bool, error) {
	if s.lookupByHash(h) != -1 {
		return false, nil
	}
	m := len(s.arr)
	bucket := probe.Pref(h, m)
	insertDist := 0
	totalProbeLen := 0
	for s.arr[bucket] != 0 {
		currDist := probe.Dist(s.arr[bucket], bucket, m)
		if currDist < insertDist {
			s.arr[bucket], h = h, s.arr[bucket]
			insertDist = currDist
		}
		bucket = probe.Wrap(bucket+1, m)
		insertDist++
		totalProbeLen++
		if totalProbeLen == m {
			return false, newTableFullError(0, m)
		}
	}
	s.arr[bucket] = h
	s.size++
	s.checkInvariants()
	return true, nil
}

func (s *RH[H]) Clear() {
	for i := range s.arr {
		s.arr[i] = 0
	}
	s.size = 0
}

func (s *RH[H]) DebugString() string {
	return debugString("RH", s.arr, s.hasher.Unhash)
}

func (s *RH[H]) WriteTo(w io.Writer) (int64, error) { return writeArrTo(w, s.arr) }

func (s *RH[H]) ReadFrom(r io.Reader) (int64, error) {
	size, n, err := readArrInto(r, s.arr)
	if err != nil {
		return n, err
	}
	s.size = size
	return n, nil
}

func (s *RH[H]) checkInvariants() {
	if !invariants {
		return
	}
	m := len(s.arr)
	// Start the cluster scan at an empty cell so a cluster spanning the
	// wraparound point is never split across the loop boundary. If the
	// table is completely full there is only one cluster and the start
	// point doesn't matter.
	start := 0
	for start < m && s.arr[start] != 0 {
		start++
	}
	if start == m {
		start = 0
	}
	count := 0
	prevDist := -1
	for i := 0; i < m; i++ {
		b := probe.Wrap(start+i, m)
		h := s.arr[b]
		if h == 0 {
			prevDist = -1
			continue
		}
		count++
		d := probe.Dist(h, b, m)
		if prevDist != -1 && d < prevDist {
			panic(fmt.Sprintf("RH: invariant violated at bucket %d (probe dist %d follows %d within a cluster)\n%s",
				b, d, prevDist, s.DebugString()))
		}
		prevDist = d
		if got := s.lookupByHash(h); got != b {
			panic(fmt.Sprintf("RH: invariant violated at bucket %d (hash %d unreachable, lookup found %d)\n%s",
				b, h, got, s.DebugString()))
		}
	}
	if count != s.size {
		panic(fmt.Sprintf("RH: size=%d but counted %d occupied cells\n%s", s.size, count, s.DebugString()))
	}
}
