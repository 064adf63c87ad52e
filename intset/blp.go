package intset

import (
	"fmt"
	"io"

	"github.com/senderista/bijecthash/hash"
	"github.com/senderista/bijecthash/internal/probe"
)

// BLP is Amble and Knuth's bidirectional linear probing set: the array is
// kept partitioned into runs that are sorted by hash value, so lookup can
// walk in whichever direction the occupant of the preferred bucket says the
// run lies, rather than always walking forward. Insert finds the nearest
// empty cell in the indicated direction and slides the intervening run over
// by one to open up the correct sorted position; delete is the mirror
// operation, collapsing a run by one cell in whichever direction does not
// disturb any other run's reachability.
//
// https://doi.org/10.1093/comjnl/17.2.135
//
// BLP is not safe for concurrent use.
type BLP[H hash.Hasher32] struct {
	arr    []uint32
	size   int
	hasher H
}

// NewBLP constructs a BLP set that can hold maxEntries elements at the
// given load factor, hashing keys with hasher.
func NewBLP[H hash.Hasher32](maxEntries int, loadFactor float64, hasher H) (*BLP[H], error) {
	if err := validateParams(maxEntries, loadFactor); err != nil {
		return nil, err
	}
	return &BLP[H]{arr: make([]uint32, capacityFor(maxEntries, loadFactor)), hasher: hasher}, nil
}

func (s *BLP[H]) Capacity() int { return len(s.arr) }
func (s *BLP[H]) Size() int     { return s.size }

func (s *BLP[H]) isEmpty(bucket int) bool { return s.arr[bucket] == 0 }

// lookupByHash walks away from h's preferred bucket in whichever direction
// the occupant of that bucket indicates the sorted run containing h must
// lie: if the occupant's hash is smaller, h (if present) lies further
// right; if larger, further left.
func (s *BLP[H]) lookupByHash(h uint32) int {
	m := len(s.arr)
	bucket := probe.Pref(h, m)
	if s.arr[bucket] < h {
		for bucket < m-1 && !s.isEmpty(bucket+1) && s.arr[bucket+1] <= h {
			bucket++
		}
	} else if s.arr[bucket] > h {
		for bucket > 0 && !s.isEmpty(bucket-1) && s.arr[bucket-1] >= h {
			bucket--
		}
	}
	if s.arr[bucket] == h {
		return bucket
	}
	return -1
}

func (s *BLP[H]) Contains(key int32) bool {
	checkKey(key)
	return s.lookupByHash(s.hasher.Hash(uint32(key))) != -1
}

// findMoveBoundaryToLeft walks left from startBucket while every cell is
// occupied and sits to the left of its own preferred bucket: such a cell
// can be slid one cell right without losing reachability, since that moves
// it toward, but not past, its preferred bucket.
func (s *BLP[H]) findMoveBoundaryToLeft(startBucket int) int {
	bucket := startBucket
	m := len(s.arr)
	for bucket > 0 && !s.isEmpty(bucket) && bucket-1 < probe.Pref(s.arr[bucket-1], m) {
		bucket--
	}
	return bucket
}

// findMoveBoundaryToRight is findMoveBoundaryToLeft's mirror image.
func (s *BLP[H]) findMoveBoundaryToRight(startBucket int) int {
	bucket := startBucket
	m := len(s.arr)
	for bucket < m-1 && !s.isEmpty(bucket) && bucket+1 > probe.Pref(s.arr[bucket+1], m) {
		bucket++
	}
	return bucket
}

func (s *BLP[H]) findFirstEmptyBucketToLeft(startBucket int) int {
	bucket := startBucket
	for bucket > 0 && !s.isEmpty(bucket) {
		bucket--
	}
	if s.isEmpty(bucket) {
		return bucket
	}
	return -1
}

func (s *BLP[H]) findFirstEmptyBucketToRight(startBucket int) int {
	bucket := startBucket
	m := len(s.arr)
	for bucket < m-1 && !s.isEmpty(bucket) {
		bucket++
	}
	if s.isEmpty(bucket) {
		return bucket
	}
	return -1
}

// moveEmptyBucketLeftToInsertionPoint slides an empty cell leftward until
// it reaches h's sorted position, shifting each skipped occupant one cell
// to the right as it passes.
func (s *BLP[H]) moveEmptyBucketLeftToInsertionPoint(startBucket int, h uint32) int {
	bucket := startBucket
	for bucket > 0 && !s.isEmpty(bucket-1) && s.arr[bucket-1] > h {
		s.arr[bucket] = s.arr[bucket-1]
		bucket--
	}
	return bucket
}

// moveEmptyBucketRightToInsertionPoint is the mirror image.
func (s *BLP[H]) moveEmptyBucketRightToInsertionPoint(startBucket int, h uint32) int {
	bucket := startBucket
	m := len(s.arr)
	for bucket < m-1 && !s.isEmpty(bucket+1) && s.arr[bucket+1] < h {
		s.arr[bucket] = s.arr[bucket+1]
		bucket++
	}
	return bucket
}

// getEmptyBucketForInsert finds the nearest empty cell in the probeLeft
// direction and slides it back to h's sorted insertion point. If that
// direction is exhausted it tries the opposite direction once; failing
// both directions means the table is full.
func (s *BLP[H]) getEmptyBucketForInsert(h uint32, startBucket int, probeLeft, prevProbeFailed bool) (int, bool) {
	bucket := startBucket
	if probeLeft {
		empty := s.findFirstEmptyBucketToLeft(bucket)
		if empty == -1 {
			if prevProbeFailed {
				return -1, false
			}
			return s.getEmptyBucketForInsert(h, bucket, false, true)
		}
		return s.moveEmptyBucketRightToInsertionPoint(empty, h), true
	}
	empty := s.findFirstEmptyBucketToRight(bucket)
	if empty == -1 {
		if prevProbeFailed {
			return -1, false
		}
		return s.getEmptyBucketForInsert(h, bucket, true, true)
	}
	return s.moveEmptyBucketLeftToInsertionPoint(empty, h), true
}

func (s *BLP[H]) Add(key int32) (bool, error) {
	checkKey(key)
	h := s.hasher.Hash(uint32(key))
	if s.lookupByHash(h) != -1 {
		return false, nil
	}
	m := len(s.arr)
	bucket := probe.Pref(h, m)
	if !s.isEmpty(bucket) {
		probeLeft := (bucket > 0 && s.arr[bucket] < h) || bucket == m-1
		var ok bool
		bucket, ok = s.getEmptyBucketForInsert(h, bucket, probeLeft, false)
		if !ok {
			return false, newTableFullError(key, m)
		}
	}
	if debug {
		fmt.Printf("BLP.Add(%d): bucket=%d hash=%d\n", key, bucket, h)
	}
	s.arr[bucket] = h
	s.size++
	s.checkInvariants()
	return true, nil
}

type moveDirection int

const (
	moveNone moveDirection = iota
	moveLeft
	moveRight
)

func unsignedAbsDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// getMoveDirection decides, for an interior bucket whose occupant is being
// deleted, which way (if any) to collapse the surrounding run. If the
// occupant is not at its own preferred bucket the run obviously extends
// past it in the direction that brings it closer to home. If it is at its
// own preferred bucket, the run may extend left, right, both, or not at
// all (a singleton, safely zeroed in place); when it extends both ways,
// the closer neighbor's run is pulled in, the smaller disturbance.
func (s *BLP[H]) getMoveDirection(bucket int) moveDirection {
	m := len(s.arr)
	prevBucket, nextBucket := bucket-1, bucket+1
	preferred := probe.Pref(s.arr[bucket], m)
	leftPreferred, rightPreferred := -1, -1
	if !s.isEmpty(prevBucket) {
		leftPreferred = probe.Pref(s.arr[prevBucket], m)
	}
	if !s.isEmpty(nextBucket) {
		rightPreferred = probe.Pref(s.arr[nextBucket], m)
	}
	switch {
	case bucket == preferred:
		switch {
		case leftPreferred != preferred && rightPreferred != preferred:
			return moveNone
		case leftPreferred == preferred && rightPreferred != preferred:
			return moveRight
		case leftPreferred != preferred && rightPreferred == preferred:
			return moveLeft
		default:
			prevDiff := unsignedAbsDiff(s.arr[bucket], s.arr[prevBucket])
			nextDiff := unsignedAbsDiff(s.arr[bucket], s.arr[nextBucket])
			if prevDiff > nextDiff {
				return moveLeft
			}
			return moveRight
		}
	case bucket < preferred:
		return moveRight
	default:
		return moveLeft
	}
}

func (s *BLP[H]) Remove(key int32) bool {
	checkKey(key)
	h := s.hasher.Hash(uint32(key))
	bucket := s.lookupByHash(h)
	if bucket == -1 {
		return false
	}
	m := len(s.arr)
	var dir moveDirection
	switch {
	case bucket == 0:
		dir = moveLeft
	case bucket == m-1:
		dir = moveRight
	default:
		dir = s.getMoveDirection(bucket)
	}
	curr := bucket
	switch dir {
	case moveNone:
		s.arr[bucket] = 0
	case moveLeft:
		end := s.findMoveBoundaryToRight(bucket)
		for curr < end {
			s.arr[curr] = s.arr[curr+1]
			curr++
		}
		s.arr[end] = 0
	case moveRight:
		end := s.findMoveBoundaryToLeft(bucket)
		for curr > end {
			s.arr[curr] = s.arr[curr-1]
			curr--
		}
		s.arr[end] = 0
	}
	s.size--
	s.checkInvariants()
	return true
}

// Cells returns the raw non-zero hash values currently stored, in bucket
// order. It exists for Rehome, which moves cells between tables of the
// same variant without calling Hash again.
func (s *BLP[H]) Cells() []uint32 {
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
func (s *BLP[H]) addHash(h uint32) (bool, error) {
	if s.lookupByHash(h) != -1 {
		return false, nil
	}
	m := len(s.arr)
	bucket := probe.Pref(h, m)
	if !s.isEmpty(bucket) {
		probeLeft := (bucket > 0 && s.arr[bucket] < h) || bucket == m-1
		var ok bool
		bucket, ok = s.getEmptyBucketForInsert(h, bucket, probeLeft, false)
		if !ok {
			return false, newTableFullError(0, m)
		}
	}
	s.arr[bucket] = h
	s.size++
	s.checkInvariants()
	return true, nil
}

func (s *BLP[H]) Clear() {
	for i := range s.arr {
		s.arr[i] = 0
	}
	s.size = 0
}

func (s *BLP[H]) DebugString() string {
	return debugString("BLP", s.arr, s.hasher.Unhash)
}

func (s *BLP[H]) WriteTo(w io.Writer) (int64, error) { return writeArrTo(w, s.arr) }

func (s *BLP[H]) ReadFrom(r io.Reader) (int64, error) {
	size, n, err := readArrInto(r, s.arr)
	if err != nil {
		return n, err
	}
	s.size = size
	return n, nil
}

func (s *BLP[H]) checkInvariants() {
	if !invariants {
		return
	}
	m := len(s.arr)
	count := 0
	for b := 0; b < m; b++ {
		h := s.arr[b]
		if h == 0 {
			continue
		}
		count++
		// Within any maximal run of occupied cells, hash values are sorted
		// ascending -- the invariant lookupByHash relies on to know which
		// direction to walk.
		if b > 0 && !s.isEmpty(b-1) && s.arr[b-1] > h {
			panic(fmt.Sprintf("BLP: invariant violated at bucket %d (run not sorted: %d > %d)\n%s",
				b, s.arr[b-1], h, s.DebugString()))
		}
		if got := s.lookupByHash(h); got != b {
			panic(fmt.Sprintf("BLP: invariant violated at bucket %d (hash %d unreachable, lookup found %d)\n%s",
				b, h, got, s.DebugString()))
		}
	}
	if count != s.size {
		panic(fmt.Sprintf("BLP: size=%d but counted %d occupied cells\n%s", s.size, count, s.DebugString()))
	}
}
