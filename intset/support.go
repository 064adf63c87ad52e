package intset

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/senderista/bijecthash/internal/probe"
)

// lookupLinear walks forward from h's preferred bucket until it finds h,
// finds an empty cell, or completes a full revolution. It implements the
// LP and LCFS variants' shared lookup: both stop probing on the first gap,
// so the returned bucket may legitimately be empty -- it is then the
// insertion point for Add, and Contains must check emptiness itself before
// treating the result as a hit. This conflation (lookup doubles as
// find-insertion-point) is load-bearing, not an oversight.
func lookupLinear(arr []uint32, h uint32) int {
	m := len(arr)
	bucket := probe.Pref(h, m)
	probeLen := 0
	for arr[bucket] != 0 && arr[bucket] != h {
		if probeLen == m {
			return -1
		}
		bucket = probe.Wrap(bucket+1, m)
		probeLen++
	}
	return bucket
}

// findFirstEmpty walks forward from startBucket for the first empty cell,
// returning -1 if a full revolution turns up none.
func findFirstEmpty(arr []uint32, startBucket int) int {
	m := len(arr)
	bucket := startBucket
	probeLen := 0
	for arr[bucket] != 0 {
		if probeLen == m {
			return -1
		}
		bucket = probe.Wrap(bucket+1, m)
		probeLen++
	}
	return bucket
}

// backwardShiftLP is the tombstone-free deletion shift shared by LP and
// LCFS: Goodrich & Tamassia, Algorithm Design and Applications, 6.3.3.
// startBucket has already been emptied by the caller.
func backwardShiftLP(arr []uint32, startBucket int) {
	m := len(arr)
	dst := startBucket
	shift := 1
	src := probe.Wrap(dst+shift, m)
	for arr[src] != 0 {
		p := probe.Pref(arr[src], m)
		var reachable bool
		if src <= dst {
			reachable = p <= dst && p > src
		} else {
			reachable = p <= dst || p > src
		}
		if reachable {
			arr[dst] = arr[src]
			arr[src] = 0
			dst = probe.Wrap(dst+shift, m)
			shift = 1
		} else {
			shift++
		}
		src = probe.Wrap(dst+shift, m)
	}
}

// debugString renders a "name: capacity=M" header followed by one line per
// cell of arr: "bucket: empty", or "bucket: key=K hash=H pref=P" for an
// occupied cell, matching the teacher's bucket.debugString layout.
func debugString(name string, arr []uint32, unhash func(uint32) uint32) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s: capacity=%d\n", name, len(arr))
	for i, h := range arr {
		if h == 0 {
			fmt.Fprintf(&buf, "  %4d: empty\n", i)
			continue
		}
		fmt.Fprintf(&buf, "  %4d: key=%d hash=%d pref=%d\n", i, unhash(h), h, probe.Pref(h, len(arr)))
	}
	return buf.String()
}

// writeArrTo serializes arr as len(arr) little-endian uint32 cells, the
// persisted layout spec'd for every variant: a reader applying the same
// hasher's Unhash to each non-zero cell recovers the stored key multiset.
func writeArrTo(w io.Writer, arr []uint32) (int64, error) {
	buf := make([]byte, 4*len(arr))
	for i, h := range arr {
		binary.LittleEndian.PutUint32(buf[4*i:], h)
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// readArrInto overwrites arr in place from len(arr) little-endian uint32
// cells read from r, returning the number of occupied (non-zero) cells so
// the caller can set its size counter.
func readArrInto(r io.Reader, arr []uint32) (size int, n int64, err error) {
	buf := make([]byte, 4*len(arr))
	read, err := io.ReadFull(r, buf)
	n = int64(read)
	if err != nil {
		return 0, n, err
	}
	for i := range arr {
		arr[i] = binary.LittleEndian.Uint32(buf[4*i:])
		if arr[i] != 0 {
			size++
		}
	}
	return size, n, nil
}
