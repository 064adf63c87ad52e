//go:build !invariants

package intset

// invariants gates the whole-array consistency scans (checkInvariants on
// each variant). They are expensive enough -- O(capacity) per mutation --
// that they are off by default and only compiled in with -tags invariants,
// mirroring how the teacher keeps its own checkInvariants behind a debug
// flag rather than running it unconditionally.
const invariants = false

// debug gates the per-operation trace printfs scattered through the four
// variants. Flip it locally when chasing a specific bug; it is never
// turned on by a build tag because the traces are verbose enough that
// nobody wants them compiled out entirely, just usually silent.
const debug = false
