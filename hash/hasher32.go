package hash

import "github.com/senderista/bijecthash/internal/assertx"

// Hasher32 is a bijective permutation of the 32-bit integer domain. Hash and
// Unhash must be exact inverses of one another for every non-zero input, and
// both must map 0 to 0.
type Hasher32 interface {
	Hash(x uint32) uint32
	Unhash(x uint32) uint32
}

// Identity32 is the no-op permutation: every int set variant can be
// instantiated with it to store the raw key as the "hash", at the cost of
// losing any mixing of low bits into the preferred-bucket computation.
type Identity32 struct{}

func (Identity32) Hash(x uint32) uint32   { return x }
func (Identity32) Unhash(x uint32) uint32 { return x }

// Phi32 multiplies by the golden-ratio constant used throughout fastutil's
// HashCommon, then folds the high half down with a single xor-shift.
//
// https://raw.githubusercontent.com/vigna/fastutil/master/src/it/unimi/dsi/fastutil/HashCommon.java
type Phi32 struct{}

const (
	phi32    uint32 = 0x9e3779b9
	invPhi32 uint32 = 0x144cbc89
)

func (Phi32) Hash(x uint32) uint32 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x *= phi32
	x ^= x >> 16
	return x
}

func (Phi32) Unhash(x uint32) uint32 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 16
	x *= invPhi32
	return x
}

// Murmur3_32 is the Murmur3 32-bit finalizer, run forward as the hash and
// with its modular-inverse multipliers run backward as the unhash.
//
// https://github.com/aappleby/smhasher/wiki/MurmurHash3
type Murmur3_32 struct{}

func (Murmur3_32) Hash(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x85ebca6b
	x ^= x >> 13
	x *= 0xc2b2ae35
	x ^= x >> 16
	return x
}

func (Murmur3_32) Unhash(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7ed1b41d
	x ^= (x >> 13) ^ (x >> 26)
	x *= 0xa5cb9243
	x ^= x >> 16
	return x
}

// H2_32 is the integer mixer used by the H2 database engine: two rounds of
// multiply-xorshift by the same odd constant.
//
// https://github.com/h2database/h2database
type H2_32 struct{}

func (H2_32) Hash(x uint32) uint32 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 16
	x *= 0x45d9f3b
	x ^= x >> 16
	x *= 0x45d9f3b
	x ^= x >> 16
	return x
}

func (H2_32) Unhash(x uint32) uint32 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 16
	x *= 0x119de1f3
	x ^= x >> 16
	x *= 0x119de1f3
	x ^= x >> 16
	return x
}

// Prospector2_32 is the two-round integer hash from chris wellons'
// hash-prospector search.
//
// https://github.com/skeeto/hash-prospector#two-round-functions
type Prospector2_32 struct{}

func (Prospector2_32) Hash(x uint32) uint32 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

func (Prospector2_32) Unhash(x uint32) uint32 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 16
	x *= 0x43021123
	x ^= (x >> 15) ^ (x >> 30)
	x *= 0x1d69e2a5
	x ^= x >> 16
	return x
}

// Prospector3_32 is the three-round integer hash from the same search,
// trading one extra round for a better avalanche score.
//
// https://github.com/skeeto/hash-prospector#three-round-functions
type Prospector3_32 struct{}

func (Prospector3_32) Hash(x uint32) uint32 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 17
	x *= 0xed5ad4bb
	x ^= x >> 11
	x *= 0xac4c1b51
	x ^= x >> 15
	x *= 0x31848bab
	x ^= x >> 14
	return x
}

func (Prospector3_32) Unhash(x uint32) uint32 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= (x >> 14) ^ (x >> 28)
	x *= 0x32b21703
	x ^= (x >> 15) ^ (x >> 30)
	x *= 0x469e0db1
	x ^= (x >> 11) ^ (x >> 22)
	x *= 0x79a85073
	x ^= x >> 17
	return x
}
