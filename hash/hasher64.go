package hash

import "github.com/senderista/bijecthash/internal/assertx"

// Hasher64 is a bijective permutation of the 64-bit integer domain, with
// the same Hash/Unhash inverse contract as Hasher32.
type Hasher64 interface {
	Hash(x uint64) uint64
	Unhash(x uint64) uint64
}

// Identity64 is the no-op 64-bit permutation.
type Identity64 struct{}

func (Identity64) Hash(x uint64) uint64   { return x }
func (Identity64) Unhash(x uint64) uint64 { return x }

// Murmur3_64 is the Murmur3 64-bit finalizer.
//
// https://github.com/aappleby/smhasher/wiki/MurmurHash3
type Murmur3_64 struct{}

func (Murmur3_64) Hash(x uint64) uint64 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

func (Murmur3_64) Unhash(x uint64) uint64 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 33
	x *= 0x9cb4b2f8129337db
	x ^= x >> 33
	x *= 0x4f74430c22a54005
	x ^= x >> 33
	return x
}

// Variant13_64 is "variant 13" of the Murmur3 64-bit finalizer, with a
// better avalanche profile than the stock finalizer.
//
// http://zimbry.blogspot.com/2011/09/better-bit-mixing-improving-on.html
type Variant13_64 struct{}

func (Variant13_64) Hash(x uint64) uint64 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func (Variant13_64) Unhash(x uint64) uint64 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= (x >> 31) ^ (x >> 62)
	x *= 0x319642b2d24d8ec3
	x ^= (x >> 27) ^ (x >> 54)
	x *= 0x96de1b173f119089
	x ^= (x >> 30) ^ (x >> 60)
	return x
}

// Phi64 multiplies by the 64-bit golden-ratio constant used throughout
// fastutil's HashCommon, folding both halves down with xor-shifts.
//
// https://raw.githubusercontent.com/vigna/fastutil/master/src/it/unimi/dsi/fastutil/HashCommon.java
type Phi64 struct{}

const (
	phi64    uint64 = 0x9e3779b97f4a7c15
	invPhi64 uint64 = 0xf1de83e19937733d
)

func (Phi64) Hash(x uint64) uint64 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x *= phi64
	x ^= x >> 32
	x ^= x >> 16
	return x
}

func (Phi64) Unhash(x uint64) uint64 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 32
	x ^= x >> 16
	x ^= x >> 32
	x *= invPhi64
	return x
}

// Wang64 is Thomas Wang's 64-bit integer mix, inverted step by step: each
// forward multiply is undone with its modular inverse mod 2^64, and each
// xor-shift is undone by the standard self-composition identity (the
// fixed point of repeatedly re-applying x ^= tmp>>k converges once k*ceil
// covers the word width).
//
// Wang's mix on its own maps 0 to a non-zero value, so Hash XORs its result
// with wang64ZeroImage (the mix's image of 0) and Unhash removes it first.
// The XOR keeps the function a bijection and makes it fix 0 like every
// other entry in this catalog.
//
// https://naml.us/post/inverse-of-a-hash-function/
type Wang64 struct{}

const wang64ZeroImage uint64 = 0x77cfa1eef01bca90

func (Wang64) Hash(x uint64) uint64 {
	x = (^x) + (x << 21) // x = (x << 21) - x - 1
	x ^= x >> 24
	x = (x + (x << 3)) + (x << 8) // x * 265
	x ^= x >> 14
	x = (x + (x << 2)) + (x << 4) // x * 21
	x ^= x >> 28
	x += x << 31
	return x ^ wang64ZeroImage
}

func (Wang64) Unhash(x uint64) uint64 {
	var tmp uint64
	x ^= wang64ZeroImage

	// invert x = x + (x << 31)
	tmp = x - (x << 31)
	x = x - (tmp << 31)

	// invert x = x ^ (x >> 28)
	tmp = x ^ (x >> 28)
	x = x ^ (tmp >> 28)

	// invert x *= 21
	x *= 14933078535860113213

	// invert x = x ^ (x >> 14); three-term self-composition since 14*5 > 64
	tmp = x ^ (x >> 14)
	tmp = x ^ (tmp >> 14)
	tmp = x ^ (tmp >> 14)
	x = x ^ (tmp >> 14)

	// invert x *= 265
	x *= 15244667743933553977

	// invert x = x ^ (x >> 24)
	tmp = x ^ (x >> 24)
	x = x ^ (tmp >> 24)

	// invert x = (~x) + (x << 21)
	tmp = ^x
	tmp = ^(x - (tmp << 21))
	tmp = ^(x - (tmp << 21))
	x = ^(x - (tmp << 21))

	return x
}

// Degski64 is a splitmix64 variant with three xor-shift-by-32 rounds
// interleaved with two multiplies by a fixed odd constant.
//
// https://gist.github.com/degski/6e2069d6035ae04d5d6f64981c995ec2
type Degski64 struct{}

func (Degski64) Hash(x uint64) uint64 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 32
	x *= 0xD6E8FEB86659FD93
	x ^= x >> 32
	x *= 0xD6E8FEB86659FD93
	x ^= x >> 32
	return x
}

func (Degski64) Unhash(x uint64) uint64 {
	assertx.That("x != 0", func() bool { return x != 0 })
	x ^= x >> 32
	x *= 0xCFEE444D8B59A89B
	x ^= x >> 32
	x *= 0xCFEE444D8B59A89B
	x ^= x >> 32
	return x
}
