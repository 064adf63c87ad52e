// Package hash implements a catalog of reversible integer permutations:
// functions that are bijections on the 32-bit or 64-bit integer domain, so
// that hash(unhash(x)) == x and unhash(hash(x)) == x for every non-zero x.
//
// Every permutation below fixes 0 (hash(0) == 0, unhash(0) == 0). Callers
// that use 0 as an "empty" sentinel must never invoke Hash or Unhash with 0;
// all of the catalog's implementations assume this and some assert it in
// debug builds.
//
// The 32-bit permutations implement Hasher32 and back the int sets in
// package intset. The 64-bit permutations implement Hasher64 for callers
// who need a wider domain; they are not otherwise used by this module.
//
// Every constant below is a bit-exact transcription of a known published
// permutation (fastutil's Phi mix, the Murmur3 finalizers, h2database's
// H2 mix, chris wellons' hash-prospector round functions, Thomas Wang's
// 64-bit mix, and degski's splitmix64 variant) and must not be changed:
// persisted hashes depend on the exact constants used to produce them.
package hash
