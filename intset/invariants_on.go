//go:build invariants

package intset

const invariants = true
const debug = false
