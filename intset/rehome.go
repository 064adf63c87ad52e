package intset

// cellMover is satisfied by every variant in this package: Cells exposes
// the raw stored hashes, and addHash inserts a raw hash without calling the
// hasher again. Rehome is the only caller of addHash outside a variant's
// own file.
type cellMover interface {
	Cells() []uint32
	addHash(h uint32) (bool, error)
}

// Rehome copies every element of src into dst by walking src's raw stored
// hashes and re-inserting them into dst directly, without recomputing
// Hash. dst and src must use the same hasher and probing discipline (the
// stored hash values are only meaningful relative to a particular
// Hasher32), and dst must have enough free capacity or Rehome returns the
// first *TableFullError encountered.
//
// This is the "build a new table at a larger capacity and re-insert" growth
// path: the set types themselves never grow in place, since a fixed
// backing array is part of every variant's contract.
func Rehome(dst, src cellMover) error {
	for _, h := range src.Cells() {
		if _, err := dst.addHash(h); err != nil {
			return err
		}
	}
	return nil
}
