// SPDX-License-Identifier: MIT

// Package basis - canonical pair labeler.
//
// Purpose:
//   - Map every NN33 serial to a compact id so that the pairs (p,q) and (q,p)
//     of 3N-basis indices share one slot.
//
// Determinism:
//   - Ids depend only on natom. Pairs p <= q are visited in row-major order
//     and receive consecutive ids starting at 0; mirrored pairs copy them.

package basis

import (
	"fmt"

	"github.com/katalvlaran/symfc/coo"
)

// MaxTableSerials caps the labeler at 2^30 slots (8 GiB of ids), enough for
// 10922 atoms.
const MaxTableSerials = 1 << 30

// ValidateTableAtoms checks that natom is positive and that its (3N)² table
// fits in MaxTableSerials. Run it before NewPermTable on untrusted input.
//
// Returns: nil, wrapped coo.ErrBadAtomCount or wrapped coo.ErrTooLarge.
// Complexity: O(1).
func ValidateTableAtoms(natom int) error {
	if err := coo.ValidateAtoms(natom); err != nil {
		return err
	}
	// Keeps Size3N and its square clear of int overflow.
	if natom > MaxTableSerials {
		return fmt.Errorf("ValidateTableAtoms: natom %d: %w", natom, coo.ErrTooLarge)
	}
	if n, err := coo.SquareLen(Size3N(natom)); err != nil || n > MaxTableSerials {
		return fmt.Errorf("ValidateTableAtoms: natom %d exceeds %d table slots: %w",
			natom, MaxTableSerials, coo.ErrTooLarge)
	}

	return nil
}

// PermTable is the canonicalization table from NN33 serials to compact ids.
// It is immutable after construction and safe for concurrent readers.
type PermTable struct {
	natom int
	ids   []int64 // indexed by NN33 serial, len == (3N)²
	n     int     // number of distinct ids
}

// NewPermTable builds the table for natom atoms.
//
// Implementation:
//   - Stage 1: allocate (3N)² slots on the heap.
//   - Stage 2: walk p, q over [0, 3N) row-major. For p > q copy the id
//     stored at the mirrored serial; otherwise assign the next id.
//
// Behavior highlights:
//   - natom <= 0 yields an empty table (Len() == 0).
//   - natom is trusted; see ValidateTableAtoms.
//   - Ids are dense: exactly 3N(3N+1)/2 distinct values, no gaps.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func NewPermTable(natom int) *PermTable {
	if natom < 0 {
		natom = 0
	}
	size := Size3N(natom)
	ids := make([]int64, size*size)

	var next int64
	for p := 0; p < size; p++ {
		ap, cp := Split(p)
		for q := 0; q < size; q++ {
			aq, cq := Split(q)
			s := ToSerial(ap, cp, aq, cq, natom)
			if p > q {
				// (q,p) was visited earlier in row-major order.
				ids[s] = ids[ToSerial(aq, cq, ap, cp, natom)]
				continue
			}
			ids[s] = next
			next++
		}
	}

	return &PermTable{natom: natom, ids: ids, n: int(next)}
}

// NAtom returns the atom count the table was built for.
func (t *PermTable) NAtom() int { return t.natom }

// Len returns the number of distinct ids, 3N(3N+1)/2.
func (t *PermTable) Len() int { return t.n }

// Serials returns the number of NN33 serials covered, (3N)².
func (t *PermTable) Serials() int { return len(t.ids) }

// ID returns the compact id of (atomI, cartA, atomJ, cartB).
// It panics when the tuple is outside the table, like a slice index.
// Complexity: O(1).
func (t *PermTable) ID(atomI, cartA, atomJ, cartB int) int64 {
	return t.ids[ToSerial(atomI, cartA, atomJ, cartB, t.natom)]
}

// PairID returns the compact id of the 3N-basis pair (p, q).
// PairID(p, q) == PairID(q, p).
func (t *PermTable) PairID(p, q int) int64 {
	return t.ids[PairSerial(p, q, t.natom)]
}

// BySerial returns the compact id stored at an NN33 serial.
func (t *PermTable) BySerial(serial int) int64 { return t.ids[serial] }

// IDs returns a copy of the full table indexed by NN33 serial.
// Complexity: O(N²).
func (t *PermTable) IDs() []int64 {
	out := make([]int64, len(t.ids))
	copy(out, t.ids)

	return out
}
