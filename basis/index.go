// SPDX-License-Identifier: MIT

package basis

// NCart is the number of Cartesian components per atom.
const NCart = 3

// Split decomposes a 3N-basis index into (atom, cart).
// Complexity: O(1).
func Split(k int) (atom, cart int) {
	return k / NCart, k % NCart
}

// ToSerial returns the NN33 serial of (atomI, cartA, atomJ, cartB).
// The argument order pairs each atom with its own Cartesian component.
// Complexity: O(1).
func ToSerial(atomI, cartA, atomJ, cartB, natom int) int {
	return atomI*9*natom + atomJ*9 + cartA*3 + cartB
}

// PairSerial returns the NN33 serial of the 3N-basis pair (p, q).
func PairSerial(p, q, natom int) int {
	ap, cp := Split(p)
	aq, cq := Split(q)

	return ToSerial(ap, cp, aq, cq, natom)
}

// Size3N returns the 3N-basis dimension for natom atoms.
func Size3N(natom int) int { return NCart * natom }

// NN33Dim returns (3N)², the number of NN33 serials.
func NN33Dim(natom int) int {
	s := Size3N(natom)

	return s * s
}

// PairCount returns 3N(3N+1)/2, the number of unordered 3N-basis pairs
// including the diagonal.
func PairCount(natom int) int {
	s := Size3N(natom)

	return s * (s + 1) / 2
}
