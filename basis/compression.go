// SPDX-License-Identifier: MIT

package basis

import (
	"math"

	"github.com/katalvlaran/symfc/coo"
)

// invSqrt2 is the off-diagonal weight of the compression matrix.
const invSqrt2 = math.Sqrt2 / 2

// CompressionShape returns the shape of the permutation compression matrix:
// ((3N)², 3N(3N+1)/2).
func CompressionShape(natom int) (rows, cols int) {
	if natom < 0 {
		natom = 0
	}

	return NN33Dim(natom), PairCount(natom)
}

// Compression returns the permutation compression matrix C in COO form.
//
// Implementation:
//   - Visit unordered pairs p <= q of 3N-basis indices, p outer, with a
//     running column n.
//   - Diagonal pair: one entry (serial(p,p), n, 1).
//   - Off-diagonal pair: (serial(p,q), n, √2/2) and (serial(q,p), n, √2/2).
//
// Behavior highlights:
//   - Column n equals NewPermTable(natom).PairID(p, q).
//   - Columns are orthonormal, so C^T C = I and C C^T projects onto
//     permutation-symmetric NN33 vectors.
//   - Exactly (3N)² entries: 3N diagonal plus 2 per off-diagonal pair.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func Compression(natom int) coo.Matrix[int64] {
	if natom < 0 {
		natom = 0
	}
	size := Size3N(natom)
	m := coo.New[int64](size * size)

	k, n := 0, int64(0)
	for p := 0; p < size; p++ {
		for q := p; q < size; q++ {
			if p == q {
				m.Row[k], m.Col[k], m.Data[k] = int64(PairSerial(p, q, natom)), n, 1
				k++
			} else {
				m.Row[k], m.Col[k], m.Data[k] = int64(PairSerial(p, q, natom)), n, invSqrt2
				m.Row[k+1], m.Col[k+1], m.Data[k+1] = int64(PairSerial(q, p, natom)), n, invSqrt2
				k += 2
			}
			n++
		}
	}

	return m
}
