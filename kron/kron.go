// SPDX-License-Identifier: MIT

// Package kron - Kronecker square of a 3N-basis matrix in NN33 layout.
//
// Purpose:
//   - Expand every ordered pair of input entries (i, j) into one output entry
//     at slot i*size_R + j.
//   - Reindex (row[i], row[j]) and (col[i], col[j]) from 3N×3N pairs into NN33
//     serials, mirroring a true Kronecker product R⊗R.
//
// Contracts:
//   - KronNN33Into trusts its inputs; KronNN33 validates and allocates.

package kron

import (
	"fmt"

	"github.com/katalvlaran/symfc/coo"
)

const ctxKron = "KronNN33"

// KronNN33Into writes R⊗R, reindexed to the NN33 basis, into dst.
//
// For output slot i*size_R + j:
//
//	row  = (row[i]/3)*3*size3n + (row[j]/3)*9 + (row[i]%3)*3 + row[j]%3
//	col  = (col[i]/3)*3*size3n + (col[j]/3)*9 + (col[i]%3)*3 + col[j]%3
//	data = data[i] * data[j]
//
// size_R is len(r.Row). dst must hold at least size_R² entries; nothing is
// checked. Arithmetic is done in int64 and narrowed to I on store.
//
// Complexity: Time O(size_R²), Space O(1) beyond dst.
func KronNN33Into[I coo.Index](dst, r coo.Matrix[I], size3n int, opts ...Option) {
	o := gatherOptions(opts...)
	n := len(r.Row)
	stride := int64(3 * size3n)

	forEachRow(n, o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			ri, ci := int64(r.Row[i]), int64(r.Col[i])
			rowHi := (ri/3)*stride + (ri%3)*3
			colHi := (ci/3)*stride + (ci%3)*3
			di := r.Data[i]
			out := i * n
			for j := 0; j < n; j++ {
				rj, cj := int64(r.Row[j]), int64(r.Col[j])
				dst.Row[out+j] = I(rowHi + (rj/3)*9 + rj%3)
				dst.Col[out+j] = I(colHi + (cj/3)*9 + cj%3)
				dst.Data[out+j] = di * r.Data[j]
			}
		}
	})
}

// KronNN33 validates r, allocates size_R² output entries and runs
// KronNN33Into.
//
// Implementation:
//   - Stage 1: ValidateLengths, ValidateBasis(size3n).
//   - Stage 2: check that (size3n)²-1 fits in I and size_R² fits in int.
//   - Stage 3: allocate and run the kernel.
//
// Errors (wrapped, match with errors.Is):
//   - coo.ErrLengthMismatch, coo.ErrBadAtomCount, coo.ErrOutOfRange,
//     coo.ErrIndexOverflow, coo.ErrTooLarge.
//
// Complexity: Time O(size_R²), Space O(size_R²).
func KronNN33[I coo.Index](r coo.Matrix[I], size3n int, opts ...Option) (coo.Matrix[I], error) {
	need, err := checkInput(r, size3n)
	if err != nil {
		return coo.Matrix[I]{}, fmt.Errorf("%s: %w", ctxKron, err)
	}
	dst := coo.New[I](need)
	KronNN33Into(dst, r, size3n, opts...)

	return dst, nil
}

// KronShape returns the shape of the KronNN33 output: (3N)² on each side.
func KronShape(size3n int) (rows, cols int) {
	return size3n * size3n, size3n * size3n
}

// checkInput runs the shared boundary checks and returns size_R².
// The largest index either kernel writes is (size3n)²-1 (an NN33 serial);
// compact ids are always smaller.
func checkInput[I coo.Index](r coo.Matrix[I], size3n int) (int, error) {
	if err := coo.ValidateLengths(r); err != nil {
		return 0, err
	}
	if err := coo.ValidateBasis(r, size3n); err != nil {
		return 0, err
	}
	dim := int64(size3n)
	if err := coo.ValidateIndexWidth[I](dim*dim - 1); err != nil {
		return 0, err
	}

	return coo.SquareLen(len(r.Row))
}
