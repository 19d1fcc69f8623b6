// SPDX-License-Identifier: MIT
// Package: coo
//
// Purpose:
//   - Single source of truth for the boundary checks that hosts run before
//     calling the trusting kernels in package kron.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match with errors.Is and still see which check failed.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing beyond the error value.
//   - ValidateBasis is O(n) over the entries; everything else is O(1).

package coo

import (
	"fmt"
	"math"
)

// cartDim is the number of Cartesian components per atom.
const cartDim = 3

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLengths ensures Row, Col and Data have the same length.
//
// Returns: nil or wrapped ErrLengthMismatch.
// Complexity: O(1).
func ValidateLengths[I Index](m Matrix[I]) error {
	if len(m.Row) != len(m.Col) || len(m.Row) != len(m.Data) {
		return validatorErrorf("ValidateLengths", ErrLengthMismatch)
	}

	return nil
}

// ValidateAtoms checks that natom is positive.
// Complexity: O(1).
func ValidateAtoms(natom int) error {
	if natom <= 0 {
		return validatorErrorf("ValidateAtoms", ErrBadAtomCount)
	}

	return nil
}

// ValidateSize3N checks that size3n is a positive multiple of 3.
// Complexity: O(1).
func ValidateSize3N(size3n int) error {
	if size3n <= 0 || size3n%cartDim != 0 {
		return validatorErrorf("ValidateSize3N", ErrBadAtomCount)
	}

	return nil
}

// ValidateBasis ensures every row and column index lies in [0, size3n).
//
// Implementation:
//   - Stage 1: validate size3n itself.
//   - Stage 2: scan entries; report the first offending position.
//
// Assumes: lengths already validated (ValidateLengths).
// Complexity: O(n).
func ValidateBasis[I Index](m Matrix[I], size3n int) error {
	if err := ValidateSize3N(size3n); err != nil {
		return err
	}
	hi := int64(size3n)
	for k := range m.Row {
		r, c := int64(m.Row[k]), int64(m.Col[k])
		if r < 0 || r >= hi || c < 0 || c >= hi {
			return fmt.Errorf("ValidateBasis: entry %d (%d,%d) not in [0,%d): %w",
				k, r, c, size3n, ErrOutOfRange)
		}
	}

	return nil
}

// ValidateIndexWidth ensures maxIndex is representable in I.
// The check round-trips the value through I, so it works for any type in
// the Index set, including named types.
// Complexity: O(1).
func ValidateIndexWidth[I Index](maxIndex int64) error {
	if maxIndex < 0 || int64(I(maxIndex)) != maxIndex {
		return validatorErrorf("ValidateIndexWidth", ErrIndexOverflow)
	}

	return nil
}

// SquareLen returns n*n, the number of output entries produced from an
// n-entry input, or ErrTooLarge if the product overflows int.
// Complexity: O(1).
func SquareLen(n int) (int, error) {
	if n < 0 {
		return 0, validatorErrorf("SquareLen", ErrLengthMismatch)
	}
	if n != 0 && n > math.MaxInt/n {
		return 0, validatorErrorf("SquareLen", ErrTooLarge)
	}

	return n * n, nil
}

// ValidateDst ensures a destination buffer can hold need entries.
// Longer buffers are accepted; only the first need entries are written.
// Complexity: O(1).
func ValidateDst[I Index](dst Matrix[I], need int) error {
	if len(dst.Row) < need || len(dst.Col) < need || len(dst.Data) < need {
		return validatorErrorf("ValidateDst", ErrLengthMismatch)
	}

	return nil
}
