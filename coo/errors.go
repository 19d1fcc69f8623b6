// SPDX-License-Identifier: MIT
// Package coo: sentinel error set.
// Every boundary check in coo, basis and kron returns one of these sentinels,
// possibly wrapped with fmt.Errorf("ctx: %w", ErrX). Tests match via errors.Is.

package coo

import "errors"

// ERROR PRIORITY (enforced by the kron wrappers, checked in tests):
// length mismatch -> atom count / basis -> index range -> index width -> size.
// CompactSpgProj checks its labeler table size together with the atom count.

var (
	// ErrLengthMismatch is returned when Row, Col and Data differ in length,
	// or a destination buffer is shorter than required.
	ErrLengthMismatch = errors.New("coo: row/col/data length mismatch")

	// ErrBadAtomCount signals a non-positive atom count, or a 3N-basis
	// dimension that is not a positive multiple of 3.
	ErrBadAtomCount = errors.New("coo: invalid atom count or basis dimension")

	// ErrOutOfRange indicates a row or column index outside [0, 3N).
	ErrOutOfRange = errors.New("coo: index out of range")

	// ErrIndexOverflow indicates that the largest output index cannot be
	// represented by the chosen index type (e.g. int32 for very large N).
	ErrIndexOverflow = errors.New("coo: output index overflows index type")

	// ErrTooLarge is returned when the output entry count (size_R²) cannot be
	// allocated because it overflows int, or when the labeler table for an
	// atom count is over its cap.
	ErrTooLarge = errors.New("coo: output too large to allocate")

	// ErrInvalidDimensions indicates a dense view with negative dimensions.
	ErrInvalidDimensions = errors.New("coo: dimensions must be >= 0")
)
