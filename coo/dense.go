// SPDX-License-Identifier: MIT

// Package coo - Dense debug view (row-major) with safe accessors.
//
// Purpose:
//   - Materialize a small COO matrix so values can be compared cell by cell.
//   - Sum duplicate entries, which is what a sparse assembler downstream does.
//
// Complexity quicksheet:
//   - ToDense: O(r*c + n); At: O(1).

package coo

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major r×c matrix of float64 values.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // len == r*c, offset = i*c + j
}

// ToDense sums the entries of m into an r×c Dense.
//
// Implementation:
//   - Stage 1: validate shape and slice lengths.
//   - Stage 2: allocate a zero buffer.
//   - Stage 3: accumulate every entry, rejecting out-of-range indices.
//
// Errors: ErrInvalidDimensions, ErrLengthMismatch, ErrOutOfRange.
// Complexity: Time O(r*c + n), Space O(r*c).
func ToDense[I Index](m Matrix[I], rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if err := ValidateLengths(m); err != nil {
		return nil, err
	}
	d := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for k := range m.Row {
		i, j := int(m.Row[k]), int(m.Col[k])
		if i < 0 || i >= rows || j < 0 || j >= cols {
			return nil, denseErrorf("ToDense", i, j, ErrOutOfRange)
		}
		d.data[i*cols+j] += m.Data[k]
	}

	return d, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.c }

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return d.data[row*d.c+col], nil
}

// RawRowView returns row i of the backing buffer without copying.
// It panics on an out-of-range row.
func (d *Dense) RawRowView(i int) []float64 {
	return d.data[i*d.c : (i+1)*d.c]
}

// String renders one bracketed line per row.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString("[")
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", d.data[i*d.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
