// SPDX-License-Identifier: MIT

// Package coo: domain types.
// Matrix is a plain struct of three slices so kernels can index the backing
// arrays directly in their hot loops.
package coo

// Index is the set of integer types accepted as row/column storage.
// int32 and int64 mirror the two storage widths used by numeric hosts;
// int is accepted for native Go callers.
type Index interface {
	~int32 | ~int64 | ~int
}

// Matrix is a sparse matrix in coordinate form.
// Entry k is (Row[k], Col[k], Data[k]). Duplicate (row, col) pairs are legal
// and are never merged. All three slices must have equal length.
type Matrix[I Index] struct {
	Row  []I       // row indices
	Col  []I       // column indices
	Data []float64 // entry values
}

// New allocates a Matrix with n zeroed entries.
// Complexity: O(n) time and memory.
func New[I Index](n int) Matrix[I] {
	return Matrix[I]{
		Row:  make([]I, n),
		Col:  make([]I, n),
		Data: make([]float64, n),
	}
}

// FromSlices wraps existing slices without copying.
func FromSlices[I Index](row, col []I, data []float64) Matrix[I] {
	return Matrix[I]{Row: row, Col: col, Data: data}
}

// Len returns the entry count, taken from Row as the kernels do.
func (m Matrix[I]) Len() int { return len(m.Row) }

// At returns entry k. It panics when k is out of range, like a slice index.
func (m Matrix[I]) At(k int) (row, col I, v float64) {
	return m.Row[k], m.Col[k], m.Data[k]
}

// Convert copies m into a Matrix with a different index width.
// Values that do not fit in J are truncated; run ValidateIndexWidth first.
// Complexity: O(n).
func Convert[J, I Index](m Matrix[I]) Matrix[J] {
	out := New[J](m.Len())
	for k := range m.Row {
		out.Row[k] = J(m.Row[k])
		out.Col[k] = J(m.Col[k])
	}
	copy(out.Data, m.Data)

	return out
}
