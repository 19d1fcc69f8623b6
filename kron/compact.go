// SPDX-License-Identifier: MIT

// Package kron - compact (permutation-folded) symmetry projector.
//
// Purpose:
//   - Same pair expansion as KronNN33, but output indices are compact ids
//     from basis.PermTable, so (p,q) and (q,p) share one slot.
//   - Scale by 1/√2 per axis on which the two factors differ, which keeps
//     inner products of the symmetric subspace.
//
// Scaling rule (order matters for bitwise reproducibility):
//
//	v = data[i]*data[j]
//	if row[i] != row[j] { v *= 1/√2 }
//	if col[i] != col[j] { v *= 1/√2 }

package kron

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symfc/basis"
	"github.com/katalvlaran/symfc/coo"
)

const ctxCompact = "CompactSpgProj"

// invSqrt2 is 1/√2 computed as √2/2.
const invSqrt2 = math.Sqrt2 / 2

// CompactSpgProjInto writes the compact projector of r into dst.
//
// Labeling (see Pairing):
//   - PairWithinEntry (default): row = id(row[i], col[i]), col = id(row[j], col[j]).
//   - PairAcrossFactors: row = id(row[i], row[j]), col = id(col[i], col[j]).
//
// The labeler is built from natom on every call unless WithPermTable
// supplies a matching one. dst must hold len(r.Row)² entries; nothing else
// is checked.
//
// Complexity: Time O(size_R² + N²), Space O(size_R + N²).
func CompactSpgProjInto[I coo.Index](dst, r coo.Matrix[I], natom int, opts ...Option) {
	o := gatherOptions(opts...)
	t := o.permTable(natom)

	if o.pairing == PairAcrossFactors {
		compactAcross(dst, r, t, o)
		return
	}
	compactWithin(dst, r, t, o)
}

// compactWithin labels each factor by its own (row, col) pair. The label of
// entry k does not depend on the partner, so it is looked up once per entry.
func compactWithin[I coo.Index](dst, r coo.Matrix[I], t *basis.PermTable, o Options) {
	n := len(r.Row)
	labels := make([]I, n)
	for k := 0; k < n; k++ {
		labels[k] = I(t.PairID(int(r.Row[k]), int(r.Col[k])))
	}

	forEachRow(n, o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			ri, ci, di := r.Row[i], r.Col[i], r.Data[i]
			out := i * n
			for j := 0; j < n; j++ {
				dst.Row[out+j] = labels[i]
				dst.Col[out+j] = labels[j]
				dst.Data[out+j] = scaled(di*r.Data[j], ri != r.Row[j], ci != r.Col[j])
			}
		}
	})
}

// compactAcross labels the output row by the row indices of both factors
// and the output col by their col indices, as in KronNN33.
func compactAcross[I coo.Index](dst, r coo.Matrix[I], t *basis.PermTable, o Options) {
	n := len(r.Row)

	forEachRow(n, o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			ri, ci, di := r.Row[i], r.Col[i], r.Data[i]
			out := i * n
			for j := 0; j < n; j++ {
				rj, cj := r.Row[j], r.Col[j]
				dst.Row[out+j] = I(t.PairID(int(ri), int(rj)))
				dst.Col[out+j] = I(t.PairID(int(ci), int(cj)))
				dst.Data[out+j] = scaled(di*r.Data[j], ri != rj, ci != cj)
			}
		}
	})
}

// scaled applies the per-axis 1/√2 factors in row-then-col order.
func scaled(v float64, rowOff, colOff bool) float64 {
	if rowOff {
		v *= invSqrt2
	}
	if colOff {
		v *= invSqrt2
	}

	return v
}

// CompactSpgProj validates r against natom, allocates len(r.Row)² output
// entries and runs CompactSpgProjInto.
//
// Errors (wrapped, match with errors.Is):
//   - coo.ErrBadAtomCount when natom <= 0.
//   - coo.ErrTooLarge when the (3N)² labeler table exceeds
//     basis.MaxTableSerials. This is an atom-count check and runs before
//     the entries are scanned.
//   - Everything KronNN33 reports, with size3n = 3*natom.
//
// Complexity: Time O(size_R² + N²), Space O(size_R² + N²).
func CompactSpgProj[I coo.Index](r coo.Matrix[I], natom int, opts ...Option) (coo.Matrix[I], error) {
	if err := coo.ValidateLengths(r); err != nil {
		return coo.Matrix[I]{}, fmt.Errorf("%s: %w", ctxCompact, err)
	}
	if err := basis.ValidateTableAtoms(natom); err != nil {
		return coo.Matrix[I]{}, fmt.Errorf("%s: %w", ctxCompact, err)
	}
	need, err := checkInput(r, basis.Size3N(natom))
	if err != nil {
		return coo.Matrix[I]{}, fmt.Errorf("%s: %w", ctxCompact, err)
	}
	dst := coo.New[I](need)
	CompactSpgProjInto(dst, r, natom, opts...)

	return dst, nil
}

// CompactShape returns the (square) shape of the compact projector for
// natom atoms: 3N(3N+1)/2 on each side.
func CompactShape(natom int) (rows, cols int) {
	n := basis.PairCount(natom)

	return n, n
}
