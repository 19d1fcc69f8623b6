// Package symfc computes the index transformations used to build sparse
// matrices that impose crystal symmetry on interatomic force constants.
//
// What is in the box:
//
//	coo/   — COO sparse entry list, boundary validators, dense debug view
//	basis/ — 3N ↔ NN33 index arithmetic, canonical pair labeler, and the
//	         permutation compression matrix
//	kron/  — Kronecker square R⊗R in the NN33 basis and the compact
//	         (permutation-folded) symmetry projector
//	cmd/symfc-kron — command-line host for the kernels
//
// Quick example (two atoms, one entry):
//
//	r := coo.FromSlices([]int64{0}, []int64{3}, []float64{1})
//	out, _ := kron.KronNN33(r, 6) // one entry: row 0, col 27, value 1
//
// The kernels in kron are generic over the index width, write into
// caller-owned buffers in a fixed (i, j) order, and can split the outer loop
// over goroutines without changing the result.
//
//	go get github.com/katalvlaran/symfc
package symfc
