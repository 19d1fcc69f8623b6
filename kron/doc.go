// Package kron builds the sparse matrices used to impose crystal symmetry on
// force constants of N atoms.
//
// Two operations are provided, each in two forms:
//
//   - KronNN33Into / KronNN33: the Kronecker square R⊗R of a 3N-basis COO
//     matrix, reindexed into the NN33 basis.
//   - CompactSpgProjInto / CompactSpgProj: the same pairwise expansion with
//     indices folded by basis.PermTable and values scaled by 1/√2 per
//     off-diagonal axis.
//
// The ...Into kernels write into caller-owned buffers of len(R)² entries and
// trust their inputs completely. The plain forms validate, allocate and then
// call the kernel. Output order is fixed: entry (i, j) lands in slot
// i*len(R) + j, whether or not WithWorkers parallelizes the outer loop.
//
// Both kernels are generic over the index width (coo.Index), so the int32
// and int64 variants share one body.
package kron
