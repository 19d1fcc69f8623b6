// Package coo holds the coordinate-format (COO) sparse entry list shared by
// the basis and kron packages.
//
// The package provides:
//
//   - Matrix[I], three parallel slices (row, col, value) with no duplicate
//     aggregation, generic over the index width (int32, int64 or int).
//   - Sentinel errors and boundary validators that host code runs before
//     handing buffers to the trusting kernels in package kron.
//   - Dense, a small row-major view that sums duplicates, meant for
//     debugging and for tests on small systems.
//
// Kernels never validate; callers that accept data from outside the process
// should call the Validate* helpers first.
package coo
