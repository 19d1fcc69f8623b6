// SPDX-License-Identifier: MIT

package kron

import "golang.org/x/sync/errgroup"

// rowFunc processes outer-loop rows [lo, hi).
type rowFunc func(lo, hi int)

// forEachRow runs body over [0, n) either inline or in contiguous chunks on
// an errgroup limited to o.workers goroutines.
//
// Implementation:
//   - Stage 1: stay inline when workers == 1 or n is below two chunks.
//   - Stage 2: chunk = max(ceil(n/workers), minChunk); one task per chunk.
//   - Stage 3: wait for all tasks; body cannot fail, so Wait returns nil.
//
// Determinism:
//   - Chunks write disjoint output ranges, so scheduling order does not
//     affect the result.
func forEachRow(n int, o Options, body rowFunc) {
	if o.workers <= 1 || n < 2*o.minChunk {
		body(0, n)
		return
	}

	chunk := (n + o.workers - 1) / o.workers
	if chunk < o.minChunk {
		chunk = o.minChunk
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			body(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
