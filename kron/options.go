// SPDX-License-Identifier: MIT

// Package kron: functional configuration for the Kronecker kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options never change the values a kernel writes, only how the work is
//     scheduled or which labeling is used. Sequential and parallel runs
//     produce identical output.
package kron

import "github.com/katalvlaran/symfc/basis"

// Pairing selects which 3N-basis indices the compact projector labels.
type Pairing int

const (
	// PairWithinEntry labels output row by (row[i], col[i]) and output col
	// by (row[j], col[j]): each factor's own row/col pair.
	PairWithinEntry Pairing = iota

	// PairAcrossFactors labels output row by (row[i], row[j]) and output col
	// by (col[i], col[j]), matching the row/col layout of KronNN33. The
	// result equals C^T (R⊗R) C for the compression matrix C.
	PairAcrossFactors
)

// String returns the CLI spelling of p.
func (p Pairing) String() string {
	switch p {
	case PairWithinEntry:
		return "entry"
	case PairAcrossFactors:
		return "factor"
	default:
		return "unknown"
	}
}

// ParsePairing maps "entry" / "factor" to a Pairing.
func ParsePairing(s string) (Pairing, bool) {
	switch s {
	case "entry", "within":
		return PairWithinEntry, true
	case "factor", "across":
		return PairAcrossFactors, true
	default:
		return 0, false
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs the outer loop inline, with no goroutines.
	DefaultWorkers = 1

	// DefaultPairing is the within-entry labeling.
	DefaultPairing = PairWithinEntry

	// DefaultMinChunk is the smallest number of outer-loop rows given to one
	// worker; below it the kernel stays sequential.
	DefaultMinChunk = 64
)

const (
	panicWorkersInvalid  = "kron: WithWorkers: n must be >= 1"
	panicPairingInvalid  = "kron: WithPairing: unknown pairing"
	panicMinChunkInvalid = "kron: WithMinChunk: rows must be >= 1"
)

// Option mutates internal options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers  int
	minChunk int
	pairing  Pairing
	table    *basis.PermTable // optional prebuilt labeler
}

// WithWorkers splits the outer loop over at most n goroutines.
//
// Behavior highlights:
//   - Each worker owns a contiguous range of i and writes only
//     [lo*size_R, hi*size_R) of the output.
//   - n == 1 (default) never spawns goroutines.
//
// Errors:
//   - Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinChunk sets the minimum outer-loop rows per worker.
// Panics when rows < 1.
func WithMinChunk(rows int) Option {
	if rows < 1 {
		panic(panicMinChunkInvalid)
	}

	return func(o *Options) { o.minChunk = rows }
}

// WithPairing selects the compact projector labeling. Ignored by KronNN33.
// Panics on values other than PairWithinEntry and PairAcrossFactors.
func WithPairing(p Pairing) Option {
	if p != PairWithinEntry && p != PairAcrossFactors {
		panic(panicPairingInvalid)
	}

	return func(o *Options) { o.pairing = p }
}

// WithPermTable reuses a labeler built by basis.NewPermTable instead of
// building one per call. The table must match the natom passed to the
// compact projector; a mismatched table is ignored and rebuilt.
func WithPermTable(t *basis.PermTable) Option {
	return func(o *Options) { o.table = t }
}

// gatherOptions applies setters on top of the defaults (last writer wins).
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:  DefaultWorkers,
		minChunk: DefaultMinChunk,
		pairing:  DefaultPairing,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// permTable returns the configured table when it fits natom, else a fresh one.
func (o Options) permTable(natom int) *basis.PermTable {
	if o.table != nil && o.table.NAtom() == natom {
		return o.table
	}

	return basis.NewPermTable(natom)
}
