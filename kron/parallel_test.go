// SPDX-License-Identifier: MIT
// Package kron_test verifies that parallel scheduling does not change results.
package kron_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/symfc/coo"
	"github.com/katalvlaran/symfc/kron"
	"github.com/stretchr/testify/require"
)

// TestWorkers_MatchSequential runs every kernel with several worker counts
// and diffs against the inline run. Goroutine leaks are caught by TestMain.
func TestWorkers_MatchSequential(t *testing.T) {
	t.Parallel()

	const natom = 4
	r := randomCOO(42, natom, 301) // odd length exercises the short last chunk

	kernels := []struct {
		name string
		run  func(opts ...kron.Option) (coo.Matrix[int64], error)
	}{
		{"kron", func(opts ...kron.Option) (coo.Matrix[int64], error) {
			return kron.KronNN33(r, 3*natom, opts...)
		}},
		{"compact/entry", func(opts ...kron.Option) (coo.Matrix[int64], error) {
			return kron.CompactSpgProj(r, natom, opts...)
		}},
		{"compact/factor", func(opts ...kron.Option) (coo.Matrix[int64], error) {
			return kron.CompactSpgProj(r, natom, append(opts, kron.WithPairing(kron.PairAcrossFactors))...)
		}},
	}

	for _, k := range kernels {
		want, err := k.run()
		require.NoError(t, err)
		for _, workers := range []int{2, 3, 8} {
			t.Run(fmt.Sprintf("%s/workers=%d", k.name, workers), func(t *testing.T) {
				got, err := k.run(kron.WithWorkers(workers), kron.WithMinChunk(4))
				require.NoError(t, err)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("parallel result differs (-seq +par):\n%s", diff)
				}
			})
		}
	}
}

// TestWorkers_SmallInputStaysInline uses a large minimum chunk so the driver
// falls back to the inline path; the result must still be complete.
func TestWorkers_SmallInputStaysInline(t *testing.T) {
	t.Parallel()

	r := randomCOO(1, 2, 10)
	seq, err := kron.KronNN33(r, 6)
	require.NoError(t, err)
	par, err := kron.KronNN33(r, 6, kron.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, seq, par)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "kron: WithWorkers: n must be >= 1", func() { kron.WithWorkers(0) })
	require.PanicsWithValue(t, "kron: WithMinChunk: rows must be >= 1", func() { kron.WithMinChunk(0) })
	require.PanicsWithValue(t, "kron: WithPairing: unknown pairing", func() { kron.WithPairing(kron.Pairing(9)) })
}

func TestParsePairing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want kron.Pairing
		ok   bool
	}{
		{"entry", kron.PairWithinEntry, true},
		{"within", kron.PairWithinEntry, true},
		{"factor", kron.PairAcrossFactors, true},
		{"across", kron.PairAcrossFactors, true},
		{"diagonal", 0, false},
	}
	for _, tc := range tests {
		got, ok := kron.ParsePairing(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
		if ok {
			round, _ := kron.ParsePairing(got.String())
			require.Equal(t, got, round)
		}
	}
	require.Equal(t, "unknown", kron.Pairing(9).String())
}
