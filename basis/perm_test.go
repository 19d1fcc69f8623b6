// SPDX-License-Identifier: MIT
// Package basis_test contains unit tests for the canonical pair labeler.
package basis_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/symfc/basis"
	"github.com/katalvlaran/symfc/coo"
	"github.com/stretchr/testify/require"
)

// TestPermTable_SingleAtom checks the full table for N=1 by hand.
func TestPermTable_SingleAtom(t *testing.T) {
	t.Parallel()

	tab := basis.NewPermTable(1)
	require.Equal(t, 1, tab.NAtom())
	require.Equal(t, 9, tab.Serials())
	require.Equal(t, 6, tab.Len()) // 3*4/2

	// Serial of (0,a,0,b) is a*3+b for N=1; rows are p, columns are q.
	want := []int64{
		0, 1, 2,
		1, 3, 4,
		2, 4, 5,
	}
	require.Equal(t, want, tab.IDs())

	require.Equal(t, tab.PairID(0, 1), tab.PairID(1, 0))
	require.Equal(t, tab.ID(0, 0, 0, 1), tab.ID(0, 1, 0, 0))
}

// TestPermTable_Properties runs the structural invariants for several N.
func TestPermTable_Properties(t *testing.T) {
	t.Parallel()

	for _, natom := range []int{1, 2, 3, 5} {
		natom := natom
		t.Run(fmt.Sprintf("N=%d", natom), func(t *testing.T) {
			t.Parallel()
			tab := basis.NewPermTable(natom)
			size := basis.Size3N(natom)

			require.Equal(t, size*size, tab.Serials())
			require.Equal(t, basis.PairCount(natom), tab.Len())

			seen := make(map[int64]bool, tab.Len())
			for p := 0; p < size; p++ {
				for q := 0; q < size; q++ {
					id := tab.PairID(p, q)
					// Symmetric in the pair order.
					require.Equal(t, id, tab.PairID(q, p))
					ap, cp := basis.Split(p)
					aq, cq := basis.Split(q)
					require.Equal(t, id, tab.ID(ap, cp, aq, cq))
					require.Equal(t, tab.ID(ap, cp, aq, cq), tab.ID(aq, cq, ap, cp))
					require.Equal(t, id, tab.BySerial(basis.PairSerial(p, q, natom)))
					seen[id] = true
				}
			}

			// Dense: every id in [0, Len) is used and nothing else.
			require.Len(t, seen, tab.Len())
			for id := 0; id < tab.Len(); id++ {
				require.True(t, seen[int64(id)], "missing id %d", id)
			}
		})
	}
}

// TestPermTable_RowMajorOrder verifies that ids follow the upper triangle
// in row-major order.
func TestPermTable_RowMajorOrder(t *testing.T) {
	t.Parallel()

	tab := basis.NewPermTable(2)
	size := basis.Size3N(2)
	var next int64
	for p := 0; p < size; p++ {
		for q := p; q < size; q++ {
			require.Equal(t, next, tab.PairID(p, q), "pair (%d,%d)", p, q)
			next++
		}
	}
}

// TestPermTable_Idempotent rebuilds the table and diffs it.
func TestPermTable_Idempotent(t *testing.T) {
	t.Parallel()

	a := basis.NewPermTable(4).IDs()
	b := basis.NewPermTable(4).IDs()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("tables differ (-first +second):\n%s", diff)
	}
}

// TestPermTable_IDsIsCopy ensures callers cannot mutate the table.
func TestPermTable_IDsIsCopy(t *testing.T) {
	t.Parallel()

	tab := basis.NewPermTable(1)
	ids := tab.IDs()
	ids[0] = 99
	require.Equal(t, int64(0), tab.PairID(0, 0))
}

func TestPermTable_Empty(t *testing.T) {
	t.Parallel()

	for _, natom := range []int{0, -3} {
		tab := basis.NewPermTable(natom)
		require.Zero(t, tab.Len())
		require.Zero(t, tab.Serials())
		require.Zero(t, tab.NAtom())
	}
}

func TestValidateTableAtoms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		natom int
		want  error
	}{
		{-1, coo.ErrBadAtomCount},
		{0, coo.ErrBadAtomCount},
		{1, nil},
		{10922, nil},
		{10923, coo.ErrTooLarge},
		{1_000_000, coo.ErrTooLarge},
		{basis.MaxTableSerials + 1, coo.ErrTooLarge},
		{math.MaxInt, coo.ErrTooLarge},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("natom=%d", tc.natom), func(t *testing.T) {
			t.Parallel()
			err := basis.ValidateTableAtoms(tc.natom)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
