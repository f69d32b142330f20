package apsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpkit/apsp"
)

// hide wraps a Matrix so FloydWarshall cannot type-switch onto a fast path.
type hide struct{ apsp.Matrix }

// MustDense allocates an n×n all-Inf matrix or fails the test.
func MustDense(t testing.TB, n int) *apsp.Dense {
	t.Helper()
	d, err := apsp.NewDense(n)
	require.NoError(t, err, "NewDense(%d)", n)

	return d
}

// MustEdge records u→v (w) or fails the test.
func MustEdge(t testing.TB, d *apsp.Dense, u, v int, w int64) {
	t.Helper()
	require.NoError(t, d.AddEdge(u, v, w), "AddEdge(%d,%d,%d)", u, v, w)
}

// MustAt reads (i, j) or fails the test.
func MustAt(t testing.TB, m apsp.Matrix, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts that m equals want cell by cell.
func CompareExact(t testing.TB, want [][]int64, m apsp.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "dist[%d,%d]", i, j)
		}
	}
}

// clrs builds the 5×5 CLRS example (negative edges, no negative cycle).
func clrs(t testing.TB) *apsp.Dense {
	t.Helper()
	d := MustDense(t, 5)
	MustEdge(t, d, 0, 1, 3)
	MustEdge(t, d, 0, 2, 8)
	MustEdge(t, d, 0, 4, -4)
	MustEdge(t, d, 1, 3, 1)
	MustEdge(t, d, 1, 4, 7)
	MustEdge(t, d, 2, 1, 4)
	MustEdge(t, d, 3, 0, 2)
	MustEdge(t, d, 3, 2, -5)
	MustEdge(t, d, 4, 3, 6)

	return d
}

var clrsWant = [][]int64{
	{0, 1, -3, 2, -4},
	{3, 0, -4, 1, -1},
	{7, 4, 0, 5, 3},
	{2, -1, -5, 0, -2},
	{8, 5, 1, 6, 0},
}
