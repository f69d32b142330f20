package apsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpkit/apsp"
	"github.com/katalvlaran/cpkit/graphgen"
)

const (
	inf    = apsp.Inf
	negInf = apsp.NegInf
)

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, apsp.FloydWarshall(nil), apsp.ErrNilMatrix)

	var nilDense *apsp.Dense
	assert.ErrorIs(t, apsp.FloydWarshall(nilDense), apsp.ErrNilMatrix)

	wide := apsp.Grid{{0, 1, 2}, {0, 1, 2}}
	assert.ErrorIs(t, apsp.FloydWarshall(wide), apsp.ErrNonSquare)

	ragged := apsp.Grid{{0, 5}, {7}}
	assert.ErrorIs(t, apsp.FloydWarshall(ragged), apsp.ErrNonSquare)
	// Rejected before any write.
	assert.Equal(t, apsp.Grid{{0, 5}, {7}}, ragged)
}

func TestFloydWarshall_Empty(t *testing.T) {
	t.Parallel()

	require.NoError(t, apsp.FloydWarshall(apsp.Grid{}))
	require.NoError(t, apsp.FloydWarshall(MustDense(t, 0)))
}

func TestFloydWarshall_CLRS_Dense(t *testing.T) {
	t.Parallel()

	d := clrs(t)
	require.NoError(t, apsp.FloydWarshall(d))
	CompareExact(t, clrsWant, d)

	neg, err := apsp.HasNegativeCycle(d)
	require.NoError(t, err)
	assert.False(t, neg)
}

// Dense fast path, Grid fast path and the interface fallback must agree cell by cell.
func TestFloydWarshall_CarriersAgree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		base, err := graphgen.RandomSparse(8, 0.35, graphgen.WithSeed(rng.Int63()), graphgen.WithWeights(-3, 9))
		require.NoError(t, err)

		fast := base.Clone()
		grid := apsp.Grid(base.ToRows())
		slow := base.Clone()

		require.NoError(t, apsp.FloydWarshall(fast))
		require.NoError(t, apsp.FloydWarshall(grid))
		require.NoError(t, apsp.FloydWarshall(hide{slow}))

		assert.Equal(t, fast.ToRows(), [][]int64(grid), "trial %d: Grid", trial)
		assert.Equal(t, fast.ToRows(), slow.ToRows(), "trial %d: fallback", trial)
	}
}

func TestFloydWarshall_SelfLoops(t *testing.T) {
	t.Parallel()

	// A positive self-loop is clamped to 0; the untouched Inf diagonal too.
	g := apsp.Grid{
		{5, 2},
		{inf, inf},
	}
	require.NoError(t, apsp.FloydWarshall(g))
	assert.Equal(t, apsp.Grid{{0, 2}, {inf, 0}}, g)

	// A negative self-loop is a negative cycle of length one.
	g = apsp.Grid{
		{inf, 4, inf},
		{inf, -1, 3},
		{inf, inf, inf},
	}
	require.NoError(t, apsp.FloydWarshall(g))
	assert.Equal(t, apsp.Grid{
		{0, negInf, negInf},
		{inf, negInf, negInf},
		{inf, inf, 0},
	}, g)
}

// The 3-cycle 0→1 (1), 1→2 (-1), 2→0 (-1) has total weight -1.
func TestFloydWarshall_NegativeCycle_AllEntriesUndefined(t *testing.T) {
	t.Parallel()

	d := MustDense(t, 3)
	MustEdge(t, d, 0, 1, 1)
	MustEdge(t, d, 1, 2, -1)
	MustEdge(t, d, 2, 0, -1)

	require.NoError(t, apsp.FloydWarshall(d))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, negInf, MustAt(t, d, i, j), "dist[%d,%d]", i, j)
		}
	}

	neg, err := apsp.HasNegativeCycle(d)
	require.NoError(t, err)
	assert.True(t, neg)
}

// Only pairs that can route through the cycle become NegInf:
//
//	4 → 0 (5)   the feeder reaches the cycle but is not reached from it
//	2 → 5 (2)   the sink is reached from the cycle but cannot return
//	3           isolated
func TestFloydWarshall_NegativeCycle_Propagation(t *testing.T) {
	t.Parallel()

	d := MustDense(t, 6)
	MustEdge(t, d, 0, 1, 1)
	MustEdge(t, d, 1, 2, -1)
	MustEdge(t, d, 2, 0, -1)
	MustEdge(t, d, 4, 0, 5)
	MustEdge(t, d, 2, 5, 2)

	require.NoError(t, apsp.FloydWarshall(d))

	want := [][]int64{
		{negInf, negInf, negInf, inf, inf, negInf},
		{negInf, negInf, negInf, inf, inf, negInf},
		{negInf, negInf, negInf, inf, inf, negInf},
		{inf, inf, inf, 0, inf, inf},
		{negInf, negInf, negInf, inf, 0, negInf},
		{inf, inf, inf, inf, inf, 0},
	}
	CompareExact(t, want, d)
}

// Two huge negative edges: repeated addition must clamp at NegInf, never wrap.
func TestFloydWarshall_SaturatesInsteadOfOverflowing(t *testing.T) {
	t.Parallel()

	const big = -(int64(1) << 61)
	g := apsp.Grid{
		{inf, big},
		{big, inf},
	}
	require.NoError(t, apsp.FloydWarshall(g))
	for i := range g {
		for j := range g[i] {
			assert.Equal(t, negInf, g[i][j], "dist[%d,%d]", i, j)
		}
	}
}

// Diagonal ≤ 0, unreachable stays Inf, triangle inequality and idempotence.
func TestFloydWarshall_Properties(t *testing.T) {
	t.Parallel()

	const n = 6
	d := MustDense(t, n)
	// Undirected triangle on {0,1,2}, chain 3→4, node 5 isolated.
	for _, e := range [][3]int64{{0, 1, 2}, {1, 2, 3}, {0, 2, 10}} {
		MustEdge(t, d, int(e[0]), int(e[1]), e[2])
		MustEdge(t, d, int(e[1]), int(e[0]), e[2])
	}
	MustEdge(t, d, 3, 4, 7)

	require.NoError(t, apsp.FloydWarshall(d))

	for i := 0; i < n; i++ {
		assert.LessOrEqual(t, MustAt(t, d, i, i), int64(0), "diag %d", i)
		if i != 5 {
			assert.Equal(t, inf, MustAt(t, d, i, 5))
			assert.Equal(t, inf, MustAt(t, d, 5, i))
		}
	}
	assert.Equal(t, int64(5), MustAt(t, d, 0, 2))

	assertTriangle(t, d)

	before := d.Clone()
	require.NoError(t, apsp.FloydWarshall(d))
	assert.Equal(t, before.ToRows(), d.ToRows(), "second run must be a fixed point")
}

// Random graphs, with and without negative weights, are fixed points of a second run.
func TestFloydWarshall_Idempotent_Random(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 25; seed++ {
		d, err := graphgen.RandomSparse(7, 0.3, graphgen.WithSeed(seed), graphgen.WithWeights(-4, 6))
		require.NoError(t, err)

		require.NoError(t, apsp.FloydWarshall(d))
		once := d.ToRows()
		require.NoError(t, apsp.FloydWarshall(d))
		assert.Equal(t, once, d.ToRows(), "seed %d", seed)
	}
}

func TestFloydWarshall_TriangleInequality_NonNegative(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		d, err := graphgen.RandomSparse(9, 0.4, graphgen.WithSeed(seed), graphgen.WithWeights(0, 20))
		require.NoError(t, err)
		require.NoError(t, apsp.FloydWarshall(d))
		assertTriangle(t, d)
	}
}

func TestReachable(t *testing.T) {
	t.Parallel()

	d := MustDense(t, 3)
	MustEdge(t, d, 0, 1, 4)
	require.NoError(t, apsp.FloydWarshall(d))

	ok, err := apsp.Reachable(d, 0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = apsp.Reachable(d, 1, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = apsp.Reachable(d, 0, 3)
	assert.ErrorIs(t, err, apsp.ErrOutOfRange)
}

// assertTriangle checks d[i,j] ≤ d[i,k] + d[k,j] over finite, cycle-free entries.
func assertTriangle(t *testing.T, m apsp.Matrix) {
	t.Helper()
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ij := MustAt(t, m, i, j)
			for k := 0; k < n; k++ {
				ik, kj := MustAt(t, m, i, k), MustAt(t, m, k, j)
				if ik == inf || kj == inf || ik == negInf || kj == negInf {
					continue
				}
				assert.LessOrEqual(t, ij, ik+kj, "triangle (%d,%d,%d)", i, j, k)
			}
		}
	}
}
