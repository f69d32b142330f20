package apsp_test

import (
	"testing"

	"github.com/katalvlaran/cpkit/apsp"
	"github.com/katalvlaran/cpkit/graphgen"
)

// benchmarkFloydWarshall runs FloydWarshall on fresh copies of a seeded random graph.
func benchmarkFloydWarshall(b *testing.B, n int, p float64, wrap func(*apsp.Dense) apsp.Matrix) {
	base, err := graphgen.RandomSparse(n, p, graphgen.WithSeed(42), graphgen.WithWeights(1, 100))
	if err != nil {
		b.Fatalf("RandomSparse: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := wrap(base.Clone())
		b.StartTimer()
		if err = apsp.FloydWarshall(m); err != nil {
			b.Fatalf("FloydWarshall: %v", err)
		}
	}
}

func asDense(d *apsp.Dense) apsp.Matrix { return d }
func asGrid(d *apsp.Dense) apsp.Matrix { return apsp.Grid(d.ToRows()) }
func asFallback(d *apsp.Dense) apsp.Matrix { return hide{d} }

// BenchmarkFloydWarshall_Dense64 benchmarks the flat fast path on 64 nodes.
func BenchmarkFloydWarshall_Dense64(b *testing.B) { benchmarkFloydWarshall(b, 64, 0.2, asDense) }

// BenchmarkFloydWarshall_Dense256 benchmarks the flat fast path on 256 nodes.
func BenchmarkFloydWarshall_Dense256(b *testing.B) { benchmarkFloydWarshall(b, 256, 0.05, asDense) }

// BenchmarkFloydWarshall_Grid64 benchmarks the [][]int64 path on 64 nodes.
func BenchmarkFloydWarshall_Grid64(b *testing.B) { benchmarkFloydWarshall(b, 64, 0.2, asGrid) }

// BenchmarkFloydWarshall_Fallback64 benchmarks the At/Set interface path on 64 nodes.
func BenchmarkFloydWarshall_Fallback64(b *testing.B) { benchmarkFloydWarshall(b, 64, 0.2, asFallback) }
