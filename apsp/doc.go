// Package apsp computes all-pairs shortest paths on dense directed graphs
// with possibly negative edge weights (Floyd–Warshall), and marks every pair
// whose shortest path is undefined because it can route through a
// negative-weight cycle.
//
// 🚀 Distance encoding
//
//	Distances are int64. Two sentinels live far outside any legitimate
//	accumulated weight:
//	  • Inf    = 1<<62   — "no edge" / unreachable
//	  • NegInf = -1<<62  — "no well-defined shortest path"
//	Any two values in [NegInf, Inf] add without overflowing int64, and every
//	relaxation clamps the sum at NegInf, so repeated passes around a negative
//	cycle saturate instead of wrapping.
//
// ✨ Carriers:
//   - Grid  — a plain [][]int64 the caller already owns (copy-paste friendly)
//   - Dense — a flat row-major n×n buffer with checked At/Set and AddEdge
//
// Both implement Matrix; *Dense takes a flat fast path inside FloydWarshall.
//
// ⚙️ Usage:
//
//	m, _ := apsp.NewDense(3)     // all entries Inf
//	_ = m.AddEdge(0, 1, 1)
//	_ = m.AddEdge(1, 2, -1)
//	if err := apsp.FloydWarshall(m); err != nil {
//		// ErrNilMatrix / ErrNonSquare
//	}
//	d, _ := m.At(0, 2)            // 0
//
// Ownership: FloydWarshall mutates the matrix in place and keeps no reference
// to it after returning.
//
// Complexity: O(n³) time, O(1) extra space.
package apsp
