// SPDX-License-Identifier: MIT

package apsp

// Inf marks "no edge" / "unreachable". It exceeds any finite accumulated
// path weight a caller can build from edges accepted by AddEdge.
const Inf int64 = 1 << 62

// NegInf marks a pair whose shortest path is undefined because it can run
// through a reachable negative-weight cycle.
const NegInf int64 = -Inf

// Matrix is the minimal square-grid surface FloydWarshall works on.
//
// Rows and Cols report the shape; At and Set are bounds-checked and return
// ErrOutOfRange instead of panicking.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (int64, error)
	Set(i, j int, v int64) error
}

// Grid adapts a caller-owned [][]int64 to Matrix without copying.
//
// Writes go straight to the caller's rows. Cols reports the length of the
// first row; ragged grids are rejected by ValidateSquare.
type Grid [][]int64

// Compile-time assertions.
var (
	_ Matrix = Grid(nil)
	_ Matrix = (*Dense)(nil)
)

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the length of the first row (0 for an empty grid).
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

// At returns g[i][j] or ErrOutOfRange.
func (g Grid) At(i, j int) (int64, error) {
	if i < 0 || i >= len(g) || j < 0 || j >= len(g[i]) {
		return 0, gridErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return g[i][j], nil
}

// Set writes g[i][j] = v or returns ErrOutOfRange.
func (g Grid) Set(i, j int, v int64) error {
	if i < 0 || i >= len(g) || j < 0 || j >= len(g[i]) {
		return gridErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	g[i][j] = v

	return nil
}

// IsInf reports whether v is the "no edge" sentinel.
func IsInf(v int64) bool { return v == Inf }

// IsNegInf reports whether v is the "undefined shortest path" sentinel.
func IsNegInf(v int64) bool { return v == NegInf }
