// SPDX-License-Identifier: MIT

// Package apsp - Dense distance storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly n×n buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(n²) Inf-fill; At/Set/AddEdge: O(1); Clone/ToRows: O(n²).

package apsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxAddEdge = "AddEdge"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtInf      = "inf"
	_fmtNegInf   = "-inf"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// gridErrorf is the Grid counterpart of denseErrorf.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major distance matrix.
//   - n is the order (rows == cols == n).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Dense struct {
	n    int
	data []int64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n matrix with every entry set to Inf ("no edge").
//
// The diagonal is left at Inf as well; FloydWarshall clamps it to 0 in its
// first phase, so callers only record the edges they have.
//
// Errors: ErrInvalidDimensions when n < 0. n == 0 yields an empty matrix.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]int64, n*n)
	for i := range buf {
		buf[i] = Inf
	}

	return &Dense{n: n, data: buf}, nil
}

// NewDenseFromRows copies a square [][]int64 into a new Dense.
//
// Errors: ErrNonSquare if any row length differs from len(rows).
func NewDenseFromRows(rows [][]int64) (*Dense, error) {
	n := len(rows)
	d := &Dense{n: n, data: make([]int64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cols, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		copy(d.data[i*n:(i+1)*n], row)
	}

	return d, nil
}

// Rows returns the number of rows (the order n).
func (d *Dense) Rows() int { return d.n }

// Cols returns the number of columns (the order n).
func (d *Dense) Cols() int { return d.n }

// Order returns n.
func (d *Dense) Order() int { return d.n }

func (d *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < d.n && j >= 0 && j < d.n
}

// At returns the entry (i, j) or ErrOutOfRange.
func (d *Dense) At(i, j int) (int64, error) {
	if !d.inBounds(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set writes v to (i, j) or returns ErrOutOfRange.
// Sentinels are accepted as-is; Set performs no range policy.
func (d *Dense) Set(i, j int, v int64) error {
	if !d.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.n+j] = v

	return nil
}

// AddEdge records a directed edge u→v with weight w.
//
// Parallel edges keep the smaller weight, so repeated calls are safe for
// multigraph input. A self-loop (u == v) is recorded on the diagonal.
//
// Errors:
//   - ErrOutOfRange for bad endpoints.
//   - ErrWeightRange when |w| >= Inf. Callers that chain long paths should
//     also keep |w|·(n-1) below Inf so finite sums never reach the sentinel.
func (d *Dense) AddEdge(u, v int, w int64) error {
	if !d.inBounds(u, v) {
		return denseErrorf(ctxAddEdge, u, v, ErrOutOfRange)
	}
	if w >= Inf || w <= NegInf {
		return denseErrorf(ctxAddEdge, u, v, fmt.Errorf("w=%d: %w", w, ErrWeightRange))
	}
	off := u*d.n + v
	if w < d.data[off] {
		d.data[off] = w
	}

	return nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	buf := make([]int64, len(d.data))
	copy(buf, d.data)

	return &Dense{n: d.n, data: buf}
}

// ToRows returns a freshly allocated [][]int64 copy of the matrix.
func (d *Dense) ToRows() [][]int64 {
	out := make([][]int64, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = make([]int64, d.n)
		copy(out[i], d.data[i*d.n:(i+1)*d.n])
	}

	return out
}

// String renders one bracketed row per line, with sentinels shown as inf / -inf.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(FormatDistance(d.data[i*d.n+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// FormatDistance renders a single distance, spelling the sentinels as
// "inf" and "-inf".
func FormatDistance(v int64) string {
	switch v {
	case Inf:
		return _fmtInf
	case NegInf:
		return _fmtNegInf
	default:
		return strconv.FormatInt(v, 10)
	}
}
