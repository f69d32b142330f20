// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with negative-cycle propagation and
//     saturating int64 arithmetic, deterministic loop order (k → i → j).
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; Inf means "no edge"; the diagonal may hold anything
//     (self-loops are clamped by phase 1).
//   - Output: shortest distance, Inf if unreachable, NegInf if the path can
//     pass through a negative-weight cycle.

package apsp

import "fmt"

const opFloydWarshall = "FloydWarshall"

// apspErrorf wraps err with the operation name.
func apspErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// relaxed returns ik+kj clamped below at NegInf.
// Both operands lie in [NegInf, Inf), so the raw sum cannot overflow int64.
func relaxed(ik, kj int64) int64 {
	s := ik + kj
	if s < NegInf {
		return NegInf
	}

	return s
}

// FloydWarshall computes all-pairs shortest paths in place on m.
//
// Phases (strictly ordered; phase 3 reads the final diagonal of phase 2):
//  1. m[i][i] = min(m[i][i], 0).
//  2. For k, i, j: when m[i][k] and m[k][j] are both finite (≠ Inf),
//     m[i][j] = min(m[i][j], max(m[i][k]+m[k][j], NegInf)).
//  3. For every k with m[k][k] < 0 and every (i, j) with m[i][k] ≠ Inf and
//     m[k][j] ≠ Inf: m[i][j] = NegInf.
//
// Errors: ErrNilMatrix, ErrNonSquare (checked before any write).
//
// Complexity: Time O(n³), extra space O(1).
//
// Fast paths exist for *Dense and Grid; any other Matrix goes through At/Set.
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return apspErrorf(opFloydWarshall, err)
	}

	switch t := m.(type) {
	case *Dense:
		floydWarshallDense(t)

		return nil
	case Grid:
		floydWarshallGrid(t)

		return nil
	}

	if err := floydWarshallGeneric(m); err != nil {
		return apspErrorf(opFloydWarshall, err)
	}

	return nil
}

// floydWarshallDense runs the three phases on the flat row-major buffer.
func floydWarshallDense(d *Dense) {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)

	// Phase 1: a node reaches itself for free.
	for i = 0; i < n; i++ {
		if data[i*n+i] > 0 {
			data[i*n+i] = 0
		}
	}

	// Phase 2: relaxation.
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Inf {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Inf {
					continue
				}
				cand = relaxed(ik, kj)
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	// Phase 3: negative-cycle propagation.
	for k = 0; k < n; k++ {
		if data[k*n+k] >= 0 {
			continue
		}
		baseK = k * n
		for i = 0; i < n; i++ {
			if data[i*n+k] == Inf {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				if data[baseK+j] != Inf {
					data[baseI+j] = NegInf
				}
			}
		}
	}
}

// floydWarshallGrid mirrors floydWarshallDense on a validated [][]int64.
func floydWarshallGrid(g Grid) {
	n := len(g)

	var (
		k, i, j      int
		ik, kj, cand int64
	)

	for i = 0; i < n; i++ {
		if g[i][i] > 0 {
			g[i][i] = 0
		}
	}

	for k = 0; k < n; k++ {
		rowK := g[k]
		for i = 0; i < n; i++ {
			ik = g[i][k]
			if ik == Inf {
				continue
			}
			rowI := g[i]
			for j = 0; j < n; j++ {
				kj = rowK[j]
				if kj == Inf {
					continue
				}
				cand = relaxed(ik, kj)
				if cand < rowI[j] {
					rowI[j] = cand
				}
			}
		}
	}

	for k = 0; k < n; k++ {
		if g[k][k] >= 0 {
			continue
		}
		rowK := g[k]
		for i = 0; i < n; i++ {
			if g[i][k] == Inf {
				continue
			}
			rowI := g[i]
			for j = 0; j < n; j++ {
				if rowK[j] != Inf {
					rowI[j] = NegInf
				}
			}
		}
	}
}

// floydWarshallGeneric runs the three phases through the Matrix interface.
func floydWarshallGeneric(m Matrix) error {
	n := m.Rows()

	var (
		k, i, j           int
		ii, ik, kj, ij, c int64
		err               error
	)

	for i = 0; i < n; i++ {
		if ii, err = m.At(i, i); err != nil {
			return err
		}
		if ii > 0 {
			if err = m.Set(i, i, 0); err != nil {
				return err
			}
		}
	}

	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if ik, err = m.At(i, k); err != nil {
				return err
			}
			if ik == Inf {
				continue
			}
			for j = 0; j < n; j++ {
				if kj, err = m.At(k, j); err != nil {
					return err
				}
				if kj == Inf {
					continue
				}
				if ij, err = m.At(i, j); err != nil {
					return err
				}
				c = relaxed(ik, kj)
				if c < ij {
					if err = m.Set(i, j, c); err != nil {
						return err
					}
				}
			}
		}
	}

	for k = 0; k < n; k++ {
		var kk int64
		if kk, err = m.At(k, k); err != nil {
			return err
		}
		if kk >= 0 {
			continue
		}
		for i = 0; i < n; i++ {
			if ik, err = m.At(i, k); err != nil {
				return err
			}
			if ik == Inf {
				continue
			}
			for j = 0; j < n; j++ {
				if kj, err = m.At(k, j); err != nil {
					return err
				}
				if kj != Inf {
					if err = m.Set(i, j, NegInf); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// HasNegativeCycle reports whether any diagonal entry is negative.
// Meaningful after FloydWarshall has run on m.
func HasNegativeCycle(m Matrix) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, apspErrorf("HasNegativeCycle", err)
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return false, apspErrorf("HasNegativeCycle", err)
		}
		if v < 0 {
			return true, nil
		}
	}

	return false, nil
}

// Reachable reports whether j is reachable from i, i.e. m[i][j] ≠ Inf.
// NegInf entries count as reachable.
func Reachable(m Matrix, i, j int) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, apspErrorf("Reachable", err)
	}
	v, err := m.At(i, j)
	if err != nil {
		return false, apspErrorf("Reachable", err)
	}

	return v != Inf, nil
}
