// SPDX-License-Identifier: MIT
// Package: graphgen
//
// generators.go — Path, Cycle, Complete and RandomSparse constructors.
//
// Contract:
//   • Vertices are 0..n-1; the diagonal is left at apsp.Inf.
//   • Edges are emitted in stable order (i asc, then j asc).
//   • Weight policy comes from the resolved config (see options.go).
//   • Returns only sentinel errors (wrapped with the method tag); never panics.
//
// Complexity: O(n²) time and space for the backing matrix; O(n + m) edge work.

package graphgen

import (
	"fmt"

	"github.com/katalvlaran/cpkit/apsp"
)

// Method tags and minimum sizes (no magic numbers).
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minSparseNodes   = 1

	probMin = 0.0
	probMax = 1.0
)

// prepare validates n and the RNG requirement, then allocates the matrix.
func prepare(method string, n, minN int, cfg *config, stochastic bool) (*apsp.Dense, error) {
	if n < minN {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewVertices)
	}
	if cfg.rng == nil && (stochastic || cfg.needsRand()) {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	d, err := apsp.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return d, nil
}

// emit adds u→v (and v→u when undirected) with one drawn weight.
func emit(method string, d *apsp.Dense, cfg *config, u, v int) error {
	w := cfg.weight()
	if err := d.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}
	if cfg.undirected {
		if err := d.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}

// Path builds 0→1→…→n-1.
func Path(n int, opts ...Option) (*apsp.Dense, error) {
	cfg := newConfig(opts...)
	d, err := prepare(methodPath, n, minPathNodes, &cfg, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = emit(methodPath, d, &cfg, i, i+1); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Cycle builds the ring i → (i+1) mod n. Requires n ≥ 3.
func Cycle(n int, opts ...Option) (*apsp.Dense, error) {
	cfg := newConfig(opts...)
	d, err := prepare(methodCycle, n, minCycleNodes, &cfg, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = emit(methodCycle, d, &cfg, i, (i+1)%n); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Complete builds every ordered pair i→j with i ≠ j.
// With WithUndirected each unordered pair draws a single weight.
func Complete(n int, opts ...Option) (*apsp.Dense, error) {
	cfg := newConfig(opts...)
	d, err := prepare(methodComplete, n, minCompleteNodes, &cfg, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		j0 := 0
		if cfg.undirected {
			j0 = i + 1
		}
		for j := j0; j < n; j++ {
			if i == j {
				continue
			}
			if err = emit(methodComplete, d, &cfg, i, j); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// RandomSparse includes each admissible edge independently with probability p.
//
// Directed (default): ordered pairs (i, j), i ≠ j. Undirected: pairs i < j.
// An RNG is required for 0 < p < 1; p ∈ {0, 1} is deterministic.
func RandomSparse(n int, p float64, opts ...Option) (*apsp.Dense, error) {
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	d, err := prepare(methodRandomSparse, n, minSparseNodes, &cfg, p > probMin && p < probMax)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		j0 := 0
		if cfg.undirected {
			j0 = i + 1
		}
		for j := j0; j < n; j++ {
			if i == j {
				continue
			}
			if p < probMax && (p == probMin || cfg.rng.Float64() >= p) {
				continue
			}
			if err = emit(methodRandomSparse, d, &cfg, i, j); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
