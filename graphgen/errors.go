// SPDX-License-Identifier: MIT
// Package: graphgen
//
// errors.go — sentinel errors for the graphgen package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Generators attach context with %w and never panic at runtime.
//   • Validation panics are confined to option constructors (WithX...).

package graphgen

import "errors"

// ErrTooFewVertices indicates n is below the minimum for the requested topology.
var ErrTooFewVertices = errors.New("graphgen: too few vertices")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrNeedRandSource indicates a stochastic choice without a configured RNG.
var ErrNeedRandSource = errors.New("graphgen: rng is required")
