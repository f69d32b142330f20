// SPDX-License-Identifier: MIT
// Package apsp: sentinel error set.
// All functions return these sentinels (possibly wrapped with call context);
// tests and callers match them with errors.Is. No function panics on
// user-triggered conditions.

package apsp

import "errors"

var (
	// ErrNilMatrix indicates that a nil Matrix (or nil *Dense) was passed.
	ErrNilMatrix = errors.New("apsp: nil matrix")

	// ErrNonSquare signals that the matrix is not n×n, including ragged Grid rows.
	ErrNonSquare = errors.New("apsp: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("apsp: index out of range")

	// ErrInvalidDimensions indicates a negative matrix order.
	ErrInvalidDimensions = errors.New("apsp: order must be >= 0")

	// ErrWeightRange indicates an edge weight whose magnitude reaches the sentinels.
	ErrWeightRange = errors.New("apsp: edge weight out of range")
)
