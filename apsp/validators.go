// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//  - Single source of truth for the shape checks FloydWarshall relies on.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// All checks are pure, deterministic and allocate nothing.

package apsp

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is neither a nil interface nor a nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and n×n.
//
// For Grid every row is inspected, since Cols only reports the first row.
// Complexity: O(1) for Dense, O(n) for Grid.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	if g, ok := m.(Grid); ok {
		n := len(g)
		for i := range g {
			if len(g[i]) != n {
				return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d", i), ErrNonSquare)
			}
		}
	}

	return nil
}
