// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for nil/shape checks used by the kernels.
//  - Return wrapped sentinels so call sites can add their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and Rows == Cols.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulShape is the composite NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulShape", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector has exactly n non-nil entries.
// Complexity: O(n).
func ValidateVecLen(x []*big.Int, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	for _, v := range x {
		if v == nil {
			return validatorErrorf("ValidateVecLen", ErrNilMatrix)
		}
	}

	return nil
}
