// SPDX-License-Identifier: MIT
// Package: matrix
//
// Validators for the distance-matrix contract. Composite validators follow a
// fixed sequence: NotNil → Square → Dim → entries. Every failure is a
// sentinel from errors.go wrapped with the validator tag.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing beyond one row buffer.
//   - Entry checks are O(n²); symmetry is checked on the upper triangle only.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Distances is any square gonum matrix holding pairwise distances.
type Distances = mat.Matrix

// DefaultEpsilon is the tolerance used for symmetry and diagonal checks when
// the caller passes a non-positive eps.
const DefaultEpsilon = 1e-6

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures m is non-nil and square, returning its dimension.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) (int, error) {
	if m == nil {
		return 0, validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return 0, validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare))
	}
	return r, nil
}

// ValidateDim ensures m is square with exactly n rows.
// Complexity: O(1).
func ValidateDim(m mat.Matrix, n int) error {
	d, err := ValidateSquare(m)
	if err != nil {
		return validatorErrorf("ValidateDim", err)
	}
	if d != n {
		return validatorErrorf("ValidateDim", fmt.Errorf("got %d, want %d: %w", d, n, ErrDimensionMismatch))
	}
	return nil
}

// ValidateDistances checks every entry of m: finite, non-negative, zero
// diagonal within eps, and |D[i,j]-D[j,i]| ≤ eps. eps ≤ 0 selects
// DefaultEpsilon. The first violation found in row-major order is reported.
// Complexity: O(n²).
func ValidateDistances(m mat.Matrix, eps float64) error {
	const tag = "ValidateDistances"
	n, err := ValidateSquare(m)
	if err != nil {
		return validatorErrorf(tag, err)
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	// Condensed storage is symmetric with an exact zero diagonal by
	// construction; only the stored entries need checking.
	if c, ok := m.(*Condensed); ok {
		for k, x := range c.data {
			if err := checkEntry(x); err != nil {
				return validatorErrorf(tag, fmt.Errorf("condensed[%d]: %w", k, err))
			}
		}
		return nil
	}

	var row []float64
	for i := 0; i < n; i++ {
		row = Row(m, i, row)
		for j, x := range row {
			if err := checkEntry(x); err != nil {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
		}
		if math.Abs(row[i]) > eps {
			return validatorErrorf(tag, fmt.Errorf("(%d,%d)=%g: %w", i, i, row[i], ErrNonZeroDiagonal))
		}
		for j := i + 1; j < n; j++ {
			if math.Abs(row[j]-m.At(j, i)) > eps {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}
	return nil
}

func checkEntry(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNaNInf
	}
	if x < 0 {
		return ErrNegativeDistance
	}
	return nil
}
