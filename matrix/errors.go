// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ". Validators wrap these with the
// validator tag ("ValidateDistances: %w"); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was supplied.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates the matrix size does not match the node count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape is returned when a condensed vector length is not n(n-1)/2
	// for any integer n.
	ErrBadShape = errors.New("matrix: invalid condensed length")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeDistance signals an entry below zero.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrAsymmetry signals D[i,j] and D[j,i] differ by more than the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a diagonal entry larger than the tolerance.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")
)
