// Package embedding turns point coordinates into distance matrices.
//
// Only flat Euclidean geometry lives here; curved-space distances are
// computed by the training pipeline and arrive as precomputed matrices.
package embedding

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrNoPoints is returned for a nil or empty point set.
var ErrNoPoints = errors.New("embedding: no points")

// Euclidean returns the pairwise L2 distances between the rows of points.
// Complexity: O(n² · dim) time, O(n²) space.
func Euclidean(points mat.Matrix) (*mat.SymDense, error) {
	if points == nil {
		return nil, ErrNoPoints
	}
	n, dim := points.Dims()
	if n == 0 || dim == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNoPoints, n, dim)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, points)
	}

	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, floats.Distance(rows[i], rows[j], 2))
		}
	}
	return d, nil
}

// Line places node i at xs[i] on the real line and returns |xs[i]-xs[j]|.
func Line(xs []float64) (*mat.SymDense, error) {
	if len(xs) == 0 {
		return nil, ErrNoPoints
	}
	d := mat.NewSymDense(len(xs), nil)
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			d.SetSym(i, j, math.Abs(xs[i]-xs[j]))
		}
	}
	return d, nil
}
