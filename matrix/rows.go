// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// Row copies row i of m into dst and returns it, reallocating dst when its
// capacity is below the column count. Condensed matrices use their own
// layout; everything else goes through mat.Row, which takes the raw-storage
// fast path for *mat.Dense.
func Row(m mat.Matrix, i int, dst []float64) []float64 {
	if c, ok := m.(*Condensed); ok {
		return c.Row(i, dst)
	}
	_, cols := m.Dims()
	if cap(dst) < cols {
		dst = make([]float64, cols)
	}
	return mat.Row(dst[:cols], i, m)
}
