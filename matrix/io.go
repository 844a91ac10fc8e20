// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ReadCondensed decodes a gonum VecDense binary holding n(n-1)/2 condensed
// distances.
func ReadCondensed(r io.Reader, opts ...Option) (*Condensed, error) {
	var v mat.VecDense
	if _, err := v.UnmarshalBinaryFrom(r); err != nil {
		return nil, fmt.Errorf("ReadCondensed: %w", err)
	}
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	c, err := FromCondensed(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadCondensed: %w", err)
	}
	return c, nil
}

// WriteCondensed encodes c in the format read by ReadCondensed.
func WriteCondensed(w io.Writer, c *Condensed) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("WriteCondensed: %w", ErrNilMatrix)
	}
	return c.VecDense().MarshalBinaryTo(w)
}

// ReadDense decodes a full n×n gonum Dense binary. With WithSquared the
// entries are replaced by their square roots.
func ReadDense(r io.Reader, opts ...Option) (*mat.Dense, error) {
	var d mat.Dense
	if _, err := d.UnmarshalBinaryFrom(r); err != nil {
		return nil, fmt.Errorf("ReadDense: %w", err)
	}
	if resolve(opts).squared {
		d.Apply(func(_, _ int, v float64) float64 { return math.Sqrt(v) }, &d)
	}
	return &d, nil
}

// WriteDense encodes m as a gonum Dense binary.
func WriteDense(w io.Writer, m mat.Matrix) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("WriteDense: %w", ErrNilMatrix)
	}
	return mat.DenseCopyOf(m).MarshalBinaryTo(w)
}
