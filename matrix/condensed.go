// SPDX-License-Identifier: MIT
// Package matrix - condensed symmetric storage.
//
// Layout: entry (i,j) with i<j lives at offset n*i - i*(i+1)/2 + (j-i-1),
// i.e. the rows of the strict upper triangle concatenated. Diagonal entries
// are implicitly zero and (j,i) aliases (i,j).
//
// Complexity quicksheet:
//   - FromCondensed: O(1) (no copy) or O(m) with WithSquared.
//   - At: O(1); Row: O(n).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Condensed is a read-only symmetric distance matrix in condensed form.
type Condensed struct {
	n    int
	data []float64
}

var (
	_ mat.Matrix    = (*Condensed)(nil)
	_ mat.Symmetric = (*Condensed)(nil)
)

// Option configures how raw distances are interpreted on load.
type Option func(*options)

type options struct {
	squared bool
}

// WithSquared declares the input to hold squared distances; an element-wise
// square root is applied on load.
func WithSquared(squared bool) Option {
	return func(o *options) { o.squared = squared }
}

func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CondensedSize returns n(n-1)/2.
func CondensedSize(n int) int { return n * (n - 1) / 2 }

// SizeFromCondensed inverts CondensedSize, failing with ErrBadShape when m is
// not a triangular number.
func SizeFromCondensed(m int) (int, error) {
	if m < 0 {
		return 0, fmt.Errorf("SizeFromCondensed(%d): %w", m, ErrBadShape)
	}
	n := int(math.Round((1 + math.Sqrt(1+8*float64(m))) / 2))
	if CondensedSize(n) != m {
		return 0, fmt.Errorf("SizeFromCondensed(%d): %w", m, ErrBadShape)
	}
	return n, nil
}

// FromCondensed wraps data as an n×n condensed matrix, inferring n from
// len(data). Without WithSquared the slice is shared, not copied.
func FromCondensed(data []float64, opts ...Option) (*Condensed, error) {
	n, err := SizeFromCondensed(len(data))
	if err != nil {
		return nil, err
	}
	if resolve(opts).squared {
		sq := make([]float64, len(data))
		for i, x := range data {
			sq[i] = math.Sqrt(x)
		}
		data = sq
	}
	return &Condensed{n: n, data: data}, nil
}

// Condense copies the strict upper triangle of the square matrix m into a
// condensed matrix. The lower triangle and diagonal are not inspected.
func Condense(m mat.Matrix) (*Condensed, error) {
	n, err := ValidateSquare(m)
	if err != nil {
		return nil, err
	}
	data := make([]float64, 0, CondensedSize(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return &Condensed{n: n, data: data}, nil
}

// Dims returns (n, n).
func (c *Condensed) Dims() (int, int) { return c.n, c.n }

// SymmetricDim returns n.
func (c *Condensed) SymmetricDim() int { return c.n }

// T returns the receiver; the matrix is symmetric.
func (c *Condensed) T() mat.Matrix { return c }

// At returns D[i,j]. It panics with mat.ErrIndexOutOfRange on bad indices,
// following the gonum mat.Matrix contract.
func (c *Condensed) At(i, j int) float64 {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		panic(mat.ErrIndexOutOfRange)
	}
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	return c.data[c.offset(i, j)]
}

// RawCondensed returns the backing slice. It must not be modified.
func (c *Condensed) RawCondensed() []float64 { return c.data }

// Row writes row i into dst (length n, allocated when too short) and returns it.
func (c *Condensed) Row(i int, dst []float64) []float64 {
	if i < 0 || i >= c.n {
		panic(mat.ErrIndexOutOfRange)
	}
	if cap(dst) < c.n {
		dst = make([]float64, c.n)
	}
	dst = dst[:c.n]
	for j := 0; j < i; j++ {
		dst[j] = c.data[c.offset(j, i)]
	}
	dst[i] = 0
	if i+1 < c.n {
		start := c.offset(i, i+1)
		copy(dst[i+1:], c.data[start:start+c.n-i-1])
	}
	return dst
}

// VecDense returns the condensed data as a gonum vector sharing storage.
func (c *Condensed) VecDense() *mat.VecDense {
	if len(c.data) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(c.data), c.data)
}

func (c *Condensed) offset(i, j int) int {
	return c.n*i - i*(i+1)/2 + (j - i - 1)
}
