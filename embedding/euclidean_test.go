package embedding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/anupam312nwd/matrix-manifolds/embedding"
	"github.com/anupam312nwd/matrix-manifolds/matrix"
)

func TestEuclidean(t *testing.T) {
	pts := mat.NewDense(3, 2, []float64{
		0, 0,
		3, 4,
		0, 1,
	})
	d, err := embedding.Euclidean(pts)
	require.NoError(t, err)

	assert.Equal(t, 3, d.SymmetricDim())
	assert.InDelta(t, 5.0, d.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, d.At(2, 0), 1e-12)
	assert.InDelta(t, math.Sqrt(18), d.At(1, 2), 1e-12)
	assert.NoError(t, matrix.ValidateDistances(d, 0))
}

func TestEuclidean_Empty(t *testing.T) {
	_, err := embedding.Euclidean(nil)
	assert.ErrorIs(t, err, embedding.ErrNoPoints)
	_, err = embedding.Line(nil)
	assert.ErrorIs(t, err, embedding.ErrNoPoints)
}

func TestLine(t *testing.T) {
	d, err := embedding.Line([]float64{0, 10, 15})
	require.NoError(t, err)
	assert.Equal(t, 5.0, d.At(2, 1))
	assert.Equal(t, 15.0, d.At(0, 2))
	assert.Equal(t, 0.0, d.At(1, 1))
}
