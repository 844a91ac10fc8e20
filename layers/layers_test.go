package layers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anupam312nwd/matrix-manifolds/bfs"
	"github.com/anupam312nwd/matrix-manifolds/builder"
	"github.com/anupam312nwd/matrix-manifolds/core"
	"github.com/anupam312nwd/matrix-manifolds/layers"
)

func TestPartition_Path(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(5))
	require.NoError(t, err)

	a, err := layers.Partition(g, 0)
	require.NoError(t, err)
	for v := 0; v < 5; v++ {
		assert.Equal(t, v, a.Of(v))
	}
	assert.Equal(t, 5, a.NumLayers())
	assert.Equal(t, []int{1, 1, 1, 1, 1}, a.NodesPerLayer())
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, a.Distribution())
	assert.Equal(t, 0, a.Root())
}

func TestPartition_InvalidRoot(t *testing.T) {
	g := core.NewGraph(3)
	_, err := layers.Partition(g, 3)
	assert.ErrorIs(t, err, layers.ErrInvalidRoot)
	_, err = layers.Partition(g, -1)
	assert.ErrorIs(t, err, layers.ErrInvalidRoot)
	_, err = layers.Partition(nil, 0)
	assert.ErrorIs(t, err, layers.ErrInvalidRoot)
}

func TestPartition_Unreachable(t *testing.T) {
	// star on 0..3 plus a disjoint path 4–5
	g, err := builder.BuildGraph(builder.Star(4), builder.Path(2))
	require.NoError(t, err)

	a, err := layers.Partition(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Of(0))
	assert.Equal(t, []int{1, 2, 3}, a.Nodes(1))
	assert.False(t, a.Reachable(4))
	assert.Equal(t, layers.Unreachable, a.Of(5))
	assert.Equal(t, layers.Unreachable, a.Of(99))
	assert.Equal(t, 2, a.Unreached())
	assert.Equal(t, 2, a.NumLayers())
	assert.Nil(t, a.Nodes(2))
}

func TestPartition_RootOnly(t *testing.T) {
	a, err := layers.Partition(core.NewGraph(1), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, a.NumLayers())
	assert.Empty(t, a.Distribution())
}

// Layer indices never decrease along a shortest path from the root, and
// every edge joins nodes whose layers differ by at most one.
func TestPartition_MonotoneAlongShortestPaths(t *testing.T) {
	g, err := builder.BuildGraph(builder.Grid(4, 5))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 19)) // long shortcut

	a, err := layers.Partition(g, 0)
	require.NoError(t, err)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	for v := 0; v < g.N(); v++ {
		path, err := res.PathTo(v)
		require.NoError(t, err)
		for i := 1; i < len(path); i++ {
			assert.GreaterOrEqual(t, a.Of(path[i]), a.Of(path[i-1]))
		}
	}
	for _, e := range g.Edges() {
		diff := a.Of(e.From) - a.Of(e.To)
		assert.LessOrEqual(t, diff*diff, 1, "edge %v", e)
	}
}

func TestPartitionContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := builder.BuildGraph(builder.Path(3))
	require.NoError(t, err)
	_, err = layers.PartitionContext(ctx, g, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
