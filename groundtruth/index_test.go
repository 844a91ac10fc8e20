package groundtruth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anupam312nwd/matrix-manifolds/builder"
	"github.com/anupam312nwd/matrix-manifolds/core"
	"github.com/anupam312nwd/matrix-manifolds/groundtruth"
	"github.com/anupam312nwd/matrix-manifolds/layers"
)

func build(t *testing.T, g *core.Graph, opts ...groundtruth.Option) (*groundtruth.Index, error) {
	t.Helper()
	asg, err := layers.Partition(g, g.Root())
	require.NoError(t, err)
	return groundtruth.Build(g, asg, opts...)
}

func TestBuild_PathChildren(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(5))
	require.NoError(t, err)
	idx, err := build(t, g)
	require.NoError(t, err)

	assert.Equal(t, groundtruth.Children, idx.Rule())
	assert.Equal(t, []int{1, 2, 3}, idx.ScorableNodes(), "root and leaf are excluded")
	for v := 1; v <= 3; v++ {
		assert.Equal(t, 1, idx.K(v))
		assert.Equal(t, []int{v + 1}, idx.Targets(v))
		assert.True(t, idx.Contains(v, v+1))
		assert.False(t, idx.Contains(v, v-1))
	}
	assert.Equal(t, 0, idx.K(0))
	assert.Equal(t, 0, idx.K(4))
	assert.Nil(t, idx.Targets(4))
}

func TestBuild_Descendants(t *testing.T) {
	g, err := builder.BuildGraph(builder.BalancedTree(2, 3))
	require.NoError(t, err)
	idx, err := build(t, g, groundtruth.WithRule(groundtruth.Descendants))
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4, 7, 8, 9, 10}, idx.Targets(1))
	assert.Equal(t, 6, idx.K(1))
	assert.Equal(t, []int{7, 8}, idx.Targets(3))
	assert.False(t, idx.Scorable(7))
	assert.Len(t, idx.ScorableNodes(), 6) // nodes 1..6
}

func TestBuild_IgnoresSameLayerEdgesAndCountsSharedChildren(t *testing.T) {
	// 0 → {1,2}; 1–2 share a layer; 3 is a child of both 1 and 2.
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(2, 3))

	idx, err := build(t, g)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, idx.Targets(1))
	assert.Equal(t, []int{3}, idx.Targets(2))
	assert.Equal(t, 2, idx.Intersect(1, []int{3, 3, 2}))
}

func TestBuild_EmptyGraph(t *testing.T) {
	// root with no children at all
	_, err := build(t, core.NewGraph(3))
	assert.ErrorIs(t, err, groundtruth.ErrEmptyGraph)

	// star: only the root has children
	g, err := builder.BuildGraph(builder.Star(5))
	require.NoError(t, err)
	_, err = build(t, g)
	assert.ErrorIs(t, err, groundtruth.ErrEmptyGraph)
}

func TestBuild_UnreachableNeverScorable(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(3), builder.Path(3))
	require.NoError(t, err)
	idx, err := build(t, g)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, idx.ScorableNodes())
	assert.False(t, idx.Scorable(3))
	assert.False(t, idx.Scorable(4))
}

func TestBuild_Errors(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(3))
	require.NoError(t, err)
	other, err := builder.BuildGraph(builder.Path(4))
	require.NoError(t, err)
	asg, err := layers.Partition(other, 0)
	require.NoError(t, err)

	_, err = groundtruth.Build(g, asg)
	assert.ErrorIs(t, err, groundtruth.ErrLayerMismatch)

	asg, err = layers.Partition(g, 0)
	require.NoError(t, err)
	_, err = groundtruth.Build(g, asg, groundtruth.WithRule(groundtruth.Rule(9)))
	assert.ErrorIs(t, err, groundtruth.ErrUnknownRule)
}

func TestParseRule(t *testing.T) {
	for in, want := range map[string]groundtruth.Rule{
		"":             groundtruth.Children,
		"children":     groundtruth.Children,
		" Descendants": groundtruth.Descendants,
	} {
		got, err := groundtruth.ParseRule(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, got, must(groundtruth.ParseRule(got.String())))
	}
	_, err := groundtruth.ParseRule("siblings")
	assert.ErrorIs(t, err, groundtruth.ErrUnknownRule)
}

func must(r groundtruth.Rule, err error) groundtruth.Rule {
	if err != nil {
		panic(err)
	}
	return r
}
