package evaluate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anupam312nwd/matrix-manifolds/core"
	"github.com/anupam312nwd/matrix-manifolds/groundtruth"
	"github.com/anupam312nwd/matrix-manifolds/layers"
)

// Dataset is the per-graph state shared by every run.
type Dataset struct {
	Name   string
	Graph  *core.Graph
	Layers *layers.Assignment
	Truth  *groundtruth.Index
}

// DatasetOption configures NewDataset.
type DatasetOption func(*datasetOptions)

type datasetOptions struct {
	root   int
	rule   groundtruth.Rule
	logger *slog.Logger
}

// WithRoot overrides the graph's own root.
func WithRoot(root int) DatasetOption {
	return func(o *datasetOptions) { o.root = root }
}

// WithRule selects the ground-truth rule.
func WithRule(r groundtruth.Rule) DatasetOption {
	return func(o *datasetOptions) { o.rule = r }
}

// WithDatasetLogger sets the logger passed to ground-truth construction.
func WithDatasetLogger(l *slog.Logger) DatasetOption {
	return func(o *datasetOptions) { o.logger = l }
}

// NewDataset partitions g into layers and builds its ground-truth index.
func NewDataset(ctx context.Context, name string, g *core.Graph, opts ...DatasetOption) (*Dataset, error) {
	if g == nil {
		return nil, fmt.Errorf("dataset %q: %w", name, layers.ErrInvalidRoot)
	}
	o := datasetOptions{root: g.Root(), rule: groundtruth.Children}
	for _, opt := range opts {
		opt(&o)
	}

	asg, err := layers.PartitionContext(ctx, g, o.root)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}
	idx, err := groundtruth.Build(g, asg, groundtruth.WithRule(o.rule), groundtruth.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}
	return &Dataset{Name: name, Graph: g, Layers: asg, Truth: idx}, nil
}

// N returns the number of nodes.
func (ds *Dataset) N() int { return ds.Graph.N() }
