// SPDX-License-Identifier: MIT

package groundtruth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RoaringBitmap/roaring"

	"github.com/anupam312nwd/matrix-manifolds/core"
	"github.com/anupam312nwd/matrix-manifolds/layers"
	"github.com/anupam312nwd/matrix-manifolds/logger"
)

// Sentinel errors.
var (
	// ErrEmptyGraph is returned when no node has a non-empty target set once
	// the root is excluded.
	ErrEmptyGraph = errors.New("groundtruth: no scorable nodes")

	// ErrUnknownRule is returned for an unrecognized Rule.
	ErrUnknownRule = errors.New("groundtruth: unknown rule")

	// ErrLayerMismatch is returned when the assignment does not cover the graph.
	ErrLayerMismatch = errors.New("groundtruth: layer assignment does not match graph")
)

// Option configures Build.
type Option func(*options)

type options struct {
	rule   Rule
	logger *slog.Logger
}

// WithRule selects the target-set rule. Default: Children.
func WithRule(r Rule) Option {
	return func(o *options) { o.rule = r }
}

// WithLogger sets the logger used for build timings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = logger.OrNop(l) }
}

// Index holds T(v) and k(v) for every node. It is immutable after Build and
// safe for concurrent reads.
type Index struct {
	rule     Rule
	root     int
	targets  []*roaring.Bitmap // nil for nodes that are not scorable
	k        []int
	scorable []int
}

// Build derives the target sets of g under the layering asg.
// Complexity: O(V + E) for Children; O(V + E) bitmap unions for Descendants.
func Build(g *core.Graph, asg *layers.Assignment, opts ...Option) (*Index, error) {
	o := options{rule: Children, logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rule != Children && o.rule != Descendants {
		return nil, fmt.Errorf("%w: %v", ErrUnknownRule, o.rule)
	}
	if g == nil || asg == nil || asg.N() != g.N() {
		return nil, ErrLayerMismatch
	}
	start := time.Now()

	n := g.N()
	children := make([]*roaring.Bitmap, n)
	for v := 0; v < n; v++ {
		lv := asg.Of(v)
		if lv == layers.Unreachable {
			continue
		}
		var set *roaring.Bitmap
		if err := g.ForEachNeighbor(v, func(u int) {
			if asg.Of(u) == lv+1 {
				if set == nil {
					set = roaring.New()
				}
				set.Add(uint32(u))
			}
		}); err != nil {
			return nil, fmt.Errorf("groundtruth: %w", err)
		}
		children[v] = set
	}

	targets := children
	if o.rule == Descendants {
		targets = descendants(asg, children)
	}

	idx := &Index{
		rule:    o.rule,
		root:    asg.Root(),
		targets: make([]*roaring.Bitmap, n),
		k:       make([]int, n),
	}
	for v := 0; v < n; v++ {
		if v == idx.root || targets[v] == nil || targets[v].IsEmpty() {
			continue
		}
		idx.targets[v] = targets[v]
		idx.k[v] = int(targets[v].GetCardinality())
		idx.scorable = append(idx.scorable, v)
	}
	if len(idx.scorable) == 0 {
		return nil, ErrEmptyGraph
	}

	o.logger.Debug("ground truth built",
		"rule", o.rule.String(),
		"nodes", n,
		"scorable", len(idx.scorable),
		"elapsed", time.Since(start),
	)

	return idx, nil
}

// descendants unions child sets bottom-up, deepest layer first, so every
// child's closure is final before its parents read it.
func descendants(asg *layers.Assignment, children []*roaring.Bitmap) []*roaring.Bitmap {
	out := make([]*roaring.Bitmap, len(children))
	for l := asg.NumLayers() - 1; l >= 0; l-- {
		for _, v := range asg.Nodes(l) {
			if children[v] == nil {
				continue
			}
			set := children[v].Clone()
			it := children[v].Iterator()
			for it.HasNext() {
				if sub := out[it.Next()]; sub != nil {
					set.Or(sub)
				}
			}
			out[v] = set
		}
	}
	return out
}

// N returns the number of nodes the index was built for.
func (x *Index) N() int { return len(x.k) }

// Rule returns the rule the index was built with.
func (x *Index) Rule() Rule { return x.rule }

// Root returns the root excluded from scoring.
func (x *Index) Root() int { return x.root }

// K returns k(v), 0 for nodes that are not scorable or out of range.
func (x *Index) K(v int) int {
	if v < 0 || v >= len(x.k) {
		return 0
	}
	return x.k[v]
}

// Scorable reports whether v has a non-empty target set.
func (x *Index) Scorable(v int) bool { return x.K(v) > 0 }

// ScorableNodes returns the scorable nodes in ascending id order. The slice
// is shared; callers must not modify it.
func (x *Index) ScorableNodes() []int { return x.scorable }

// Contains reports whether u ∈ T(v).
func (x *Index) Contains(v, u int) bool {
	if !x.Scorable(v) || u < 0 {
		return false
	}
	return x.targets[v].Contains(uint32(u))
}

// Targets returns T(v) in ascending order, or nil if v is not scorable.
func (x *Index) Targets(v int) []int {
	if !x.Scorable(v) {
		return nil
	}
	raw := x.targets[v].ToArray()
	out := make([]int, len(raw))
	for i, u := range raw {
		out[i] = int(u)
	}
	return out
}

// Intersect counts |ids ∩ T(v)|.
func (x *Index) Intersect(v int, ids []int) int {
	if !x.Scorable(v) {
		return 0
	}
	set := x.targets[v]
	hits := 0
	for _, u := range ids {
		if u >= 0 && set.Contains(uint32(u)) {
			hits++
		}
	}
	return hits
}
