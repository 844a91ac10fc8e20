// SPDX-License-Identifier: MIT

// Package layers partitions the nodes of a rooted graph into BFS layers.
//
// Layer l holds the nodes at shortest-path distance l from the root. The root
// is the only node of layer 0. Nodes in a different connected component from
// the root are marked Unreachable and belong to no layer; downstream scoring
// skips them.
//
// An Assignment is immutable after Partition returns and is safe for
// concurrent reads; one Assignment is typically shared by every run evaluated
// against the same dataset.
package layers

import (
	"context"
	"errors"
	"fmt"

	"github.com/anupam312nwd/matrix-manifolds/bfs"
	"github.com/anupam312nwd/matrix-manifolds/core"
)

// Unreachable is the layer reported for nodes not connected to the root.
const Unreachable = bfs.Unreached

// ErrInvalidRoot is returned when the root is not a node of the graph, or
// the graph itself is nil.
var ErrInvalidRoot = errors.New("layers: invalid root")

// Assignment maps every node to its layer index.
type Assignment struct {
	root   int
	of     []int
	counts []int // counts[l] = number of nodes in layer l
}

// Partition computes the BFS layering of g from root.
// Complexity: O(V + E).
func Partition(g *core.Graph, root int) (*Assignment, error) {
	return PartitionContext(context.Background(), g, root)
}

// PartitionContext is Partition with cancellation.
func PartitionContext(ctx context.Context, g *core.Graph, root int) (*Assignment, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidRoot)
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidRoot, root, g.N())
	}

	res, err := bfs.BFS(g, root, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("layers: %w", err)
	}

	a := &Assignment{root: root, of: res.Depth}
	for _, d := range res.Depth {
		if d == Unreachable {
			continue
		}
		for len(a.counts) <= d {
			a.counts = append(a.counts, 0)
		}
		a.counts[d]++
	}

	return a, nil
}

// Root returns the root the assignment was computed from.
func (a *Assignment) Root() int { return a.root }

// N returns the number of nodes covered, reachable or not.
func (a *Assignment) N() int { return len(a.of) }

// Of returns the layer of v, or Unreachable. Out-of-range ids are Unreachable.
func (a *Assignment) Of(v int) int {
	if v < 0 || v >= len(a.of) {
		return Unreachable
	}
	return a.of[v]
}

// Reachable reports whether v has a finite layer.
func (a *Assignment) Reachable(v int) bool { return a.Of(v) != Unreachable }

// NumLayers returns the number of non-empty layers, including layer 0.
func (a *Assignment) NumLayers() int { return len(a.counts) }

// Nodes returns the nodes of layer l in ascending id order.
func (a *Assignment) Nodes(l int) []int {
	if l < 0 || l >= len(a.counts) {
		return nil
	}
	out := make([]int, 0, a.counts[l])
	for v, d := range a.of {
		if d == l {
			out = append(out, v)
		}
	}
	return out
}

// NodesPerLayer returns the node count of every layer, index = layer.
func (a *Assignment) NodesPerLayer() []int {
	out := make([]int, len(a.counts))
	copy(out, a.counts)
	return out
}

// Unreached returns the number of nodes with no layer.
func (a *Assignment) Unreached() int {
	total := 0
	for _, c := range a.counts {
		total += c
	}
	return len(a.of) - total
}

// Distribution returns, for layers 1..NumLayers()-1, the fraction of
// reachable non-root nodes in each layer. Index 0 corresponds to layer 1.
// The result is empty when the root has no reachable neighbor.
func (a *Assignment) Distribution() []float64 {
	if len(a.counts) < 2 {
		return []float64{}
	}
	total := 0
	for _, c := range a.counts[1:] {
		total += c
	}
	out := make([]float64, len(a.counts)-1)
	for i, c := range a.counts[1:] {
		out[i] = float64(c) / float64(total)
	}
	return out
}
