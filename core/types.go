// SPDX-License-Identifier: MIT
// Package core: Graph, Edge, options and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates an operation referenced a node id outside [0, N()).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are rejected.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNoRoot indicates the graph is empty and therefore has no root.
	ErrNoRoot = errors.New("core: graph has no root")
)

// Edge is an undirected edge between two nodes. Edges returned by the Graph
// are normalized so that From < To.
type Edge struct {
	From int
	To   int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLoops makes AddEdge drop self-loops silently instead of returning
// ErrLoopNotAllowed. Edge lists exported from other tools frequently carry
// them, and they have no effect on BFS layering.
func WithLoops() GraphOption {
	return func(g *Graph) { g.dropLoops = true }
}

// WithRoot designates the root node. Out-of-range values are ignored and the
// default root (node 0) is kept.
func WithRoot(root int) GraphOption {
	return func(g *Graph) { g.pendingRoot = root }
}

// Graph is an undirected graph over dense integer node ids with one
// designated root.
type Graph struct {
	mu sync.RWMutex

	dropLoops   bool
	pendingRoot int

	root  int
	adj   [][]int // adj[v] is sorted ascending and holds no duplicates
	edges int
}

// NewGraph creates a graph with n isolated nodes 0..n-1. Negative n is
// treated as 0. The root defaults to node 0.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adj: make([][]int, n)}
	for _, opt := range opts {
		opt(g)
	}
	if g.pendingRoot >= 0 && g.pendingRoot < n {
		g.root = g.pendingRoot
	}

	return g
}
