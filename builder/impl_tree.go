// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_tree.go — BalancedTree and RandomTree.
//
// BalancedTree(r, h) numbers nodes in breadth-first order, so the children of
// node i are first + r*i + 1 … first + r*i + r, and the tree has
// (r^(h+1) - 1) / (r - 1) nodes.

package builder

import (
	"fmt"

	"github.com/anupam312nwd/matrix-manifolds/core"
)

const (
	methodBalancedTree = "BalancedTree"
	methodRandomTree   = "RandomTree"

	minBranching = 2
	minHeight    = 1
	minTreeNodes = 2
)

// BalancedTree returns a Constructor for the full r-ary tree of height h.
func BalancedTree(r, h int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if r < minBranching || h < minHeight {
			return fmt.Errorf("%s: r=%d h=%d: %w", methodBalancedTree, r, h, ErrTooFewVertices)
		}
		n, width := 0, 1
		for d := 0; d <= h; d++ {
			n += width
			width *= r
		}
		first := g.AddNodes(n)
		for child := 1; child < n; child++ {
			parent := (child - 1) / r
			if err := addEdge(g, methodBalancedTree, first+parent, first+child); err != nil {
				return err
			}
		}
		return nil
	}
}

// RandomTree returns a Constructor for a random recursive tree on n nodes:
// node i attaches to a uniformly chosen earlier node. Requires an RNG.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		first := g.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodRandomTree, first+cfg.rng.Intn(i), first+i); err != nil {
				return err
			}
		}
		return nil
	}
}
