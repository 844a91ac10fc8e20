// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_simple.go — Path, Star, Cycle and Grid.
//
// Contract:
//   - Node ids are allocated contiguously from g.N() at call time; the first
//     allocated node is the "start" of the component (path end, star hub,
//     grid corner).
//   - Edges are emitted in increasing index order.

package builder

import (
	"fmt"

	"github.com/anupam312nwd/matrix-manifolds/core"
)

const (
	methodPath  = "Path"
	methodStar  = "Star"
	methodCycle = "Cycle"
	methodGrid  = "Grid"

	minPathNodes  = 2
	minStarNodes  = 2
	minCycleNodes = 3
	minGridSide   = 1
)

// Path returns a Constructor for the path P_n: 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		first := g.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, first+i-1, first+i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star returns a Constructor for a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := g.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, hub, hub+i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		first := g.AddNodes(n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, first+i, first+(i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Grid returns a Constructor for the rows×cols lattice; node (r,c) gets id
// first + r*cols + c.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridSide || cols < minGridSide || rows*cols < 2 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		first := g.AddNodes(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := first + r*cols + c
				if c+1 < cols {
					if err := addEdge(g, methodGrid, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, id, id+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
