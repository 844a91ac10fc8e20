// SPDX-License-Identifier: MIT
// Package core: node, edge and root management.

package core

import (
	"fmt"
	"sort"
)

// N returns the number of nodes.
func (g *Graph) N() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// HasNode reports whether v is a valid node id.
func (g *Graph) HasNode(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.adj)
}

// AddNodes appends k isolated nodes and returns the id of the first one.
// k <= 0 is a no-op that returns N().
func (g *Graph) AddNodes(k int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adj)
	for i := 0; i < k; i++ {
		g.adj = append(g.adj, nil)
	}

	return first
}

// Root returns the designated root node, or -1 for an empty graph.
func (g *Graph) Root() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.adj) == 0 {
		return -1
	}

	return g.root
}

// SetRoot designates v as the root.
// Returns ErrNoRoot on an empty graph and ErrNodeOutOfRange for invalid v.
func (g *Graph) SetRoot(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.adj) == 0 {
		return ErrNoRoot
	}
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("SetRoot(%d): %w", v, ErrNodeOutOfRange)
	}
	g.root = v

	return nil
}

// AddEdge inserts the undirected edge {u,v}. Adding an existing edge is a
// no-op. Self-loops return ErrLoopNotAllowed unless the graph was built
// WithLoops, in which case they are dropped.
// Complexity: O(deg(u) + deg(v)) for the sorted inserts.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if u == v {
		if g.dropLoops {
			return nil
		}
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	if !insertSorted(&g.adj[u], v) {
		return nil // already present
	}
	insertSorted(&g.adj[v], u)
	g.edges++

	return nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return false
	}
	row := g.adj[u]
	i := sort.SearchInts(row, v)

	return i < len(row) && row[i] == v
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge once with From < To, ordered lexicographically.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for u, row := range g.adj {
		for _, v := range row {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}

	return out
}

// insertSorted places x into the ascending slice *row, returning false when
// x was already there.
func insertSorted(row *[]int, x int) bool {
	r := *row
	i := sort.SearchInts(r, x)
	if i < len(r) && r[i] == x {
		return false
	}
	r = append(r, 0)
	copy(r[i+1:], r[i:])
	r[i] = x
	*row = r

	return true
}
