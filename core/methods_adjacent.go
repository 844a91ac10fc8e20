// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: neighborhood queries.
// Determinism:
//   - Neighbors and ForEachNeighbor visit neighbors in ascending id order.
// Concurrency:
//   - Both hold the read lock for the duration of the call. ForEachNeighbor
//     callbacks must not mutate the graph.

package core

import "fmt"

// Neighbors returns a copy of v's neighbor ids in ascending order.
// Returns ErrNodeOutOfRange for invalid v.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrNodeOutOfRange)
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// ForEachNeighbor calls fn for each neighbor of v in ascending order without
// copying the adjacency row.
func (g *Graph) ForEachNeighbor(v int, fn func(u int)) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("ForEachNeighbor(%d): %w", v, ErrNodeOutOfRange)
	}
	for _, u := range g.adj[v] {
		fn(u)
	}

	return nil
}

// Degree returns the number of distinct neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrNodeOutOfRange)
	}

	return len(g.adj[v]), nil
}
