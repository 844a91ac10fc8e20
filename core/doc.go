// Package core provides the undirected, integer-indexed Graph that every other
// package in this module consumes.
//
// Nodes are dense integers 0..N()-1 with stable identity; a graph built from an
// edge-list file is relabelled once at load time (see package dataset) and never
// again. One node is designated as the root of the hierarchy the graph encodes.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; each edge {u,v} is mirrored in both adjacency rows.
//   - Simple graph by default: parallel edges collapse to one, self-loops are
//     rejected with ErrLoopNotAllowed (WithLoops drops them silently instead).
//   - Adjacency rows are kept sorted ascending, so Neighbors and ForEachNeighbor
//     iterate deterministically without a sort on the read path.
//   - A sync.RWMutex guards mutation. Once construction is finished the graph is
//     only read, and concurrent readers never contend.
//
// Core Methods:
//
//	// Nodes
//	NewGraph(n int, opts ...GraphOption) *Graph // O(n)
//	AddNodes(k int) (first int)                 // O(k) amortized
//	HasNode(v int) bool                         // O(1)
//	N() int                                     // O(1)
//
//	// Edges
//	AddEdge(u, v int) error                     // O(deg)
//	HasEdge(u, v int) bool                      // O(log deg)
//	EdgeCount() int                             // O(1)
//	Edges() []Edge                              // O(E), u<v, lexicographic
//
//	// Hierarchy
//	Root() int
//	SetRoot(v int) error
//
//	// Neighborhood
//	Neighbors(v int) ([]int, error)             // copy, ascending
//	ForEachNeighbor(v int, fn func(u int)) error
//	Degree(v int) (int, error)
//
// Errors:
//
//	ErrNodeOutOfRange  - node id outside [0, N()).
//	ErrLoopNotAllowed  - self-loop when loops are not dropped.
//	ErrNoRoot          - graph has no nodes, so no root can be designated.
package core
