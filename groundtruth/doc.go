// Package groundtruth materializes, for every node of a layered graph, the
// set of nodes a faithful embedding should place nearest to it.
//
// The target set T(v) is drawn from the hierarchy implied by the BFS layering,
// never from any embedding, so it is built once per dataset and shared
// read-only by every run:
//
//	Children     T(v) = { u : {u,v} ∈ E and layer(u) = layer(v)+1 }
//	Descendants  T(v) = every node reachable from v by repeatedly following
//	             child edges (the v-rooted part of the layered DAG)
//
// Edges inside one layer are ignored by both rules. A node with several
// parents in the previous layer is a child of each of them.
//
// k(v) = |T(v)|. The root, unreachable nodes and nodes with k(v) = 0 are not
// scorable. Build fails with ErrEmptyGraph when nothing is scorable.
//
// Sets are stored as roaring bitmaps, which keeps the Descendants rule
// affordable on deep trees where the naive representation is quadratic.
package groundtruth
