// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path depths, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  node → distance from start, Unreached for nodes never reached
//   - Parent: node → predecessor in the BFS tree, -1 for the start and for
//     unreached nodes
//   - Supports functional hooks:
//   - OnEnqueue (before a node is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.Graph keeps adjacency rows sorted, and BFS enqueues neighbors in that
//	order, so Order and Parent are fully reproducible. Depth does not depend
//	on the order at all.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth and Parent slices.
//
// Usage
//
//	res, err := bfs.BFS(g, g.Root())
//	if err != nil {
//		// ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	res.Depth[v] // BFS layer of v, or bfs.Unreached
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, nbr) == false.
//   - WithOnEnqueue(fn):      hook before a node is enqueued.
//   - WithOnVisit(fn):        hook during visit; returning an error aborts BFS.
package bfs
