// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path depths, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/anupam312nwd/matrix-manifolds/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []int
	head  int
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any number
// of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the OnVisit hook.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.N()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue records depth and parent for id, calls OnEnqueue and appends it to
// the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, id)
}

// loop processes the queue until it is empty, a hook fails, or the context
// is cancelled.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[w.head]
		w.head++
		if err := w.visit(id); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(id); err != nil {
			return err
		}
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(id int) error {
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, w.res.Depth[id]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor of id.
func (w *walker) enqueueNeighbors(id int) error {
	next := w.res.Depth[id] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	return w.graph.ForEachNeighbor(id, func(nbr int) {
		if w.res.Depth[nbr] != Unreached {
			return
		}
		if !w.opts.FilterNeighbor(id, nbr) {
			return
		}
		w.enqueue(nbr, next, id)
	})
}
