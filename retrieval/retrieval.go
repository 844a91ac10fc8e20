package retrieval

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/anupam312nwd/matrix-manifolds/groundtruth"
	"github.com/anupam312nwd/matrix-manifolds/matrix"
)

// ErrInvariantViolation is returned when the distance matrix does not fit the
// ground-truth index, or a target set is larger than the candidate pool.
var ErrInvariantViolation = errors.New("retrieval: invariant violation")

// Scores holds F1@k per node. Nodes that were not scorable have no score.
type Scores struct {
	values []float64
	mask   []bool
}

// Of returns the score of v and whether v was scored.
func (s Scores) Of(v int) (float64, bool) {
	if v < 0 || v >= len(s.values) || !s.mask[v] {
		return 0, false
	}
	return s.values[v], true
}

// N returns the number of nodes covered, scored or not.
func (s Scores) N() int { return len(s.values) }

// Scored returns the scored nodes in ascending id order.
func (s Scores) Scored() []int {
	var out []int
	for v, ok := range s.mask {
		if ok {
			out = append(out, v)
		}
	}
	return out
}

// Score computes F1@k(v) for every scorable node of idx under d.
func Score(d matrix.Distances, idx *groundtruth.Index) (Scores, error) {
	return ScoreContext(context.Background(), d, idx)
}

// ScoreContext is Score with cancellation, checked once per scored node.
func ScoreContext(ctx context.Context, d matrix.Distances, idx *groundtruth.Index) (Scores, error) {
	if idx == nil {
		return Scores{}, fmt.Errorf("%w: nil index", ErrInvariantViolation)
	}
	n := idx.N()
	if err := matrix.ValidateDim(d, n); err != nil {
		return Scores{}, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}

	s := Scores{values: make([]float64, n), mask: make([]bool, n)}
	h := newBoundedHeap(0)
	var row []float64
	var ids []int
	for _, v := range idx.ScorableNodes() {
		if err := ctx.Err(); err != nil {
			return Scores{}, err
		}
		k := idx.K(v)
		if k > n-1 {
			return Scores{}, fmt.Errorf("%w: k(%d)=%d exceeds %d candidates", ErrInvariantViolation, v, k, n-1)
		}
		row = matrix.Row(d, v, row)
		selectTopK(h, row, v, k)
		ids = h.IDs(ids[:0])

		s.values[v] = float64(idx.Intersect(v, ids)) / float64(k)
		s.mask[v] = true
	}
	return s, nil
}

// TopK returns the k nodes closest to v under d, v excluded, ordered by
// ascending distance then ascending id.
func TopK(d matrix.Distances, v, k int) ([]int, error) {
	n, err := matrix.ValidateSquare(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	if v < 0 || v >= n || k < 0 || k > n-1 {
		return nil, fmt.Errorf("%w: TopK(v=%d, k=%d) on %d nodes", ErrInvariantViolation, v, k, n)
	}
	row := matrix.Row(d, v, nil)
	h := newBoundedHeap(k)
	selectTopK(h, row, v, k)

	best := slices.Clone(h.items[1:])
	slices.SortFunc(best, func(a, b candidate) int {
		switch {
		case worse(b, a):
			return -1
		case worse(a, b):
			return 1
		}
		return 0
	})
	out := make([]int, len(best))
	for i, c := range best {
		out[i] = c.id
	}
	return out, nil
}

func selectTopK(h *boundedHeap, row []float64, v, k int) {
	h.reset(k)
	for u, dist := range row {
		if u == v {
			continue
		}
		h.Offer(candidate{id: u, d: dist})
	}
}
