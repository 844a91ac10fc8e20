// SPDX-License-Identifier: MIT

package aggregate

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/anupam312nwd/matrix-manifolds/layers"
	"github.com/anupam312nwd/matrix-manifolds/retrieval"
)

// LayerMeans maps a layer index to the mean score of its scored nodes for a
// single run.
type LayerMeans map[int]float64

// Layers returns the reported layers in ascending order.
func (m LayerMeans) Layers() []int {
	out := make([]int, 0, len(m))
	for l := range m {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Curve is the cross-run summary. Layers, Means, Stds and Runs have equal
// length; entry i describes layer Layers[i].
type Curve struct {
	Layers []int     `json:"layers" toml:"layers"`
	Means  []float64 `json:"means" toml:"means"`
	Stds   []float64 `json:"stds" toml:"stds"`
	Runs   []int     `json:"runs" toml:"runs"` // runs that reported the layer
}

// Len returns the number of layers in the curve.
func (c Curve) Len() int { return len(c.Layers) }

// ByLayer averages s over the scored nodes of each layer of asg.
// Complexity: O(V).
func ByLayer(s retrieval.Scores, asg *layers.Assignment) LayerMeans {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, v := range s.Scored() {
		l := asg.Of(v)
		if l == layers.Unreachable {
			continue
		}
		f1, _ := s.Of(v)
		sums[l] += f1
		counts[l]++
	}
	out := make(LayerMeans, len(sums))
	for l, sum := range sums {
		out[l] = sum / float64(counts[l])
	}
	return out
}

// Combine folds per-run layer means into a Curve. Each layer present in at
// least one run is reported with the mean and sample standard deviation of
// the runs that include it.
func Combine(runs []LayerMeans) Curve {
	values := make(map[int][]float64)
	for _, run := range runs {
		for l, m := range run {
			values[l] = append(values[l], m)
		}
	}
	ls := make([]int, 0, len(values))
	for l := range values {
		ls = append(ls, l)
	}
	slices.Sort(ls)

	c := Curve{
		Layers: ls,
		Means:  make([]float64, len(ls)),
		Stds:   make([]float64, len(ls)),
		Runs:   make([]int, len(ls)),
	}
	for i, l := range ls {
		xs := values[l]
		c.Means[i] = stat.Mean(xs, nil)
		c.Runs[i] = len(xs)
		if len(xs) > 1 {
			c.Stds[i] = stat.StdDev(xs, nil)
		}
	}
	return c
}

// Truncate returns the first max layers of c; max ≤ 0 returns c unchanged.
// The result shares storage with c.
func (c Curve) Truncate(max int) Curve {
	if max <= 0 || max >= c.Len() {
		return c
	}
	return Curve{
		Layers: c.Layers[:max],
		Means:  c.Means[:max],
		Stds:   c.Stds[:max],
		Runs:   c.Runs[:max],
	}
}
