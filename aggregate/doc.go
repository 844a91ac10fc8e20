// SPDX-License-Identifier: MIT

// Package aggregate reduces per-node retrieval scores to per-layer curves.
//
// Two stages:
//
//   - ByLayer averages the scores of one run inside each layer, yielding a
//     LayerMeans map. Layers without a scored node are absent.
//   - Combine folds the LayerMeans of R runs into a Curve: per layer, the
//     mean and the sample standard deviation across the runs that reported
//     the layer. A layer reported by a single run has std 0.
//
// Curves are ordered by ascending layer and serialise to JSON and TOML.
package aggregate
