// Package evaluate drives the layer-wise F1@k evaluation of a set of
// embedding runs against one dataset.
//
// A Dataset bundles the artefacts that are computed once and shared
// read-only: the graph, its layer assignment and its ground-truth index.
// An Evaluator then scores each Run (one distance matrix) with bounded
// concurrency, averages per layer, and combines the runs into a Curve.
//
// Runs whose matrix cannot be loaded or violates the distance contract are
// dropped with ErrMalformedRun and reported in Report.Dropped; the others
// still contribute to the result.
package evaluate
