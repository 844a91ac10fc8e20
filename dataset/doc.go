// Package dataset loads graphs from edge-list files and caches the derived
// evaluation artefacts (layer assignment, ground truth) per dataset.
//
// Edge lists hold one "u v [weight]" pair per line; blank lines and lines
// starting with '#' are ignored, weights are ignored, and self-loops are
// dropped. Files ending in ".gz" are decompressed transparently. Labels are
// relabelled to dense ids 0..n-1 in sorted order, numerically when every
// label is an integer.
package dataset
