// Package matrix holds the pairwise distance matrices produced by an external
// embedding and consumed by the retrieval scorer.
//
// Any gonum mat.Matrix can serve as a distance matrix. This package adds:
//
//   - Condensed: the upper triangle of an n×n symmetric matrix with zero
//     diagonal stored row-major in n(n-1)/2 floats, the layout in which
//     embedding runs persist their pairwise distances. It implements
//     mat.Symmetric without ever expanding to n².
//   - Row: row extraction with a fast path for Condensed and gonum's raw
//     fast paths for Dense/SymDense.
//   - Validators for the distance-matrix contract: square, finite,
//     non-negative, zero diagonal, symmetric within a tolerance.
//   - Binary readers/writers on top of gonum's MarshalBinary formats.
//
// All validators return the sentinels in errors.go wrapped with the
// validator name; match them with errors.Is.
package matrix
