// Package layerf1 scores learned graph embeddings against the BFS hierarchy
// of the graph they embed.
//
// Nodes are partitioned into layers by their distance from a root. For every
// node with children, the k nearest points under the embedding's distance
// matrix (k = number of children) are compared with the true children; the
// hit fraction F1@k is averaged per layer and then across independent runs.
//
// Packages, in pipeline order:
//
//	core/        undirected int-id graph with a designated root
//	bfs/         breadth-first walker with hooks, depth limits and cancellation
//	layers/      BFS layer assignment
//	groundtruth/ per-node target sets (children or descendants), roaring bitmaps
//	matrix/      distance matrices on gonum: condensed storage, validation, I/O
//	embedding/   Euclidean distance matrices from coordinates
//	retrieval/   bounded top-k selection and F1@k per node
//	aggregate/   per-layer means and cross-run mean/std curves
//	evaluate/    bounded-concurrency driver over runs, malformed-run handling
//	dataset/     edge-list loading and the per-dataset artefact cache
//	runs/        run directories on disk
//	builder/     deterministic graph constructors for fixtures
//	config/, logger/, cmd/layerf1/, cli/layerf1/  the layerf1 command
package layerf1
