// Package retrieval scores how well an embedding's distance matrix recovers
// the structural neighbourhood of each node.
//
// For a scorable node v with k = K(v) targets, the k nodes closest to v
// under the distance matrix (v itself excluded) are selected with a bounded
// max-heap and compared with T(v):
//
//	F1@k(v) = |top-k(v) ∩ T(v)| / k
//
// Because the retrieved set and the target set have the same size,
// precision equals recall and F1 reduces to the hit fraction. Distance ties
// are broken by ascending node id, so Score is a pure deterministic function
// of its inputs.
//
// Complexity: O(n log k) per scorable node, O(S · n log k) per matrix.
package retrieval
