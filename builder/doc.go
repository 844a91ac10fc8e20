// Package builder provides deterministic constructors for the rooted graphs
// used as datasets and fixtures: paths, stars, cycles, grids and trees.
//
// Every Constructor appends one new connected component to the graph, taking
// node ids from g.N() upward, so several constructors composed in one
// BuildGraph call yield a graph whose later components are unreachable from
// the root (node 0). That is exactly the shape the layer partitioner must
// tolerate, which makes composition useful in tests.
//
// Named datasets from the experiment suite map onto constructors:
//
//	btree1365   BalancedTree(4, 5)
//	cycle1000   Cycle(1000)
//	grid        Grid(rows, cols)
//
// Stochastic constructors (RandomTree) draw from the *rand.Rand resolved by
// WithSeed / WithRand and are reproducible for a fixed seed.
package builder
