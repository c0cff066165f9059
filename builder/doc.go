// Package builder provides deterministic fixture constructors for
// core.Graph: classic topologies, seeded random graphs and explicit
// edge lists.
//
// The visualizer uses it three ways: property tests compare the search
// against brute force on RandomSparse graphs, tie-break tests use Grid and
// Complete with constant costs, and the demo driver turns a scenario file
// into a graph with Nodes + Edges.
//
// Composition:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithLogger(logger)},
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithIntWeight(1, 9)},
//	    builder.RandomSparse(8, 0.4),
//	)
//
// Constructors:
//
//	Path(n)  Cycle(n)  Star(n)  Wheel(n)  Complete(n)  Grid(rows, cols)
//	RandomSparse(n, p)  Nodes(ids...)  Edges(specs...)
//
// Options:
//
//	WithSeed / WithRand           RNG for RandomSparse and random costs
//	WithIDScheme / With*IDs        index → node ID (never containing "-")
//	WithWeightFn / With*Weight     per-edge cost generator (default 1)
//
// Determinism: equal inputs, options, seed and constructor order give
// identical graphs, down to node and edge insertion order.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, plus wrapped core sentinels.
package builder
