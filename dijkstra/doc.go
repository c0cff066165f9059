// Package dijkstra implements the shortest-path engine of the visualizer:
// Dijkstra's algorithm over an undirected core.Graph with non-negative
// edge costs.
//
// The engine does not keep private distance maps. It writes its state into
// the graph through core.Node.Set and core.Edge.Set, so every cost update,
// finalization and path adoption is published as a change event that a
// view layer can redraw from. The nodes of the best path, and the edges
// between them, end with adoption=true.
//
// Entry points:
//
//	res, err := dijkstra.ComputeShortestPaths(g, "1", "6")
//	res, err := dijkstra.Search(g) // uses the nodes flagged isStart / isGoal
//
// An unreachable goal is reported as Result{Found: false, Reason:
// "unreachable"}, never as a goal with cost -1 treated as reached.
//
// Determinism:
//
//   - Nodes are finalized lowest cost first; ties go to the node that was
//     inserted into the graph first (not numeric ID order).
//   - A neighbour's predecessor is replaced only on a strictly lower cost,
//     so the first-discovered predecessor wins ties.
//   - StrategyLinear (the O(V²) scan) and StrategyHeap (binary heap keyed by
//     cost then insertion index) produce identical results and identical
//     event sequences.
//   - Running a search twice on an unmodified graph gives the same costs and
//     path; each search starts by clearing the previous one.
//
// Options:
//
//	– WithStrategy(StrategyLinear | StrategyHeap)
//	– WithLogger(*slog.Logger)       search lifecycle at Debug/Info
//	– WithTracer(trace.Tracer)       one "dijkstra.search" span per run
//	– WithMetrics(*metrics.Recorder) searches_total, duration, visited
//
// Errors (sentinel):
//
//	– ErrNilGraph, ErrEmptyStart, ErrEmptyGoal
//	– ErrStartNotFound, ErrGoalNotFound
//	– ErrNoStart, ErrNoGoal (Search only)
//	– ErrBadStrategy (ParseStrategy, WithStrategy)
//
// Complexity:
//
//   - StrategyLinear: Time O(V² + E), Space O(V) for the result path.
//   - StrategyHeap:   Time O((V + E) log V), Space O(V + E) under lazy
//     decrease-key.
//
// Concurrency:
//
// A search mutates the graph; do not run two searches, or a search and
// other mutations, on the same graph concurrently.
package dijkstra
