// Package pathviz is a headless engine for an interactive shortest-path
// visualizer: define nodes and weighted edges, flag a start and a goal, run
// Dijkstra over the graph, then replay the discovered route one segment at
// a time.
//
// What is inside:
//
//	notify/     synchronous, subscription-ordered change/error events
//	core/       reactive Graph, Node, Edge with validated Set and registries
//	dijkstra/   shortest-path engine (linear scan or heap), path reconstruction
//	animation/  strictly sequential playback queue with one completion signal
//	builder/    deterministic graph constructors for fixtures and demos
//	metrics/    Prometheus collectors for searches and playback
//
// This root package glues the engine to the queue: Replay turns a
// dijkstra.Result into an animation.Queue that reveals node, edge, node, ...
// from start to goal.
//
// Quick ASCII example (edge costs in brackets):
//
//	1 ─[4]─ 3 ─[2]─ 5 ─[4]─ 6
//
//	res, _ := dijkstra.ComputeShortestPaths(g, "1", "6")
//	q, _ := pathviz.Replay(res, 300*time.Millisecond, reveal)
//	err := <-q.Start(ctx)
//
// The cmd/pathviz driver loads a YAML scenario, runs the search, replays the
// route to the log and can re-run on every file change.
package pathviz
