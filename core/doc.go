// Package core provides the reactive graph model behind a shortest-path
// visualizer: nodes and undirected weighted edges whose every attribute
// change is validated and then broadcast to subscribed listeners.
//
// Model:
//
//   - Graph is the context object. It owns a NodeRegistry and an
//     EdgeRegistry; nothing in this package is process-global, so two
//     graphs never share nodes, edges or subscriptions.
//   - Node carries search state (done, cost, previousNode, adoption) and the
//     start/goal flags. A fresh node has cost Unreached (-1).
//   - Edge joins two distinct nodes. Its canonical ID is "<small>-<large>"
//     (numeric order when both IDs are integers), so {a,b} and {b,a} are the
//     same edge. A fresh edge has cost DefaultEdgeCost.
//
// Mutation protocol:
//
//	n.Set(core.AttrCost, 4)
//	  1. validate      → on failure: publish "error" (*ValidationError), return it
//	  2. equal to old? → return nil, no event
//	  3. assign        → publish "change" (ChangePayload{Name, NewValue, OldValue})
//
// Listeners are notify.Listener values attached with AddListener. Handlers
// run synchronously in subscription order and may mutate the graph again.
//
// Start/goal uniqueness:
//
// At most one node holds isStart and at most one holds isGoal. With the
// default FlagPolicyRevert a conflicting Set succeeds, but the flag is
// reverted on that node before its change events (true, then false) are
// delivered and a warning is logged. No listener sees two holders. With
// FlagPolicyReject the Set fails with ErrFlagTaken instead.
// A single node can never hold both flags (ErrFlagConflict).
//
// Building a graph:
//
//	g := core.NewGraph(core.WithLogger(logger))
//	a, _ := g.Nodes().Create("1")
//	b, _ := g.Nodes().Create("2")
//	_, err := g.Edges().Connect(a, b, 7) // registers the edge on both nodes
//
// Connect with a negative cost fails with a *ValidationError wrapping
// ErrNegativeCost and leaves both nodes' edge lists untouched.
//
// Concurrency:
//
// A Graph is not safe for concurrent use; serialize access externally.
//
// Complexity:
//
//   - Create / FetchByID / Connect: O(1) amortized (plus O(deg) for the
//     duplicate check on the nodes' edge lists).
//   - Remove: O(V + E) in the worst case (order slices are compacted).
//   - Graph.Clear / Graph.Reset: O(V + E).
package core
