// File: types.go
// Role: attribute names, event payloads, sentinel errors, graph options and
// the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrBadNodeID     - node ID contains the edge-ID separator.
//	ErrNilNode       - nil *Node passed to a registry.
//	ErrUnknownNode   - node does not belong to this graph.
//	ErrSelfLoop      - both endpoints are the same node.
//	ErrNotIncident   - edge does not touch the node it is attached to.
//	ErrUnknownAttr   - Set/Get on an attribute the entity does not have.
//	ErrReadOnly      - Set on an immutable attribute (id, edges, endpoints).
//	ErrWrongType     - value has the wrong Go type for the attribute.
//	ErrNegativeCost  - cost below zero (edge) or below the sentinel (node).
//	ErrBadCost       - cost is NaN or infinite.
//	ErrFlagConflict  - isStart and isGoal on the same node.
//	ErrFlagTaken     - another node already holds isStart/isGoal (FlagPolicyReject).

package core

import (
	"errors"
	"log/slog"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrBadNodeID indicates that a node ID contains EdgeIDSeparator and
	// would make canonical edge IDs ambiguous.
	ErrBadNodeID = errors.New("core: node ID must not contain the edge ID separator")

	// ErrNilNode indicates a nil *Node argument.
	ErrNilNode = errors.New("core: node is nil")

	// ErrUnknownNode indicates a node that is not registered in this graph.
	ErrUnknownNode = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge (or predecessor link) from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNotIncident indicates an edge attached to a node it does not touch.
	ErrNotIncident = errors.New("core: edge is not incident to node")

	// ErrUnknownAttr indicates an attribute name the entity does not have.
	ErrUnknownAttr = errors.New("core: unknown attribute")

	// ErrReadOnly indicates an attempt to Set an immutable attribute.
	ErrReadOnly = errors.New("core: attribute is read-only")

	// ErrWrongType indicates a value of the wrong type for the attribute.
	ErrWrongType = errors.New("core: wrong value type")

	// ErrNegativeCost indicates a negative cost.
	ErrNegativeCost = errors.New("core: cost must not be negative")

	// ErrBadCost indicates a NaN or infinite cost.
	ErrBadCost = errors.New("core: cost must be a finite number")

	// ErrFlagConflict indicates isStart and isGoal requested on one node.
	ErrFlagConflict = errors.New("core: node cannot be both start and goal")

	// ErrFlagTaken indicates that another node already holds the flag.
	ErrFlagTaken = errors.New("core: flag already held by another node")
)

// Attr names an entity attribute. Set and Get are keyed by Attr.
type Attr string

// Node and edge attributes.
const (
	AttrID           Attr = "id"
	AttrEdges        Attr = "edges"
	AttrDone         Attr = "done"
	AttrCost         Attr = "cost"
	AttrPreviousNode Attr = "previousNode"
	AttrAdoption     Attr = "adoption"
	AttrIsStart      Attr = "isStart"
	AttrIsGoal       Attr = "isGoal"
	AttrNodeA        Attr = "nodeA"
	AttrNodeB        Attr = "nodeB"
)

// Kind tells a view layer what sort of entity published an event.
type Kind string

const (
	KindNode Kind = "node"
	KindEdge Kind = "edge"
)

// Unreached is the node cost sentinel meaning "not yet reached by a search".
const Unreached float64 = -1

// DefaultEdgeCost is the cost of a freshly created edge.
const DefaultEdgeCost float64 = 1

// EdgeIDSeparator joins the two endpoint IDs of a canonical edge ID.
const EdgeIDSeparator = "-"

// ChangePayload is the payload of a notify.EventChange event.
type ChangePayload struct {
	Name     Attr
	NewValue any
	OldValue any
}

// FlagPolicy selects how the graph keeps isStart/isGoal unique across nodes.
type FlagPolicy int

const (
	// FlagPolicyRevert lets the conflicting Set succeed but reverts the
	// flag on the node that was just set, before any listener runs, and
	// logs a warning. Listeners observe two change events (true, then
	// false) while the graph already has a single holder.
	FlagPolicyRevert FlagPolicy = iota

	// FlagPolicyReject validates before mutation: the conflicting Set is
	// rejected with ErrFlagTaken and an error event, like every other
	// validation failure.
	FlagPolicyReject
)

// String renders the policy for logs and config.
func (p FlagPolicy) String() string {
	switch p {
	case FlagPolicyRevert:
		return "revert"
	case FlagPolicyReject:
		return "reject"
	default:
		return "unknown"
	}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithLogger sets the logger used for invariant-repair warnings.
// A nil logger keeps the default.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithFlagPolicy selects the start/goal uniqueness policy.
func WithFlagPolicy(p FlagPolicy) GraphOption {
	return func(g *Graph) { g.policy = p }
}

// Graph is the context object owning every Node and Edge of one graph.
//
// It replaces process-wide registries: each Graph is independent, and the
// shortest-path engine and the animation layer receive it explicitly.
//
// A Graph is not safe for concurrent use. Mutations publish events
// synchronously and listeners may mutate the graph again, so callers
// serialize access (one goroutine, or an external lock).
type Graph struct {
	nodes  *NodeRegistry
	edges  *EdgeRegistry
	logger *slog.Logger
	policy FlagPolicy
}

// NewGraph creates an empty Graph. By default it logs through slog.Default()
// and uses FlagPolicyRevert.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		logger: slog.Default(),
		policy: FlagPolicyRevert,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = newNodeRegistry(g)
	g.edges = newEdgeRegistry(g)

	return g
}

// Nodes returns the node registry.
func (g *Graph) Nodes() *NodeRegistry { return g.nodes }

// Edges returns the edge registry.
func (g *Graph) Edges() *EdgeRegistry { return g.edges }

// Start returns the node flagged isStart, or nil.
func (g *Graph) Start() *Node { return g.nodes.Start() }

// Goal returns the node flagged isGoal, or nil.
func (g *Graph) Goal() *Node { return g.nodes.Goal() }

// FlagPolicy reports the configured start/goal policy.
func (g *Graph) FlagPolicy() FlagPolicy { return g.policy }

// Clear resets the search state of every node and edge (done, cost,
// previousNode, adoption). Start/goal flags are kept.
// Returns the first validation error encountered, if any.
func (g *Graph) Clear() error {
	var first error
	for _, n := range g.nodes.All() {
		if err := n.Clear(); err != nil && first == nil {
			first = err
		}
	}
	for _, e := range g.edges.All() {
		if err := e.Clear(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Reset is Clear plus clearing the start/goal flags.
func (g *Graph) Reset() error {
	var first error
	for _, n := range g.nodes.All() {
		if err := n.Reset(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
