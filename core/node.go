// File: node.go
// Role: Node entity: attributes, the Set/Get mutation protocol, incident edges.
//
// Mutation protocol (Set):
//  1. Validate key/value. On failure publish notify.EventError with the
//     *ValidationError as payload and return it; nothing changes.
//  2. If the normalized value equals the current one, return nil silently.
//  3. Assign, then publish notify.EventChange with a ChangePayload.
//     A start/goal flag reverted under FlagPolicyRevert is put back before
//     the first event, which is then followed by the true->false change.
//
// Relations are stored as IDs (edge IDs on nodes, node IDs on edges) and
// resolved through the owning Graph, so entities never own each other.

package core

import (
	"fmt"

	"github.com/katalvlaran/pathviz/notify"
)

// Node is a graph vertex with search state and start/goal flags.
// Create nodes through NodeRegistry.Create; the zero value is not usable.
type Node struct {
	graph *Graph
	id    string
	edges []string // incident edge IDs, insertion order, no duplicates

	done     bool
	cost     float64
	previous string // predecessor node ID on the best path, "" for none
	adoption bool
	isStart  bool
	isGoal   bool

	dispatcher *notify.Dispatcher
}

func newNode(g *Graph, id string) *Node {
	return &Node{
		graph:      g,
		id:         id,
		cost:       Unreached,
		dispatcher: notify.NewDispatcher(),
	}
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Kind returns KindNode.
func (n *Node) Kind() Kind { return KindNode }

// Done reports whether the last search finalized this node.
func (n *Node) Done() bool { return n.done }

// Cost returns the best known cost from the start node, or Unreached.
func (n *Node) Cost() float64 { return n.cost }

// Adoption reports whether the node is on the last computed best path.
func (n *Node) Adoption() bool { return n.adoption }

// IsStart reports the start flag.
func (n *Node) IsStart() bool { return n.isStart }

// IsGoal reports the goal flag.
func (n *Node) IsGoal() bool { return n.isGoal }

// PreviousID returns the predecessor's ID, or "" when there is none.
func (n *Node) PreviousID() string { return n.previous }

// PreviousNode resolves the predecessor through the graph; nil when none.
func (n *Node) PreviousNode() *Node {
	if n.previous == "" {
		return nil
	}

	return n.graph.nodes.FetchByID(n.previous)
}

// EdgeIDs returns a copy of the incident edge IDs in insertion order.
func (n *Node) EdgeIDs() []string {
	out := make([]string, len(n.edges))
	copy(out, n.edges)

	return out
}

// Edges resolves the incident edges in insertion (discovery) order.
func (n *Node) Edges() []*Edge {
	out := make([]*Edge, 0, len(n.edges))
	for _, id := range n.edges {
		if e := n.graph.edges.FetchByID(id); e != nil {
			out = append(out, e)
		}
	}

	return out
}

// ContainsEdge reports whether e is in the incident edge list.
func (n *Node) ContainsEdge(e *Edge) bool {
	if e == nil {
		return false
	}
	for _, id := range n.edges {
		if id == e.id {
			return true
		}
	}

	return false
}

// AddEdge appends e to the incident edge list. Adding an edge that is
// already present is a no-op. The edge must touch this node.
func (n *Node) AddEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("%w: nil edge", ErrNotIncident)
	}
	if e.nodeA != n.id && e.nodeB != n.id {
		return fmt.Errorf("%w: edge %s, node %s", ErrNotIncident, e.id, n.id)
	}
	if n.ContainsEdge(e) {
		return nil
	}
	n.edges = append(n.edges, e.id)

	return nil
}

func (n *Node) removeEdgeID(id string) {
	for i, cur := range n.edges {
		if cur == id {
			n.edges = append(n.edges[:i:i], n.edges[i+1:]...)
			return
		}
	}
}

// AddListener subscribes l to this node's events.
func (n *Node) AddListener(l *notify.Listener) { n.dispatcher.Subscribe(l) }

// RemoveListener unsubscribes l. No-op if l is not subscribed.
func (n *Node) RemoveListener(l *notify.Listener) { n.dispatcher.Unsubscribe(l) }

// Get returns the current value of key.
func (n *Node) Get(key Attr) (any, error) {
	switch key {
	case AttrID:
		return n.id, nil
	case AttrEdges:
		return n.EdgeIDs(), nil
	case AttrDone:
		return n.done, nil
	case AttrCost:
		return n.cost, nil
	case AttrPreviousNode:
		return n.previous, nil
	case AttrAdoption:
		return n.adoption, nil
	case AttrIsStart:
		return n.isStart, nil
	case AttrIsGoal:
		return n.isGoal, nil
	default:
		return nil, fmt.Errorf("%w: node has no %q", ErrUnknownAttr, key)
	}
}

// Set is the single mutation entry point for node attributes.
// It returns a *ValidationError (matching one of the package sentinels via
// errors.Is) when the value is rejected.
//
// Values: done/adoption/isStart/isGoal take bool; cost takes any Go number
// (Unreached or >= 0); previousNode takes a node ID string, a *Node, or ""
// / nil to clear it.
func (n *Node) Set(key Attr, value any) error {
	norm, verr := n.validate(key, value)
	if verr != nil {
		n.dispatcher.Publish(notify.EventError, n, verr)
		return verr
	}

	old, _ := n.Get(key)
	if old == norm {
		return nil
	}
	n.assign(key, norm)
	// A taken start/goal flag is reverted before anyone is notified, so no
	// listener ever observes two holders.
	reverted := (key == AttrIsStart || key == AttrIsGoal) && norm == true &&
		n.graph.nodes.revertsFlag(n, key)
	if reverted {
		n.assign(key, false)
	}
	n.dispatcher.Publish(notify.EventChange, n, ChangePayload{Name: key, NewValue: norm, OldValue: old})
	if reverted {
		n.dispatcher.Publish(notify.EventChange, n, ChangePayload{Name: key, NewValue: false, OldValue: true})
	}

	return nil
}

func (n *Node) assign(key Attr, v any) {
	switch key {
	case AttrDone:
		n.done = v.(bool)
	case AttrCost:
		n.cost = v.(float64)
	case AttrPreviousNode:
		n.previous = v.(string)
	case AttrAdoption:
		n.adoption = v.(bool)
	case AttrIsStart:
		n.isStart = v.(bool)
	case AttrIsGoal:
		n.isGoal = v.(bool)
	}
}

// validate checks key/value and returns the normalized value.
func (n *Node) validate(key Attr, value any) (any, *ValidationError) {
	switch key {
	case AttrID, AttrEdges:
		return nil, invalid(key, value, ErrReadOnly, "Attribute is read-only.")

	case AttrDone, AttrAdoption:
		b, verr := asBool(key, value)
		if verr != nil {
			return nil, verr
		}
		return b, nil

	case AttrIsStart, AttrIsGoal:
		b, verr := asBool(key, value)
		if verr != nil {
			return nil, verr
		}
		if !b {
			return false, nil
		}
		if (key == AttrIsStart && n.isGoal) || (key == AttrIsGoal && n.isStart) {
			return nil, invalid(key, value, ErrFlagConflict, "Cannot set true to both flags.")
		}
		if n.graph.policy == FlagPolicyReject {
			if holder := n.graph.nodes.flagHolder(key, n); holder != nil {
				return nil, invalid(key, value, ErrFlagTaken,
					fmt.Sprintf("Node %s already holds %s.", holder.id, key))
			}
		}
		return true, nil

	case AttrCost:
		f, verr := asCost(key, value)
		if verr != nil {
			return nil, verr
		}
		if f < 0 && f != Unreached {
			return nil, invalid(key, value, ErrNegativeCost, "Cannot set the value under 0 (except -1 for unreached).")
		}
		return f, nil

	case AttrPreviousNode:
		var id string
		switch v := value.(type) {
		case nil:
		case string:
			id = v
		case *Node:
			if v != nil {
				id = v.id
			}
		default:
			return nil, invalid(key, value, ErrWrongType, fmt.Sprintf("want node ID or *Node, got %T", value))
		}
		if id == "" {
			return "", nil
		}
		if id == n.id {
			return nil, invalid(key, value, ErrSelfLoop, "A node cannot precede itself.")
		}
		if n.graph.nodes.FetchByID(id) == nil {
			return nil, invalid(key, value, ErrUnknownNode, fmt.Sprintf("Node %s is not in this graph.", id))
		}
		return id, nil

	default:
		return nil, invalid(key, value, ErrUnknownAttr, "Unknown node attribute.")
	}
}

// Clear resets the search state: done=false, cost=Unreached,
// adoption=false, previousNode="", and adoption=false on every incident
// edge. Start/goal flags are kept. Change events fire for actual changes.
func (n *Node) Clear() error {
	resets := [...]struct {
		key Attr
		val any
	}{
		{AttrDone, false},
		{AttrCost, Unreached},
		{AttrAdoption, false},
		{AttrPreviousNode, ""},
	}
	for _, r := range resets {
		if err := n.Set(r.key, r.val); err != nil {
			return err
		}
	}
	for _, e := range n.Edges() {
		if err := e.Clear(); err != nil {
			return err
		}
	}

	return nil
}

// Reset is Clear followed by isStart=false and isGoal=false.
func (n *Node) Reset() error {
	if err := n.Clear(); err != nil {
		return err
	}
	if err := n.Set(AttrIsStart, false); err != nil {
		return err
	}

	return n.Set(AttrIsGoal, false)
}

func (n *Node) dispose() {
	n.dispatcher.Dispose()
}
