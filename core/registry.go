// File: registry.go
// Role: NodeRegistry and EdgeRegistry, the sole owners of entities.
// Determinism:
//   - All() returns entities in insertion order; the shortest-path engine
//     relies on this order for its tie-break.
// Invariants:
//   - One Node per ID, one Edge per unordered node pair.
//   - After any Set returns, at most one node holds isStart and at most one
//     holds isGoal (enforced per FlagPolicy).

package core

import (
	"fmt"
	"strings"
)

// NodeRegistry owns the nodes of one Graph.
type NodeRegistry struct {
	graph *Graph
	byID  map[string]*Node
	order []string
}

func newNodeRegistry(g *Graph) *NodeRegistry {
	return &NodeRegistry{graph: g, byID: make(map[string]*Node)}
}

// Create returns the node with id, constructing and registering it first
// if it does not exist yet.
//
// Errors:
//   - ErrEmptyNodeID: id == "".
//   - ErrBadNodeID: id contains EdgeIDSeparator.
//
// Complexity: O(1) amortized.
func (r *NodeRegistry) Create(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if strings.Contains(id, EdgeIDSeparator) {
		return nil, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}
	if n, ok := r.byID[id]; ok {
		return n, nil
	}

	n := newNode(r.graph, id)
	r.byID[id] = n
	r.order = append(r.order, id)

	return n, nil
}

// FetchByID returns the node with id, or nil.
func (r *NodeRegistry) FetchByID(id string) *Node { return r.byID[id] }

// Has reports whether a node with id is registered.
func (r *NodeRegistry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of nodes.
func (r *NodeRegistry) Len() int { return len(r.order) }

// All returns the nodes in insertion order.
func (r *NodeRegistry) All() []*Node {
	out := make([]*Node, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}

	return out
}

// IDs returns the node IDs in insertion order.
func (r *NodeRegistry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Start returns the node flagged isStart, or nil.
func (r *NodeRegistry) Start() *Node { return r.flagHolder(AttrIsStart, nil) }

// Goal returns the node flagged isGoal, or nil.
func (r *NodeRegistry) Goal() *Node { return r.flagHolder(AttrIsGoal, nil) }

// Remove unregisters the node with n's ID, removes its incident edges and
// disposes its subscriptions. Reports whether a node was removed.
// Complexity: O(V + deg(n)).
func (r *NodeRegistry) Remove(n *Node) bool {
	if n == nil {
		return false
	}
	cur, ok := r.byID[n.id]
	if !ok {
		return false
	}
	for _, e := range cur.Edges() {
		r.graph.edges.Remove(e)
	}
	for _, id := range r.order {
		if other := r.byID[id]; other.previous == cur.id {
			// Dangling predecessor links would resolve to nothing; drop them through Set.
			_ = other.Set(AttrPreviousNode, "")
		}
	}
	delete(r.byID, cur.id)
	for i, id := range r.order {
		if id == cur.id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	cur.dispose()

	return true
}

// flagHolder returns the first node other than except holding the flag.
func (r *NodeRegistry) flagHolder(key Attr, except *Node) *Node {
	for _, id := range r.order {
		n := r.byID[id]
		if n == except {
			continue
		}
		if (key == AttrIsStart && n.isStart) || (key == AttrIsGoal && n.isGoal) {
			return n
		}
	}

	return nil
}

// revertsFlag reports whether n must give back a start/goal flag it just
// took because another node already holds it (FlagPolicyRevert only), and
// logs the warning when it does.
func (r *NodeRegistry) revertsFlag(n *Node, key Attr) bool {
	if r.graph.policy != FlagPolicyRevert {
		return false
	}
	holder := r.flagHolder(key, n)
	if holder == nil {
		return false
	}

	flag := "start"
	if key == AttrIsGoal {
		flag = "goal"
	}
	r.graph.logger.Warn("must set "+flag+" flag to just one node",
		"node", n.id, "holder", holder.id)

	return true
}

// EdgeRegistry owns the edges of one Graph.
type EdgeRegistry struct {
	graph *Graph
	byID  map[string]*Edge
	order []string
}

func newEdgeRegistry(g *Graph) *EdgeRegistry {
	return &EdgeRegistry{graph: g, byID: make(map[string]*Edge)}
}

// Create returns the edge for the unordered pair {a, b}, constructing and
// registering it (with DefaultEdgeCost) if needed. It does not touch the
// nodes' edge lists; use Connect for that.
//
// Errors:
//   - ErrNilNode: a or b is nil.
//   - ErrUnknownNode: a or b is not registered in this graph.
//   - ErrSelfLoop: a and b are the same node.
func (r *EdgeRegistry) Create(a, b *Node) (*Edge, error) {
	if err := r.checkPair(a, b); err != nil {
		return nil, err
	}
	if e, ok := r.byID[EdgeID(a.id, b.id)]; ok {
		return e, nil
	}

	e := newEdge(r.graph, a, b)
	r.byID[e.id] = e
	r.order = append(r.order, e.id)

	return e, nil
}

// Connect creates or fetches the edge {a, b}, sets its cost, and registers
// it on both endpoints' edge lists (skipping a list that already has it).
//
// If the cost is rejected, the nodes' edge lists are left untouched and the
// returned error is the *ValidationError. An existing edge keeps its
// previous cost and publishes the error event. For a new edge the cost is
// checked before the edge exists, so the rejection is reported only through
// the return value.
func (r *EdgeRegistry) Connect(a, b *Node, cost float64) (*Edge, error) {
	if err := r.checkPair(a, b); err != nil {
		return nil, err
	}
	if r.byID[EdgeID(a.id, b.id)] == nil {
		if _, verr := edgeCost(cost); verr != nil {
			return nil, verr
		}
	}

	e, err := r.Create(a, b)
	if err != nil {
		return nil, err
	}
	if err = e.Set(AttrCost, cost); err != nil {
		return nil, err
	}
	if err = a.AddEdge(e); err != nil {
		return nil, err
	}
	if err = b.AddEdge(e); err != nil {
		return nil, err
	}

	return e, nil
}

// FetchByID returns the edge with the canonical id, or nil.
func (r *EdgeRegistry) FetchByID(id string) *Edge { return r.byID[id] }

// FetchByNode returns the edge between a and b, or nil.
func (r *EdgeRegistry) FetchByNode(a, b *Node) *Edge {
	if a == nil || b == nil {
		return nil
	}

	return r.byID[EdgeID(a.id, b.id)]
}

// Len returns the number of edges.
func (r *EdgeRegistry) Len() int { return len(r.order) }

// All returns the edges in insertion order.
func (r *EdgeRegistry) All() []*Edge {
	out := make([]*Edge, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}

	return out
}

// Remove unregisters the edge with e's ID, detaches it from both endpoint
// lists and disposes its subscriptions. Reports whether an edge was removed.
func (r *EdgeRegistry) Remove(e *Edge) bool {
	if e == nil {
		return false
	}
	cur, ok := r.byID[e.id]
	if !ok {
		return false
	}
	if n := r.graph.nodes.FetchByID(cur.nodeA); n != nil {
		n.removeEdgeID(cur.id)
	}
	if n := r.graph.nodes.FetchByID(cur.nodeB); n != nil {
		n.removeEdgeID(cur.id)
	}
	r.drop(cur)

	return true
}

func (r *EdgeRegistry) drop(e *Edge) {
	delete(r.byID, e.id)
	for i, id := range r.order {
		if id == e.id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	e.dispose()
}

func (r *EdgeRegistry) checkPair(a, b *Node) error {
	if a == nil || b == nil {
		return ErrNilNode
	}
	if r.graph.nodes.FetchByID(a.id) != a {
		return fmt.Errorf("%w: %s", ErrUnknownNode, a.id)
	}
	if r.graph.nodes.FetchByID(b.id) != b {
		return fmt.Errorf("%w: %s", ErrUnknownNode, b.id)
	}
	if a.id == b.id {
		return fmt.Errorf("%w: %s", ErrSelfLoop, a.id)
	}

	return nil
}
