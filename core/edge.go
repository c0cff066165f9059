// File: edge.go
// Role: Edge entity and canonical edge IDs.
// Determinism:
//   - EdgeID(a,b) == EdgeID(b,a); the smaller ID comes first.
//   - IDs that both parse as integers compare numerically ("2" < "10"),
//     otherwise lexicographically.

package core

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathviz/notify"
)

// EdgeID returns the canonical ID of the unordered pair {a, b}.
// Complexity: O(len(a)+len(b)).
func EdgeID(a, b string) string {
	if lessID(b, a) {
		a, b = b, a
	}

	return a + EdgeIDSeparator + b
}

// lessID orders node IDs numerically when both are integers.
func lessID(a, b string) bool {
	ia, errA := strconv.ParseInt(a, 10, 64)
	ib, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil && ia != ib {
		return ia < ib
	}

	return a < b
}

// Edge is an undirected, weighted connection between two nodes.
// Exactly one Edge exists per unordered pair; create it through
// EdgeRegistry.Create or EdgeRegistry.Connect.
type Edge struct {
	graph *Graph
	id    string
	nodeA string
	nodeB string

	cost     float64
	adoption bool

	dispatcher *notify.Dispatcher
}

func newEdge(g *Graph, a, b *Node) *Edge {
	return &Edge{
		graph:      g,
		id:         EdgeID(a.id, b.id),
		nodeA:      a.id,
		nodeB:      b.id,
		cost:       DefaultEdgeCost,
		dispatcher: notify.NewDispatcher(),
	}
}

// ID returns the canonical edge ID.
func (e *Edge) ID() string { return e.id }

// Kind returns KindEdge.
func (e *Edge) Kind() Kind { return KindEdge }

// NodeAID returns the first endpoint ID, as passed at construction.
func (e *Edge) NodeAID() string { return e.nodeA }

// NodeBID returns the second endpoint ID, as passed at construction.
func (e *Edge) NodeBID() string { return e.nodeB }

// NodeA resolves the first endpoint.
func (e *Edge) NodeA() *Node { return e.graph.nodes.FetchByID(e.nodeA) }

// NodeB resolves the second endpoint.
func (e *Edge) NodeB() *Node { return e.graph.nodes.FetchByID(e.nodeB) }

// Cost returns the traversal cost.
func (e *Edge) Cost() float64 { return e.cost }

// Adoption reports whether the edge is on the last computed best path.
func (e *Edge) Adoption() bool { return e.adoption }

// OppositeID returns the endpoint that is not id, and false when id is not
// an endpoint of e.
func (e *Edge) OppositeID(id string) (string, bool) {
	switch id {
	case e.nodeA:
		return e.nodeB, true
	case e.nodeB:
		return e.nodeA, true
	default:
		return "", false
	}
}

// Opposite returns the other endpoint of e as seen from n, or nil when n is
// not an endpoint.
func (e *Edge) Opposite(n *Node) *Node {
	if n == nil {
		return nil
	}
	id, ok := e.OppositeID(n.id)
	if !ok {
		return nil
	}

	return e.graph.nodes.FetchByID(id)
}

// AddListener subscribes l to this edge's events.
func (e *Edge) AddListener(l *notify.Listener) { e.dispatcher.Subscribe(l) }

// RemoveListener unsubscribes l. No-op if l is not subscribed.
func (e *Edge) RemoveListener(l *notify.Listener) { e.dispatcher.Unsubscribe(l) }

// Get returns the current value of key.
func (e *Edge) Get(key Attr) (any, error) {
	switch key {
	case AttrID:
		return e.id, nil
	case AttrNodeA:
		return e.nodeA, nil
	case AttrNodeB:
		return e.nodeB, nil
	case AttrCost:
		return e.cost, nil
	case AttrAdoption:
		return e.adoption, nil
	default:
		return nil, fmt.Errorf("%w: edge has no %q", ErrUnknownAttr, key)
	}
}

// Set is the single mutation entry point for edge attributes; see Node.Set
// for the protocol. cost takes any non-negative finite Go number, adoption
// takes bool; id and endpoints are read-only.
func (e *Edge) Set(key Attr, value any) error {
	norm, verr := e.validate(key, value)
	if verr != nil {
		e.dispatcher.Publish(notify.EventError, e, verr)
		return verr
	}

	old, _ := e.Get(key)
	if old == norm {
		return nil
	}
	switch key {
	case AttrCost:
		e.cost = norm.(float64)
	case AttrAdoption:
		e.adoption = norm.(bool)
	}
	e.dispatcher.Publish(notify.EventChange, e, ChangePayload{Name: key, NewValue: norm, OldValue: old})

	return nil
}

func (e *Edge) validate(key Attr, value any) (any, *ValidationError) {
	switch key {
	case AttrID, AttrNodeA, AttrNodeB:
		return nil, invalid(key, value, ErrReadOnly, "Attribute is read-only.")
	case AttrAdoption:
		b, verr := asBool(key, value)
		if verr != nil {
			return nil, verr
		}
		return b, nil
	case AttrCost:
		return edgeCost(value)
	default:
		return nil, invalid(key, value, ErrUnknownAttr, "Unknown edge attribute.")
	}
}

// edgeCost accepts a non-negative finite number as an edge cost.
func edgeCost(value any) (float64, *ValidationError) {
	f, verr := asCost(AttrCost, value)
	if verr != nil {
		return 0, verr
	}
	if f < 0 {
		return 0, invalid(AttrCost, value, ErrNegativeCost, "Cannot set the value under 0.")
	}

	return f, nil
}

// Clear resets adoption.
func (e *Edge) Clear() error {
	return e.Set(AttrAdoption, false)
}

func (e *Edge) dispose() {
	e.dispatcher.Dispose()
}
