// File: types.go
// Role: sentinel errors, strategies, functional options and the Result type.

package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/metrics"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyStart indicates that the start node ID is empty.
	ErrEmptyStart = errors.New("dijkstra: start node ID is empty")

	// ErrEmptyGoal indicates that the goal node ID is empty.
	ErrEmptyGoal = errors.New("dijkstra: goal node ID is empty")

	// ErrStartNotFound indicates that the start node is not in the graph.
	ErrStartNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrGoalNotFound indicates that the goal node is not in the graph.
	ErrGoalNotFound = errors.New("dijkstra: goal node not found in graph")

	// ErrNoStart indicates that no node carries the isStart flag.
	ErrNoStart = errors.New("dijkstra: no node is flagged as start")

	// ErrNoGoal indicates that no node carries the isGoal flag.
	ErrNoGoal = errors.New("dijkstra: no node is flagged as goal")

	// ErrBadStrategy indicates an unknown strategy name.
	ErrBadStrategy = errors.New("dijkstra: unknown strategy")
)

// ReasonUnreachable is Result.Reason when the goal was never reached.
const ReasonUnreachable = "unreachable"

// Strategy selects how the next node to finalize is found.
//
// Both strategies finalize nodes in exactly the same order: lowest cost
// first, ties broken by node insertion order.
type Strategy int

const (
	// StrategyLinear scans every node per iteration. O(V²).
	StrategyLinear Strategy = iota

	// StrategyHeap keeps a binary min-heap keyed by (cost, insertion index)
	// with lazy decrease-key. O((V + E) log V).
	StrategyHeap
)

// String returns the config name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyLinear:
		return "linear"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "linear" / "heap" (case-insensitive, "" = linear).
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return StrategyLinear, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, name)
	}
}

// Options configures one search.
type Options struct {
	Strategy Strategy          // node selection strategy
	Logger   *slog.Logger      // never nil after DefaultOptions
	Tracer   trace.Tracer      // never nil after DefaultOptions
	Metrics  *metrics.Recorder // nil disables metrics
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithStrategy selects the node selection strategy.
// Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != StrategyLinear && s != StrategyHeap {
		panic(ErrBadStrategy.Error())
	}

	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// WithTracer sets the OpenTelemetry tracer. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("dijkstra: WithTracer(nil)")
	}

	return func(o *Options) {
		o.Tracer = t
	}
}

// WithMetrics attaches a Prometheus recorder. A nil recorder disables metrics.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Metrics = r
	}
}

// DefaultOptions returns the defaults:
//   - Strategy: StrategyLinear.
//   - Logger:   slog.Default().
//   - Tracer:   otel.Tracer(TracerName) (no-op until a provider is installed).
//   - Metrics:  nil.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyLinear,
		Logger:   slog.Default(),
		Tracer:   otel.Tracer(TracerName),
	}
}

// TracerName is the instrumentation scope of the default tracer.
const TracerName = "github.com/katalvlaran/pathviz/dijkstra"

// Result is the outcome of one search.
//
// Found == false means the goal is not connected to the start; Nodes and
// Edges are then empty, Cost is core.Unreached and Reason is
// ReasonUnreachable.
type Result struct {
	RunID    string   // uuid correlating logs, spans and replays
	Start    string   // start node ID
	Goal     string   // goal node ID
	Found    bool     // goal reached
	Reason   string   // "" when found
	Cost     float64  // total path cost
	Nodes    []string // node IDs, start → goal
	Edges    []string // canonical edge IDs, start → goal; len(Edges) == len(Nodes)-1
	Visited  int      // nodes finalized by this search
	Strategy Strategy // strategy used
}

// Segment is one step of a route: a node or the edge leading to the next node.
type Segment struct {
	Kind core.Kind
	ID   string
}

// Route interleaves the path nodes and edges start → goal:
// node, edge, node, ..., node. Empty when the goal was not found.
func (r Result) Route() []Segment {
	if !r.Found || len(r.Nodes) == 0 {
		return nil
	}
	out := make([]Segment, 0, len(r.Nodes)+len(r.Edges))
	for i, id := range r.Nodes {
		if i > 0 && i-1 < len(r.Edges) {
			out = append(out, Segment{Kind: core.KindEdge, ID: r.Edges[i-1]})
		}
		out = append(out, Segment{Kind: core.KindNode, ID: id})
	}

	return out
}
