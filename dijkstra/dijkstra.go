// File: dijkstra.go
// Role: search driver, node selection strategies and path reconstruction.
//
// Algorithm:
//
//  1. Reset: Clear() every node (done=false, cost=Unreached, no predecessor,
//     adoption=false on nodes and incident edges).
//  2. Seed: start.cost = 0.
//  3. Select the unfinalized, reached node of lowest cost; ties go to the
//     node inserted first. Stop when none is left.
//  4. Mark it done and relax each incident edge in insertion order: the
//     opposite endpoint is updated when it is unreached or the candidate
//     cost is strictly lower (the first-discovered predecessor wins ties).
//  5. Walk previousNode back from the goal, setting adoption on every path
//     node and edge.

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathviz/core"
)

// ComputeShortestPaths runs a search from startID to goalID on g.
// It is ComputeShortestPathsContext with context.Background().
func ComputeShortestPaths(g *core.Graph, startID, goalID string, opts ...Option) (Result, error) {
	return ComputeShortestPathsContext(context.Background(), g, startID, goalID, opts...)
}

// ComputeShortestPathsContext runs a search from startID to goalID on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. startID and goalID must be non-empty (ErrEmptyStart, ErrEmptyGoal).
//  3. Both nodes must exist in g (ErrStartNotFound, ErrGoalNotFound).
//
// ctx parents the search span and is checked once per finalized node; a
// cancelled search returns ctx.Err() wrapped and leaves partial search
// state in the graph (the next search clears it).
//
// The returned error is nil for an unreachable goal; see Result.Found.
func ComputeShortestPathsContext(ctx context.Context, g *core.Graph, startID, goalID string, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	if startID == "" {
		return Result{}, ErrEmptyStart
	}
	if goalID == "" {
		return Result{}, ErrEmptyGoal
	}
	start := g.Nodes().FetchByID(startID)
	if start == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrStartNotFound, startID)
	}
	goal := g.Nodes().FetchByID(goalID)
	if goal == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrGoalNotFound, goalID)
	}

	r := &runner{
		g:     g,
		opts:  cfg,
		start: start,
		goal:  goal,
		res: Result{
			RunID:    uuid.NewString(),
			Start:    startID,
			Goal:     goalID,
			Cost:     core.Unreached,
			Strategy: cfg.Strategy,
		},
	}

	return r.run(ctx)
}

// Search runs ComputeShortestPaths between the nodes flagged isStart and
// isGoal. Errors: ErrNilGraph, ErrNoStart, ErrNoGoal.
func Search(g *core.Graph, opts ...Option) (Result, error) {
	return SearchContext(context.Background(), g, opts...)
}

// SearchContext is Search with a caller context.
func SearchContext(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	start := g.Start()
	if start == nil {
		return Result{}, ErrNoStart
	}
	goal := g.Goal()
	if goal == nil {
		return Result{}, ErrNoGoal
	}

	return ComputeShortestPathsContext(ctx, g, start.ID(), goal.ID(), opts...)
}

// runner holds the mutable state for a single search.
type runner struct {
	g     *core.Graph
	opts  Options
	start *core.Node
	goal  *core.Node
	res   Result

	// heap strategy only
	index map[string]int // node ID → insertion index, the tie-break key
	pq    nodePQ
}

func (r *runner) run(ctx context.Context) (Result, error) {
	began := time.Now()
	ctx, span := r.opts.Tracer.Start(ctx, "dijkstra.search",
		trace.WithAttributes(
			attribute.String("pathviz.run_id", r.res.RunID),
			attribute.String("pathviz.start", r.res.Start),
			attribute.String("pathviz.goal", r.res.Goal),
			attribute.String("pathviz.strategy", r.opts.Strategy.String()),
		))
	defer span.End()

	log := r.opts.Logger.With("run_id", r.res.RunID)
	log.Debug("search started",
		"start", r.res.Start, "goal", r.res.Goal, "strategy", r.opts.Strategy.String())

	err := r.search(ctx)
	if err == nil {
		err = r.reconstruct()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("search failed", "error", err)

		return Result{}, err
	}

	span.SetAttributes(
		attribute.Bool("pathviz.found", r.res.Found),
		attribute.Float64("pathviz.cost", r.res.Cost),
		attribute.Int("pathviz.visited", r.res.Visited),
	)
	r.opts.Metrics.ObserveSearch(time.Since(began), r.res.Found, r.res.Visited)
	if r.res.Found {
		log.Info("search finished", "found", true, "cost", r.res.Cost, "path", r.res.Nodes, "visited", r.res.Visited)
	} else {
		log.Info("search finished", "found", false, "reason", r.res.Reason, "visited", r.res.Visited)
	}

	return r.res, nil
}

// search performs steps 1-4.
func (r *runner) search(ctx context.Context) error {
	// 1) Reset every node and its incident edges.
	if err := r.g.Clear(); err != nil {
		return fmt.Errorf("dijkstra: reset: %w", err)
	}

	// 2) Seed the start node.
	if err := r.start.Set(core.AttrCost, 0); err != nil {
		return fmt.Errorf("dijkstra: seed %s: %w", r.start.ID(), err)
	}
	if r.opts.Strategy == StrategyHeap {
		r.initHeap()
	}

	// 3-4) Select, finalize, relax.
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		u := r.next()
		if u == nil {
			return nil
		}
		if err := u.Set(core.AttrDone, true); err != nil {
			return fmt.Errorf("dijkstra: finalize %s: %w", u.ID(), err)
		}
		r.res.Visited++
		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// next returns the node to finalize, or nil when the search is exhausted.
func (r *runner) next() *core.Node {
	if r.opts.Strategy == StrategyHeap {
		return r.popHeap()
	}

	return r.scanLinear()
}

// scanLinear picks the unfinalized reached node of minimum cost; the node
// inserted first wins ties because only a strictly lower cost replaces it.
func (r *runner) scanLinear() *core.Node {
	var best *core.Node
	for _, n := range r.g.Nodes().All() {
		if n.Done() || n.Cost() == core.Unreached {
			continue
		}
		if best == nil || n.Cost() < best.Cost() {
			best = n
		}
	}

	return best
}

// relax examines each edge incident to u, in insertion order, and improves
// the opposite endpoint when it is unreached or strictly cheaper through u.
// Finalized endpoints are skipped: with non-negative costs they can never
// improve.
func (r *runner) relax(u *core.Node) error {
	for _, e := range u.Edges() {
		v := e.Opposite(u)
		if v == nil || v.Done() {
			continue
		}

		candidate := u.Cost() + e.Cost()
		if v.Cost() != core.Unreached && candidate >= v.Cost() {
			continue
		}

		if err := v.Set(core.AttrCost, candidate); err != nil {
			return fmt.Errorf("dijkstra: relax %s: %w", v.ID(), err)
		}
		if err := v.Set(core.AttrPreviousNode, u); err != nil {
			return fmt.Errorf("dijkstra: relax %s: %w", v.ID(), err)
		}
		if r.opts.Strategy == StrategyHeap {
			r.pushHeap(v)
		}
	}

	return nil
}

// reconstruct performs step 5 and fills the path part of the result.
func (r *runner) reconstruct() error {
	if r.goal.Cost() == core.Unreached {
		r.res.Found = false
		r.res.Reason = ReasonUnreachable
		r.res.Cost = core.Unreached

		return nil
	}

	var nodes, edges []string
	cur := r.goal
	for {
		if err := cur.Set(core.AttrAdoption, true); err != nil {
			return fmt.Errorf("dijkstra: adopt %s: %w", cur.ID(), err)
		}
		nodes = append(nodes, cur.ID())

		prev := cur.PreviousNode()
		if prev == nil {
			break
		}
		e := r.g.Edges().FetchByNode(cur, prev)
		if e == nil {
			return fmt.Errorf("dijkstra: no edge between %s and %s", prev.ID(), cur.ID())
		}
		if err := e.Set(core.AttrAdoption, true); err != nil {
			return fmt.Errorf("dijkstra: adopt %s: %w", e.ID(), err)
		}
		edges = append(edges, e.ID())
		cur = prev
	}
	reverse(nodes)
	reverse(edges)

	r.res.Found = true
	r.res.Cost = r.goal.Cost()
	r.res.Nodes = nodes
	r.res.Edges = edges

	return nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// initHeap indexes nodes by insertion order and pushes the seeded start.
func (r *runner) initHeap() {
	ids := r.g.Nodes().IDs()
	r.index = make(map[string]int, len(ids))
	for i, id := range ids {
		r.index[id] = i
	}
	r.pq = make(nodePQ, 0, len(ids))
	heap.Init(&r.pq)
	r.pushHeap(r.start)
}

func (r *runner) pushHeap(n *core.Node) {
	heap.Push(&r.pq, &nodeItem{id: n.ID(), cost: n.Cost(), seq: r.index[n.ID()]})
}

// popHeap returns the next live entry, skipping stale ones (already
// finalized, or superseded by a cheaper push).
func (r *runner) popHeap() *core.Node {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		n := r.g.Nodes().FetchByID(item.id)
		if n == nil || n.Done() || n.Cost() != item.cost {
			continue
		}

		return n
	}

	return nil
}

// nodeItem represents a node and its tentative cost at push time.
type nodeItem struct {
	id   string
	cost float64
	seq  int // insertion index in the node registry
}

// nodePQ is a min-heap of *nodeItem ordered by (cost, seq), which is the
// same order the linear scan finalizes nodes in.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, then by insertion index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
