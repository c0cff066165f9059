package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/core"
)

// BuildGraph materializes the graph section: the generated topology first,
// then explicit nodes, then explicit edges. The search start and goal are
// flagged with isStart/isGoal.
func (c *Config) BuildGraph(logger *slog.Logger) (*core.Graph, error) {
	policy, err := ParsePolicy(c.Search.Policy)
	if err != nil {
		return nil, err
	}
	gopts := []core.GraphOption{core.WithFlagPolicy(policy)}
	if logger != nil {
		gopts = append(gopts, core.WithLogger(logger))
	}

	cons := make([]builder.Constructor, 0, 3)
	var bopts []builder.BuilderOption
	if gen := c.Graph.Generate; gen != nil {
		con, opts, err := gen.constructor()
		if err != nil {
			return nil, err
		}
		cons = append(cons, con)
		bopts = opts
	}
	if len(c.Graph.Nodes) > 0 {
		cons = append(cons, builder.Nodes(c.Graph.Nodes...))
	}
	if len(c.Graph.Edges) > 0 {
		cons = append(cons, builder.Edges(c.edgeSpecs()...))
	}

	g, err := builder.BuildGraph(gopts, bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("config: build graph: %w", err)
	}
	if err = flag(g, c.Search.Start, core.AttrIsStart); err != nil {
		return nil, err
	}
	if err = flag(g, c.Search.Goal, core.AttrIsGoal); err != nil {
		return nil, err
	}

	return g, nil
}

func (c *Config) edgeSpecs() []builder.EdgeSpec {
	specs := make([]builder.EdgeSpec, len(c.Graph.Edges))
	for i, e := range c.Graph.Edges {
		cost := core.DefaultEdgeCost
		if e.Cost != nil {
			cost = *e.Cost
		}
		specs[i] = builder.EdgeSpec{A: e.A, B: e.B, Cost: cost}
	}

	return specs
}

func flag(g *core.Graph, id string, key core.Attr) error {
	n := g.Nodes().FetchByID(id)
	if n == nil {
		return fmt.Errorf("%w: %s node %q not in graph", ErrInvalid, key, id)
	}
	if err := n.Set(key, true); err != nil {
		return fmt.Errorf("config: flag %s on %q: %w", key, id, err)
	}

	return nil
}

func (gen *GenerateConf) constructor() (builder.Constructor, []builder.BuilderOption, error) {
	opts := []builder.BuilderOption{builder.WithSeed(gen.Seed)}
	if gen.MaxCost > 0 {
		opts = append(opts, builder.WithIntWeight(gen.MinCost, gen.MaxCost))
	}

	switch strings.ToLower(gen.Kind) {
	case "path":
		return builder.Path(gen.N), opts, nil
	case "cycle":
		return builder.Cycle(gen.N), opts, nil
	case "star":
		return builder.Star(gen.N), opts, nil
	case "wheel":
		return builder.Wheel(gen.N), opts, nil
	case "complete":
		return builder.Complete(gen.N), opts, nil
	case "grid":
		return builder.Grid(gen.Rows, gen.Cols), opts, nil
	case "random":
		return builder.RandomSparse(gen.N, gen.P), opts, nil
	default:
		return nil, nil, fmt.Errorf("%w: graph.generate.kind %q", ErrInvalid, gen.Kind)
	}
}
