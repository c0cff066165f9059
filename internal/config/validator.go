package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/internal/logging"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

var generateKinds = map[string]bool{
	"path": true, "cycle": true, "star": true, "wheel": true,
	"complete": true, "grid": true, "random": true,
}

// Validate checks required fields, enum values, edge sanity and that the
// search endpoints are declared. All problems are reported at once.
func Validate(cfg *Config) error {
	var errs []string
	add := func(format string, args ...any) { errs = append(errs, fmt.Sprintf(format, args...)) }

	if cfg.Version == "" {
		add("version is required")
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		add("log.level: %v", err)
	}
	if f := strings.ToLower(cfg.Log.Format); f != "text" && f != "json" {
		add("log.format: must be text or json, got %q", cfg.Log.Format)
	}
	if _, err := dijkstra.ParseStrategy(cfg.Search.Strategy); err != nil {
		add("search.strategy: %v", err)
	}
	if _, err := ParsePolicy(cfg.Search.Policy); err != nil {
		add("search.policy: %v", err)
	}
	if s := cfg.Animation.StepMs; s != nil && *s < 0 {
		add("animation.step_ms: must be >= 0, got %d", *s)
	}

	declared := make(map[string]bool)
	for i, id := range cfg.Graph.Nodes {
		if msg := badID(id); msg != "" {
			add("graph.nodes[%d]: %s", i, msg)
		}
		declared[id] = true
	}
	for i, e := range cfg.Graph.Edges {
		if msg := badID(e.A); msg != "" {
			add("graph.edges[%d].a: %s", i, msg)
		}
		if msg := badID(e.B); msg != "" {
			add("graph.edges[%d].b: %s", i, msg)
		}
		if e.A != "" && e.A == e.B {
			add("graph.edges[%d]: self-loop on %q", i, e.A)
		}
		if e.Cost != nil && *e.Cost < 0 {
			add("graph.edges[%d]: cost must be >= 0, got %g", i, *e.Cost)
		}
		declared[e.A] = true
		declared[e.B] = true
	}
	if gen := cfg.Graph.Generate; gen != nil {
		if !generateKinds[strings.ToLower(gen.Kind)] {
			add("graph.generate.kind: unknown %q", gen.Kind)
		}
		if gen.MinCost < 0 || gen.MaxCost < gen.MinCost {
			add("graph.generate: cost range [%d,%d] is invalid", gen.MinCost, gen.MaxCost)
		}
	}
	if cfg.Graph.Generate == nil && len(cfg.Graph.Nodes) == 0 && len(cfg.Graph.Edges) == 0 {
		add("graph: no nodes, edges or generator")
	}

	// Generated IDs are only known after building; endpoints are then
	// checked by the search itself.
	if cfg.Search.Start == "" {
		add("search.start is required")
	} else if cfg.Graph.Generate == nil && !declared[cfg.Search.Start] {
		add("search.start: node %q is not declared", cfg.Search.Start)
	}
	if cfg.Search.Goal == "" {
		add("search.goal is required")
	} else if cfg.Graph.Generate == nil && !declared[cfg.Search.Goal] {
		add("search.goal: node %q is not declared", cfg.Search.Goal)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}

	return nil
}

func badID(id string) string {
	switch {
	case id == "":
		return "id is required"
	case strings.Contains(id, core.EdgeIDSeparator):
		return fmt.Sprintf("id %q must not contain %q", id, core.EdgeIDSeparator)
	default:
		return ""
	}
}

// ParsePolicy maps "revert" / "reject" to a core.FlagPolicy.
func ParsePolicy(name string) (core.FlagPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "revert":
		return core.FlagPolicyRevert, nil
	case "reject":
		return core.FlagPolicyReject, nil
	default:
		return core.FlagPolicyRevert, fmt.Errorf("unknown flag policy %q", name)
	}
}
