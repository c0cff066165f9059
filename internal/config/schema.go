package config

import "time"

// Config is the top-level YAML structure of a pathviz scenario.
type Config struct {
	Version   string        `yaml:"version"`
	Log       LogConf       `yaml:"log"`
	Search    SearchConf    `yaml:"search"`
	Animation AnimationConf `yaml:"animation"`
	Metrics   MetricsConf   `yaml:"metrics"`
	Graph     GraphConf     `yaml:"graph"`
}

// LogConf selects the slog handler.
type LogConf struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// SearchConf names the endpoints and the node selection strategy.
type SearchConf struct {
	Start    string `yaml:"start"`
	Goal     string `yaml:"goal"`
	Strategy string `yaml:"strategy"` // linear | heap
	Policy   string `yaml:"policy"`   // revert | reject
}

// AnimationConf controls route replay. An absent step_ms means
// DefaultStepMs; an explicit 0 replays without waiting.
type AnimationConf struct {
	StepMs *int `yaml:"step_ms,omitempty"`
}

// Step is the delay between two revealed route elements.
func (a AnimationConf) Step() time.Duration {
	if a.StepMs == nil {
		return DefaultStepMs * time.Millisecond
	}

	return time.Duration(*a.StepMs) * time.Millisecond
}

// MetricsConf controls the Prometheus endpoint. Empty Addr disables it.
type MetricsConf struct {
	Addr string `yaml:"addr"`
}

// GraphConf describes the graph: an optional generated topology, then
// explicit nodes and edges added on top of it.
type GraphConf struct {
	Generate *GenerateConf `yaml:"generate,omitempty"`
	Nodes    []string      `yaml:"nodes"`
	Edges    []EdgeConf    `yaml:"edges"`
}

// EdgeConf is one undirected edge. A missing cost means core.DefaultEdgeCost.
type EdgeConf struct {
	A    string   `yaml:"a"`
	B    string   `yaml:"b"`
	Cost *float64 `yaml:"cost,omitempty"`
}

// GenerateConf selects a builder topology.
//
//	kind: path | cycle | star | wheel | complete | grid | random
//	n:    vertex count (all kinds but grid)
//	rows, cols: grid size
//	p:    edge probability (random)
//	seed: RNG seed for random topology and random costs
//	min_cost, max_cost: integer cost range; both zero means cost 1
type GenerateConf struct {
	Kind    string  `yaml:"kind"`
	N       int     `yaml:"n"`
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	P       float64 `yaml:"p"`
	Seed    int64   `yaml:"seed"`
	MinCost int     `yaml:"min_cost"`
	MaxCost int     `yaml:"max_cost"`
}
