package config_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/internal/config"
)

const minimal = `
version: "1"
search: {start: a, goal: c}
graph:
  edges:
    - {a: a, b: b, cost: 2}
    - {a: b, b: c}
`

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte(minimal))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, config.DefaultStrategy, cfg.Search.Strategy)
	assert.Equal(t, config.DefaultPolicy, cfg.Search.Policy)
	assert.Equal(t, config.DefaultStepMs, *cfg.Animation.StepMs)
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.Step())
	assert.Nil(t, cfg.Graph.Edges[1].Cost)
}

func TestParse_ZeroStepIsKept(t *testing.T) {
	cfg, err := config.Parse([]byte(minimal + "\nanimation: {step_ms: 0}\n"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Animation.StepMs)
	assert.Equal(t, 0, *cfg.Animation.StepMs)
	assert.Equal(t, time.Duration(0), cfg.Animation.Step())
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse([]byte("version: [unterminated"))
	assert.ErrorIs(t, err, config.ErrParse)

	bad := `
search: {start: x, goal: "", strategy: astar, policy: maybe}
log: {level: loud, format: xml}
animation: {step_ms: -5}
graph:
  nodes: ["a-b", ""]
  edges:
    - {a: a, b: a, cost: -1}
`
	_, err = config.Parse([]byte(bad))
	require.ErrorIs(t, err, config.ErrInvalid)
	for _, want := range []string{
		"version is required",
		"log.level",
		"log.format",
		"search.strategy",
		"search.policy",
		"animation.step_ms",
		`graph.nodes[0]: id "a-b" must not contain "-"`,
		"graph.nodes[1]: id is required",
		`graph.edges[0]: self-loop on "a"`,
		"graph.edges[0]: cost must be >= 0",
		`search.start: node "x" is not declared`,
		"search.goal is required",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestBuildGraph_Explicit(t *testing.T) {
	cfg, err := config.Parse([]byte(minimal))
	require.NoError(t, err)

	g, err := cfg.BuildGraph(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Nodes().IDs())
	assert.Equal(t, 2.0, g.Edges().FetchByID("a-b").Cost())
	assert.Equal(t, core.DefaultEdgeCost, g.Edges().FetchByID("b-c").Cost())
	assert.Equal(t, "a", g.Start().ID())
	assert.Equal(t, "c", g.Goal().ID())
	assert.Equal(t, core.FlagPolicyRevert, g.FlagPolicy())
}

func TestBuildGraph_Generated(t *testing.T) {
	body := `
version: "1"
search: {start: "0,0", goal: "2,2", policy: reject}
graph:
  generate: {kind: grid, rows: 3, cols: 3, seed: 7, min_cost: 1, max_cost: 9}
  edges:
    - {a: "2,2", b: exit, cost: 1}
`
	cfg, err := config.Parse([]byte(body))
	require.NoError(t, err)

	g, err := cfg.BuildGraph(nil)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Nodes().Len())
	assert.Equal(t, 13, g.Edges().Len())
	assert.Equal(t, core.FlagPolicyReject, g.FlagPolicy())
	for _, e := range g.Edges().All() {
		assert.GreaterOrEqual(t, e.Cost(), 1.0)
		assert.LessOrEqual(t, e.Cost(), 9.0)
	}

	cfg.Search.Goal = "nowhere"
	_, err = cfg.BuildGraph(nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoader_ReloadAndOnChange(t *testing.T) {
	path := writeFile(t, t.TempDir(), minimal)
	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", l.Config().Search.Start)

	var calls atomic.Int32
	l.OnChange(func(c *config.Config) { calls.Add(1) })

	require.NoError(t, os.WriteFile(path, []byte(minimal+"\nanimation: {step_ms: 50}\n"), 0o644))
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, 50, *cfg.Animation.StepMs)
	assert.Equal(t, int32(1), calls.Load())

	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o644))
	_, err = l.Reload()
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, 50, *l.Config().Animation.StepMs, "invalid reload keeps the old config")
	assert.Equal(t, int32(1), calls.Load())

	_, err = config.NewLoader(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Watch(t *testing.T) {
	path := writeFile(t, t.TempDir(), minimal)
	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)

	changed := make(chan *config.Config, 4)
	l.OnChange(func(c *config.Config) { changed <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, l.Watch(ctx))

	require.NoError(t, os.WriteFile(path, []byte(minimal+"\nanimation: {step_ms: 75}\n"), 0o644))
	select {
	case c := <-changed:
		assert.Equal(t, 75, *c.Animation.StepMs)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload the config")
	}
	assert.Equal(t, 75, *l.Config().Animation.StepMs)
}
