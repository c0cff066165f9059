// Command pathviz is a headless driver for the shortest-path visualizer: it
// loads a YAML scenario, runs the search between the configured start and
// goal, and replays the route segment by segment to the log.
//
// Usage:
//
//	pathviz -config scenario.yaml [-watch] [-log-level debug] [-log-format json] [-metrics-addr :9090]
//
// With -watch the scenario is re-run every time the file changes, cancelling
// a replay still in progress.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathviz"
	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/logging"
	"github.com/katalvlaran/pathviz/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pathviz:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	watch       bool
	logLevel    string
	logFormat   string
	metricsAddr string
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("pathviz", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&o.configPath, "config", "scenario.yaml", "Path to the scenario YAML")
	fs.BoolVar(&o.watch, "watch", false, "Re-run the scenario whenever the file changes")
	fs.StringVar(&o.logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")
	fs.StringVar(&o.logFormat, "log-format", "", "Override log.format (text, json)")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "Override metrics.addr; serves /metrics when set")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	return o, nil
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	boot := slog.New(slog.NewTextHandler(stderr, nil))
	loader, err := config.NewLoader(opts.configPath, boot)
	if err != nil {
		return err
	}
	cfg := loader.Config()

	logger, err := logging.New(pick(opts.logLevel, cfg.Log.Level), pick(opts.logFormat, cfg.Log.Format), stderr)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	rec := metrics.NewRecorder(reg)
	if addr := pick(opts.metricsAddr, cfg.Metrics.Addr); addr != "" {
		srv := serveMetrics(addr, reg, logger)
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
	}

	if !opts.watch {
		return scenario(ctx, cfg, logger, rec)
	}

	return watch(ctx, loader, logger, rec)
}

// watch re-runs the scenario on every reload until ctx is done.
func watch(ctx context.Context, loader *config.Loader, logger *slog.Logger, rec *metrics.Recorder) error {
	reloads := make(chan *config.Config, 1)
	loader.OnChange(func(c *config.Config) {
		select {
		case reloads <- c:
		default:
			// A pending reload is superseded by the newest config.
			select {
			case <-reloads:
			default:
			}
			reloads <- c
		}
	})
	if err := loader.Watch(ctx); err != nil {
		return err
	}
	logger.Info("watching scenario", "path", loader.Path())

	cfg := loader.Config()
	for {
		runCtx, cancel := context.WithCancel(ctx)
		finished := make(chan error, 1)
		go func(c *config.Config) { finished <- scenario(runCtx, c, logger, rec) }(cfg)

		select {
		case err := <-finished:
			cancel()
			if err != nil {
				logger.Error("scenario failed", "error", err)
			}
			select {
			case cfg = <-reloads:
			case <-ctx.Done():
				return nil
			}
		case cfg = <-reloads:
			cancel()
			<-finished
		case <-ctx.Done():
			cancel()
			<-finished
			return nil
		}
	}
}

// scenario builds the graph, searches and replays the route.
func scenario(ctx context.Context, cfg *config.Config, logger *slog.Logger, rec *metrics.Recorder) error {
	g, err := cfg.BuildGraph(logger)
	if err != nil {
		return err
	}
	strategy, err := dijkstra.ParseStrategy(cfg.Search.Strategy)
	if err != nil {
		return err
	}
	logger.Info("graph built", "nodes", g.Nodes().Len(), "edges", g.Edges().Len(), "policy", g.FlagPolicy().String())

	res, err := dijkstra.SearchContext(ctx, g,
		dijkstra.WithStrategy(strategy),
		dijkstra.WithLogger(logger),
		dijkstra.WithMetrics(rec),
	)
	if err != nil {
		return err
	}
	if !res.Found {
		logger.Warn("goal unreachable", "run_id", res.RunID, "start", res.Start, "goal", res.Goal)
		return nil
	}

	q, err := pathviz.Replay(res, cfg.Animation.Step(), pathviz.LogReveal(logger, res.RunID),
		animation.WithLogger(logger),
		animation.WithMetrics(rec),
	)
	if err != nil {
		return err
	}
	if err = q.Play(ctx); err != nil && !errors.Is(err, animation.ErrCancelled) {
		return err
	}

	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("metrics server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()

	return srv
}

func pick(override, value string) string {
	if override != "" {
		return override
	}

	return value
}
