// Package metrics exposes Prometheus collectors for shortest-path searches
// and animation playback.
//
// A Recorder is registered against a caller-supplied prometheus.Registerer
// (prometheus.NewRegistry() in tests, prometheus.DefaultRegisterer in the
// demo) and handed to dijkstra.WithMetrics and animation.WithMetrics.
// Every method is safe on a nil *Recorder, so instrumented code never
// branches on whether metrics are enabled.
//
// Metrics (namespace "pathviz"):
//
//	searches_total{outcome}         counter    outcome: found, unreachable
//	search_duration_ms              histogram  wall time of one search pass
//	search_visited_nodes            histogram  nodes finalized per search
//	animation_items_played_total    counter    item callbacks fired
//	animation_queues_total{status}  counter    status: done, cancelled
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pathviz"

// Search outcome labels.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
)

// Recorder groups the collectors. Create it with NewRecorder.
type Recorder struct {
	searches     *prometheus.CounterVec
	searchMillis prometheus.Histogram
	visited      prometheus.Histogram
	itemsPlayed  prometheus.Counter
	queues       *prometheus.CounterVec
}

// NewRecorder creates and registers all collectors with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
// Registering twice on the same registry panics (promauto semantics).
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed shortest-path searches, labelled by outcome.",
		}, []string{"outcome"}),
		searchMillis: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_ms",
			Help:      "Shortest-path search duration in milliseconds.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500},
		}),
		visited: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_visited_nodes",
			Help:      "Nodes finalized by one search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		itemsPlayed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "animation_items_played_total",
			Help:      "Animation item callbacks fired.",
		}),
		queues: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "animation_queues_total",
			Help:      "Animation queues that finished, labelled by final status.",
		}, []string{"status"}),
	}
}

// ObserveSearch records one finished search.
func (r *Recorder) ObserveSearch(d time.Duration, found bool, visited int) {
	if r == nil {
		return
	}
	outcome := OutcomeUnreachable
	if found {
		outcome = OutcomeFound
	}
	r.searches.WithLabelValues(outcome).Inc()
	r.searchMillis.Observe(float64(d) / float64(time.Millisecond))
	r.visited.Observe(float64(visited))
}

// ItemPlayed counts one fired animation callback.
func (r *Recorder) ItemPlayed() {
	if r == nil {
		return
	}
	r.itemsPlayed.Inc()
}

// QueueFinished counts a queue reaching a terminal status.
func (r *Recorder) QueueFinished(status string) {
	if r == nil {
		return
	}
	r.queues.WithLabelValues(status).Inc()
}
