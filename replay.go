package pathviz

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/dijkstra"
)

var (
	// ErrNoRoute is returned by Replay for a search that did not reach its goal.
	ErrNoRoute = errors.New("pathviz: result has no route")

	// ErrNilReveal is returned by Replay when reveal is nil.
	ErrNilReveal = errors.New("pathviz: reveal callback is nil")
)

// Replay queues one animation item per route segment of res, start → goal,
// each revealing its segment and then holding for step. The queue is
// returned Idle; call Start to play it.
func Replay(res dijkstra.Result, step time.Duration, reveal func(dijkstra.Segment), opts ...animation.QueueOption) (*animation.Queue, error) {
	if reveal == nil {
		return nil, ErrNilReveal
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: %s → %s %s", ErrNoRoute, res.Start, res.Goal, res.Reason)
	}

	q := animation.NewQueue(opts...)
	for _, seg := range res.Route() {
		it, err := animation.NewItem(func() { reveal(seg) }, step)
		if err != nil {
			return nil, fmt.Errorf("pathviz: segment %s: %w", seg.ID, err)
		}
		if err = q.Add(it); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// LogReveal returns a reveal callback that logs each segment at Info.
func LogReveal(l *slog.Logger, runID string) func(dijkstra.Segment) {
	if l == nil {
		l = slog.Default()
	}

	return func(s dijkstra.Segment) {
		l.Info("reveal", "run_id", runID, "kind", string(s.Kind), "id", s.ID)
	}
}
