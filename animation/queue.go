// File: queue.go
// Role: FIFO playback of Items with one completion signal.
// Policy:
//   - Items play strictly in insertion order; item i+1's callback never fires
//     before item i's Duration has elapsed on the Clock.
//   - Start delivers exactly one value on its channel, then closes it.
//   - Cancel works before and during playback and always resolves the
//     completion channel with ErrCancelled.

package animation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathviz/metrics"
)

// Status labels reported to metrics.QueueFinished.
const (
	statusDone      = "done"
	statusCancelled = "cancelled"
)

// Queue sequences animation items. Create it with NewQueue; it is safe for
// concurrent use.
type Queue struct {
	id      string
	logger  *slog.Logger
	clock   Clock
	metrics *metrics.Recorder

	mu     sync.Mutex
	items  []Item
	state  State
	played int
	cancel chan struct{}
	once   sync.Once
}

// NewQueue returns an Idle queue.
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		id:     uuid.NewString(),
		logger: slog.Default(),
		clock:  SystemClock{},
		cancel: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	q.logger = q.logger.With("queue_id", q.id)

	return q
}

// ID returns the queue's uuid, used to correlate log lines.
func (q *Queue) ID() string { return q.id }

// State returns the current lifecycle state.
func (q *Queue) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.state
}

// Len returns the number of items not played yet.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items) - q.played
}

// Played returns the number of item callbacks fired so far.
func (q *Queue) Played() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.played
}

// Add appends items. Items added while Playing are played after the ones
// already queued. Errors: ErrFinished, ErrNilAnimation, ErrNegativeDuration
// (nothing is appended when any item is invalid).
func (q *Queue) Add(items ...Item) error {
	for i, it := range items {
		if err := it.validate(); err != nil {
			return fmt.Errorf("item #%d: %w", i, err)
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.state.terminal() {
		return fmt.Errorf("%w (%s)", ErrFinished, q.state)
	}
	q.items = append(q.items, items...)

	return nil
}

// Start begins playback on a new goroutine and returns the completion
// channel. The channel receives nil when every item has played, ErrCancelled
// (joined with ctx.Err() when ctx ended the playback) on cancellation, or
// ErrAlreadyStarted when the queue is not Idle; then it is closed.
func (q *Queue) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	q.mu.Lock()
	switch q.state {
	case StateIdle:
		q.state = StatePlaying
	case StateCancelled:
		q.mu.Unlock()
		done <- ErrCancelled
		close(done)
		return done
	default:
		q.mu.Unlock()
		done <- ErrAlreadyStarted
		close(done)
		return done
	}
	n := len(q.items)
	q.mu.Unlock()

	q.logger.Debug("animation queue started", "items", n)
	go q.play(ctx, done)

	return done
}

// Play is Start followed by waiting for the completion value.
func (q *Queue) Play(ctx context.Context) error {
	return <-q.Start(ctx)
}

// Cancel stops the queue. An Idle queue becomes Cancelled immediately; a
// Playing queue stops before the next callback fires. Cancel on a finished
// queue is a no-op. It reports whether this call cancelled the queue.
func (q *Queue) Cancel() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch q.state {
	case StateIdle:
		q.state = StateCancelled
		q.once.Do(func() { close(q.cancel) })
		q.metrics.QueueFinished(statusCancelled)
		q.logger.Debug("animation queue cancelled", "played", q.played)
		return true
	case StatePlaying:
		cancelled := false
		q.once.Do(func() {
			close(q.cancel)
			cancelled = true
		})
		return cancelled
	default:
		return false
	}
}

// Dispose cancels the queue and drops its pending items.
func (q *Queue) Dispose() {
	q.Cancel()
	q.mu.Lock()
	q.items = q.items[:q.played]
	q.mu.Unlock()
}

// play runs items until the queue is exhausted or cancelled.
func (q *Queue) play(ctx context.Context, done chan<- error) {
	defer close(done)

	for {
		// Cancellation wins over a ready item.
		select {
		case <-q.cancel:
			done <- q.stop(nil)
			return
		case <-ctx.Done():
			done <- q.stop(ctx.Err())
			return
		default:
		}

		it, ok := q.next()
		if !ok {
			if q.State() != StateDone {
				done <- q.stop(nil)
				return
			}
			q.metrics.QueueFinished(statusDone)
			q.logger.Info("animation queue ended", "played", q.Played())
			done <- nil
			return
		}

		it.Animation()
		q.mu.Lock()
		q.played++
		q.mu.Unlock()
		q.metrics.ItemPlayed()

		select {
		case <-q.clock.After(it.Duration):
		case <-q.cancel:
			done <- q.stop(nil)
			return
		case <-ctx.Done():
			done <- q.stop(ctx.Err())
			return
		}
	}
}

// next returns the first item not played yet. An exhausted queue becomes
// Done under the lock Cancel takes, unless Cancel already closed the cancel
// channel, so Cancel never reports success on a queue that completes.
func (q *Queue) next() (Item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.played < len(q.items) {
		return q.items[q.played], true
	}
	select {
	case <-q.cancel:
	default:
		q.state = StateDone
	}

	return Item{}, false
}

func (q *Queue) stop(cause error) error {
	q.mu.Lock()
	q.state = StateCancelled
	q.mu.Unlock()
	q.metrics.QueueFinished(statusCancelled)
	q.logger.Debug("animation queue cancelled", "played", q.Played(), "cause", cause)
	if cause != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, cause)
	}

	return ErrCancelled
}
