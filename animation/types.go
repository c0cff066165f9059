// File: types.go
// Role: sentinel errors, playback states, items, the Clock seam and queue options.

package animation

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathviz/metrics"
)

// Sentinel errors.
var (
	// ErrCancelled is delivered on the completion channel of a cancelled queue.
	ErrCancelled = errors.New("animation: queue cancelled")

	// ErrAlreadyStarted is delivered when Start is called more than once.
	ErrAlreadyStarted = errors.New("animation: queue already started")

	// ErrFinished is returned by Add once the queue is Done or Cancelled.
	ErrFinished = errors.New("animation: queue already finished")

	// ErrNilAnimation rejects an item without a callback.
	ErrNilAnimation = errors.New("animation: item animation is nil")

	// ErrNegativeDuration rejects an item with a duration below zero.
	ErrNegativeDuration = errors.New("animation: item duration is negative")
)

// State is the lifecycle of a Queue: Idle → Playing → Done | Cancelled.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateDone
	StateCancelled
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// terminal reports whether no further playback can happen.
func (s State) terminal() bool { return s == StateDone || s == StateCancelled }

// Item is one step of playback: Animation mutates presentation state, then
// the queue waits Duration before the next item fires.
type Item struct {
	Animation func()
	Duration  time.Duration
}

// NewItem validates and returns an Item.
func NewItem(animation func(), d time.Duration) (Item, error) {
	it := Item{Animation: animation, Duration: d}
	if err := it.validate(); err != nil {
		return Item{}, err
	}

	return it, nil
}

func (it Item) validate() error {
	if it.Animation == nil {
		return ErrNilAnimation
	}
	if it.Duration < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDuration, it.Duration)
	}

	return nil
}

// Clock supplies the wait between items. Tests inject a manual clock.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the wall-clock Clock backed by time.After.
type SystemClock struct{}

// After implements Clock.
func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// QueueOption configures a Queue.
type QueueOption func(q *Queue)

// WithLogger sets the queue logger. Panics on nil.
func WithLogger(l *slog.Logger) QueueOption {
	if l == nil {
		panic("animation: WithLogger(nil)")
	}

	return func(q *Queue) {
		q.logger = l
	}
}

// WithClock replaces the wall clock. Panics on nil.
func WithClock(c Clock) QueueOption {
	if c == nil {
		panic("animation: WithClock(nil)")
	}

	return func(q *Queue) {
		q.clock = c
	}
}

// WithMetrics attaches a Prometheus recorder. A nil recorder disables metrics.
func WithMetrics(r *metrics.Recorder) QueueOption {
	return func(q *Queue) {
		q.metrics = r
	}
}
