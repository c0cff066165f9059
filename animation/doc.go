// Package animation replays a sequence of presentation mutations one at a
// time.
//
// A Queue holds Items, each a zero-argument callback plus the Duration of the
// visual transition it starts. Start plays them in insertion order on its own
// goroutine: fire item 0, wait its Duration, fire item 1, and so on. At most
// one callback runs at any moment, and the next callback never fires before
// the previous item's Duration has elapsed on the queue's Clock.
//
// Completion is a single value on the channel returned by Start:
//
//	nil                playback exhausted the queue (State Done)
//	ErrCancelled       Cancel or ctx ended playback (State Cancelled)
//	ErrAlreadyStarted  Start was called on a queue that is not Idle
//
// Cancel is valid on an Idle queue too: a later Start then resolves with
// ErrCancelled instead of leaving the caller waiting.
//
// The Clock seam lets tests drive time manually; production code uses
// SystemClock.
package animation
