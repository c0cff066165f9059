// SPDX-License-Identifier: MIT
//
// File: notify.go
// Role: Dispatcher, Listener and Event.
// Policy:
//   - Delivery is synchronous and subscription-ordered per event name.
//   - The listener table is copied before delivery, so listeners can mutate it.

package notify

import "sync"

// Well-known event names published by graph entities.
const (
	// EventChange is published after an attribute actually changed.
	EventChange = "change"

	// EventError is published when a mutation was rejected by validation.
	EventError = "error"
)

// Event is what a Listener receives.
type Event struct {
	// Name is the event name the listener was subscribed to.
	Name string

	// Source is the publisher (for graph entities: *core.Node or *core.Edge).
	Source any

	// Payload is event-specific data; nil when the publisher sent none.
	Payload any
}

// HandlerFunc reacts to a published Event.
type HandlerFunc func(ev Event)

// Listener binds a handler to one event name.
// The *Listener pointer is the subscription identity.
type Listener struct {
	name string
	fn   HandlerFunc
}

// NewListener wraps fn as a listener for the named event.
// Panics on nil fn: a nil handler is a programmer error that would
// otherwise surface later inside Publish.
func NewListener(name string, fn HandlerFunc) *Listener {
	if fn == nil {
		panic("notify: NewListener(nil)")
	}

	return &Listener{name: name, fn: fn}
}

// Name returns the event name this listener is bound to.
func (l *Listener) Name() string { return l.name }

// Dispatcher fans events out to listeners.
// The zero value is ready to use.
type Dispatcher struct {
	mu        sync.Mutex
	listeners map[string][]*Listener
	disposed  bool
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[string][]*Listener)}
}

// Subscribe registers l for l.Name(). Subscribing the same listener twice
// delivers twice, mirroring an append-only table. Nil listeners and
// subscriptions on a disposed Dispatcher are ignored.
func (d *Dispatcher) Subscribe(l *Listener) {
	if l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.disposed {
		return
	}
	if d.listeners == nil {
		d.listeners = make(map[string][]*Listener)
	}
	d.listeners[l.name] = append(d.listeners[l.name], l)
}

// Unsubscribe removes the first registration of l. No-op when absent.
func (d *Dispatcher) Unsubscribe(l *Listener) {
	if l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	list := d.listeners[l.name]
	for i, cur := range list {
		if cur != l {
			continue
		}
		// Build a fresh slice so that snapshots held by an in-flight Publish stay intact.
		next := make([]*Listener, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(d.listeners, l.name)
		} else {
			d.listeners[l.name] = next
		}
		return
	}
}

// Publish delivers an Event{name, source, payload} to every listener
// subscribed to name, in subscription order, and returns afterwards.
func (d *Dispatcher) Publish(name string, source, payload any) {
	d.mu.Lock()
	list := d.listeners[name] // slices are never mutated in place, see Unsubscribe
	d.mu.Unlock()

	ev := Event{Name: name, Source: source, Payload: payload}
	for _, l := range list {
		l.fn(ev)
	}
}

// Len reports how many listeners are subscribed to name.
func (d *Dispatcher) Len(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.listeners[name])
}

// Dispose drops every subscription. Later Subscribe calls are ignored and
// Publish becomes a no-op.
func (d *Dispatcher) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.listeners = nil
	d.disposed = true
}
