// Package notify is a small publish/subscribe mechanism keyed by event name.
//
// Every graph entity (see package core) owns a Dispatcher and reports its
// mutations through it; the view layer subscribes to redraw or to surface
// validation feedback. There is no polling anywhere in pathviz: an entity
// changes, its Dispatcher publishes, listeners run.
//
// Delivery contract:
//
//   - Publish invokes the listeners registered for that event name
//     synchronously, in subscription order, before it returns.
//   - No ordering is promised across different event names.
//   - Unsubscribing a listener that is not subscribed is a no-op.
//   - Listeners may subscribe or unsubscribe (themselves or others) while a
//     Publish is running; the change takes effect from the next Publish.
//
// Listener identity:
//
//	Go functions are not comparable, so a handler is wrapped into a *Listener
//	(NewListener) and the pointer is what Subscribe/Unsubscribe compare.
//
// Example:
//
//	d := notify.NewDispatcher()
//	l := notify.NewListener("change", func(ev notify.Event) {
//	    fmt.Println(ev.Name, ev.Payload)
//	})
//	d.Subscribe(l)
//	d.Publish("change", nil, 42) // prints: change 42
//	d.Unsubscribe(l)
package notify
