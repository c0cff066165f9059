package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/notify"
)

func TestPublish_SubscriptionOrder(t *testing.T) {
	d := notify.NewDispatcher()
	var got []string

	d.Subscribe(notify.NewListener("change", func(notify.Event) { got = append(got, "first") }))
	d.Subscribe(notify.NewListener("change", func(notify.Event) { got = append(got, "second") }))
	d.Subscribe(notify.NewListener("error", func(notify.Event) { got = append(got, "other") }))

	d.Publish("change", nil, nil)
	require.Equal(t, []string{"first", "second"}, got)
}

func TestPublish_CarriesSourceAndPayload(t *testing.T) {
	d := notify.NewDispatcher()
	src := &struct{ id string }{id: "n1"}

	var ev notify.Event
	d.Subscribe(notify.NewListener(notify.EventChange, func(e notify.Event) { ev = e }))
	d.Publish(notify.EventChange, src, 7)

	assert.Equal(t, notify.EventChange, ev.Name)
	assert.Same(t, src, ev.Source)
	assert.Equal(t, 7, ev.Payload)
}

func TestUnsubscribe(t *testing.T) {
	d := notify.NewDispatcher()
	calls := 0
	l := notify.NewListener("change", func(notify.Event) { calls++ })

	d.Subscribe(l)
	d.Publish("change", nil, nil)
	d.Unsubscribe(l)
	d.Publish("change", nil, nil)
	require.Equal(t, 1, calls)
	require.Zero(t, d.Len("change"))

	// Not subscribed: no-op, no panic.
	d.Unsubscribe(l)
	d.Unsubscribe(nil)
	d.Unsubscribe(notify.NewListener("never", func(notify.Event) {}))
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	d := notify.NewDispatcher()
	var got []string

	var self *notify.Listener
	self = notify.NewListener("change", func(notify.Event) {
		got = append(got, "once")
		d.Unsubscribe(self)
	})
	d.Subscribe(self)
	d.Subscribe(notify.NewListener("change", func(notify.Event) { got = append(got, "always") }))

	d.Publish("change", nil, nil)
	d.Publish("change", nil, nil)
	require.Equal(t, []string{"once", "always", "always"}, got)
}

func TestSubscribeDuringPublish_TakesEffectNextTime(t *testing.T) {
	d := notify.NewDispatcher()
	late := 0
	d.Subscribe(notify.NewListener("change", func(notify.Event) {
		d.Subscribe(notify.NewListener("change", func(notify.Event) { late++ }))
	}))

	d.Publish("change", nil, nil)
	require.Equal(t, 0, late)
	d.Publish("change", nil, nil)
	require.Equal(t, 1, late)
}

func TestDispose(t *testing.T) {
	d := notify.NewDispatcher()
	calls := 0
	d.Subscribe(notify.NewListener("change", func(notify.Event) { calls++ }))

	d.Dispose()
	d.Publish("change", nil, nil)
	d.Subscribe(notify.NewListener("change", func(notify.Event) { calls++ }))
	d.Publish("change", nil, nil)
	require.Zero(t, calls)
}

func TestZeroValueDispatcher(t *testing.T) {
	var d notify.Dispatcher
	hit := false
	d.Subscribe(notify.NewListener("x", func(notify.Event) { hit = true }))
	d.Publish("x", nil, nil)
	require.True(t, hit)
}

func TestNewListener_NilPanics(t *testing.T) {
	require.Panics(t, func() { notify.NewListener("x", nil) })
}
