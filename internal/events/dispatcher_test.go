package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventOrderPlaced, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "1", Type: EventOrderPlaced, Email: "dave@mail.com"})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "dave@mail.com", seen[0].Email)

	// other event types do not reach this handler
	require.NoError(t, d.Publish(context.Background(), Event{ID: "2", Type: EventUserLoggedIn}))
	assert.Len(t, seen, 1)
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	var called bool
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error { return errors.New("boom") })
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
	assert.True(t, called)
}
