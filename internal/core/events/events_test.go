package events

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToMatchingTypeOnly(t *testing.T) {
	bus := NewBus()

	var spawned, removed int
	bus.Subscribe(TypeEntitySpawned, func(Event) error {
		spawned++
		return nil
	})
	bus.Subscribe(TypeEntityRemoved, func(Event) error {
		removed++
		return nil
	})

	require.NoError(t, bus.Publish(Event{Type: TypeEntitySpawned, Data: EntitySpawned{Tag: "x"}}))
	require.NoError(t, bus.Publish(Event{Type: TypeEntitySpawned, Data: EntitySpawned{Tag: "y"}}))

	assert.Equal(t, 2, spawned)
	assert.Equal(t, 0, removed)
}

func TestPublishStampsTimestamp(t *testing.T) {
	bus := NewBus()

	var got Event
	bus.Subscribe(TypeBuffersBuilt, func(e Event) error {
		got = e
		return nil
	})

	require.NoError(t, bus.Publish(Event{Type: TypeBuffersBuilt, Data: BuffersBuilt{Meshes: 3}}))
	assert.False(t, got.Timestamp.IsZero())

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, bus.Publish(Event{Type: TypeBuffersBuilt, Timestamp: fixed}))
	assert.Equal(t, fixed, got.Timestamp, "existing timestamps are preserved")
}

func TestPublishJoinsHandlerErrors(t *testing.T) {
	bus := NewBus()

	errBoom := errors.New("boom")
	bus.Subscribe(TypeEntitySpawned, func(Event) error { return errBoom })
	bus.Subscribe(TypeEntitySpawned, func(Event) error { return nil })

	err := bus.Publish(Event{Type: TypeEntitySpawned})
	assert.ErrorIs(t, err, errBoom)
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := NewBus()

	var calls int
	sub := bus.Subscribe(TypeEntityRemoved, func(Event) error {
		calls++
		return nil
	})
	require.Equal(t, 1, bus.SubscriberCount(TypeEntityRemoved))

	require.NoError(t, bus.Publish(Event{Type: TypeEntityRemoved}))
	sub.Cancel()
	sub.Cancel() // repeat cancels are safe
	require.NoError(t, bus.Publish(Event{Type: TypeEntityRemoved}))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.SubscriberCount(TypeEntityRemoved))
}

func TestSubscriptionIDsAreUnique(t *testing.T) {
	bus := NewBus()

	a := bus.Subscribe(TypeEntitySpawned, func(Event) error { return nil })
	b := bus.Subscribe(TypeEntitySpawned, func(Event) error { return nil })

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, TypeEntitySpawned, a.EventType())
}
