// Package events is a small in-process pub/sub bus for world lifecycle
// notifications.
//
// Key characteristics:
// - Type-based fan-out: handlers subscribe by Event.Type string.
// - Synchronous delivery: Publish calls handlers in the caller goroutine.
// - Error aggregation: handler errors are joined and returned from Publish.
//
// Handlers should be quick; the bus runs on the frame thread.
package events

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types published by the world orchestrator.
const (
	TypeEntitySpawned = "entity.spawned"
	TypeEntityRemoved = "entity.removed"
	TypeBuffersBuilt  = "world.buffers-built"
)

// Event is an immutable notification. Data carries one of the payload types
// below depending on Type.
type Event struct {
	Type      string
	Source    string
	Timestamp time.Time
	Data      any
}

// EntitySpawned is the payload of TypeEntitySpawned.
type EntitySpawned struct {
	Tag string
}

// EntityRemoved is the payload of TypeEntityRemoved.
type EntityRemoved struct {
	Tag string
}

// BuffersBuilt is the payload of TypeBuffersBuilt.
type BuffersBuilt struct {
	Meshes int
}

// Handler is a callback invoked per delivered event. Returned errors are
// aggregated by Publish.
type Handler func(Event) error

// Subscription is a registered handler bound to an event type. Use Cancel
// to stop receiving events; multiple Cancel calls are safe.
type Subscription struct {
	id        string
	eventType string
	cancel    func()
}

func (s *Subscription) ID() string        { return s.id }
func (s *Subscription) EventType() string { return s.eventType }

func (s *Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Bus is a thread-safe in-memory event bus.
type Bus struct {
	mu sync.RWMutex
	// handlers: eventType -> subscription id -> handler
	handlers map[string]map[string]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string]map[string]Handler)}
}

// Subscribe registers a handler for an event type.
func (b *Bus) Subscribe(eventType string, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[string]Handler)
	}
	id := uuid.NewString()
	b.handlers[eventType][id] = handler

	return &Subscription{
		id:        id,
		eventType: eventType,
		cancel: func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if m, ok := b.handlers[eventType]; ok {
				delete(m, id)
			}
		},
	}
}

// Publish delivers the event synchronously to all subscribers of its type.
// The event timestamp is stamped here if unset. Handler errors are joined.
func (b *Bus) Publish(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	subs := b.handlers[event.Type]
	handlers := make([]Handler, 0, len(subs))
	for _, h := range subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SubscriberCount reports active subscriptions for an event type.
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
