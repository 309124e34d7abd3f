package eventbus

import (
	"log"
	"sync"

	"github.com/hashicorp/go-multierror"

	"autocomplete/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventValueChanged     = domain.EventValueChanged
	EventCursorChanged    = domain.EventCursorChanged
	EventInputClosed      = domain.EventInputClosed
	EventDropdownSynced   = domain.EventDropdownSynced
	EventDropdownMounted  = domain.EventDropdownMounted
	EventDropdownTornDown = domain.EventDropdownTornDown
)

// Re-export domain event types
type ValueChangedEvent = domain.ValueChangedEvent
type CursorChangedEvent = domain.CursorChangedEvent
type InputClosedEvent = domain.InputClosedEvent
type DropdownSyncedEvent = domain.DropdownSyncedEvent
type DropdownMountedEvent = domain.DropdownMountedEvent
type DropdownTornDownEvent = domain.DropdownTornDownEvent

// EventHandler handles a domain event. A returned error is reported back to
// the publisher.
type EventHandler func(DomainEvent) error

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent) error
	Subscribe(eventType EventType, handler EventHandler) func()
	SubscriberCount(eventType EventType) int
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus. Handlers run inline on the
// publishing goroutine, in subscription order.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to every subscriber of its type. All subscribers
// run even when one fails; their errors are combined.
func (b *bus) Publish(event DomainEvent) error {
	// Get handlers for this event type
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Make a copy to avoid holding lock during handler execution
	subsCopy := make([]subscription, len(subs))
	copy(subsCopy, subs)
	b.mu.RUnlock()

	var result *multierror.Error
	for _, sub := range subsCopy {
		if err := sub.handler(event); err != nil {
			log.Printf("EventBus: handler for %s failed: %v", event.Type(), err)
			result = multierror.Append(result, err)
		}
	}

	// A single failure is returned as-is so callers can match it directly
	if result != nil && len(result.Errors) == 1 {
		return result.Errors[0]
	}
	return result.ErrorOrNil()
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function, safe to call more than once
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				// Copy so an in-flight Publish keeps its own snapshot intact
				remaining := make([]subscription, 0, len(subs)-1)
				remaining = append(remaining, subs[:i]...)
				remaining = append(remaining, subs[i+1:]...)
				b.handlers[eventType] = remaining
				break
			}
		}
		if len(b.handlers[eventType]) == 0 {
			delete(b.handlers, eventType)
		}
	}
}

// SubscriberCount returns the number of live subscriptions for an event type
func (b *bus) SubscriberCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
