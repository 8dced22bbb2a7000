package events

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Emitter is the publishing side of the bus
type Emitter interface {
	Emit(event Event) error
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for an event type. Listeners run in priority
// order; equal priorities keep subscription order.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	sortByPriority(b.listeners[eventType])

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		return
	}
}

// ListenerCount returns how many listeners are registered for eventType
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Emit sends an event to all registered listeners, stopping at the first
// error or once a listener cancels the event
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s for room %s cancelled, stopping propagation",
				event.GetType(), event.GetRoomID())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}

func sortByPriority(listeners []EventListener) {
	sort.SliceStable(listeners, func(i, j int) bool {
		return listeners[i].Priority() < listeners[j].Priority()
	})
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	id       string
	priority int
	fn       func(Event) error
}

// NewListenerFunc wraps fn as a listener
func NewListenerFunc(id string, priority int, fn func(Event) error) *ListenerFunc {
	return &ListenerFunc{id: id, priority: priority, fn: fn}
}

func (l *ListenerFunc) HandleEvent(event Event) error { return l.fn(event) }
func (l *ListenerFunc) Priority() int                 { return l.priority }
func (l *ListenerFunc) ID() string                    { return l.id }
