package events

import (
	"fmt"
	"sync"
)

// Bus delivers UI events synchronously on the publishing goroutine, which
// is always the bubbletea update loop
type Bus struct {
	mu        sync.RWMutex
	listeners map[string]map[int]func(interface{})
	nextID    int
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string]map[int]func(interface{})),
	}
}

// TypeOf returns the key events of the same Go type are published under
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}

// Subscribe registers a listener for an event type and returns a function
// that removes it
func (b *Bus) Subscribe(eventType string, handler func(interface{})) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.listeners[eventType] == nil {
		b.listeners[eventType] = make(map[int]func(interface{}))
	}
	b.listeners[eventType][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners[eventType], id)
	}
}

// Publish sends an event to all listeners of its type
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := make([]func(interface{}), 0, len(b.listeners[TypeOf(event)]))
	for _, h := range b.listeners[TypeOf(event)] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
