// Package events is the in-process notification bus shared by the flows.
package events

import (
	"sort"
	"sync"
)

type Topic string

const (
	// TopicShowTutorial asks every open tutorial to start at its first step.
	TopicShowTutorial Topic = "show-tutorial"
	// TopicViewport carries resize and scroll notifications.
	TopicViewport Topic = "viewport"
)

// Handler receives a published payload. It runs on the publisher's goroutine.
type Handler func(payload any)

type subscriptionID uint64

// Bus delivers payloads synchronously to the handlers subscribed to a topic.
type Bus struct {
	mu     sync.RWMutex
	nextID subscriptionID
	subs   map[Topic]map[subscriptionID]Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[subscriptionID]Handler)}
}

// Subscribe registers h for topic and returns the function that removes it.
// Calling the returned function more than once is harmless.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[subscriptionID]Handler)
	}
	b.subs[topic][id] = h

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[topic], id)
			if len(b.subs[topic]) == 0 {
				delete(b.subs, topic)
			}
		})
	}
}

// Publish hands payload to the topic's handlers in subscription order.
// Handlers may subscribe or unsubscribe while being called.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.RLock()
	ids := make([]subscriptionID, 0, len(b.subs[topic]))
	handlers := make(map[subscriptionID]Handler, len(b.subs[topic]))
	for id, h := range b.subs[topic] {
		ids = append(ids, id)
		handlers[id] = h
	}
	b.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		handlers[id](payload)
	}
}

// Subscribers returns how many handlers listen on topic.
func (b *Bus) Subscribers(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
