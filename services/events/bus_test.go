package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesSubscribersInOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(TopicShowTutorial, func(any) { got = append(got, "a") })
	bus.Subscribe(TopicShowTutorial, func(any) { got = append(got, "b") })
	bus.Subscribe(TopicViewport, func(any) { got = append(got, "viewport") })

	bus.Publish(TopicShowTutorial, nil)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(TopicViewport, func(any) { calls++ })
	assert.Equal(t, 1, bus.Subscribers(TopicViewport))

	bus.Publish(TopicViewport, "resize")
	unsubscribe()
	unsubscribe()
	bus.Publish(TopicViewport, "scroll")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Subscribers(TopicViewport))
}

func TestHandlerMayUnsubscribeItself(t *testing.T) {
	bus := NewBus()
	calls := 0
	var unsubscribe func()
	unsubscribe = bus.Subscribe(TopicShowTutorial, func(any) {
		calls++
		unsubscribe()
	})

	bus.Publish(TopicShowTutorial, nil)
	bus.Publish(TopicShowTutorial, nil)
	assert.Equal(t, 1, calls)
}

func TestPayloadIsPassedThrough(t *testing.T) {
	bus := NewBus()
	var got any
	bus.Subscribe(TopicViewport, func(p any) { got = p })
	bus.Publish(TopicViewport, 42)
	assert.Equal(t, 42, got)
}
