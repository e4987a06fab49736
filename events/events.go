// Package events carries domain events from the catalog and inbox services to whoever listens.
package events

import (
	"fmt"

	EventBus "github.com/asaskevich/EventBus"
)

type Event interface{ Type() string }
type Dispatcher interface{ Dispatch(event Event) error }

// Bus publishes each event on the topic named by its Type.
type Bus struct {
	bus EventBus.Bus
}

func NewBus() *Bus {
	return &Bus{bus: EventBus.New()}
}

func (b *Bus) Dispatch(event Event) error {
	if event == nil {
		return fmt.Errorf("nil event")
	}
	b.bus.Publish(event.Type(), event)
	return nil
}

// Subscribe registers fn for topic. fn must accept a single argument the event is assignable to,
// usually events.Event or the concrete event type.
func (b *Bus) Subscribe(topic string, fn interface{}) error {
	if err := b.bus.Subscribe(topic, fn); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	return nil
}

// Discard drops every event. Useful where no listener is wired.
type Discard struct{}

func (Discard) Dispatch(Event) error { return nil }
