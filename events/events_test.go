package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pinged struct{ N int }

func (pinged) Type() string { return "Pinged" }

func TestBus(t *testing.T) {
	t.Run("Dispatch_DeliversToTopicSubscribers", func(t *testing.T) {
		bus := NewBus()
		var got []Event
		require.NoError(t, bus.Subscribe("Pinged", func(e Event) { got = append(got, e) }))

		require.NoError(t, bus.Dispatch(pinged{N: 1}))
		require.NoError(t, bus.Dispatch(pinged{N: 2}))

		require.Equal(t, []Event{pinged{N: 1}, pinged{N: 2}}, got)
	})

	t.Run("Dispatch_ConcreteHandler", func(t *testing.T) {
		bus := NewBus()
		var got pinged
		require.NoError(t, bus.Subscribe("Pinged", func(e pinged) { got = e }))

		require.NoError(t, bus.Dispatch(pinged{N: 7}))
		require.Equal(t, 7, got.N)
	})

	t.Run("Dispatch_RejectsNil", func(t *testing.T) {
		require.Error(t, NewBus().Dispatch(nil))
	})

	t.Run("Subscribe_RejectsNonFunc", func(t *testing.T) {
		require.Error(t, NewBus().Subscribe("Pinged", 42))
	})
}
