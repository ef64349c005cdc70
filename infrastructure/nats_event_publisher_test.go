package infrastructure

import (
	"context"
	"testing"

	"bethouse/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNATSEventPublisher_LocalHandlersRunBeforeTransport(t *testing.T) {
	publisher := NewNATSEventPublisher(NewNATSClient("nats://localhost:4222"), NewEventSubjectMapper())

	var handled []events.Event
	publisher.RegisterLocalHandler(events.EventTypeEventSettled, func(ctx context.Context, event events.Event) error {
		handled = append(handled, event)
		return nil
	})

	settled := events.EventSettledEvent{EventID: 3, WinningTeam: "Lions", BetsSettled: 2, Winners: 1, TotalPaid: 40_00}

	// The client never connected, so the NATS publish fails; the local
	// handler must already have run
	err := publisher.Publish(settled)
	require.Error(t, err)

	require.Len(t, handled, 1)
	assert.Equal(t, settled, handled[0])
}

func TestNATSEventPublisher_LocalHandlersFilterByType(t *testing.T) {
	publisher := NewNATSEventPublisher(NewNATSClient("nats://localhost:4222"), NewEventSubjectMapper())

	called := 0
	publisher.RegisterLocalHandler(events.EventTypeEventRejected, func(ctx context.Context, event events.Event) error {
		called++
		return nil
	})

	_ = publisher.Publish(events.BetPlacedEvent{BetID: 1})

	assert.Equal(t, 0, called)
}
