package infrastructure

import (
	"context"
	"errors"
	"testing"

	"bethouse/domain/entities"
	"bethouse/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPublisher captures published events for assertions
type recordingPublisher struct {
	PublishedEvents []events.Event
	PublishError    error
}

func (m *recordingPublisher) Publish(event events.Event) error {
	if m.PublishError != nil {
		return m.PublishError
	}
	m.PublishedEvents = append(m.PublishedEvents, event)
	return nil
}

func TestNATSTransactionalPublisher_FlushPublishesPending(t *testing.T) {
	mockPublisher := &recordingPublisher{}
	transPublisher := NewNATSTransactionalPublisher(mockPublisher)

	testEvent := events.BalanceChangedEvent{
		UserID:          7,
		BalanceBefore:   0,
		BalanceAfter:    100_00,
		ChangeAmount:    100_00,
		TransactionType: entities.TransactionTypeDeposit,
	}

	err := transPublisher.Publish(testEvent)
	require.NoError(t, err)

	// Nothing reaches the real publisher before flush
	assert.Len(t, mockPublisher.PublishedEvents, 0)

	err = transPublisher.Flush(context.Background())
	require.NoError(t, err)

	require.Len(t, mockPublisher.PublishedEvents, 1)
	assert.Equal(t, testEvent, mockPublisher.PublishedEvents[0])
}

func TestNATSTransactionalPublisher_FlushPreservesOrder(t *testing.T) {
	mockPublisher := &recordingPublisher{}
	transPublisher := NewNATSTransactionalPublisher(mockPublisher)

	first := events.BetPlacedEvent{BetID: 1, UserID: 7, EventID: 3, Amount: 10_00, Team: "Lions"}
	second := events.EventSettledEvent{EventID: 3, WinningTeam: "Lions", BetsSettled: 1, Winners: 1, TotalPaid: 20_00}

	require.NoError(t, transPublisher.Publish(first))
	require.NoError(t, transPublisher.Publish(second))

	require.NoError(t, transPublisher.Flush(context.Background()))

	require.Len(t, mockPublisher.PublishedEvents, 2)
	assert.Equal(t, first, mockPublisher.PublishedEvents[0])
	assert.Equal(t, second, mockPublisher.PublishedEvents[1])
}

func TestNATSTransactionalPublisher_FlushContinuesOnError(t *testing.T) {
	mockPublisher := &recordingPublisher{PublishError: errors.New("stream unavailable")}
	transPublisher := NewNATSTransactionalPublisher(mockPublisher)

	require.NoError(t, transPublisher.Publish(events.BetPlacedEvent{BetID: 1}))

	// Flush swallows publish failures; the commit already happened
	err := transPublisher.Flush(context.Background())
	assert.NoError(t, err)

	// Queue is cleared even though nothing was delivered
	require.NoError(t, transPublisher.Flush(context.Background()))
}

func TestNATSTransactionalPublisher_Discard(t *testing.T) {
	mockPublisher := &recordingPublisher{}
	transPublisher := NewNATSTransactionalPublisher(mockPublisher)

	require.NoError(t, transPublisher.Publish(events.BetPlacedEvent{BetID: 1}))

	transPublisher.Discard()

	require.NoError(t, transPublisher.Flush(context.Background()))
	assert.Len(t, mockPublisher.PublishedEvents, 0)
}

func TestEventSubjectMapper_RoundTrip(t *testing.T) {
	mapper := NewEventSubjectMapper()

	for _, eventType := range []events.EventType{
		events.EventTypeBalanceChanged,
		events.EventTypeBetPlaced,
		events.EventTypeEventSettled,
		events.EventTypeEventRejected,
	} {
		var event events.Event
		switch eventType {
		case events.EventTypeBalanceChanged:
			event = events.BalanceChangedEvent{}
		case events.EventTypeBetPlaced:
			event = events.BetPlacedEvent{}
		case events.EventTypeEventSettled:
			event = events.EventSettledEvent{}
		case events.EventTypeEventRejected:
			event = events.EventRejectedEvent{}
		}

		subject := mapper.MapEventToSubject(event)
		assert.Equal(t, eventType, mapper.MapSubjectToEventType(subject))
	}
}
