package infrastructure

import (
	"fmt"

	"bethouse/domain/events"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeBalanceChanged:
		return "wallets.balance_changed"
	case events.EventTypeBetPlaced:
		return "betting.placed"
	case events.EventTypeEventSettled:
		return "events.settled"
	case events.EventTypeEventRejected:
		return "events.rejected"
	default:
		return fmt.Sprintf("unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case "wallets.balance_changed":
		return events.EventTypeBalanceChanged
	case "betting.placed":
		return events.EventTypeBetPlaced
	case "events.settled":
		return events.EventTypeEventSettled
	case "events.rejected":
		return events.EventTypeEventRejected
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"wallets.balance_changed",
		"betting.placed",
		"events.settled",
		"events.rejected",
	}
}
