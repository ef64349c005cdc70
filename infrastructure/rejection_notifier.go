package infrastructure

import (
	"encoding/json"
	"fmt"

	"bethouse/domain/events"

	log "github.com/sirupsen/logrus"
)

// RejectionNotifier consumes events.rejected messages and notifies the event
// owner. Delivery to the owner is a separate collaborator; this service logs
// the notification it hands off.
type RejectionNotifier struct{}

// NewRejectionNotifier creates a new rejection notifier
func NewRejectionNotifier() *RejectionNotifier {
	return &RejectionNotifier{}
}

// Start subscribes the notifier to the rejection subject on a durable consumer
func (n *RejectionNotifier) Start(client *NATSClient, subjectMapper *EventSubjectMapper) error {
	subject := subjectMapper.MapEventToSubject(events.EventRejectedEvent{})
	if err := client.Subscribe(subject, n.HandleMessage); err != nil {
		return fmt.Errorf("failed to subscribe rejection notifier: %w", err)
	}
	return nil
}

// HandleMessage processes one envelope from the rejection subject
func (n *RejectionNotifier) HandleMessage(data []byte) error {
	var envelope EventEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal event envelope: %w", err)
	}

	var rejected events.EventRejectedEvent
	if err := json.Unmarshal(envelope.Payload, &rejected); err != nil {
		return fmt.Errorf("failed to unmarshal rejection payload: %w", err)
	}

	if rejected.OwnerEmail == "" {
		return fmt.Errorf("rejection event %d has no owner email", rejected.EventID)
	}

	log.WithFields(log.Fields{
		"eventId":    rejected.EventID,
		"eventName":  rejected.EventName,
		"ownerEmail": rejected.OwnerEmail,
		"reason":     rejected.Reason,
	}).Info("Notifying event owner of rejection")

	return nil
}
