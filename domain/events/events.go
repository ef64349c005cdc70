package events

import "bethouse/domain/entities"

// EventType represents different types of domain events in the system
type EventType string

const (
	EventTypeBalanceChanged EventType = "balance_changed"
	EventTypeBetPlaced      EventType = "bet_placed"
	EventTypeEventSettled   EventType = "event_settled"
	EventTypeEventRejected  EventType = "event_rejected"
)

// Event is the base interface for all domain events
type Event interface {
	Type() EventType
}

// BalanceChangedEvent represents a wallet balance change that occurred
type BalanceChangedEvent struct {
	UserID          int64
	BalanceBefore   int64
	BalanceAfter    int64
	ChangeAmount    int64
	TransactionType entities.TransactionType
}

func (e BalanceChangedEvent) Type() EventType {
	return EventTypeBalanceChanged
}

// BetPlacedEvent represents a bet that was placed on an event
type BetPlacedEvent struct {
	BetID   int64
	UserID  int64
	EventID int64
	Amount  int64
	Team    string
}

func (e BetPlacedEvent) Type() EventType {
	return EventTypeBetPlaced
}

// EventSettledEvent represents an event that was settled and retired
type EventSettledEvent struct {
	EventID     int64
	WinningTeam string
	BetsSettled int
	Winners     int
	TotalPaid   int64
}

func (e EventSettledEvent) Type() EventType {
	return EventTypeEventSettled
}

// EventRejectedEvent is consumed by the notification collaborator to email the
// event owner. It is emitted only after the rejection has committed.
type EventRejectedEvent struct {
	EventID    int64
	EventName  string
	OwnerEmail string
	Reason     string
}

func (e EventRejectedEvent) Type() EventType {
	return EventTypeEventRejected
}
