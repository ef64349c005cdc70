package interfaces

import (
	"context"

	"bethouse/domain/entities"
)

// AccountService defines the interface for account operations
type AccountService interface {
	// Register creates an account and its zero-balance wallet atomically
	Register(ctx context.Context, name, email string) (*entities.Account, error)

	// RoleOf returns the role of the account registered under email
	RoleOf(ctx context.Context, email string) (entities.Role, error)
}

// WalletService defines the interface for deposits, withdrawals and statements
type WalletService interface {
	// Deposit validates the card, credits the wallet and records a deposit
	// transaction; returns the new balance
	Deposit(ctx context.Context, userID int64, amount int64, card entities.CardDetails) (int64, error)

	// Withdraw debits amount plus the tiered fee and records a withdrawal
	// transaction; returns the new balance
	Withdraw(ctx context.Context, userID int64, amount int64, method entities.WithdrawalMethod, dest entities.WithdrawalDestination) (int64, error)

	// Balance returns the wallet balance
	Balance(ctx context.Context, userID int64) (int64, error)

	// Statement returns the most recent transaction log entries
	Statement(ctx context.Context, userID int64, limit int) ([]*entities.Transaction, error)
}

// BettingService defines the interface for bet placement and settlement
type BettingService interface {
	// PlaceBet stakes amount on one side of an approved event
	PlaceBet(ctx context.Context, userID int64, eventID int64, amount int64, team string) (*entities.BetReceipt, error)

	// SettleEvent pays every winning bet double its stake, removes all bets
	// and deletes the event; moderator only
	SettleEvent(ctx context.Context, callerEmail string, eventID int64, winningTeam string) (*entities.SettlementSummary, error)
}

// EventService defines the interface for the event moderation workflow
type EventService interface {
	// CreateEvent submits a new event for moderation
	CreateEvent(ctx context.Context, event *entities.Event) (*entities.Event, error)

	// ListApproved returns all events open for betting
	ListApproved(ctx context.Context) ([]*entities.Event, error)

	// Search returns events matching keyword in name or description
	Search(ctx context.Context, keyword string) ([]*entities.Event, error)

	// Review approves or rejects a pending event; moderator only
	Review(ctx context.Context, moderatorEmail string, eventID int64, approve bool, reason string) (*entities.Event, error)

	// DeleteEvent removes an event that has no open bets
	DeleteEvent(ctx context.Context, eventID int64) error
}
