package application

import (
	"context"

	"bethouse/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations.
// Every request runs against exactly one unit of work: all reads and writes
// either commit together or are discarded together.
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes buffered domain events
	Commit() error

	// Rollback rolls back the transaction and discards buffered events
	Rollback() error

	// Repository getters
	AccountRepository() interfaces.AccountRepository
	WalletRepository() interfaces.WalletRepository
	TransactionRepository() interfaces.TransactionRepository
	EventRepository() interfaces.EventRepository
	BetRepository() interfaces.BetRepository
	EventBus() interfaces.EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork
	Create() UnitOfWork
}
