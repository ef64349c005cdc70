package interfaces

import (
	"context"

	"bethouse/domain/entities"
	"bethouse/domain/events"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// Create creates a new account
	Create(ctx context.Context, account *entities.Account) error

	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id int64) (*entities.Account, error)

	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
}

// WalletRepository defines the interface for wallet balance access.
// GetForUpdate must serialize concurrent mutations of the same wallet.
type WalletRepository interface {
	// Create creates a zero-balance wallet for a user
	Create(ctx context.Context, userID int64) (*entities.Wallet, error)

	// Get retrieves a wallet without locking it
	Get(ctx context.Context, userID int64) (*entities.Wallet, error)

	// GetForUpdate retrieves a wallet and row-locks it for the rest of the
	// unit of work
	GetForUpdate(ctx context.Context, userID int64) (*entities.Wallet, error)

	// GetManyForUpdate retrieves and row-locks several wallets in ascending
	// user-id order
	GetManyForUpdate(ctx context.Context, userIDs []int64) (map[int64]*entities.Wallet, error)

	// UpdateBalance sets a wallet's balance
	UpdateBalance(ctx context.Context, userID int64, newBalance int64) error
}

// TransactionRepository defines the interface for the append-only transaction log
type TransactionRepository interface {
	// Record appends a transaction log entry
	Record(ctx context.Context, tx *entities.Transaction) error

	// GetByUser returns the most recent transactions for a user
	GetByUser(ctx context.Context, userID int64, limit int) ([]*entities.Transaction, error)
}

// EventRepository defines the interface for betting event data access
type EventRepository interface {
	// Create creates a new event in pending status
	Create(ctx context.Context, event *entities.Event) error

	// GetByID retrieves an event without locking it
	GetByID(ctx context.Context, id int64) (*entities.Event, error)

	// GetForShare retrieves an event under a share lock so settlement cannot
	// retire it while the caller still depends on it
	GetForShare(ctx context.Context, id int64) (*entities.Event, error)

	// GetForUpdate retrieves an event under an exclusive lock for settlement
	GetForUpdate(ctx context.Context, id int64) (*entities.Event, error)

	// ListByStatus returns events with the given status
	ListByStatus(ctx context.Context, status entities.EventStatus) ([]*entities.Event, error)

	// Search returns events whose name or description contains keyword
	Search(ctx context.Context, keyword string) ([]*entities.Event, error)

	// UpdateStatus moves an event to a new moderation status
	UpdateStatus(ctx context.Context, id int64, status entities.EventStatus) error

	// Delete removes an event
	Delete(ctx context.Context, id int64) error
}

// BetRepository defines the interface for bet data access
type BetRepository interface {
	// Create creates a new bet record
	Create(ctx context.Context, bet *entities.Bet) error

	// GetByEvent returns all bets on an event
	GetByEvent(ctx context.Context, eventID int64) ([]*entities.Bet, error)

	// CountByEvent returns the number of open bets on an event
	CountByEvent(ctx context.Context, eventID int64) (int, error)

	// DeleteByEvent removes all bets on an event
	DeleteByEvent(ctx context.Context, eventID int64) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish publishes an event
	Publish(event events.Event) error
}

// TransactionalEventPublisher buffers events during a unit of work and only
// hands them to the real publisher once the work has committed
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush publishes all pending events; called after a successful commit
	Flush(ctx context.Context) error

	// Discard drops all pending events; called on rollback
	Discard()
}
