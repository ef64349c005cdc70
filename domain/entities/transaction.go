package entities

import (
	"errors"
	"time"
)

// TransactionType categorizes entries in the transaction log
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeBetStake   TransactionType = "bet_stake"
	TransactionTypePayout     TransactionType = "payout"
)

// IsCredit reports whether this transaction type increases the balance.
func (t TransactionType) IsCredit() bool {
	return t == TransactionTypeDeposit || t == TransactionTypePayout
}

// IsDebit reports whether this transaction type decreases the balance.
func (t TransactionType) IsDebit() bool {
	return t == TransactionTypeWithdrawal || t == TransactionTypeBetStake
}

func (t TransactionType) String() string {
	return string(t)
}

// Transaction is one append-only entry in a wallet's statement. Amount is
// always positive; the type says which direction the money moved.
type Transaction struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	Type      TransactionType `db:"type"`
	Amount    int64           `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// Validate performs basic validation on the transaction entry.
func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return errors.New("transaction amount must be positive")
	}
	switch t.Type {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeBetStake, TransactionTypePayout:
		return nil
	default:
		return errors.New("unknown transaction type")
	}
}
