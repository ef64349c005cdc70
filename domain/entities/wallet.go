package entities

import "time"

// Wallet holds a user's balance in centavos. One wallet per account, created
// with the account at balance zero.
type Wallet struct {
	UserID    int64     `db:"user_id"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CanAfford checks if the wallet can cover a debit of amount.
func (w *Wallet) CanAfford(amount int64) bool {
	return w.Balance >= amount
}

// CalculateNewBalance computes the balance after applying a change.
// Change is negative for debits, positive for credits.
func (w *Wallet) CalculateNewBalance(change int64) int64 {
	return w.Balance + change
}
