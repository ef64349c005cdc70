package entities

import (
	"errors"
	"time"
)

// PayoutMultiplier is the fixed house-funded payout: a winning bet returns the
// stake times this multiplier. There are no dynamic odds.
const PayoutMultiplier = 2

// Bet is a user's stake on one side of an approved event. Bets exist only
// while the event is unsettled; settlement removes them win or lose.
type Bet struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	EventID   int64     `db:"event_id"`
	Amount    int64     `db:"amount"`
	Team      string    `db:"team"`
	CreatedAt time.Time `db:"created_at"`
}

// Payout returns the amount credited if this bet wins.
func (b *Bet) Payout() int64 {
	return b.Amount * PayoutMultiplier
}

// IsWinner reports whether the bet backed the winning team.
func (b *Bet) IsWinner(winningTeam string) bool {
	return b.Team == winningTeam
}

// Validate performs basic validation on the bet.
func (b *Bet) Validate() error {
	if b.Amount <= 0 {
		return errors.New("bet amount must be positive")
	}
	if b.Team == "" {
		return errors.New("bet must select a team")
	}
	return nil
}

// BetReceipt is returned to the user after a successful bet placement.
type BetReceipt struct {
	BetID            int64
	EventID          int64
	Amount           int64
	Team             string
	RemainingBalance int64
}

// SettlementSummary describes the outcome of settling one event.
type SettlementSummary struct {
	EventID     int64
	WinningTeam string
	BetsSettled int
	Winners     int
	TotalPaid   int64
}
