package api

import (
	"bethouse/domain/entities"
)

// RegisterRequest creates an account and its wallet
type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// CardRequest carries payment card details for a deposit
type CardRequest struct {
	Number     string `json:"number" binding:"required"`
	HolderName string `json:"holder_name" binding:"required"`
	Expiration string `json:"expiration" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

// DepositRequest credits a wallet after card validation
type DepositRequest struct {
	Amount string      `json:"amount" binding:"required"`
	Card   CardRequest `json:"card" binding:"required"`
}

// WithdrawRequest debits a wallet plus the tiered fee
type WithdrawRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Method      string `json:"method" binding:"required"`
	PixKey      string `json:"pix_key"`
	BankBranch  string `json:"bank_branch"`
	BankAccount string `json:"bank_account"`
}

// CreateEventRequest submits a new event for moderation
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	TeamA       string `json:"team_a"`
	TeamB       string `json:"team_b"`
	StartsOn    string `json:"starts_on" binding:"required"`
	EndsOn      string `json:"ends_on" binding:"required"`
	Category    string `json:"category"`
	OwnerEmail  string `json:"owner_email" binding:"required"`
}

// ReviewEventRequest approves or rejects a pending event
type ReviewEventRequest struct {
	ModeratorEmail string `json:"moderator_email" binding:"required"`
	Approve        *bool  `json:"approve" binding:"required"`
	Reason         string `json:"reason"`
}

// PlaceBetRequest stakes an amount on one side of an event
type PlaceBetRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	EventID int64  `json:"event_id" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
	Team    string `json:"team" binding:"required"`
}

// SettleEventRequest settles an event, paying every winning bet
type SettleEventRequest struct {
	ModeratorEmail string `json:"moderator_email" binding:"required"`
	WinningTeam    string `json:"winning_team" binding:"required"`
}

// BalanceResponse reports a wallet balance as a decimal string
type BalanceResponse struct {
	UserID  int64  `json:"user_id"`
	Balance string `json:"balance"`
}

// TransactionResponse is one statement line
type TransactionResponse struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// AccountResponse describes a registered account
type AccountResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// EventResponse describes one bettable event
type EventResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TeamA       string `json:"team_a,omitempty"`
	TeamB       string `json:"team_b,omitempty"`
	StartsOn    string `json:"starts_on"`
	EndsOn      string `json:"ends_on"`
	Category    string `json:"category,omitempty"`
	OwnerEmail  string `json:"owner_email"`
	Status      string `json:"status"`
}

// BetReceiptResponse confirms a placed bet
type BetReceiptResponse struct {
	BetID            int64  `json:"bet_id"`
	EventID          int64  `json:"event_id"`
	Amount           string `json:"amount"`
	Team             string `json:"team"`
	RemainingBalance string `json:"remaining_balance"`
}

// SettlementResponse summarizes a completed settlement
type SettlementResponse struct {
	EventID     int64  `json:"event_id"`
	WinningTeam string `json:"winning_team"`
	BetsSettled int    `json:"bets_settled"`
	Winners     int    `json:"winners"`
	TotalPaid   string `json:"total_paid"`
}

func toEventResponse(event *entities.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		TeamA:       event.TeamA,
		TeamB:       event.TeamB,
		StartsOn:    event.StartsOn.Format("2006-01-02"),
		EndsOn:      event.EndsOn.Format("2006-01-02"),
		Category:    event.Category,
		OwnerEmail:  event.OwnerEmail,
		Status:      string(event.Status),
	}
}

func toEventResponses(events []*entities.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, toEventResponse(event))
	}
	return out
}
