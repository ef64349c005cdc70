package testutil

import (
	"time"

	"bethouse/domain/entities"
)

// CreateTestAccount creates a test account with default values
func CreateTestAccount(name, email string) *entities.Account {
	return &entities.Account{
		Name:  name,
		Email: email,
		Role:  entities.RoleUser,
	}
}

// CreateTestModerator creates a test account with the moderator role
func CreateTestModerator(name, email string) *entities.Account {
	account := CreateTestAccount(name, email)
	account.Role = entities.RoleModerator
	return account
}

// CreateTestEvent creates an approved test event with two teams
func CreateTestEvent(name, ownerEmail string) *entities.Event {
	day := 24 * time.Hour
	return &entities.Event{
		Name:        name,
		Description: name + " description",
		TeamA:       "Lions",
		TeamB:       "Hawks",
		StartsOn:    time.Now().UTC().Truncate(day).Add(day),
		EndsOn:      time.Now().UTC().Truncate(day).Add(2 * day),
		Category:    "sports",
		OwnerEmail:  ownerEmail,
		Status:      entities.EventStatusApproved,
	}
}

// CreateTestPendingEvent creates a pending test event
func CreateTestPendingEvent(name, ownerEmail string) *entities.Event {
	event := CreateTestEvent(name, ownerEmail)
	event.Status = entities.EventStatusPending
	return event
}

// CreateTestBet creates a test bet on the given event
func CreateTestBet(userID, eventID int64, amount int64, team string) *entities.Bet {
	return &entities.Bet{
		UserID:  userID,
		EventID: eventID,
		Amount:  amount,
		Team:    team,
	}
}
