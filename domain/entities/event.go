package entities

import (
	"fmt"
	"strings"
	"time"

	"bethouse/domain/apperrors"
)

// EventStatus tracks an event through the moderation workflow
type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

// Event is a bettable happening submitted by a user and reviewed by a
// moderator. Only approved events accept bets. Settlement deletes the event.
type Event struct {
	ID          int64       `db:"id"`
	Name        string      `db:"name"`
	Description string      `db:"description"`
	TeamA       string      `db:"team_a"`
	TeamB       string      `db:"team_b"`
	StartsOn    time.Time   `db:"starts_on"`
	EndsOn      time.Time   `db:"ends_on"`
	Category    string      `db:"category"`
	OwnerEmail  string      `db:"owner_email"`
	Status      EventStatus `db:"status"`
	CreatedAt   time.Time   `db:"created_at"`
}

// IsPending reports whether the event still awaits moderation.
func (e *Event) IsPending() bool {
	return e.Status == EventStatusPending
}

// IsApproved reports whether the event is open for betting.
func (e *Event) IsApproved() bool {
	return e.Status == EventStatusApproved
}

// HasTeam reports whether team names one of the event's two sides.
func (e *Event) HasTeam(team string) bool {
	return team != "" && (team == e.TeamA || team == e.TeamB)
}

// Validate checks the fields a new event must carry before it can enter
// moderation.
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: event name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("%w: event description is required", apperrors.ErrValidation)
	}
	if (e.TeamA == "") != (e.TeamB == "") {
		return fmt.Errorf("%w: an event has either two teams or none", apperrors.ErrValidation)
	}
	if e.TeamA != "" && e.TeamA == e.TeamB {
		return fmt.Errorf("%w: the two teams must differ", apperrors.ErrValidation)
	}
	if e.StartsOn.IsZero() || e.EndsOn.IsZero() {
		return fmt.Errorf("%w: event start and end dates are required", apperrors.ErrValidation)
	}
	if e.EndsOn.Before(e.StartsOn) {
		return fmt.Errorf("%w: event cannot end before it starts", apperrors.ErrValidation)
	}
	if strings.TrimSpace(e.OwnerEmail) == "" {
		return fmt.Errorf("%w: event owner email is required", apperrors.ErrValidation)
	}
	return nil
}

// ParseDate parses the YYYY-MM-DD date format used for event schedules.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}
