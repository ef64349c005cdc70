package entities

import "time"

// Role determines what an account may do. Moderators review events and settle
// bets; regular users do everything else.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// Account represents a registered platform account
type Account struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// IsModerator reports whether the account holds the moderator role.
func (a *Account) IsModerator() bool {
	return a.Role == RoleModerator
}
