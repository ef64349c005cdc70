package repository

import (
	"context"
	"fmt"

	"bethouse/database"
	"bethouse/domain/entities"
	"bethouse/domain/interfaces"
)

type betRepository struct {
	q Queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) interfaces.BetRepository {
	return &betRepository{q: db.Pool}
}

// newBetRepository creates a new bet repository with a transaction
func newBetRepository(tx Queryable) interfaces.BetRepository {
	return &betRepository{q: tx}
}

func (r *betRepository) Create(ctx context.Context, bet *entities.Bet) error {
	query := `
		INSERT INTO bets (user_id, event_id, amount, team)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		bet.UserID,
		bet.EventID,
		bet.Amount,
		bet.Team,
	).Scan(&bet.ID, &bet.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create bet: %w", err)
	}

	return nil
}

func (r *betRepository) GetByEvent(ctx context.Context, eventID int64) ([]*entities.Bet, error) {
	query := `
		SELECT id, user_id, event_id, amount, team, created_at
		FROM bets
		WHERE event_id = $1
		ORDER BY id`

	rows, err := r.q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets for event %d: %w", eventID, err)
	}
	defer rows.Close()

	var bets []*entities.Bet
	for rows.Next() {
		var bet entities.Bet
		err := rows.Scan(
			&bet.ID,
			&bet.UserID,
			&bet.EventID,
			&bet.Amount,
			&bet.Team,
			&bet.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, &bet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bets: %w", err)
	}

	return bets, nil
}

func (r *betRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	query := `SELECT COUNT(*) FROM bets WHERE event_id = $1`

	var count int
	if err := r.q.QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bets for event %d: %w", eventID, err)
	}

	return count, nil
}

func (r *betRepository) DeleteByEvent(ctx context.Context, eventID int64) error {
	query := `DELETE FROM bets WHERE event_id = $1`

	if _, err := r.q.Exec(ctx, query, eventID); err != nil {
		return fmt.Errorf("failed to delete bets for event %d: %w", eventID, err)
	}

	return nil
}
