package repository

import (
	"context"
	"fmt"

	"bethouse/database"
	"bethouse/domain/entities"
	"bethouse/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type eventRepository struct {
	q Queryable
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *database.DB) interfaces.EventRepository {
	return &eventRepository{q: db.Pool}
}

// newEventRepository creates a new event repository with a transaction
func newEventRepository(tx Queryable) interfaces.EventRepository {
	return &eventRepository{q: tx}
}

const eventColumns = `id, name, description, team_a, team_b, starts_on, ends_on, category, owner_email, status, created_at`

func (r *eventRepository) Create(ctx context.Context, event *entities.Event) error {
	query := `
		INSERT INTO events (name, description, team_a, team_b, starts_on, ends_on, category, owner_email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		event.Name,
		event.Description,
		event.TeamA,
		event.TeamB,
		event.StartsOn,
		event.EndsOn,
		event.Category,
		event.OwnerEmail,
		event.Status,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*entities.Event, error) {
	return r.get(ctx, id, "")
}

// GetForShare takes a share lock on the event row. Bets hold it so settlement,
// which locks exclusively, cannot retire the event under a bet in flight.
func (r *eventRepository) GetForShare(ctx context.Context, id int64) (*entities.Event, error) {
	return r.get(ctx, id, "FOR SHARE")
}

// GetForUpdate takes an exclusive lock on the event row for settlement.
func (r *eventRepository) GetForUpdate(ctx context.Context, id int64) (*entities.Event, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *eventRepository) get(ctx context.Context, id int64, lock string) (*entities.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
		%s`, eventColumns, lock)

	event, err := r.scanOne(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return event, nil
}

func (r *eventRepository) ListByStatus(ctx context.Context, status entities.EventStatus) ([]*entities.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE status = $1
		ORDER BY starts_on, id`, eventColumns)

	rows, err := r.q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by status %s: %w", status, err)
	}
	defer rows.Close()

	return r.scanMany(rows)
}

func (r *eventRepository) Search(ctx context.Context, keyword string) ([]*entities.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE name ILIKE '%%' || $1 || '%%' OR description ILIKE '%%' || $1 || '%%'
		ORDER BY starts_on, id`, eventColumns)

	rows, err := r.q.Query(ctx, query, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	defer rows.Close()

	return r.scanMany(rows)
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id int64, status entities.EventStatus) error {
	query := `
		UPDATE events
		SET status = $1
		WHERE id = $2`

	result, err := r.q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update event %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %d not found", id)
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %d not found", id)
	}

	return nil
}

func (r *eventRepository) scanOne(row pgx.Row) (*entities.Event, error) {
	var event entities.Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.TeamA,
		&event.TeamB,
		&event.StartsOn,
		&event.EndsOn,
		&event.Category,
		&event.OwnerEmail,
		&event.Status,
		&event.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *eventRepository) scanMany(rows pgx.Rows) ([]*entities.Event, error) {
	var events []*entities.Event
	for rows.Next() {
		var event entities.Event
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.TeamA,
			&event.TeamB,
			&event.StartsOn,
			&event.EndsOn,
			&event.Category,
			&event.OwnerEmail,
			&event.Status,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}
