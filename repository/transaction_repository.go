package repository

import (
	"context"
	"fmt"

	"bethouse/database"
	"bethouse/domain/entities"
	"bethouse/domain/interfaces"
)

type transactionRepository struct {
	q Queryable
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *database.DB) interfaces.TransactionRepository {
	return &transactionRepository{q: db.Pool}
}

// newTransactionRepository creates a new transaction repository with a transaction
func newTransactionRepository(tx Queryable) interfaces.TransactionRepository {
	return &transactionRepository{q: tx}
}

func (r *transactionRepository) Record(ctx context.Context, tx *entities.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, type, amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		tx.UserID,
		tx.Type,
		tx.Amount,
	).Scan(&tx.ID, &tx.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return nil
}

func (r *transactionRepository) GetByUser(ctx context.Context, userID int64, limit int) ([]*entities.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var entries []*entities.Transaction
	for rows.Next() {
		var entry entities.Transaction
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Type,
			&entry.Amount,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return entries, nil
}
