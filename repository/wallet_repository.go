package repository

import (
	"context"
	"fmt"

	"bethouse/database"
	"bethouse/domain/entities"
	"bethouse/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type walletRepository struct {
	q Queryable
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *database.DB) interfaces.WalletRepository {
	return &walletRepository{q: db.Pool}
}

// newWalletRepository creates a new wallet repository with a transaction
func newWalletRepository(tx Queryable) interfaces.WalletRepository {
	return &walletRepository{q: tx}
}

func (r *walletRepository) Create(ctx context.Context, userID int64) (*entities.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, 0)
		RETURNING user_id, balance, created_at, updated_at`

	var wallet entities.Wallet
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&wallet.UserID,
		&wallet.Balance,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create wallet for user %d: %w", userID, err)
	}

	return &wallet, nil
}

func (r *walletRepository) Get(ctx context.Context, userID int64) (*entities.Wallet, error) {
	return r.get(ctx, userID, "")
}

// GetForUpdate locks the wallet row for the rest of the transaction so
// concurrent read-modify-write cycles on the same wallet serialize.
func (r *walletRepository) GetForUpdate(ctx context.Context, userID int64) (*entities.Wallet, error) {
	return r.get(ctx, userID, "FOR UPDATE")
}

func (r *walletRepository) get(ctx context.Context, userID int64, lock string) (*entities.Wallet, error) {
	query := fmt.Sprintf(`
		SELECT user_id, balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		%s`, lock)

	var wallet entities.Wallet
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&wallet.UserID,
		&wallet.Balance,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet for user %d: %w", userID, err)
	}

	return &wallet, nil
}

// GetManyForUpdate locks several wallet rows in one statement. The ORDER BY
// fixes the lock acquisition order so concurrent settlements and per-wallet
// operations cannot deadlock.
func (r *walletRepository) GetManyForUpdate(ctx context.Context, userIDs []int64) (map[int64]*entities.Wallet, error) {
	wallets := make(map[int64]*entities.Wallet, len(userIDs))
	if len(userIDs) == 0 {
		return wallets, nil
	}

	query := `
		SELECT user_id, balance, created_at, updated_at
		FROM wallets
		WHERE user_id = ANY($1)
		ORDER BY user_id
		FOR UPDATE`

	rows, err := r.q.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var wallet entities.Wallet
		err := rows.Scan(
			&wallet.UserID,
			&wallet.Balance,
			&wallet.CreatedAt,
			&wallet.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets[wallet.UserID] = &wallet
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallets: %w", err)
	}

	return wallets, nil
}

func (r *walletRepository) UpdateBalance(ctx context.Context, userID int64, newBalance int64) error {
	query := `
		UPDATE wallets
		SET balance = $1, updated_at = NOW()
		WHERE user_id = $2`

	result, err := r.q.Exec(ctx, query, newBalance, userID)
	if err != nil {
		return fmt.Errorf("failed to update balance for user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("wallet for user %d not found", userID)
	}

	return nil
}
