package repository

import (
	"context"
	"fmt"

	"bethouse/database"
	"bethouse/domain/entities"
	"bethouse/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type accountRepository struct {
	q Queryable
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.DB) interfaces.AccountRepository {
	return &accountRepository{q: db.Pool}
}

// newAccountRepository creates a new account repository with a transaction
func newAccountRepository(tx Queryable) interfaces.AccountRepository {
	return &accountRepository{q: tx}
}

func (r *accountRepository) Create(ctx context.Context, account *entities.Account) error {
	query := `
		INSERT INTO accounts (name, email, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		account.Name,
		account.Email,
		account.Role,
	).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM accounts
		WHERE id = $1`

	var account entities.Account
	err := r.q.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Role,
		&account.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}

	return &account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM accounts
		WHERE email = $1`

	var account entities.Account
	err := r.q.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Role,
		&account.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email %s: %w", email, err)
	}

	return &account, nil
}
