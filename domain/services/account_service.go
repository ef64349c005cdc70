package services

import (
	"context"
	"fmt"
	"strings"

	"bethouse/domain/apperrors"
	"bethouse/domain/entities"
	"bethouse/domain/interfaces"
)

type accountService struct {
	accountRepo interfaces.AccountRepository
	walletRepo  interfaces.WalletRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo interfaces.AccountRepository, walletRepo interfaces.WalletRepository) interfaces.AccountService {
	return &accountService{
		accountRepo: accountRepo,
		walletRepo:  walletRepo,
	}
}

func (s *accountService) Register(ctx context.Context, name, email string) (*entities.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email %q is invalid", apperrors.ErrValidation, email)
	}

	existing, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrValidation, email)
	}

	account := &entities.Account{
		Name:  name,
		Email: email,
		Role:  entities.RoleUser,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// The wallet is born with the account, balance zero, in the same unit of
	// work.
	if _, err := s.walletRepo.Create(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return account, nil
}

func (s *accountService) RoleOf(ctx context.Context, email string) (entities.Role, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return "", fmt.Errorf("%w: account %s", apperrors.ErrNotFound, email)
	}
	return account.Role, nil
}
