package services

import (
	"context"
	"fmt"
	"time"

	"bethouse/domain/apperrors"
	"bethouse/domain/entities"
	"bethouse/domain/interfaces"
	"bethouse/domain/utils"
)

const defaultStatementLimit = 50

type walletService struct {
	walletRepo     interfaces.WalletRepository
	txRepo         interfaces.TransactionRepository
	fees           *FeePolicy
	eventPublisher interfaces.EventPublisher
}

// NewWalletService creates a new wallet service
func NewWalletService(walletRepo interfaces.WalletRepository, txRepo interfaces.TransactionRepository, eventPublisher interfaces.EventPublisher) interfaces.WalletService {
	return &walletService{
		walletRepo:     walletRepo,
		txRepo:         txRepo,
		fees:           NewFeePolicy(),
		eventPublisher: eventPublisher,
	}
}

func (s *walletService) Deposit(ctx context.Context, userID int64, amount int64, card entities.CardDetails) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}
	if err := card.Validate(time.Now()); err != nil {
		return 0, err
	}

	wallet, err := s.walletRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return 0, fmt.Errorf("%w: wallet for user %d", apperrors.ErrNotFound, userID)
	}

	newBalance := wallet.CalculateNewBalance(amount)
	if err := s.walletRepo.UpdateBalance(ctx, userID, newBalance); err != nil {
		return 0, fmt.Errorf("failed to credit wallet: %w", err)
	}

	entry := &entities.Transaction{
		UserID: userID,
		Type:   entities.TransactionTypeDeposit,
		Amount: amount,
	}
	if err := utils.RecordBalanceChange(ctx, s.txRepo, s.eventPublisher, entry, wallet.Balance, newBalance); err != nil {
		return 0, err
	}

	return newBalance, nil
}

func (s *walletService) Withdraw(ctx context.Context, userID int64, amount int64, method entities.WithdrawalMethod, dest entities.WithdrawalDestination) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}
	if err := dest.Validate(method); err != nil {
		return 0, err
	}

	fee := s.fees.Fee(amount)
	total := amount + fee

	wallet, err := s.walletRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return 0, fmt.Errorf("%w: wallet for user %d", apperrors.ErrNotFound, userID)
	}

	if !wallet.CanAfford(total) {
		return 0, fmt.Errorf("%w: balance %s cannot cover %s plus %s fee",
			apperrors.ErrInsufficientFunds,
			entities.FormatAmount(wallet.Balance),
			entities.FormatAmount(amount),
			entities.FormatAmount(fee))
	}

	newBalance := wallet.CalculateNewBalance(-total)
	if err := s.walletRepo.UpdateBalance(ctx, userID, newBalance); err != nil {
		return 0, fmt.Errorf("failed to debit wallet: %w", err)
	}

	// The log entry covers amount plus fee: that is what left the wallet.
	entry := &entities.Transaction{
		UserID: userID,
		Type:   entities.TransactionTypeWithdrawal,
		Amount: total,
	}
	if err := utils.RecordBalanceChange(ctx, s.txRepo, s.eventPublisher, entry, wallet.Balance, newBalance); err != nil {
		return 0, err
	}

	return newBalance, nil
}

func (s *walletService) Balance(ctx context.Context, userID int64) (int64, error) {
	wallet, err := s.walletRepo.Get(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return 0, fmt.Errorf("%w: wallet for user %d", apperrors.ErrNotFound, userID)
	}
	return wallet.Balance, nil
}

func (s *walletService) Statement(ctx context.Context, userID int64, limit int) ([]*entities.Transaction, error) {
	if limit <= 0 {
		limit = defaultStatementLimit
	}

	wallet, err := s.walletRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return nil, fmt.Errorf("%w: wallet for user %d", apperrors.ErrNotFound, userID)
	}

	entries, err := s.txRepo.GetByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return entries, nil
}
