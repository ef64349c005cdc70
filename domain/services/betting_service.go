package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"bethouse/domain/apperrors"
	"bethouse/domain/entities"
	"bethouse/domain/events"
	"bethouse/domain/interfaces"
	"bethouse/domain/utils"
)

type bettingService struct {
	accountRepo    interfaces.AccountRepository
	walletRepo     interfaces.WalletRepository
	txRepo         interfaces.TransactionRepository
	eventRepo      interfaces.EventRepository
	betRepo        interfaces.BetRepository
	eventPublisher interfaces.EventPublisher
}

// NewBettingService creates a new betting service
func NewBettingService(
	accountRepo interfaces.AccountRepository,
	walletRepo interfaces.WalletRepository,
	txRepo interfaces.TransactionRepository,
	eventRepo interfaces.EventRepository,
	betRepo interfaces.BetRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.BettingService {
	return &bettingService{
		accountRepo:    accountRepo,
		walletRepo:     walletRepo,
		txRepo:         txRepo,
		eventRepo:      eventRepo,
		betRepo:        betRepo,
		eventPublisher: eventPublisher,
	}
}

func (s *bettingService) PlaceBet(ctx context.Context, userID int64, eventID int64, amount int64, team string) (*entities.BetReceipt, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: bet amount must be positive", apperrors.ErrValidation)
	}

	// Share lock: keeps the event from being settled and deleted while this
	// bet is in flight.
	event, err := s.eventRepo.GetForShare(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %d", apperrors.ErrNotFound, eventID)
	}
	if !event.IsApproved() {
		return nil, fmt.Errorf("%w: event %d is not open for betting", apperrors.ErrValidation, eventID)
	}
	if !event.HasTeam(team) {
		return nil, fmt.Errorf("%w: %q is not a side of event %d", apperrors.ErrValidation, team, eventID)
	}

	wallet, err := s.walletRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return nil, fmt.Errorf("%w: wallet for user %d", apperrors.ErrNotFound, userID)
	}

	if !wallet.CanAfford(amount) {
		return nil, fmt.Errorf("%w: balance %s cannot cover stake %s",
			apperrors.ErrInsufficientFunds,
			entities.FormatAmount(wallet.Balance),
			entities.FormatAmount(amount))
	}

	newBalance := wallet.CalculateNewBalance(-amount)
	if err := s.walletRepo.UpdateBalance(ctx, userID, newBalance); err != nil {
		return nil, fmt.Errorf("failed to debit stake: %w", err)
	}

	bet := &entities.Bet{
		UserID:  userID,
		EventID: eventID,
		Amount:  amount,
		Team:    team,
	}
	if err := s.betRepo.Create(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to create bet record: %w", err)
	}

	entry := &entities.Transaction{
		UserID: userID,
		Type:   entities.TransactionTypeBetStake,
		Amount: amount,
	}
	if err := utils.RecordBalanceChange(ctx, s.txRepo, s.eventPublisher, entry, wallet.Balance, newBalance); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(events.BetPlacedEvent{
		BetID:   bet.ID,
		UserID:  userID,
		EventID: eventID,
		Amount:  amount,
		Team:    team,
	}); err != nil {
		log.WithError(err).Error("Failed to publish bet placed event")
	}

	return &entities.BetReceipt{
		BetID:            bet.ID,
		EventID:          eventID,
		Amount:           amount,
		Team:             team,
		RemainingBalance: newBalance,
	}, nil
}

func (s *bettingService) SettleEvent(ctx context.Context, callerEmail string, eventID int64, winningTeam string) (*entities.SettlementSummary, error) {
	caller, err := s.accountRepo.GetByEmail(ctx, callerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to look up caller: %w", err)
	}
	if caller == nil || !caller.IsModerator() {
		return nil, fmt.Errorf("%w: only moderators can settle events", apperrors.ErrPermission)
	}

	// Exclusive lock on the event row: no new bets can be placed (they take a
	// share lock) and no second settlement can start while this one runs.
	event, err := s.eventRepo.GetForUpdate(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %d", apperrors.ErrNotFound, eventID)
	}
	if !event.IsApproved() {
		return nil, fmt.Errorf("%w: only approved events can be settled (event %d is %s)", apperrors.ErrValidation, eventID, event.Status)
	}
	if !event.HasTeam(winningTeam) {
		return nil, fmt.Errorf("%w: %q is not a side of event %d", apperrors.ErrValidation, winningTeam, eventID)
	}

	bets, err := s.betRepo.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}

	var winningBets []*entities.Bet
	for _, bet := range bets {
		if bet.IsWinner(winningTeam) {
			winningBets = append(winningBets, bet)
		}
	}

	// Lock every implicated wallet up front, in ascending user-id order, so
	// settlement cannot deadlock against concurrent per-wallet operations.
	wallets := map[int64]*entities.Wallet{}
	if len(winningBets) > 0 {
		ids := make([]int64, 0, len(winningBets))
		seen := map[int64]bool{}
		for _, bet := range winningBets {
			if !seen[bet.UserID] {
				seen[bet.UserID] = true
				ids = append(ids, bet.UserID)
			}
		}
		wallets, err = s.walletRepo.GetManyForUpdate(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to lock winner wallets: %w", err)
		}
	}

	var totalPaid int64
	for _, bet := range winningBets {
		wallet := wallets[bet.UserID]
		if wallet == nil {
			return nil, fmt.Errorf("%w: wallet for user %d", apperrors.ErrNotFound, bet.UserID)
		}

		payout := bet.Payout()
		newBalance := wallet.CalculateNewBalance(payout)
		if err := s.walletRepo.UpdateBalance(ctx, bet.UserID, newBalance); err != nil {
			return nil, fmt.Errorf("failed to credit payout: %w", err)
		}

		entry := &entities.Transaction{
			UserID: bet.UserID,
			Type:   entities.TransactionTypePayout,
			Amount: payout,
		}
		if err := utils.RecordBalanceChange(ctx, s.txRepo, s.eventPublisher, entry, wallet.Balance, newBalance); err != nil {
			return nil, err
		}

		// A user may hold several winning bets on the same event.
		wallet.Balance = newBalance
		totalPaid += payout
	}

	if err := s.betRepo.DeleteByEvent(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to delete bets: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}

	if err := s.eventPublisher.Publish(events.EventSettledEvent{
		EventID:     eventID,
		WinningTeam: winningTeam,
		BetsSettled: len(bets),
		Winners:     len(winningBets),
		TotalPaid:   totalPaid,
	}); err != nil {
		log.WithError(err).Error("Failed to publish event settled event")
	}

	return &entities.SettlementSummary{
		EventID:     eventID,
		WinningTeam: winningTeam,
		BetsSettled: len(bets),
		Winners:     len(winningBets),
		TotalPaid:   totalPaid,
	}, nil
}
