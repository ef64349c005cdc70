package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bethouse/domain/apperrors"
	"bethouse/domain/entities"
	"bethouse/domain/services"
)

func paramInt64(c *gin.Context, name string) (int64, error) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", apperrors.ErrValidation, name)
	}
	return value, nil
}

func (s *Server) handleDeposit(c *gin.Context) {
	userID, err := paramInt64(c, "userID")
	if err != nil {
		respondError(c, err)
		return
	}

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrValidation, err))
		return
	}

	amount, err := entities.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrValidation, err))
		return
	}

	card := entities.CardDetails{
		Number:     req.Card.Number,
		HolderName: req.Card.HolderName,
		Expiration: req.Card.Expiration,
		CVV:        req.Card.CVV,
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}
	defer uow.Rollback()

	svc := services.NewWalletService(uow.WalletRepository(), uow.TransactionRepository(), uow.EventBus())
	newBalance, err := svc.Deposit(ctx, userID, amount, card)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		UserID:  userID,
		Balance: entities.FormatAmount(newBalance),
	})
}

func (s *Server) handleWithdraw(c *gin.Context) {
	userID, err := paramInt64(c, "userID")
	if err != nil {
		respondError(c, err)
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrValidation, err))
		return
	}

	amount, err := entities.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrValidation, err))
		return
	}

	dest := entities.WithdrawalDestination{
		PixKey:      req.PixKey,
		BankBranch:  req.BankBranch,
		BankAccount: req.BankAccount,
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}
	defer uow.Rollback()

	svc := services.NewWalletService(uow.WalletRepository(), uow.TransactionRepository(), uow.EventBus())
	newBalance, err := svc.Withdraw(ctx, userID, amount, entities.WithdrawalMethod(req.Method), dest)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		UserID:  userID,
		Balance: entities.FormatAmount(newBalance),
	})
}

func (s *Server) handleBalance(c *gin.Context) {
	userID, err := paramInt64(c, "userID")
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}
	defer uow.Rollback()

	svc := services.NewWalletService(uow.WalletRepository(), uow.TransactionRepository(), uow.EventBus())
	balance, err := svc.Balance(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		UserID:  userID,
		Balance: entities.FormatAmount(balance),
	})
}

func (s *Server) handleStatement(c *gin.Context) {
	userID, err := paramInt64(c, "userID")
	if err != nil {
		respondError(c, err)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(c, fmt.Errorf("%w: invalid limit", apperrors.ErrValidation))
			return
		}
		limit = parsed
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}
	defer uow.Rollback()

	svc := services.NewWalletService(uow.WalletRepository(), uow.TransactionRepository(), uow.EventBus())
	entries, err := svc.Statement(ctx, userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	out := make([]TransactionResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, TransactionResponse{
			ID:        entry.ID,
			Type:      entry.Type.String(),
			Amount:    entities.FormatAmount(entry.Amount),
			CreatedAt: entry.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"transactions": out})
}
