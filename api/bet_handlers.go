package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bethouse/domain/apperrors"
	"bethouse/domain/entities"
	"bethouse/domain/services"
)

func (s *Server) handlePlaceBet(c *gin.Context) {
	var req PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrValidation, err))
		return
	}

	amount, err := entities.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrValidation, err))
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

	svc := services.NewBettingService(
		uow.AccountRepository(),
		uow.WalletRepository(),
		uow.TransactionRepository(),
		uow.EventRepository(),
		uow.BetRepository(),
		uow.EventBus(),
	)
	receipt, err := svc.PlaceBet(ctx, req.UserID, req.EventID, amount, req.Team)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusCreated, BetReceiptResponse{
		BetID:            receipt.BetID,
		EventID:          receipt.EventID,
		Amount:           entities.FormatAmount(receipt.Amount),
		Team:             receipt.Team,
		RemainingBalance: entities.FormatAmount(receipt.RemainingBalance),
	})
}
