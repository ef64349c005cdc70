package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bethouse/domain/apperrors"
	"bethouse/domain/entities"
	"bethouse/domain/services"
)

func (s *Server) handleCreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrValidation, err))
		return
	}

	startsOn, err := entities.ParseDate(req.StartsOn)
	if err != nil {
		respondError(c, err)
		return
	}
	endsOn, err := entities.ParseDate(req.EndsOn)
	if err != nil {
		respondError(c, err)
		return
	}

	event := &entities.Event{
		Name:        req.Name,
		Description: req.Description,
		TeamA:       req.TeamA,
		TeamB:       req.TeamB,
		StartsOn:    startsOn,
		EndsOn:      endsOn,
		Category:    req.Category,
		OwnerEmail:  req.OwnerEmail,
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}
	defer uow.Rollback()

	svc := services.NewEventService(uow.AccountRepository(), uow.EventRepository(), uow.BetRepository(), uow.EventBus())
	created, err := svc.CreateEvent(ctx, event)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusCreated, toEventResponse(created))
}

// handleListEvents returns approved events, or a keyword search when the q
// query parameter is present.
func (s *Server) handleListEvents(c *gin.Context) {
	keyword := c.Query("q")

	ctx, cancel := s.requestContext(c)
	defer cancel()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}
	defer uow.Rollback()

	svc := services.NewEventService(uow.AccountRepository(), uow.EventRepository(), uow.BetRepository(), uow.EventBus())

	var (
		list []*entities.Event
		err  error
	)
	if keyword != "" {
		list, err = svc.Search(ctx, keyword)
	} else {
		list, err = svc.ListApproved(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": toEventResponses(list)})
}

func (s *Server) handleReviewEvent(c *gin.Context) {
	eventID, err := paramInt64(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req ReviewEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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

	svc := services.NewEventService(uow.AccountRepository(), uow.EventRepository(), uow.BetRepository(), uow.EventBus())
	event, err := svc.Review(ctx, req.ModeratorEmail, eventID, *req.Approve, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusOK, toEventResponse(event))
}

func (s *Server) handleSettleEvent(c *gin.Context) {
	eventID, err := paramInt64(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req SettleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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
	summary, err := svc.SettleEvent(ctx, req.ModeratorEmail, eventID, req.WinningTeam)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusOK, SettlementResponse{
		EventID:     summary.EventID,
		WinningTeam: summary.WinningTeam,
		BetsSettled: summary.BetsSettled,
		Winners:     summary.Winners,
		TotalPaid:   entities.FormatAmount(summary.TotalPaid),
	})
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	eventID, err := paramInt64(c, "id")
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

	svc := services.NewEventService(uow.AccountRepository(), uow.EventRepository(), uow.BetRepository(), uow.EventBus())
	if err := svc.DeleteEvent(ctx, eventID); err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.Status(http.StatusNoContent)
}
