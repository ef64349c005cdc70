package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bethouse/domain/apperrors"
	"bethouse/domain/services"
)

func (s *Server) handleRegister(c *gin.Context) {
	var req RegisterRequest
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

	svc := services.NewAccountService(uow.AccountRepository(), uow.WalletRepository())
	account, err := svc.Register(ctx, req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Role:  string(account.Role),
	})
}

func (s *Server) handleGetAccountRole(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := s.requestContext(c)
	defer cancel()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}
	defer uow.Rollback()

	svc := services.NewAccountService(uow.AccountRepository(), uow.WalletRepository())
	role, err := svc.RoleOf(ctx, email)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uow.Commit(); err != nil {
		respondError(c, fmt.Errorf("%w: %s", apperrors.ErrStorage, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": email, "role": string(role)})
}
