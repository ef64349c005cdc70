package services

import (
	"context"
	"errors"
	"testing"

	"bethouse/domain/apperrors"
	"bethouse/domain/entities"
	"bethouse/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := new(testhelpers.MockAccountRepository)
	mockWalletRepo := new(testhelpers.MockWalletRepository)

	service := NewAccountService(mockAccountRepo, mockWalletRepo)

	mockAccountRepo.On("GetByEmail", ctx, "maria@example.com").Return(nil, nil)
	mockAccountRepo.On("Create", ctx, mock.MatchedBy(func(a *entities.Account) bool {
		return a.Name == "Maria" && a.Email == "maria@example.com" && a.Role == entities.RoleUser
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.Account).ID = 7
	})
	mockWalletRepo.On("Create", ctx, int64(7)).Return(&entities.Wallet{UserID: 7}, nil)

	account, err := service.Register(ctx, "Maria", "Maria@Example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, "maria@example.com", account.Email)

	mockAccountRepo.AssertExpectations(t)
	mockWalletRepo.AssertExpectations(t)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := new(testhelpers.MockAccountRepository)
	mockWalletRepo := new(testhelpers.MockWalletRepository)

	service := NewAccountService(mockAccountRepo, mockWalletRepo)

	existing := &entities.Account{ID: 1, Email: "maria@example.com"}
	mockAccountRepo.On("GetByEmail", ctx, "maria@example.com").Return(existing, nil)

	_, err := service.Register(ctx, "Maria", "maria@example.com")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	mockAccountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockWalletRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()

	service := NewAccountService(new(testhelpers.MockAccountRepository), new(testhelpers.MockWalletRepository))

	_, err := service.Register(ctx, "", "maria@example.com")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = service.Register(ctx, "Maria", "not-an-email")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestAccountService_RoleOf(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := new(testhelpers.MockAccountRepository)
	service := NewAccountService(mockAccountRepo, new(testhelpers.MockWalletRepository))

	mockAccountRepo.On("GetByEmail", ctx, "mod@example.com").Return(moderator(), nil)

	role, err := service.RoleOf(ctx, "mod@example.com")

	assert.NoError(t, err)
	assert.Equal(t, entities.RoleModerator, role)
}

func TestAccountService_RoleOf_Unknown(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := new(testhelpers.MockAccountRepository)
	service := NewAccountService(mockAccountRepo, new(testhelpers.MockWalletRepository))

	mockAccountRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

	_, err := service.RoleOf(ctx, "ghost@example.com")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
