package service_test

import (
	"context"
	"testing"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/geovannycode/banking-api/internal/mocks"
	"github.com/geovannycode/banking-api/internal/service"
	"github.com/geovannycode/banking-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_CreateAccount(t *testing.T) {
	userID := uuid.New()

	validDTO := func() service.AccountDTO {
		return service.AccountDTO{Name: "My Account", Dispo: -100, Limit: 100}
	}

	t.Run("creates a new account", func(t *testing.T) {
		accountRepo := new(mocks.AccountRepository)
		accountRepo.On("SaveForUser", mock.Anything, userID, mock.MatchedBy(func(a *domain.Account) bool {
			return a.Name == "My Account" && a.Dispo == -100 && a.Limit == 100 && a.Balance == 0
		})).Return(&domain.Account{ID: uuid.New(), UserID: &userID, Name: "My Account"}, nil)

		svc := service.NewAccountService(accountRepo, new(mocks.UserRepository), testLogger())
		result := svc.CreateAccount(context.Background(), userID, validDTO())

		require.True(t, result.IsSuccess())
		assert.NotEqual(t, uuid.Nil, result.Value())
		accountRepo.AssertExpectations(t)
	})

	t.Run("rejects a negative limit regardless of user existence", func(t *testing.T) {
		accountRepo := new(mocks.AccountRepository)
		svc := service.NewAccountService(accountRepo, new(mocks.UserRepository), testLogger())

		dto := validDTO()
		dto.Limit = -100
		result := svc.CreateAccount(context.Background(), userID, dto)

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrorMapping, result.Code())
		accountRepo.AssertNotCalled(t, "SaveForUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails with USER_NOT_FOUND if the owner is not persisted", func(t *testing.T) {
		accountRepo := new(mocks.AccountRepository)
		accountRepo.On("SaveForUser", mock.Anything, userID, mock.Anything).
			Return(nil, store.ErrUserNotFound)

		svc := service.NewAccountService(accountRepo, new(mocks.UserRepository), testLogger())
		result := svc.CreateAccount(context.Background(), userID, validDTO())

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrorUserNotFound, result.Code())
	})

	t.Run("fails with ACCOUNT_ALREADY_EXIST on an ID collision", func(t *testing.T) {
		existingID := uuid.New()
		accountRepo := new(mocks.AccountRepository)
		accountRepo.On("SaveForUser", mock.Anything, userID, mock.MatchedBy(func(a *domain.Account) bool {
			return a.ID == existingID
		})).Return(nil, store.ErrAccountExists)

		svc := service.NewAccountService(accountRepo, new(mocks.UserRepository), testLogger())

		dto := validDTO()
		dto.AccountID = &existingID
		result := svc.CreateAccount(context.Background(), userID, dto)

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrorAccountExists, result.Code())
	})

	t.Run("reports a duplicate name for the same owner as a database error", func(t *testing.T) {
		// Name collisions are not pre-checked the way ID collisions are;
		// they surface from the store's unique index.
		accountRepo := new(mocks.AccountRepository)
		accountRepo.On("SaveForUser", mock.Anything, userID, mock.Anything).
			Return(nil, store.ErrConstraintViolation)

		svc := service.NewAccountService(accountRepo, new(mocks.UserRepository), testLogger())
		result := svc.CreateAccount(context.Background(), userID, validDTO())

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrorDatabase, result.Code())
	})
}

func TestAccountService_FindAccountByID(t *testing.T) {
	accountID := uuid.New()

	t.Run("returns the account overview", func(t *testing.T) {
		accountRepo := new(mocks.AccountRepository)
		accountRepo.On("FindByID", mock.Anything, accountID).Return(&domain.Account{
			ID:      accountID,
			Name:    "My Account",
			Balance: 250,
			Dispo:   -100,
			Limit:   100,
		}, nil)

		svc := service.NewAccountService(accountRepo, new(mocks.UserRepository), testLogger())
		result := svc.FindAccountByID(context.Background(), accountID)

		require.True(t, result.IsSuccess())
		assert.Equal(t, accountID, result.Value().AccountID)
		assert.Equal(t, 250.0, result.Value().Balance)
	})

	t.Run("fails with ACCOUNT_NOT_FOUND for an unknown account", func(t *testing.T) {
		accountRepo := new(mocks.AccountRepository)
		accountRepo.On("FindByID", mock.Anything, accountID).Return(nil, store.ErrAccountNotFound)

		svc := service.NewAccountService(accountRepo, new(mocks.UserRepository), testLogger())
		result := svc.FindAccountByID(context.Background(), accountID)

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrorAccountNotFound, result.Code())
	})
}
