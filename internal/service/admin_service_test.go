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
	"golang.org/x/crypto/bcrypt"
)

func TestAdminService_CreateAdministrator(t *testing.T) {
	t.Run("hashes the password before persisting", func(t *testing.T) {
		adminRepo := new(mocks.AdminRepository)
		adminRepo.On("Save", mock.Anything, mock.MatchedBy(func(a *domain.Administrator) bool {
			if a.Name != "back-office" || a.HashedPassword == "Ta1&tudol3lal54e" {
				return false
			}
			return bcrypt.CompareHashAndPassword(
				[]byte(a.HashedPassword), []byte("Ta1&tudol3lal54e")) == nil
		})).Return(&domain.Administrator{ID: uuid.New(), Name: "back-office"}, nil)

		svc := service.NewAdminService(adminRepo, testLogger())
		result := svc.CreateAdministrator(context.Background(), "back-office", "Ta1&tudol3lal54e")

		require.True(t, result.IsSuccess())
		adminRepo.AssertExpectations(t)
	})

	t.Run("rejects a password violating the policy", func(t *testing.T) {
		adminRepo := new(mocks.AdminRepository)
		svc := service.NewAdminService(adminRepo, testLogger())

		result := svc.CreateAdministrator(context.Background(), "back-office", "weak")

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrorPassword, result.Code())
		adminRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("reports a name collision as a database error", func(t *testing.T) {
		adminRepo := new(mocks.AdminRepository)
		adminRepo.On("Save", mock.Anything, mock.Anything).Return(nil, store.ErrAdminExists)

		svc := service.NewAdminService(adminRepo, testLogger())
		result := svc.CreateAdministrator(context.Background(), "back-office", "Ta1&tudol3lal54e")

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrorDatabase, result.Code())
	})
}

func TestAdminService_Login(t *testing.T) {
	adminID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("Ta1&tudol3lal54e"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	persisted := &domain.Administrator{
		ID:             adminID,
		Name:           "back-office",
		HashedPassword: string(hashed),
	}

	t.Run("accepts valid credentials", func(t *testing.T) {
		adminRepo := new(mocks.AdminRepository)
		adminRepo.On("FindByName", mock.Anything, "back-office").Return(persisted, nil)

		svc := service.NewAdminService(adminRepo, testLogger())
		result := svc.Login(context.Background(), "back-office", "Ta1&tudol3lal54e")

		require.True(t, result.IsSuccess())
		assert.Equal(t, adminID, result.Value())
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		adminRepo := new(mocks.AdminRepository)
		adminRepo.On("FindByName", mock.Anything, "back-office").Return(persisted, nil)

		svc := service.NewAdminService(adminRepo, testLogger())
		result := svc.Login(context.Background(), "back-office", "Wrong1&tudol3lal")

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrorPassword, result.Code())
	})

	t.Run("an unknown name is indistinguishable from a wrong password", func(t *testing.T) {
		adminRepo := new(mocks.AdminRepository)
		adminRepo.On("FindByName", mock.Anything, "nobody").Return(nil, store.ErrAdminNotFound)

		svc := service.NewAdminService(adminRepo, testLogger())
		result := svc.Login(context.Background(), "nobody", "Ta1&tudol3lal54e")

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrorPassword, result.Code())
	})
}
