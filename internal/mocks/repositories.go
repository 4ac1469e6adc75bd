// Package mocks provides testify mocks of the store repository interfaces
// for service-level unit tests.
package mocks

import (
	"context"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/geovannycode/banking-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a testify mock of store.UserRepository.
type UserRepository struct {
	mock.Mock
}

var _ store.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// AccountRepository is a testify mock of store.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

var _ store.AccountRepository = (*AccountRepository)(nil)

func (m *AccountRepository) SaveForUser(
	ctx context.Context,
	userID uuid.UUID,
	account *domain.Account,
) (*domain.Account, error) {
	args := m.Called(ctx, userID, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *AccountRepository) UpdateForUser(
	ctx context.Context,
	userID uuid.UUID,
	account *domain.Account,
) (*domain.Account, error) {
	args := m.Called(ctx, userID, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *AccountRepository) FindAllByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// TransactionRepository is a testify mock of store.TransactionRepository.
type TransactionRepository struct {
	mock.Mock
}

var _ store.TransactionRepository = (*TransactionRepository)(nil)

func (m *TransactionRepository) Save(
	ctx context.Context,
	transaction *domain.Transaction,
) (*domain.Transaction, error) {
	args := m.Called(ctx, transaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *TransactionRepository) FindByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *TransactionRepository) FindAllByAccount(
	ctx context.Context,
	accountID uuid.UUID,
) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// AdminRepository is a testify mock of store.AdminRepository.
type AdminRepository struct {
	mock.Mock
}

var _ store.AdminRepository = (*AdminRepository)(nil)

func (m *AdminRepository) Save(
	ctx context.Context,
	admin *domain.Administrator,
) (*domain.Administrator, error) {
	args := m.Called(ctx, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Administrator), args.Error(1)
}

func (m *AdminRepository) FindByName(
	ctx context.Context,
	name string,
) (*domain.Administrator, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Administrator), args.Error(1)
}
