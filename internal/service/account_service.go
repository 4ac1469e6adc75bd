package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/geovannycode/banking-api/internal/store"
	"github.com/google/uuid"
)

// AccountService provides the user-facing operations over the account
// aggregate.
type AccountService interface {
	// CreateAccount validates the DTO and persists a new account for the
	// given user. MAPPING_ERROR on an invalid limit (checked before any
	// store interaction), USER_NOT_FOUND if the owner is not persisted,
	// ACCOUNT_ALREADY_EXIST on an ID collision.
	//
	// A duplicate account name for the same owner is not pre-checked the
	// way the ID is; it trips the store's unique index and is reported as
	// DATABASE_ERROR. Callers depend on that asymmetry.
	CreateAccount(ctx context.Context, userID uuid.UUID, dto AccountDTO) ApiResult[uuid.UUID]

	// FindAccountByID returns the account overview projection.
	FindAccountByID(ctx context.Context, accountID uuid.UUID) ApiResult[AccountOverviewDTO]
}

type accountService struct {
	accounts store.AccountRepository
	users    store.UserRepository
	logger   *slog.Logger
}

// NewAccountService creates an AccountService backed by the given
// repositories.
func NewAccountService(
	accounts store.AccountRepository,
	users store.UserRepository,
	log *slog.Logger,
) AccountService {
	if log == nil {
		log = slog.Default()
	}
	return &accountService{
		accounts: accounts,
		users:    users,
		logger:   log.With(slog.String("component", "account_service")),
	}
}

func (s *accountService) CreateAccount(
	ctx context.Context,
	userID uuid.UUID,
	dto AccountDTO,
) ApiResult[uuid.UUID] {
	if dto.Limit < 0 {
		s.logger.Debug("rejected account creation: negative limit",
			slog.String("user_id", userID.String()))
		return Failure[uuid.UUID](ErrorMapping)
	}

	account, err := domain.NewAccount(dto.Name, 0, dto.Dispo, dto.Limit)
	if err != nil {
		s.logger.Debug("rejected account creation", slog.String("error", err.Error()))
		return Failure[uuid.UUID](ErrorMapping)
	}
	if dto.AccountID != nil {
		account.ID = *dto.AccountID
	}

	saved, err := s.accounts.SaveForUser(ctx, userID, account)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return Failure[uuid.UUID](ErrorUserNotFound)
		case errors.Is(err, store.ErrAccountExists):
			return Failure[uuid.UUID](ErrorAccountExists)
		default:
			s.logger.Warn("failed to persist account",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()),
				slog.String("user_id", userID.String()))
			return Failure[uuid.UUID](ErrorDatabase)
		}
	}

	s.logger.Info("account created",
		slog.String("account_id", saved.ID.String()),
		slog.String("user_id", userID.String()))
	return Success(saved.ID)
}

func (s *accountService) FindAccountByID(
	ctx context.Context,
	accountID uuid.UUID,
) ApiResult[AccountOverviewDTO] {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return Failure[AccountOverviewDTO](ErrorAccountNotFound)
		}
		return Failure[AccountOverviewDTO](ErrorDatabase)
	}

	return Success(newAccountOverview(account))
}
