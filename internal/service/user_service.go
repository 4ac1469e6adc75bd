package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/geovannycode/banking-api/internal/store"
	"github.com/google/uuid"
)

// UserService provides the user-facing operations over the user aggregate.
// Every operation terminates in exactly one Success or one Failure; no store
// error escapes raw.
type UserService interface {
	// CreateUser validates the DTO fields and persists a new user.
	// Field violations yield MAPPING_ERROR without touching the store; an
	// identity collision in the store yields DATABASE_ERROR.
	CreateUser(ctx context.Context, dto UserDTO) ApiResult[uuid.UUID]

	// UpdateUser overwrites an existing user's fields in place.
	// USER_NOT_FOUND if the target does not exist; validation runs strictly
	// before the write, so a failing DTO leaves the persisted row untouched.
	UpdateUser(ctx context.Context, dto UserDTO) ApiResult[uuid.UUID]

	// DeleteUser parses the identity token and removes the user.
	// MAPPING_ERROR on a malformed token, USER_NOT_FOUND if absent. The
	// user's accounts survive with their owner relation cleared.
	DeleteUser(ctx context.Context, userID string) ApiResult[uuid.UUID]

	// FindUserByUserID returns the user overview projection including the
	// user's account summaries.
	FindUserByUserID(ctx context.Context, userID uuid.UUID) ApiResult[UserOverviewDTO]

	// UpdatePassword replaces the user's password. USER_NOT_FOUND if the
	// user is absent; PASSWORD_ERROR on a no-op change or a policy
	// violation.
	UpdatePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) ApiResult[uuid.UUID]
}

type userService struct {
	users    store.UserRepository
	accounts store.AccountRepository
	logger   *slog.Logger
}

// NewUserService creates a UserService backed by the given repositories.
func NewUserService(
	users store.UserRepository,
	accounts store.AccountRepository,
	log *slog.Logger,
) UserService {
	if log == nil {
		log = slog.Default()
	}
	return &userService{
		users:    users,
		accounts: accounts,
		logger:   log.With(slog.String("component", "user_service")),
	}
}

func (s *userService) CreateUser(ctx context.Context, dto UserDTO) ApiResult[uuid.UUID] {
	birthdate, err := parseBirthdate(dto.BirthDate, time.Now().UTC())
	if err != nil {
		s.logger.Debug("rejected user creation",
			slog.String("error", err.Error()))
		return Failure[uuid.UUID](ErrorMapping)
	}

	if err := validatePassword(dto.Password); err != nil {
		s.logger.Debug("rejected user creation", slog.String("error", err.Error()))
		return Failure[uuid.UUID](ErrorMapping)
	}

	user, err := domain.NewUser(dto.FirstName, dto.LastName, birthdate, dto.Password)
	if err != nil {
		s.logger.Debug("rejected user creation", slog.String("error", err.Error()))
		return Failure[uuid.UUID](ErrorMapping)
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		s.logger.Warn("failed to persist user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return Failure[uuid.UUID](ErrorDatabase)
	}

	s.logger.Info("user created", slog.String("user_id", saved.ID.String()))
	return Success(saved.ID)
}

func (s *userService) UpdateUser(ctx context.Context, dto UserDTO) ApiResult[uuid.UUID] {
	if dto.UserID == nil {
		return Failure[uuid.UUID](ErrorUserNotFound)
	}

	existing, err := s.users.FindByID(ctx, *dto.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return Failure[uuid.UUID](ErrorUserNotFound)
		}
		return Failure[uuid.UUID](ErrorDatabase)
	}

	// Validate before write: a failing DTO must leave the row untouched.
	birthdate, err := parseBirthdate(dto.BirthDate, time.Now().UTC())
	if err != nil {
		return Failure[uuid.UUID](ErrorMapping)
	}
	if err := validatePassword(dto.Password); err != nil {
		return Failure[uuid.UUID](ErrorMapping)
	}

	existing.FirstName = dto.FirstName
	existing.LastName = dto.LastName
	existing.Birthdate = birthdate
	existing.Password = dto.Password

	saved, err := s.users.Save(ctx, existing)
	if err != nil {
		s.logger.Warn("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", existing.ID.String()))
		return Failure[uuid.UUID](ErrorDatabase)
	}

	s.logger.Info("user updated", slog.String("user_id", saved.ID.String()))
	return Success(saved.ID)
}

func (s *userService) DeleteUser(ctx context.Context, userID string) ApiResult[uuid.UUID] {
	id, err := uuid.Parse(userID)
	if err != nil {
		s.logger.Debug("rejected user deletion: malformed identity token")
		return Failure[uuid.UUID](ErrorMapping)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return Failure[uuid.UUID](ErrorUserNotFound)
		}
		s.logger.Warn("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return Failure[uuid.UUID](ErrorDatabase)
	}

	s.logger.Info("user deleted", slog.String("user_id", id.String()))
	return Success(id)
}

func (s *userService) FindUserByUserID(ctx context.Context, userID uuid.UUID) ApiResult[UserOverviewDTO] {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return Failure[UserOverviewDTO](ErrorUserNotFound)
		}
		return Failure[UserOverviewDTO](ErrorDatabase)
	}

	accounts, err := s.accounts.FindAllByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to load accounts for overview",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return Failure[UserOverviewDTO](ErrorDatabase)
	}

	return Success(newUserOverview(user, accounts))
}

func (s *userService) UpdatePassword(
	ctx context.Context,
	userID uuid.UUID,
	oldPassword, newPassword string,
) ApiResult[uuid.UUID] {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return Failure[uuid.UUID](ErrorUserNotFound)
		}
		return Failure[uuid.UUID](ErrorDatabase)
	}

	// No-op changes are rejected before the policy check.
	if newPassword == oldPassword {
		return Failure[uuid.UUID](ErrorPassword)
	}
	if err := validatePassword(newPassword); err != nil {
		return Failure[uuid.UUID](ErrorPassword)
	}

	user.Password = newPassword
	saved, err := s.users.Save(ctx, user)
	if err != nil {
		s.logger.Warn("failed to update password",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return Failure[uuid.UUID](ErrorDatabase)
	}

	s.logger.Info("password updated", slog.String("user_id", saved.ID.String()))
	return Success(saved.ID)
}

func newUserOverview(user *domain.User, accounts []domain.Account) UserOverviewDTO {
	overview := UserOverviewDTO{
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Birthdate:   user.Birthdate.Format(birthdateLayout),
		Password:    user.Password,
		Created:     user.CreatedAt.Format(time.RFC3339),
		LastUpdated: user.UpdatedAt.Format(time.RFC3339),
		Accounts:    make([]AccountOverviewDTO, 0, len(accounts)),
	}
	for _, account := range accounts {
		overview.Accounts = append(overview.Accounts, newAccountOverview(&account))
	}
	return overview
}

func newAccountOverview(account *domain.Account) AccountOverviewDTO {
	return AccountOverviewDTO{
		AccountID:   account.ID,
		Name:        account.Name,
		Balance:     account.Balance,
		Dispo:       account.Dispo,
		Limit:       account.Limit,
		Created:     account.CreatedAt.Format(time.RFC3339),
		LastUpdated: account.UpdatedAt.Format(time.RFC3339),
	}
}
