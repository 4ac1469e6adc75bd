package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/geovannycode/banking-api/internal/store"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminService manages the independent administrator aggregate. Administrator
// credentials are bcrypt-hashed before they reach the store, unlike user
// passwords which the contract stores as given.
type AdminService interface {
	// CreateAdministrator hashes the password and persists a new
	// administrator. PASSWORD_ERROR on a policy violation, DATABASE_ERROR
	// on a name collision.
	CreateAdministrator(ctx context.Context, name, password string) ApiResult[uuid.UUID]

	// Login verifies the credentials. PASSWORD_ERROR covers both an unknown
	// name and a wrong password so callers cannot probe for names.
	Login(ctx context.Context, name, password string) ApiResult[uuid.UUID]
}

type adminService struct {
	admins store.AdminRepository
	logger *slog.Logger
}

// NewAdminService creates an AdminService backed by the given repository.
func NewAdminService(admins store.AdminRepository, log *slog.Logger) AdminService {
	if log == nil {
		log = slog.Default()
	}
	return &adminService{
		admins: admins,
		logger: log.With(slog.String("component", "admin_service")),
	}
}

func (s *adminService) CreateAdministrator(
	ctx context.Context,
	name, password string,
) ApiResult[uuid.UUID] {
	if err := validatePassword(password); err != nil {
		s.logger.Debug("rejected administrator creation", slog.String("name", name))
		return Failure[uuid.UUID](ErrorPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash administrator password",
			slog.String("error", err.Error()))
		return Failure[uuid.UUID](ErrorDatabase)
	}

	admin, err := domain.NewAdministrator(name, string(hashed))
	if err != nil {
		return Failure[uuid.UUID](ErrorMapping)
	}

	saved, err := s.admins.Save(ctx, admin)
	if err != nil {
		s.logger.Warn("failed to persist administrator",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return Failure[uuid.UUID](ErrorDatabase)
	}

	s.logger.Info("administrator created", slog.String("admin_id", saved.ID.String()))
	return Success(saved.ID)
}

func (s *adminService) Login(ctx context.Context, name, password string) ApiResult[uuid.UUID] {
	admin, err := s.admins.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			return Failure[uuid.UUID](ErrorPassword)
		}
		return Failure[uuid.UUID](ErrorDatabase)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(password)); err != nil {
		s.logger.Debug("administrator login rejected", slog.String("name", name))
		return Failure[uuid.UUID](ErrorPassword)
	}

	return Success(admin.ID)
}
