package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/geovannycode/banking-api/internal/platform/logger"
	"github.com/geovannycode/banking-api/internal/store"
)

// AdminRepository implements store.AdminRepository using a PostgreSQL
// database as the storage backend.
type AdminRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewAdminRepository creates a new PostgreSQL implementation of the
// store.AdminRepository interface.
func NewAdminRepository(db *sql.DB, log *slog.Logger) *AdminRepository {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AdminRepository{
		db:     db,
		logger: log.With(slog.String("component", "admin_repository")),
	}
}

// Ensure AdminRepository implements store.AdminRepository
var _ store.AdminRepository = (*AdminRepository)(nil)

// Save implements store.AdminRepository.Save.
func (r *AdminRepository) Save(
	ctx context.Context,
	admin *domain.Administrator,
) (*domain.Administrator, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if err := admin.Validate(); err != nil {
		return nil, err
	}

	err := store.RunInTransaction(ctx, r.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO administrators (id, name, password)
			VALUES ($1, $2, $3)`,
			admin.ID, admin.Name, admin.HashedPassword,
		)
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("administrator already exists", slog.String("name", admin.Name))
			return nil, fmt.Errorf("%w: %s", store.ErrAdminExists, admin.Name)
		}
		log.Error("failed to save administrator",
			slog.String("error", err.Error()),
			slog.String("admin_id", admin.ID.String()))
		return nil, err
	}

	log.Info("administrator created", slog.String("admin_id", admin.ID.String()))
	return admin, nil
}

// FindByName implements store.AdminRepository.FindByName.
func (r *AdminRepository) FindByName(
	ctx context.Context,
	name string,
) (*domain.Administrator, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	var admin domain.Administrator
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, password
		FROM administrators
		WHERE name = $1`, name,
	).Scan(&admin.ID, &admin.Name, &admin.HashedPassword)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("administrator not found", slog.String("name", name))
			return nil, store.ErrAdminNotFound
		}
		log.Error("failed to get administrator by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, err
	}

	return &admin, nil
}
