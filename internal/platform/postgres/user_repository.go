package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/geovannycode/banking-api/internal/platform/logger"
	"github.com/geovannycode/banking-api/internal/store"
	"github.com/google/uuid"
)

// UserRepository implements store.UserRepository using a PostgreSQL database
// as the storage backend.
type UserRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL implementation of the
// store.UserRepository interface. It accepts a database connection that
// should be initialized and managed by the caller. If logger is nil, the
// default logger is used.
func NewUserRepository(db *sql.DB, log *slog.Logger) *UserRepository {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UserRepository{
		db:     db,
		logger: log.With(slog.String("component", "user_repository")),
	}
}

// Ensure UserRepository implements store.UserRepository
var _ store.UserRepository = (*UserRepository)(nil)

// Save implements store.UserRepository.Save.
// Insert and update share one entry point keyed by the user ID: the existing
// row decides which branch runs, inside a single unit-of-work.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during save",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, err
	}

	saved := *user
	err := store.RunInTransaction(ctx, r.db, func(ctx context.Context, tx *sql.Tx) error {
		now := time.Now().UTC()

		var created time.Time
		err := tx.QueryRowContext(ctx,
			`SELECT created_at FROM users WHERE id = $1`, user.ID,
		).Scan(&created)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			_, err = tx.ExecContext(ctx, `
				INSERT INTO users (id, first_name, last_name, birthdate, password, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				user.ID, user.FirstName, user.LastName, user.Birthdate, user.Password, now, now,
			)
			if err != nil {
				return err
			}
			saved.CreatedAt = now
			saved.UpdatedAt = now
			return nil
		case err != nil:
			return err
		default:
			// Existing row: overwrite mutable fields, preserve created_at.
			_, err = tx.ExecContext(ctx, `
				UPDATE users
				SET first_name = $2, last_name = $3, birthdate = $4, password = $5, updated_at = $6
				WHERE id = $1`,
				user.ID, user.FirstName, user.LastName, user.Birthdate, user.Password, now,
			)
			if err != nil {
				return err
			}
			saved.CreatedAt = created
			saved.UpdatedAt = now
			return nil
		}
	})

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("unique constraint violation during user save",
				slog.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("%w: user identity", store.ErrConstraintViolation)
		}
		log.Error("failed to save user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, err
	}

	log.Info("user saved", slog.String("user_id", saved.ID.String()))
	return &saved, nil
}

// Delete implements store.UserRepository.Delete.
// The user's accounts are not touched here: the accounts.user_id foreign key
// is declared ON DELETE SET NULL, so the store clears the owner relation of
// every dependent account as part of the same statement.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, r.logger)

	err := store.RunInTransaction(ctx, r.db, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return store.ErrUserNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("user not found for delete", slog.String("user_id", id.String()))
		} else {
			log.Error("failed to delete user",
				slog.String("error", err.Error()),
				slog.String("user_id", id.String()))
		}
		return err
	}

	log.Info("user deleted", slog.String("user_id", id.String()))
	return nil
}

// FindByID implements store.UserRepository.FindByID.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	var user domain.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, birthdate, password, created_at, updated_at
		FROM users
		WHERE id = $1`, id,
	).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Birthdate,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	return &user, nil
}
