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

// AccountRepository implements store.AccountRepository using a PostgreSQL
// database as the storage backend.
type AccountRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewAccountRepository creates a new PostgreSQL implementation of the
// store.AccountRepository interface.
func NewAccountRepository(db *sql.DB, log *slog.Logger) *AccountRepository {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AccountRepository{
		db:     db,
		logger: log.With(slog.String("component", "account_repository")),
	}
}

// Ensure AccountRepository implements store.AccountRepository
var _ store.AccountRepository = (*AccountRepository)(nil)

// userExists reports whether a user row with the given ID is persisted.
// Runs inside the caller's transaction so the check and the dependent write
// are covered by the same isolation guarantees.
func userExists(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID,
	).Scan(&exists)
	return exists, err
}

// SaveForUser implements store.AccountRepository.SaveForUser.
// Creation is not an upsert: an existing account with the same ID rejects the
// call with ErrAccountExists so the caller can distinguish duplicate-create
// from update. The per-owner name uniqueness is left to the store's unique
// index and surfaces as ErrConstraintViolation.
func (r *AccountRepository) SaveForUser(
	ctx context.Context,
	userID uuid.UUID,
	account *domain.Account,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during save",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return nil, err
	}

	saved := *account
	err := store.RunInTransaction(ctx, r.db, func(ctx context.Context, tx *sql.Tx) error {
		exists, err := userExists(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return store.ErrUserNotFound
		}

		var accountExists bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, account.ID,
		).Scan(&accountExists)
		if err != nil {
			return err
		}
		if accountExists {
			return store.ErrAccountExists
		}

		now := time.Now().UTC()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO accounts (id, user_id, name, balance, dispo, credit_limit, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			account.ID, userID, account.Name, account.Balance, account.Dispo, account.Limit, now, now,
		)
		if err != nil {
			return err
		}

		owner := userID
		saved.UserID = &owner
		saved.CreatedAt = now
		saved.UpdatedAt = now
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound), errors.Is(err, store.ErrAccountExists):
			log.Debug("account save precondition failed",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()),
				slog.String("user_id", userID.String()))
			return nil, err
		case isUniqueViolation(err):
			log.Warn("duplicate account name for owner",
				slog.String("account_name", account.Name),
				slog.String("user_id", userID.String()))
			return nil, fmt.Errorf("%w: account name for owner", store.ErrConstraintViolation)
		default:
			log.Error("failed to save account",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()))
			return nil, err
		}
	}

	log.Info("account created",
		slog.String("account_id", saved.ID.String()),
		slog.String("user_id", userID.String()))
	return &saved, nil
}

// UpdateForUser implements store.AccountRepository.UpdateForUser.
// Both the user and the account must already be persisted; the account's
// mutable fields are overwritten in place and ownership re-linked.
func (r *AccountRepository) UpdateForUser(
	ctx context.Context,
	userID uuid.UUID,
	account *domain.Account,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return nil, err
	}

	saved := *account
	err := store.RunInTransaction(ctx, r.db, func(ctx context.Context, tx *sql.Tx) error {
		exists, err := userExists(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return store.ErrUserNotFound
		}

		var created time.Time
		err = tx.QueryRowContext(ctx,
			`SELECT created_at FROM accounts WHERE id = $1`, account.ID,
		).Scan(&created)
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrAccountNotFound
		}
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		_, err = tx.ExecContext(ctx, `
			UPDATE accounts
			SET user_id = $2, name = $3, balance = $4, dispo = $5, credit_limit = $6, updated_at = $7
			WHERE id = $1`,
			account.ID, userID, account.Name, account.Balance, account.Dispo, account.Limit, now,
		)
		if err != nil {
			return err
		}

		owner := userID
		saved.UserID = &owner
		saved.CreatedAt = created
		saved.UpdatedAt = now
		return nil
	})

	if err != nil {
		switch {
		case store.IsNotFoundError(err):
			log.Debug("account update precondition failed",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()))
			return nil, err
		case isUniqueViolation(err):
			return nil, fmt.Errorf("%w: account name for owner", store.ErrConstraintViolation)
		default:
			log.Error("failed to update account",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()))
			return nil, err
		}
	}

	log.Info("account updated", slog.String("account_id", saved.ID.String()))
	return &saved, nil
}

// Delete implements store.AccountRepository.Delete.
// This is the unlink contract: the owner relation is cleared and the row is
// retained, so an orphaned account stays queryable by ID.
func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, r.logger)

	err := store.RunInTransaction(ctx, r.db, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE accounts SET user_id = NULL WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return store.ErrAccountNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Debug("account not found for delete", slog.String("account_id", id.String()))
		} else {
			log.Error("failed to unlink account",
				slog.String("error", err.Error()),
				slog.String("account_id", id.String()))
		}
		return err
	}

	log.Info("account unlinked from owner", slog.String("account_id", id.String()))
	return nil
}

// FindByID implements store.AccountRepository.FindByID.
func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	account, err := scanAccount(r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, balance, dispo, credit_limit, created_at, updated_at
		FROM accounts
		WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.String("account_id", id.String()))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", err.Error()),
			slog.String("account_id", id.String()))
		return nil, err
	}

	return account, nil
}

// FindAllByUser implements store.AccountRepository.FindAllByUser.
func (r *AccountRepository) FindAllByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, balance, dispo, credit_limit, created_at, updated_at
		FROM accounts
		WHERE user_id = $1`, userID,
	)
	if err != nil {
		log.Error("failed to list accounts for user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*domain.Account, error) {
	var account domain.Account
	var owner uuid.NullUUID
	err := s.Scan(
		&account.ID,
		&owner,
		&account.Name,
		&account.Balance,
		&account.Dispo,
		&account.Limit,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if owner.Valid {
		account.UserID = &owner.UUID
	}
	return &account, nil
}
