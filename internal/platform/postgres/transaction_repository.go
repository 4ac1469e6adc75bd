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

// TransactionRepository implements store.TransactionRepository using a
// PostgreSQL database as the storage backend.
type TransactionRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewTransactionRepository creates a new PostgreSQL implementation of the
// store.TransactionRepository interface.
func NewTransactionRepository(db *sql.DB, log *slog.Logger) *TransactionRepository {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TransactionRepository{
		db:     db,
		logger: log.With(slog.String("component", "transaction_repository")),
	}
}

// Ensure TransactionRepository implements store.TransactionRepository
var _ store.TransactionRepository = (*TransactionRepository)(nil)

// Save implements store.TransactionRepository.Save.
// Only the first write for a given ID succeeds; transactions are never
// re-saved or updated. CreatedAt is stamped here, not taken from the caller.
func (r *TransactionRepository) Save(
	ctx context.Context,
	transaction *domain.Transaction,
) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if err := transaction.Validate(); err != nil {
		log.Warn("transaction validation failed during save",
			slog.String("error", err.Error()),
			slog.String("transaction_id", transaction.ID.String()))
		return nil, err
	}

	saved := *transaction
	err := store.RunInTransaction(ctx, r.db, func(ctx context.Context, tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM transactions WHERE id = $1)`, transaction.ID,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrTransactionExists
		}

		for _, accountID := range []uuid.UUID{transaction.OriginID, transaction.TargetID} {
			err = tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, accountID,
			).Scan(&exists)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("%w: %s", store.ErrAccountNotFound, accountID)
			}
		}

		now := time.Now().UTC()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO transactions (id, origin_id, target_id, amount, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			transaction.ID, transaction.OriginID, transaction.TargetID, transaction.Amount, now,
		)
		if err != nil {
			return err
		}

		saved.CreatedAt = now
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, store.ErrTransactionExists), store.IsNotFoundError(err):
			log.Debug("transaction save precondition failed",
				slog.String("error", err.Error()),
				slog.String("transaction_id", transaction.ID.String()))
			return nil, err
		case isForeignKeyViolation(err):
			// Account vanished between the existence check and the insert.
			return nil, fmt.Errorf("%w: transaction side", store.ErrAccountNotFound)
		default:
			log.Error("failed to save transaction",
				slog.String("error", err.Error()),
				slog.String("transaction_id", transaction.ID.String()))
			return nil, err
		}
	}

	log.Info("transaction recorded",
		slog.String("transaction_id", saved.ID.String()),
		slog.String("origin_id", saved.OriginID.String()),
		slog.String("target_id", saved.TargetID.String()))
	return &saved, nil
}

// FindByID implements store.TransactionRepository.FindByID.
func (r *TransactionRepository) FindByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	var transaction domain.Transaction
	err := r.db.QueryRowContext(ctx, `
		SELECT id, origin_id, target_id, amount, created_at
		FROM transactions
		WHERE id = $1`, id,
	).Scan(
		&transaction.ID,
		&transaction.OriginID,
		&transaction.TargetID,
		&transaction.Amount,
		&transaction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("transaction not found", slog.String("transaction_id", id.String()))
			return nil, store.ErrTransactionNotFound
		}
		log.Error("failed to get transaction by ID",
			slog.String("error", err.Error()),
			slog.String("transaction_id", id.String()))
		return nil, err
	}

	return &transaction, nil
}

// FindAllByAccount implements store.TransactionRepository.FindAllByAccount.
// The lookup is role-symmetric: the account may be origin or target.
func (r *TransactionRepository) FindAllByAccount(
	ctx context.Context,
	accountID uuid.UUID,
) ([]domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, origin_id, target_id, amount, created_at
		FROM transactions
		WHERE origin_id = $1 OR target_id = $1`, accountID,
	)
	if err != nil {
		log.Error("failed to list transactions for account",
			slog.String("error", err.Error()),
			slog.String("account_id", accountID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(
			&transaction.ID,
			&transaction.OriginID,
			&transaction.TargetID,
			&transaction.Amount,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
