package store

import (
	"context"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/google/uuid"
)

// TransactionRepository defines the interface for bank transaction
// persistence. Transactions are write-once: there is no update or delete.
type TransactionRepository interface {
	// Save persists a new transaction, stamping CreatedAt at write time.
	// Caller-supplied creation times are not trusted. Returns
	// ErrTransactionExists if a transaction with the same ID was already
	// persisted and ErrAccountNotFound if origin or target is not a
	// persisted account.
	Save(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)

	// FindByID retrieves a transaction by ID.
	// Returns ErrTransactionNotFound if it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)

	// FindAllByAccount returns every transaction in which the account is
	// either origin or target. No ordering is guaranteed beyond the store
	// default.
	FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Transaction, error)
}
