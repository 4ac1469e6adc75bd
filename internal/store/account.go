package store

import (
	"context"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for account persistence.
// Each operation is one atomic unit-of-work against the store.
type AccountRepository interface {
	// SaveForUser inserts a new account owned by the given user, stamping
	// created and updated to now. Returns ErrUserNotFound if the user is not
	// persisted and ErrAccountExists if an account with the same ID already
	// exists; creation is not an upsert. A duplicate name for the same owner
	// is rejected by the store's unique index and surfaces as
	// ErrConstraintViolation.
	SaveForUser(ctx context.Context, userID uuid.UUID, account *domain.Account) (*domain.Account, error)

	// UpdateForUser overwrites the mutable fields of an existing account,
	// refreshes updated and re-links ownership to the given user. Returns
	// ErrUserNotFound or ErrAccountNotFound if either side is not persisted.
	UpdateForUser(ctx context.Context, userID uuid.UUID, account *domain.Account) (*domain.Account, error)

	// Delete unlinks the account from its owner: the owner relation is set
	// to absent and the row itself is retained. Returns ErrAccountNotFound
	// if no account with the given ID exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves an account by ID.
	// Returns ErrAccountNotFound if the account does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// FindAllByUser returns every account currently owned by the given user.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Account, error)
}
