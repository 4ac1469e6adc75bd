package store

import (
	"context"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence.
// Each operation is one atomic unit-of-work against the store.
type UserRepository interface {
	// Save persists the user, keyed by its ID. If no row with the ID exists
	// a new one is inserted with created and updated stamped to now; if one
	// exists its mutable fields are overwritten, created is preserved and
	// updated refreshed. Returns the persisted snapshot with server-assigned
	// timestamps.
	// Uniqueness of the ID and of the (first name, last name, birthdate)
	// triple is enforced by the store; a violation surfaces as
	// ErrConstraintViolation.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)

	// Delete removes the user row. Returns ErrUserNotFound if no row with
	// the given ID exists. The user's accounts are not cascade-deleted; the
	// store clears their owner relation instead.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
