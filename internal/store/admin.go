package store

import (
	"context"

	"github.com/geovannycode/banking-api/internal/domain"
)

// AdminRepository defines the interface for administrator persistence.
// Administrators have no relations to the other aggregates.
type AdminRepository interface {
	// Save inserts a new administrator. Returns ErrAdminExists if one with
	// the same name already exists.
	Save(ctx context.Context, admin *domain.Administrator) (*domain.Administrator, error)

	// FindByName retrieves an administrator by name.
	// Returns ErrAdminNotFound if it does not exist.
	FindByName(ctx context.Context, name string) (*domain.Administrator, error)
}
