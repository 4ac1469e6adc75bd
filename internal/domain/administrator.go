package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyAdminID        = errors.New("administrator ID cannot be empty")
	ErrEmptyAdminName      = errors.New("administrator name cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Administrator is an independent back-office aggregate with no relations to
// users, accounts or transactions. Unlike user passwords, administrator
// credentials are stored bcrypt-hashed.
type Administrator struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"`
}

// NewAdministrator creates a new Administrator with a generated ID.
// The caller is responsible for hashing the password before persisting.
func NewAdministrator(name, hashedPassword string) (*Administrator, error) {
	admin := &Administrator{
		ID:             uuid.New(),
		Name:           name,
		HashedPassword: hashedPassword,
	}

	if err := admin.Validate(); err != nil {
		return nil, err
	}

	return admin, nil
}

// Validate checks if the Administrator has valid data.
func (a *Administrator) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAdminID
	}
	if a.Name == "" {
		return ErrEmptyAdminName
	}
	if a.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}
