package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyAccountID   = errors.New("account ID cannot be empty")
	ErrEmptyAccountName = errors.New("account name cannot be empty")
	ErrPositiveDispo    = errors.New("dispo must be zero or negative")
	ErrNegativeLimit    = errors.New("limit must be zero or positive")
)

// Account is a bank account optionally owned by a user. UserID is nil for an
// unlinked account: deleting a user or deleting the account itself clears the
// relation but keeps the row.
//
// Dispo is the overdraft floor (the most negative balance allowed), Limit the
// per-transaction ceiling. Account names are unique per owning user; two
// different users may both have an account called "Savings".
type Account struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Name      string     `json:"name"`
	Balance   float64    `json:"balance"`
	Dispo     float64    `json:"dispo"`
	Limit     float64    `json:"limit"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewAccount creates a new Account with a generated ID and no owner.
// Ownership is assigned by the repository at persist time.
func NewAccount(name string, balance, dispo, limit float64) (*Account, error) {
	account := &Account{
		ID:      uuid.New(),
		Name:    name,
		Balance: balance,
		Dispo:   dispo,
		Limit:   limit,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}
	if a.Name == "" {
		return ErrEmptyAccountName
	}
	if a.Dispo > 0 {
		return ErrPositiveDispo
	}
	if a.Limit < 0 {
		return ErrNegativeLimit
	}
	return nil
}
