package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTransactionID = errors.New("transaction ID cannot be empty")
	ErrEmptyOriginID      = errors.New("origin account ID cannot be empty")
	ErrEmptyTargetID      = errors.New("target account ID cannot be empty")
)

// Transaction records a transfer of Amount between two persisted accounts.
// It does not adjust account balances; it is a movement record only.
//
// Transactions are immutable once persisted: there is no update path, and
// CreatedAt is stamped by the repository at write time regardless of what the
// caller supplies.
type Transaction struct {
	ID        uuid.UUID `json:"id"`
	OriginID  uuid.UUID `json:"origin_id"`
	TargetID  uuid.UUID `json:"target_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTransaction creates a new Transaction with a generated ID.
func NewTransaction(originID, targetID uuid.UUID, amount float64) (*Transaction, error) {
	tx := &Transaction{
		ID:       uuid.New(),
		OriginID: originID,
		TargetID: targetID,
		Amount:   amount,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	return tx, nil
}

// Validate checks if the Transaction has valid data.
func (t *Transaction) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTransactionID
	}
	if t.OriginID == uuid.Nil {
		return ErrEmptyOriginID
	}
	if t.TargetID == uuid.Nil {
		return ErrEmptyTargetID
	}
	return nil
}
