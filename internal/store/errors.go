package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all repository implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic root of the entity-specific not found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrConstraintViolation is returned when a write is rejected by a store
	// constraint the caller did not pre-check, such as the per-owner account
	// name index or the user identity triple.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrTransactionFailed is returned when a unit-of-work fails to commit or
	// an operation inside it fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrAccountNotFound indicates that the requested account does not exist.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrTransactionNotFound indicates that the requested bank transaction
	// does not exist.
	ErrTransactionNotFound = fmt.Errorf("%w: bank transaction", ErrNotFound)

	// ErrAdminNotFound indicates that the requested administrator does not exist.
	ErrAdminNotFound = fmt.Errorf("%w: administrator", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrAccountExists indicates that an account with the given ID already
	// exists. Account creation is not an upsert; an existing row rejects the
	// call.
	ErrAccountExists = fmt.Errorf("%w: account", ErrDuplicate)

	// ErrTransactionExists indicates a write for a transaction ID that was
	// already persisted. Bank transactions are immutable; only the first
	// write succeeds.
	ErrTransactionExists = fmt.Errorf("%w: bank transaction", ErrDuplicate)

	// ErrAdminExists indicates that an administrator with the given name
	// already exists.
	ErrAdminExists = fmt.Errorf("%w: administrator", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
