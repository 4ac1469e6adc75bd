// Package store provides abstractions for data persistence: repository
// interfaces per entity, shared sentinel errors, and the unit-of-work helper
// every repository operation runs inside.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil and rolled back
// otherwise.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes the given function as one atomic unit-of-work.
// Every read-check-write sequence inside fn commits together or not at all;
// conflicting concurrent writers are serialized by the store's isolation
// level. Repeatable read is requested so a read-then-write uniqueness check
// cannot admit two rows that should have collided.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Error("failed to roll back transaction after panic",
					slog.String("error", rbErr.Error()),
					slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransactionFailed, err)
	}
	return nil
}
