package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/platform/logger"
)

// TxFn runs inside a database transaction. Returning nil commits the
// transaction; returning an error rolls it back, and that error reaches
// the caller unwrapped so sentinel checks keep working.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction wraps fn in a transaction on db. The review flow depends
// on this for its read-grade-write cycle: either the rescheduled card state
// commits whole, or nothing does. A panic inside fn rolls the transaction
// back and then propagates.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("rollback after panic failed", "error", rbErr, "panic", p)
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("transaction rollback failed", "rollback_error", rbErr, "cause", err)
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		log.Debug("transaction rolled back", "cause", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
