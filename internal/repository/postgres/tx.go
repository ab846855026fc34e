package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// withTx - выполняет fn в транзакции: commit при успехе, rollback при ошибке
func withTx(ctx context.Context, db DB, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
