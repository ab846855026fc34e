package postgres

import (
	"context"
	"errors"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// querier - общее подмножество pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB - пул соединений, с которым работают репозитории
type DB interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// constraintFields - какое поле нарушено для именованных ограничений схемы
var constraintFields = map[string]string{
	"users_username_key":         "username",
	"users_email_key":            "email",
	"coins_name_key":             "name",
	"coins_symbol_key":           "symbol",
	"user_coins_user_id_fkey":    "user",
	"user_coins_coin_id_fkey":    "coin",
	"price_history_coin_id_fkey": "coin",
}

// translateError - переводит ошибки Postgres в ошибки репозитория
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			field, ok := constraintFields[pgErr.ConstraintName]
			if !ok {
				field = pgErr.ConstraintName
			}
			return &repository.ConflictError{Field: field}
		case foreignKeyViolation:
			return repository.ErrNotFound
		}
	}
	return err
}
