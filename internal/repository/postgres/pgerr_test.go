package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository"
)

func TestTranslateError_UniqueViolation(t *testing.T) {
	cases := []struct {
		constraint string
		field      string
	}{
		{"users_username_key", "username"},
		{"users_email_key", "email"},
		{"coins_name_key", "name"},
		{"coins_symbol_key", "symbol"},
		{"some_new_key", "some_new_key"},
	}
	for _, tc := range cases {
		err := translateError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: tc.constraint})

		var conflict *repository.ConflictError
		require.ErrorAs(t, err, &conflict, tc.constraint)
		assert.Equal(t, tc.field, conflict.Field)
		assert.ErrorIs(t, err, repository.ErrConflict)
	}
}

func TestTranslateError_NotFound(t *testing.T) {
	fk := &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "user_coins_coin_id_fkey"}

	assert.ErrorIs(t, translateError(fk), repository.ErrNotFound)
	assert.ErrorIs(t, translateError(pgx.ErrNoRows), repository.ErrNotFound)
	assert.ErrorIs(t, translateError(fmt.Errorf("scan: %w", pgx.ErrNoRows)), repository.ErrNotFound)
}

func TestTranslateError_PassThrough(t *testing.T) {
	assert.NoError(t, translateError(nil))

	other := errors.New("connection reset")
	assert.Same(t, other, translateError(other))

	check := &pgconn.PgError{Code: "23514"}
	assert.Same(t, check, translateError(check))
}
