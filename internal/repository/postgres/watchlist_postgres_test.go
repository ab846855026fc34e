package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository"
)

// Повторное добавление не ошибка: вставка без строк из-за ON CONFLICT DO NOTHING
func TestAddCoin_Idempotent(t *testing.T) {
	mock := newMockPool(t)
	repo := NewWatchlistRepository(mock)

	insert := regexp.QuoteMeta("ON CONFLICT (user_id, coin_id) DO NOTHING")
	mock.ExpectExec(insert).WithArgs(int64(1), int64(2)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(insert).WithArgs(int64(1), int64(2)).WillReturnResult(pgxmock.NewResult("INSERT", 0))

	require.NoError(t, repo.AddCoin(context.Background(), 1, 2))
	require.NoError(t, repo.AddCoin(context.Background(), 1, 2))
}

func TestAddCoin_UnknownCoin(t *testing.T) {
	mock := newMockPool(t)
	repo := NewWatchlistRepository(mock)

	mock.ExpectExec("INSERT INTO user_coins").
		WithArgs(int64(1), int64(99)).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "user_coins_coin_id_fkey"})

	assert.ErrorIs(t, repo.AddCoin(context.Background(), 1, 99), repository.ErrNotFound)
}

func TestRemoveCoin(t *testing.T) {
	mock := newMockPool(t)
	repo := NewWatchlistRepository(mock)

	del := regexp.QuoteMeta("DELETE FROM user_coins WHERE user_id = $1 AND coin_id = $2")
	mock.ExpectExec(del).WithArgs(int64(1), int64(2)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(del).WithArgs(int64(1), int64(2)).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.RemoveCoin(context.Background(), 1, 2))
	assert.ErrorIs(t, repo.RemoveCoin(context.Background(), 1, 2), repository.ErrNotFound)
}

func TestListCoins_ByName(t *testing.T) {
	mock := newMockPool(t)
	repo := NewWatchlistRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY c.name")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "symbol"}).
			AddRow(int64(2), "Bitcoin", "btc").
			AddRow(int64(1), "Ethereum", "eth"))

	got, err := repo.ListCoins(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Coin{{ID: 2, Name: "Bitcoin", Symbol: "btc"}, {ID: 1, Name: "Ethereum", Symbol: "eth"}}, got)
}

func TestIsTracking(t *testing.T) {
	mock := newMockPool(t)
	repo := NewWatchlistRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.IsTracking(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}
