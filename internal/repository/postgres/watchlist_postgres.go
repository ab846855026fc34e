package postgres

import (
	"context"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository"
)

// WatchlistRepo - связи пользователь-монета (таблица user_coins).
type WatchlistRepo struct {
	db DB
}

func NewWatchlistRepository(db DB) *WatchlistRepo {
	return &WatchlistRepo{db: db}
}

// AddCoin добавляет монету в список пользователя. Повторное добавление ничего не меняет.
// Несуществующий пользователь или монета дают repository.ErrNotFound.
func (r *WatchlistRepo) AddCoin(ctx context.Context, userID, coinID int64) error {
	query := `
	INSERT INTO user_coins (user_id, coin_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, coin_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, userID, coinID)
	return translateError(err)
}

// RemoveCoin удаляет монету из списка. Если пары не было - repository.ErrNotFound.
func (r *WatchlistRepo) RemoveCoin(ctx context.Context, userID, coinID int64) error {
	query := `DELETE FROM user_coins WHERE user_id = $1 AND coin_id = $2`
	tag, err := r.db.Exec(ctx, query, userID, coinID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListCoins возвращает монеты пользователя, отсортированные по имени.
func (r *WatchlistRepo) ListCoins(ctx context.Context, userID int64) ([]domain.Coin, error) {
	query := `
	SELECT c.id, c.name, c.symbol
	FROM user_coins uc
	JOIN coins c ON c.id = uc.coin_id
	WHERE uc.user_id = $1
	ORDER BY c.name`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Coin, 0)
	for rows.Next() {
		var c domain.Coin
		if err := rows.Scan(&c.ID, &c.Name, &c.Symbol); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// IsTracking отвечает, есть ли монета в списке пользователя.
func (r *WatchlistRepo) IsTracking(ctx context.Context, userID, coinID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_coins WHERE user_id = $1 AND coin_id = $2)`
	var ok bool
	err := r.db.QueryRow(ctx, query, userID, coinID).Scan(&ok)
	return ok, err
}
