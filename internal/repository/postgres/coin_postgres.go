package postgres

import (
	"context"
	"errors"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/jackc/pgx/v5"
)

type CoinRepo struct {
	db DB
}

// NewCoinRepository - Создаёт новый репозиторий монет на основе пула соединений.
func NewCoinRepository(db DB) *CoinRepo {
	return &CoinRepo{db: db}
}

// GetAllCoins - Получить список всех монет из таблицы coins
func (r *CoinRepo) GetAllCoins(ctx context.Context) ([]domain.Coin, error) {
	query := `SELECT id, name, symbol FROM coins ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coins := make([]domain.Coin, 0)
	for rows.Next() {
		var coin domain.Coin
		if err := rows.Scan(&coin.ID, &coin.Name, &coin.Symbol); err != nil {
			return nil, err
		}
		coins = append(coins, coin)
	}
	return coins, rows.Err()
}

// GetCoinByID - Найти монету по идентификатору
func (r *CoinRepo) GetCoinByID(ctx context.Context, id int64) (*domain.Coin, error) {
	query := `SELECT id, name, symbol FROM coins WHERE id = $1;`

	var coin domain.Coin
	if err := r.db.QueryRow(ctx, query, id).Scan(&coin.ID, &coin.Name, &coin.Symbol); err != nil {
		return nil, translateError(err)
	}
	return &coin, nil
}

// GetCoinByName - Найти монету по имени без учёта регистра
func (r *CoinRepo) GetCoinByName(ctx context.Context, name string) (*domain.Coin, error) {
	query := `SELECT id, name, symbol FROM coins WHERE LOWER(name) = LOWER($1);`

	var coin domain.Coin
	if err := r.db.QueryRow(ctx, query, name).Scan(&coin.ID, &coin.Name, &coin.Symbol); err != nil {
		return nil, translateError(err)
	}
	return &coin, nil
}

// UpsertCoin - Вернуть монету с таким именем или создать новую.
func (r *CoinRepo) UpsertCoin(ctx context.Context, name, symbol string) (domain.Coin, error) {
	var coin domain.Coin
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		coin, err = upsertCoin(ctx, tx, name, symbol)
		return err
	})
	if err != nil {
		return domain.Coin{}, translateError(err)
	}
	return coin, nil
}

// upsertCoin - монета с таким именем возвращается как есть. Если имени нет, но символ
// уже занят, монета переименована в каталоге: строка получает новое имя и сохраняет историю.
func upsertCoin(ctx context.Context, q querier, name, symbol string) (domain.Coin, error) {
	const (
		byName = `SELECT id, name, symbol FROM coins WHERE name = $1`
		rename = `UPDATE coins SET name = $1 WHERE symbol = $2 RETURNING id, name, symbol`
		// DO UPDATE нужен только чтобы RETURNING вернул строку при гонке двух вставок
		insert = `
		INSERT INTO coins (name, symbol)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, symbol`
	)

	var coin domain.Coin
	err := q.QueryRow(ctx, byName, name).Scan(&coin.ID, &coin.Name, &coin.Symbol)
	if !errors.Is(err, pgx.ErrNoRows) {
		return coin, err
	}
	err = q.QueryRow(ctx, rename, name, symbol).Scan(&coin.ID, &coin.Name, &coin.Symbol)
	if !errors.Is(err, pgx.ErrNoRows) {
		return coin, err
	}
	err = q.QueryRow(ctx, insert, name, symbol).Scan(&coin.ID, &coin.Name, &coin.Symbol)
	return coin, err
}
