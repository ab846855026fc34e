package postgres

import (
	"context"
	"fmt"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/jackc/pgx/v5"
)

// PriceRepo - репозиторий для работы с таблицей истории цен (price_history).
// Таблица только пополняется: UPDATE и DELETE здесь нет.
type PriceRepo struct {
	db DB
}

// NewPriceRepository - Создаёт новый репозиторий цен на основе пула соединений.
func NewPriceRepository(db DB) *PriceRepo {
	return &PriceRepo{db: db}
}

// appendPrice - добавляет наблюдение цены. Время проставляет база.
func appendPrice(ctx context.Context, q querier, obs *domain.PriceObservation) error {
	const query = `
		INSERT INTO price_history (coin_id, price, volume_24h, change_24h, market_cap)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, timestamp`

	return q.QueryRow(ctx, query, obs.CoinID, obs.Price, obs.Volume24h, obs.Change24h, obs.MarketCap).
		Scan(&obs.ID, &obs.Timestamp)
}

// RecordQuotes - В одной транзакции создаёт недостающие монеты и пишет по наблюдению на каждую котировку.
// Если хоть одна запись не удалась, не сохраняется ничего.
func (r *PriceRepo) RecordQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.LatestPrice, error) {
	if len(quotes) == 0 {
		return []domain.LatestPrice{}, nil
	}

	out := make([]domain.LatestPrice, 0, len(quotes))
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, q := range quotes {
			coin, err := upsertCoin(ctx, tx, q.Name, q.Symbol)
			if err != nil {
				return fmt.Errorf("coin %s: %w", q.Name, translateError(err))
			}
			obs := domain.PriceObservation{
				CoinID:    coin.ID,
				Price:     q.Price,
				Volume24h: q.Volume24h,
				Change24h: q.Change24h,
				MarketCap: q.MarketCap,
			}
			if err := appendPrice(ctx, tx, &obs); err != nil {
				return fmt.Errorf("price %s: %w", q.Name, translateError(err))
			}
			out = append(out, domain.LatestPrice{
				Name:      coin.Name,
				Symbol:    coin.Symbol,
				Price:     obs.Price,
				Timestamp: obs.Timestamp,
			})
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// GetLatestPrices - Последнее наблюдение по каждой монете. При равном времени берётся больший id.
func (r *PriceRepo) GetLatestPrices(ctx context.Context) ([]domain.LatestPrice, error) {
	const query = `
		SELECT c.name, c.symbol, p.price, p.timestamp
		FROM (
			SELECT DISTINCT ON (coin_id) coin_id, price, timestamp
			FROM price_history
			ORDER BY coin_id, timestamp DESC, id DESC
		) p
		JOIN coins c ON c.id = p.coin_id
		ORDER BY c.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.LatestPrice, 0)
	for rows.Next() {
		var lp domain.LatestPrice
		if err := rows.Scan(&lp.Name, &lp.Symbol, &lp.Price, &lp.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, lp)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// GetHistory - Вся история цен монеты, сначала новые.
func (r *PriceRepo) GetHistory(ctx context.Context, coinID int64) ([]domain.PriceObservation, error) {
	const query = `
		SELECT id, coin_id, price, volume_24h, change_24h, market_cap, timestamp
		FROM price_history
		WHERE coin_id = $1
		ORDER BY timestamp DESC, id DESC`

	rows, err := r.db.Query(ctx, query, coinID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.PriceObservation, 0)
	for rows.Next() {
		var p domain.PriceObservation
		if err := rows.Scan(&p.ID, &p.CoinID, &p.Price, &p.Volume24h, &p.Change24h, &p.MarketCap, &p.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
