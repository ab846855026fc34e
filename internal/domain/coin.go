package domain

import "time"

// Coin - отслеживаемая криптовалюта
type Coin struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`   // Bitcoin
	Symbol string `json:"symbol"` // btc
}

// PriceObservation - одна запись истории цен монеты. После записи не меняется.
type PriceObservation struct {
	ID        int64     `json:"id"`
	CoinID    int64     `json:"coin_id"`
	Price     float64   `json:"price"`
	Volume24h *float64  `json:"volume_24h"`
	Change24h *float64  `json:"change_24h"`
	MarketCap *float64  `json:"market_cap"`
	Timestamp time.Time `json:"timestamp"`
}

// LatestPrice - последняя цена монеты вместе с её именем и символом
type LatestPrice struct {
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// Quote - котировка из внешнего фида, ещё не записанная в историю
type Quote struct {
	Name      string
	Symbol    string
	Price     float64
	Volume24h *float64
	Change24h *float64
	MarketCap *float64
}
