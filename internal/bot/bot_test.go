package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/fetch"
	"github.com/stretchr/testify/assert"
)

type stubPrices struct {
	latest  []domain.LatestPrice
	history map[string][]domain.PriceObservation
	err     error
}

func (s stubPrices) GetLatestPrices(context.Context) ([]domain.LatestPrice, error) {
	return s.latest, s.err
}

func (s stubPrices) GetHistory(_ context.Context, name string) ([]domain.PriceObservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	h, ok := s.history[name]
	if !ok {
		return nil, domain.ErrCoinNotFound
	}
	return h, nil
}

type stubSync struct {
	res fetch.SyncResult
	err error
}

func (s stubSync) Sync(context.Context) (fetch.SyncResult, error) { return s.res, s.err }

var ts = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestBot(p stubPrices, s stubSync) *Bot {
	return newBot(p, s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPricesReply(t *testing.T) {
	b := newTestBot(stubPrices{latest: []domain.LatestPrice{
		{Name: "Bitcoin", Symbol: "btc", Price: 65000.123, Timestamp: ts},
	}}, stubSync{})

	got := b.pricesReply(context.Background())
	assert.Equal(t, "Bitcoin (BTC) | Текущая цена: 65000.12 | Обновлено: 2025-09-01T12:00:00Z\n", got)
}

func TestPricesReply_EmptyAndError(t *testing.T) {
	assert.Equal(t, "Данные о цене не найдены", newTestBot(stubPrices{}, stubSync{}).pricesReply(context.Background()))
	assert.Equal(t, "Внутренняя ошибка сервиса, попробуйте позже",
		newTestBot(stubPrices{err: errors.New("db down")}, stubSync{}).pricesReply(context.Background()))
}

func TestHistoryReply(t *testing.T) {
	history := make([]domain.PriceObservation, 0, 15)
	for i := 15; i > 0; i-- {
		history = append(history, domain.PriceObservation{ID: int64(i), Price: float64(i), Timestamp: ts.Add(time.Duration(i) * time.Minute)})
	}
	b := newTestBot(stubPrices{history: map[string][]domain.PriceObservation{
		"Bitcoin":      history,
		"Binance Coin": history[:1],
	}}, stubSync{})

	got := b.historyReply(context.Background(), []string{"Bitcoin"})
	assert.True(t, strings.HasPrefix(got, "[Bitcoin] последние 10:\n"), got)
	assert.Contains(t, got, "2025-09-01 12:15:00  15.00")

	got = b.historyReply(context.Background(), []string{"Bitcoin", "3"})
	assert.True(t, strings.HasPrefix(got, "[Bitcoin] последние 3:\n"), got)

	got = b.historyReply(context.Background(), []string{"Binance", "Coin"})
	assert.True(t, strings.HasPrefix(got, "[Binance Coin] последние 1:\n"), got)

	assert.Equal(t, "Валюта не найдена", b.historyReply(context.Background(), []string{"Nocoin"}))
	assert.Contains(t, b.historyReply(context.Background(), nil), "/history")
}

func TestUpdateReply(t *testing.T) {
	ok := newTestBot(stubPrices{}, stubSync{res: fetch.SyncResult{Count: 7}})
	assert.Equal(t, "Обновлено монет: 7", ok.updateReply(context.Background()))

	down := newTestBot(stubPrices{}, stubSync{err: fmt.Errorf("%w: timeout", domain.ErrUpstream)})
	assert.Equal(t, "Источник цен недоступен, попробуйте позже", down.updateReply(context.Background()))
}

func TestParseLimit(t *testing.T) {
	n, err := parseLimit("5")
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = parseLimit("500")
	assert.NoError(t, err)
	assert.Equal(t, maxHistoryLimit, n)

	_, err = parseLimit("0")
	assert.ErrorIs(t, err, ErrInvalidLimit)
	_, err = parseLimit("ten")
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
