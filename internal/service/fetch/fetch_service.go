package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/config"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/metrics"
)

//go:generate mockgen -destination=mocks/mock_fetch.go -package=mocks . PriceProvider,QuoteRecorder,CoinUpserter

// syncTimeout ограничивает одну синхронизацию, общую для всех ожидающих её вызовов
const syncTimeout = 30 * time.Second

type Service interface {
	// Sync - запрашивает цены всех монет каталога и пишет их в историю одной транзакцией
	Sync(ctx context.Context) (SyncResult, error)
	// Seed - создаёт в БД все монеты каталога
	Seed(ctx context.Context) error
}

type PriceProvider interface {
	FetchPrices(ctx context.Context, feedIDs []string) (map[string]domain.Quote, error)
}

type QuoteRecorder interface {
	RecordQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.LatestPrice, error)
}

type CoinUpserter interface {
	UpsertCoin(ctx context.Context, name, symbol string) (domain.Coin, error)
}

// SyncResult - записанные цены, в порядке каталога
type SyncResult struct {
	Count int                  `json:"count"`
	Items []domain.LatestPrice `json:"data"`
}

type fetchService struct {
	provider PriceProvider
	recorder QuoteRecorder
	coins    CoinUpserter
	catalog  []config.CoinEntry
	logger   *slog.Logger

	group singleflight.Group
	// joined вызывается, когда вызов Sync присоединился к общей синхронизации
	joined func()
}

// NewService - конструктор сервиса синхронизации цен с внешним фидом.
func NewService(provider PriceProvider, recorder QuoteRecorder, coins CoinUpserter,
	catalog []config.CoinEntry, logger *slog.Logger) Service {
	return &fetchService{
		provider: provider,
		recorder: recorder,
		coins:    coins,
		catalog:  catalog,
		logger:   logger,
	}
}

// Sync - одновременные вызовы объединяются: пока идёт синхронизация,
// новые вызовы ждут её и получают тот же результат.
func (s *fetchService) Sync(ctx context.Context) (SyncResult, error) {
	ch := s.group.DoChan("sync", func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), syncTimeout)
		defer cancel()
		return s.syncOnce(runCtx)
	})
	if s.joined != nil {
		s.joined()
	}

	select {
	case res := <-ch:
		if res.Shared {
			s.logger.Debug("sync result shared with concurrent caller")
		}
		if res.Err != nil {
			return SyncResult{}, res.Err
		}
		return res.Val.(SyncResult), nil
	case <-ctx.Done():
		return SyncResult{}, ctx.Err()
	}
}

func (s *fetchService) syncOnce(ctx context.Context) (SyncResult, error) {
	started := time.Now()
	defer func() {
		metrics.SyncDuration.Observe(time.Since(started).Seconds())
	}()

	feedIDs := make([]string, 0, len(s.catalog))
	for _, c := range s.catalog {
		feedIDs = append(feedIDs, c.FeedID)
	}

	prices, err := s.provider.FetchPrices(ctx, feedIDs)
	if err != nil {
		metrics.SyncRuns.WithLabelValues(metrics.ResultUpstreamError).Inc()
		s.logger.Error("fetch prices", slog.Any("err", err))
		return SyncResult{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	quotes := make([]domain.Quote, 0, len(s.catalog))
	for _, c := range s.catalog {
		q, ok := prices[c.FeedID]
		if !ok {
			metrics.CoinsSkipped.Inc()
			s.logger.Warn("missing price for coin", slog.String("coin", c.Name), slog.String("feed_id", c.FeedID))
			continue // нет пригодной цены в ответе
		}
		q.Name = c.Name
		q.Symbol = c.Symbol
		quotes = append(quotes, q)
	}

	if len(quotes) == 0 {
		metrics.SyncRuns.WithLabelValues(metrics.ResultSuccess).Inc()
		s.logger.Warn("sync finished without prices")
		return SyncResult{Count: 0, Items: []domain.LatestPrice{}}, nil
	}

	items, err := s.recorder.RecordQuotes(ctx, quotes)
	if err != nil {
		metrics.SyncRuns.WithLabelValues(metrics.ResultStoreError).Inc()
		s.logger.Error("record quotes", slog.Any("err", err))
		return SyncResult{}, fmt.Errorf("record quotes: %w", err)
	}

	metrics.SyncRuns.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.CoinsSynced.Add(float64(len(items)))
	s.logger.Info("prices synced", slog.Int("count", len(items)))
	return SyncResult{Count: len(items), Items: items}, nil
}

// Seed - ошибки по отдельным монетам собираются, остальные монеты всё равно создаются.
func (s *fetchService) Seed(ctx context.Context) error {
	var errs []error
	for _, c := range s.catalog {
		if _, err := s.coins.UpsertCoin(ctx, c.Name, c.Symbol); err != nil {
			s.logger.Error("seed coin", slog.String("coin", c.Name), slog.Any("err", err))
			errs = append(errs, fmt.Errorf("seed %s: %w", c.Name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.Info("catalog seeded", slog.Int("coins", len(s.catalog)))
	return nil
}
