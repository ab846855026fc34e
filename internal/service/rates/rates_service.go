package rates

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_rates.go -package=mocks . CoinReader,PriceReader,TrackingChecker

// Бизнес-логика - чтение последних цен и истории

type Service interface {
	// GetLatestPrices - последняя цена по каждой монете
	GetLatestPrices(ctx context.Context) ([]domain.LatestPrice, error)
	// GetHistory - вся история монеты по имени, сначала новые
	GetHistory(ctx context.Context, coinName string) ([]domain.PriceObservation, error)
	// GetUserHistory - история только для монеты из списка пользователя
	GetUserHistory(ctx context.Context, userID int64, coinName string) ([]domain.PriceObservation, error)
	// ListCoins - монеты каталога с их идентификаторами
	ListCoins(ctx context.Context) ([]domain.Coin, error)
}

type CoinReader interface {
	GetAllCoins(ctx context.Context) ([]domain.Coin, error)
	GetCoinByName(ctx context.Context, name string) (*domain.Coin, error)
}

type PriceReader interface {
	GetLatestPrices(ctx context.Context) ([]domain.LatestPrice, error)
	GetHistory(ctx context.Context, coinID int64) ([]domain.PriceObservation, error)
}

type TrackingChecker interface {
	IsTracking(ctx context.Context, userID, coinID int64) (bool, error)
}

type service struct {
	coinRepo  CoinReader
	priceRepo PriceReader
	tracking  TrackingChecker
	logger    *slog.Logger
}

func NewService(coinRepo CoinReader, priceRepo PriceReader, tracking TrackingChecker, logger *slog.Logger) Service {
	return &service{
		coinRepo:  coinRepo,
		priceRepo: priceRepo,
		tracking:  tracking,
		logger:    logger,
	}
}

func (s *service) GetLatestPrices(ctx context.Context) ([]domain.LatestPrice, error) {
	items, err := s.priceRepo.GetLatestPrices(ctx)
	if err != nil {
		s.logger.Error("failed to get latest prices", "err", err)
		return nil, err
	}
	s.logger.Debug("loaded latest prices", "count", len(items))
	return items, nil
}

func (s *service) GetHistory(ctx context.Context, coinName string) ([]domain.PriceObservation, error) {
	coin, err := s.findCoin(ctx, coinName)
	if err != nil {
		return nil, err
	}
	return s.history(ctx, coin)
}

func (s *service) GetUserHistory(ctx context.Context, userID int64, coinName string) ([]domain.PriceObservation, error) {
	coin, err := s.findCoin(ctx, coinName)
	if err != nil {
		return nil, err
	}

	ok, err := s.tracking.IsTracking(ctx, userID, coin.ID)
	if err != nil {
		s.logger.Error("failed to check tracking", "user_id", userID, "coin", coin.Name, "err", err)
		return nil, err
	}
	if !ok {
		s.logger.Debug("coin not tracked by user", "user_id", userID, "coin", coin.Name)
		return nil, domain.ErrNotTracked
	}
	return s.history(ctx, coin)
}

func (s *service) ListCoins(ctx context.Context) ([]domain.Coin, error) {
	coins, err := s.coinRepo.GetAllCoins(ctx)
	if err != nil {
		s.logger.Error("failed to get all coins", "err", err)
		return nil, err
	}
	return coins, nil
}

func (s *service) findCoin(ctx context.Context, coinName string) (*domain.Coin, error) {
	name := strings.TrimSpace(coinName)
	if name == "" {
		return nil, domain.ErrCoinNotFound
	}
	coin, err := s.coinRepo.GetCoinByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("coin not found", "coin", name)
			return nil, domain.ErrCoinNotFound
		}
		s.logger.Error("failed to get coin by name", "coin", name, "err", err)
		return nil, err
	}
	return coin, nil
}

func (s *service) history(ctx context.Context, coin *domain.Coin) ([]domain.PriceObservation, error) {
	rows, err := s.priceRepo.GetHistory(ctx, coin.ID)
	if err != nil {
		s.logger.Error("failed to get history", "coin", coin.Name, "err", err)
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrPriceNotFound
	}
	return rows, nil
}
