package watchlist

import (
	"context"
	"errors"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_watchlist.go -package=mocks . Store,CoinReader

// Service - список монет, которые отслеживает пользователь.
type Service interface {
	Add(ctx context.Context, userID, coinID int64) error
	Remove(ctx context.Context, userID, coinID int64) error
	List(ctx context.Context, userID int64) ([]domain.Coin, error)
	IsTracking(ctx context.Context, userID, coinID int64) (bool, error)
}

type Store interface {
	AddCoin(ctx context.Context, userID, coinID int64) error
	RemoveCoin(ctx context.Context, userID, coinID int64) error
	ListCoins(ctx context.Context, userID int64) ([]domain.Coin, error)
	IsTracking(ctx context.Context, userID, coinID int64) (bool, error)
}

type CoinReader interface {
	GetCoinByID(ctx context.Context, id int64) (*domain.Coin, error)
}

type service struct {
	store  Store
	coins  CoinReader
	logger *slog.Logger
}

func NewService(store Store, coins CoinReader, logger *slog.Logger) Service {
	return &service{store: store, coins: coins, logger: logger}
}

// Add - идемпотентно: повторное добавление не создаёт дубликат и не даёт ошибку.
func (s *service) Add(ctx context.Context, userID, coinID int64) error {
	if err := s.ensureCoin(ctx, coinID); err != nil {
		return err
	}
	if err := s.store.AddCoin(ctx, userID, coinID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// монета проверена выше, значит пропал пользователь
			return domain.ErrUserNotFound
		}
		s.logger.Error("watchlist.add failed", "user_id", userID, "coin_id", coinID, "err", err)
		return err
	}
	s.logger.Info("watchlist.add ok", "user_id", userID, "coin_id", coinID)
	return nil
}

func (s *service) Remove(ctx context.Context, userID, coinID int64) error {
	if err := s.ensureCoin(ctx, coinID); err != nil {
		return err
	}
	if err := s.store.RemoveCoin(ctx, userID, coinID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrNotTracked
		}
		s.logger.Error("watchlist.remove failed", "user_id", userID, "coin_id", coinID, "err", err)
		return err
	}
	s.logger.Info("watchlist.remove ok", "user_id", userID, "coin_id", coinID)
	return nil
}

func (s *service) List(ctx context.Context, userID int64) ([]domain.Coin, error) {
	coins, err := s.store.ListCoins(ctx, userID)
	if err != nil {
		s.logger.Error("watchlist.list failed", "user_id", userID, "err", err)
		return nil, err
	}
	return coins, nil
}

func (s *service) IsTracking(ctx context.Context, userID, coinID int64) (bool, error) {
	return s.store.IsTracking(ctx, userID, coinID)
}

func (s *service) ensureCoin(ctx context.Context, coinID int64) error {
	if _, err := s.coins.GetCoinByID(ctx, coinID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrCoinNotFound
		}
		s.logger.Error("watchlist: coin lookup failed", "coin_id", coinID, "err", err)
		return err
	}
	return nil
}
