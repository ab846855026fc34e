package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/fetch"
)

type Scheduler struct {
	fetchService fetch.Service
	interval     time.Duration
	logger       *slog.Logger
}

// NewScheduler - конструктор планировщика фоновой синхронизации цен
func NewScheduler(fetchService fetch.Service, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		fetchService: fetchService,
		interval:     interval,
		logger:       logger,
	}
}

// Start - запускает периодическую синхронизацию до остановки контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// первый запуск сразу
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// runOnce - одна итерация. Вызовы с POST /update объединяются с ней внутри Sync.
func (s *Scheduler) runOnce(ctx context.Context) {
	res, err := s.fetchService.Sync(ctx)
	if err != nil {
		s.logger.Error("tick: sync failed", slog.Any("err", err))
		return
	}
	s.logger.Debug("tick: sync completed", slog.Int("count", res.Count))
}
