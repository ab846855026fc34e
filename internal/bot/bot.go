package bot

import (
	"context"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/fetch"
)

// Config - конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
}

// PricesReader - чтение цен из истории
type PricesReader interface {
	GetLatestPrices(ctx context.Context) ([]domain.LatestPrice, error)
	GetHistory(ctx context.Context, coinName string) ([]domain.PriceObservation, error)
}

// Syncer - ручной запуск синхронизации
type Syncer interface {
	Sync(ctx context.Context) (fetch.SyncResult, error)
}

// Bot - Telegram-клиент только для чтения цен
type Bot struct {
	bot    *telebot.Bot
	prices PricesReader
	sync   Syncer
	logger *slog.Logger
}

// New создаёт бота и регистрирует команды
func New(cfg Config, prices PricesReader, sync Syncer, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := newBot(prices, sync, logger)
	bot.bot = b

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/prices", bot.handlePrices)
	b.Handle("/history", bot.handleHistory)
	b.Handle("/update", bot.handleUpdate)
	return bot, nil
}

func newBot(prices PricesReader, sync Syncer, logger *slog.Logger) *Bot {
	return &Bot{prices: prices, sync: sync, logger: logger}
}

// Start запускает long polling до остановки контекста
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
	<-ctx.Done()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
