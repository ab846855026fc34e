package bot

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v4"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

var ErrInvalidLimit = errors.New("invalid limit")

const helpText = "Привет! Доступные команды:\n" +
	"/prices - последние цены по всем монетам\n" +
	"/history {монета} [N] - последние N цен монеты (по умолчанию 10)\n" +
	"/update - запросить свежие цены"

// handleStart - отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(helpText)
}

func (b *Bot) handlePrices(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return c.Send(b.pricesReply(ctx))
}

func (b *Bot) handleHistory(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return c.Send(b.historyReply(ctx, c.Args()))
}

func (b *Bot) handleUpdate(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return c.Send(b.updateReply(ctx))
}

// pricesReply - текст ответа на /prices
func (b *Bot) pricesReply(ctx context.Context) string {
	list, err := b.prices.GetLatestPrices(ctx)
	if err != nil {
		b.logger.Error("bot: latest prices failed", slog.String("error", err.Error()))
		return translateBotError(errcode.Internal)
	}
	if len(list) == 0 {
		return translateBotError(errcode.NotFoundPrices)
	}
	var bld strings.Builder
	for _, p := range list {
		bld.WriteString(formatPriceLine(p))
		bld.WriteByte('\n')
	}
	return bld.String()
}

// historyReply - текст ответа на /history. Имя монеты может быть из нескольких слов.
func (b *Bot) historyReply(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "Укажи монету: /history Bitcoin"
	}

	limit := defaultHistoryLimit
	if len(args) > 1 {
		if n, err := parseLimit(args[len(args)-1]); err == nil {
			limit = n
			args = args[:len(args)-1]
		}
	}
	name := strings.Join(args, " ")

	history, err := b.prices.GetHistory(ctx, name)
	if err != nil {
		code := translateServiceError(err)
		if code == errcode.Internal {
			b.logger.Error("bot: history failed", slog.String("coin", name), slog.String("error", err.Error()))
		}
		return translateBotError(code)
	}
	if len(history) > limit {
		history = history[:limit]
	}
	return formatHistory(name, history)
}

func (b *Bot) updateReply(ctx context.Context) string {
	res, err := b.sync.Sync(ctx)
	if err != nil {
		code := translateServiceError(err)
		if code == errcode.Internal {
			b.logger.Error("bot: update failed", slog.String("error", err.Error()))
		}
		return translateBotError(code)
	}
	return formatSyncResult(res.Count)
}

// parseLimit - парсит количество записей и ограничивает его сверху
func parseLimit(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, ErrInvalidLimit
	}
	if n > maxHistoryLimit {
		n = maxHistoryLimit
	}
	return n, nil
}

func translateServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, domain.ErrCoinNotFound):
		return errcode.NotFoundCoins
	case errors.Is(err, domain.ErrPriceNotFound):
		return errcode.NotFoundPrices
	case errors.Is(err, domain.ErrUpstream):
		return errcode.Upstream
	default:
		return errcode.Internal
	}
}
