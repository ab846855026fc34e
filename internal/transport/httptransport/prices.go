package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
	"github.com/labstack/echo/v4"
)

// RatesService - чтение цен и каталога.
type RatesService interface {
	GetLatestPrices(ctx context.Context) ([]domain.LatestPrice, error)
	GetHistory(ctx context.Context, coinName string) ([]domain.PriceObservation, error)
	GetUserHistory(ctx context.Context, userID int64, coinName string) ([]domain.PriceObservation, error)
	ListCoins(ctx context.Context) ([]domain.Coin, error)
}

// RatesHandler - HTTP‑handler для цен.
type RatesHandler struct {
	logger  *slog.Logger
	svc     RatesService
	timeout time.Duration
}

func NewRatesHandler(logger *slog.Logger, svc RatesService, timeout time.Duration) *RatesHandler {
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RatesHandler{
		logger:  logger,
		svc:     svc,
		timeout: timeout,
	}
}

func (h *RatesHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.GET("/prices", h.GetPrices)
	e.GET("/prices/:coin_name", h.GetHistory)
	e.GET("/coins", h.GetCoins)
	e.GET("/users/prices/:coin_name", h.GetUserHistory, authMW)
}

func (h *RatesHandler) GetPrices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.svc.GetLatestPrices(ctx)
	if err != nil {
		h.logger.Error("GetLatestPrices failed",
			slog.String("op", "GetPrices"),
			slog.String("error", err.Error()),
		)
		return writeError(c, errcode.Internal, "internal server error")
	}
	if items == nil {
		items = []domain.LatestPrice{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *RatesHandler) GetHistory(c echo.Context) error {
	name := strings.TrimSpace(c.Param("coin_name"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	history, err := h.svc.GetHistory(ctx, name)
	if err != nil {
		code := FromServiceError(err)
		switch code {
		case errcode.NotFoundCoins, errcode.NotFoundPrices:
			return writeError(c, code, "Coin not found or no price history")
		default:
			h.logger.Error("GetHistory failed",
				slog.String("op", "GetHistory"),
				slog.String("coin", name),
				slog.String("error", err.Error()),
			)
			return writeError(c, errcode.Internal, "internal server error")
		}
	}
	return c.JSON(http.StatusOK, history)
}

// GetUserHistory - неизвестная, неотслеживаемая монета и пустая история дают одинаковый 404.
func (h *RatesHandler) GetUserHistory(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return writeError(c, errcode.Unauthorized, detailUnauthorized)
	}
	name := strings.TrimSpace(c.Param("coin_name"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	history, err := h.svc.GetUserHistory(ctx, user.ID, name)
	if err != nil {
		code := FromServiceError(err)
		switch code {
		case errcode.NotFoundCoins, errcode.NotFoundPrices, errcode.NotTracked:
			return writeError(c, errcode.NotFoundPrices, "Coin not found, not tracked by user, or no price history")
		default:
			h.logger.Error("GetUserHistory failed",
				slog.String("op", "GetUserHistory"),
				slog.Int64("user_id", user.ID),
				slog.String("coin", name),
				slog.String("error", err.Error()),
			)
			return writeError(c, errcode.Internal, "internal server error")
		}
	}
	return c.JSON(http.StatusOK, history)
}

func (h *RatesHandler) GetCoins(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	coins, err := h.svc.ListCoins(ctx)
	if err != nil {
		h.logger.Error("ListCoins failed",
			slog.String("op", "GetCoins"),
			slog.String("error", err.Error()),
		)
		return writeError(c, errcode.Internal, "internal server error")
	}
	if coins == nil {
		coins = []domain.Coin{}
	}
	return c.JSON(http.StatusOK, coins)
}
