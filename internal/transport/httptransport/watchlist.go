package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
	"github.com/labstack/echo/v4"
)

// WatchlistService - список отслеживаемых монет пользователя.
type WatchlistService interface {
	Add(ctx context.Context, userID, coinID int64) error
	Remove(ctx context.Context, userID, coinID int64) error
	List(ctx context.Context, userID int64) ([]domain.Coin, error)
}

// StatusResponse - ответ на изменение списка.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type WatchlistHandler struct {
	logger  *slog.Logger
	svc     WatchlistService
	timeout time.Duration
}

func NewWatchlistHandler(logger *slog.Logger, svc WatchlistService, timeout time.Duration) *WatchlistHandler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WatchlistHandler{logger: logger, svc: svc, timeout: timeout}
}

func (h *WatchlistHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	g := e.Group("/users/coins", authMW)
	g.GET("", h.List)
	g.POST("/:coin_id", h.Add)
	g.DELETE("/:coin_id", h.Remove)
}

func (h *WatchlistHandler) List(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return writeError(c, errcode.Unauthorized, detailUnauthorized)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	coins, err := h.svc.List(ctx, user.ID)
	if err != nil {
		h.logger.Error("List failed",
			slog.String("op", "ListUserCoins"),
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		return writeError(c, errcode.Internal, "internal server error")
	}
	if coins == nil {
		coins = []domain.Coin{}
	}
	return c.JSON(http.StatusOK, coins)
}

func (h *WatchlistHandler) Add(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return writeError(c, errcode.Unauthorized, detailUnauthorized)
	}
	coinID, err := parseCoinID(c)
	if err != nil {
		return writeError(c, errcode.BadRequest, "coin_id must be an integer")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.svc.Add(ctx, user.ID, coinID); err != nil {
		code := FromServiceError(err)
		switch code {
		case errcode.NotFoundCoins:
			return writeError(c, code, "Coin not found")
		case errcode.Unauthorized:
			return writeError(c, code, detailUnauthorized)
		default:
			h.logger.Error("Add failed",
				slog.String("op", "AddUserCoin"),
				slog.Int64("user_id", user.ID),
				slog.Int64("coin_id", coinID),
				slog.String("error", err.Error()),
			)
			return writeError(c, errcode.Internal, "internal server error")
		}
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Coin added to user's tracking list"})
}

func (h *WatchlistHandler) Remove(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return writeError(c, errcode.Unauthorized, detailUnauthorized)
	}
	coinID, err := parseCoinID(c)
	if err != nil {
		return writeError(c, errcode.BadRequest, "coin_id must be an integer")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.svc.Remove(ctx, user.ID, coinID); err != nil {
		code := FromServiceError(err)
		switch code {
		case errcode.NotFoundCoins, errcode.NotTracked:
			return writeError(c, code, "Coin not found or not in user's tracking list")
		default:
			h.logger.Error("Remove failed",
				slog.String("op", "RemoveUserCoin"),
				slog.Int64("user_id", user.ID),
				slog.Int64("coin_id", coinID),
				slog.String("error", err.Error()),
			)
			return writeError(c, errcode.Internal, "internal server error")
		}
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Coin removed from user's tracking list"})
}

func parseCoinID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("coin_id"), 10, 64)
}
