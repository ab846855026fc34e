package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/fetch"
	"github.com/labstack/echo/v4"
)

// Syncer - ручной запуск синхронизации цен.
type Syncer interface {
	Sync(ctx context.Context) (fetch.SyncResult, error)
}

// UpdateResponse - ответ POST /update.
type UpdateResponse struct {
	Status string               `json:"status"`
	Data   []domain.LatestPrice `json:"data"`
	Count  int                  `json:"count"`
}

type SyncHandler struct {
	logger *slog.Logger
	svc    Syncer
}

func NewSyncHandler(logger *slog.Logger, svc Syncer) *SyncHandler {
	return &SyncHandler{logger: logger, svc: svc}
}

func (h *SyncHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/update", h.Update)
}

// Update - таймаут синхронизации задаёт HTTP-клиент фида, а не handler_timeout.
func (h *SyncHandler) Update(c echo.Context) error {
	res, err := h.svc.Sync(c.Request().Context())
	if err != nil {
		if FromServiceError(err) == errcode.Upstream {
			h.logger.Warn("update: feed failed", slog.String("error", err.Error()))
			return writeError(c, errcode.Upstream, "Failed to fetch from CoinGecko: "+upstreamCause(err))
		}
		h.logger.Error("update failed", slog.String("op", "Update"), slog.String("error", err.Error()))
		return writeError(c, errcode.Internal, "An error occurred while updating prices: "+err.Error())
	}

	data := res.Items
	if data == nil {
		data = []domain.LatestPrice{}
	}
	return c.JSON(http.StatusOK, UpdateResponse{Status: "success", Data: data, Count: res.Count})
}

// upstreamCause - текст ошибки фида без префикса ErrUpstream
func upstreamCause(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrUpstream.Error()+": ")
}
