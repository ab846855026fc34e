package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
)

const defaultTimeout = 3 * time.Second

// Pinger - проверка доступности хранилища для /healthz
type Pinger interface {
	Ping(ctx context.Context) error
}

// Tokens - выпуск и проверка токенов
type Tokens interface {
	TokenIssuer
	TokenVerifier
}

// Deps - всё, что нужно для сборки HTTP API
type Deps struct {
	Logger    *slog.Logger
	Timeout   time.Duration
	Users     UsersService
	Resolver  UserResolver
	Tokens    Tokens
	Watchlist WatchlistService
	Rates     RatesService
	Sync      Syncer
	DB        Pinger
}

// endpoint - строка списка в ответе GET /
type endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

var endpoints = []endpoint{
	{"/register", http.MethodPost, "Register a new user"},
	{"/token", http.MethodPost, "Login to get access token"},
	{"/users/me", http.MethodGet, "Get current user info"},
	{"/users/coins", http.MethodGet, "Get coins tracked by current user"},
	{"/users/coins/{coin_id}", http.MethodPost, "Add a coin to user's tracking list"},
	{"/users/coins/{coin_id}", http.MethodDelete, "Remove a coin from user's tracking list"},
	{"/update", http.MethodPost, "Fetch and store the latest prices"},
	{"/prices", http.MethodGet, "Retrieve the latest stored prices"},
	{"/prices/{coin_name}", http.MethodGet, "View historical prices of a specific coin"},
	{"/users/prices/{coin_name}", http.MethodGet, "View historical prices of a user's tracked coin"},
	{"/coins", http.MethodGet, "List catalog coins with their ids"},
}

// NewRouter - echo со всеми маршрутами и middleware
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(d.Logger)

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger(d.Logger))

	authMW := BearerAuth(d.Tokens, d.Resolver, d.Logger)

	e.GET("/", root)
	e.GET("/healthz", healthz(d.DB, d.Logger))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	NewUsersHandler(d.Logger, d.Users, d.Tokens, d.Watchlist, d.Timeout).RegisterRoutes(e, authMW)
	NewWatchlistHandler(d.Logger, d.Watchlist, d.Timeout).RegisterRoutes(e, authMW)
	NewRatesHandler(d.Logger, d.Rates, d.Timeout).RegisterRoutes(e, authMW)
	NewSyncHandler(d.Logger, d.Sync).RegisterRoutes(e)

	return e
}

func root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Welcome to the Crypto Price Tracker API",
		"endpoints": endpoints,
	})
}

func healthz(db Pinger, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if db == nil {
			return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
		}
		ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			logger.Error("healthz: db ping failed", slog.String("error", err.Error()))
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: "database unavailable", Error: errcode.Internal})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}
