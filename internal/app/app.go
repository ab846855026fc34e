package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/auth"
	botpkg "github.com/NastyaGoryachaya/crypto-tracker/internal/bot"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/config"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/infra/stockapi"
	repopg "github.com/NastyaGoryachaya/crypto-tracker/internal/repository/postgres"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/scheduler"
	fetchsvc "github.com/NastyaGoryachaya/crypto-tracker/internal/service/fetch"
	ratesvc "github.com/NastyaGoryachaya/crypto-tracker/internal/service/rates"
	usersvc "github.com/NastyaGoryachaya/crypto-tracker/internal/service/users"
	watchsvc "github.com/NastyaGoryachaya/crypto-tracker/internal/service/watchlist"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/transport/httptransport"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	userRepo  *repopg.UserRepo
	coinRepo  *repopg.CoinRepo
	priceRepo *repopg.PriceRepo
	watchRepo *repopg.WatchlistRepo

	users     usersvc.Service
	watchlist watchsvc.Service
	rates     ratesvc.Service
	fetch     fetchsvc.Service

	updater *scheduler.Scheduler

	bot *botpkg.Bot
}

func NewApp(cfg config.Config, log *slog.Logger, db *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: db}

	app.userRepo = repopg.NewUserRepository(db)
	app.coinRepo = repopg.NewCoinRepository(db)
	app.priceRepo = repopg.NewPriceRepository(db)
	app.watchRepo = repopg.NewWatchlistRepository(db)

	hasher := auth.NewPasswordHasher(cfg.Auth.Argon2)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	provider := stockapi.NewClient(cfg.CoinGecko)

	app.users = usersvc.NewService(app.userRepo, hasher, log)
	app.watchlist = watchsvc.NewService(app.watchRepo, app.coinRepo, log)
	app.rates = ratesvc.NewService(app.coinRepo, app.priceRepo, app.watchlist, log)
	app.fetch = fetchsvc.NewService(provider, app.priceRepo, app.coinRepo, cfg.Catalog.Coins, log)

	app.e = httptransport.NewRouter(httptransport.Deps{
		Logger:    log,
		Timeout:   cfg.Server.HandlerTimeout,
		Users:     app.users,
		Resolver:  app.users,
		Tokens:    tokens,
		Watchlist: app.watchlist,
		Rates:     app.rates,
		Sync:      app.fetch,
		DB:        db,
	})

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      app.e,
	}

	if cfg.Scheduler.Enabled {
		app.updater = scheduler.NewScheduler(app.fetch, cfg.Scheduler.Interval, log)
	}

	if cfg.Telegram.Enabled {
		botApp, err := botpkg.New(
			botpkg.Config{Token: cfg.Telegram.Token, LongPollTimeout: cfg.Telegram.LongPollTimeout},
			app.rates,
			app.fetch,
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.bot = botApp
	}
	log.Info("app initialized",
		slog.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.Int("catalog_size", len(cfg.Catalog.Coins)),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.Catalog.SeedOnStart {
		// монеты нужны в БД до первой синхронизации, иначе их нельзя добавить в список
		if err := a.fetch.Seed(ctx); err != nil {
			a.log.Error("catalog seed failed", slog.String("error", err.Error()))
			if shErr := a.Shutdown(context.Background()); shErr != nil {
				return errors.Join(err, shErr)
			}
			return err
		}
	}

	if a.updater != nil {
		a.log.Info("starting updater")
		go a.updater.Start(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		go a.bot.Start(ctx)
	}

	errCh := make(chan error, 1)
	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	if err := a.Shutdown(context.Background()); err != nil {
		return err
	}
	return runErr
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	if a.db != nil {
		a.db.Close()
	}

	a.log.Info("application stopped")
	return nil
}
