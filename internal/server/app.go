// Package server wires the application together: configuration, logging,
// the store connection pool, the domain services, and the HTTP server,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/quickjot/quickjot/internal/logging"
	"github.com/quickjot/quickjot/internal/server/auth"
	"github.com/quickjot/quickjot/internal/server/config"
	"github.com/quickjot/quickjot/internal/server/kv"
	"github.com/quickjot/quickjot/internal/server/notes"
	"github.com/quickjot/quickjot/internal/server/web"
)

type App struct {
	config *config.Config
	logger logging.Logger
	pool   *kv.RedisPool
	web    *web.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	pool, err := kv.NewRedisPool(cfg.RedisURL, cfg.RedisPoolSize, cfg.RedisPoolTimeout)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	sessions := auth.NewService(pool, logger, cfg.SessionTTL)
	noteSvc := notes.NewService(notes.NewRedisRepository(pool), logger)

	srv, err := web.NewServer(cfg.HTTPAddr, logger, sessions, noteSvc, pool.Ping, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("http server init error: %w", err)
	}

	return &App{config: cfg, logger: logger, pool: pool, web: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.web.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.pool.Close(); err != nil {
		app.logger.Error(ctx, "closing store pool failed", "error", err)
	}
}
