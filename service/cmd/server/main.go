// Command server serves Klondike tables over HTTP and WebSocket.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nordklondike/klondike/service/internal/auth"
	"github.com/nordklondike/klondike/service/internal/cache"
	"github.com/nordklondike/klondike/service/internal/config"
	"github.com/nordklondike/klondike/service/internal/database"
	"github.com/nordklondike/klondike/service/internal/game"
	"github.com/nordklondike/klondike/service/internal/handlers"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(".env")
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var snapshots handlers.SnapshotStore
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Fatal("redis unavailable")
		}
		defer rdb.Close()
		snapshots = cache.NewSnapshotStore(rdb, cfg.SnapshotTTL)
		log.WithField("addr", cfg.RedisAddr).Info("table snapshots enabled")
	}

	var records handlers.GameRecords
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("database unavailable")
		}
		defer pool.Close()
		repo := database.NewGameRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.WithError(err).Fatal("schema setup failed")
		}
		records = repo
		log.Info("game records enabled")
	}

	h := handlers.NewHandler(
		game.NewRegistry(log),
		auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		handlers.NewHub(log),
		snapshots,
		records,
		log,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(handlers.RequestIDMiddleware())
	e.Use(handlers.LoggingMiddleware(log))
	h.Register(e)

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("starting server")
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
}
