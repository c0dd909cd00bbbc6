package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minimarket/storefront-system/internal/api"
	"github.com/minimarket/storefront-system/internal/core/ports"
	"github.com/minimarket/storefront-system/internal/core/service"
	"github.com/minimarket/storefront-system/internal/infrastructure/config"
	"github.com/minimarket/storefront-system/internal/infrastructure/storage"
	mongostore "github.com/minimarket/storefront-system/internal/infrastructure/storage/mongo"
	redisstore "github.com/minimarket/storefront-system/internal/infrastructure/storage/redis"
	sqlitestore "github.com/minimarket/storefront-system/internal/infrastructure/storage/sqlite"
	"github.com/minimarket/storefront-system/internal/shell"
	"github.com/minimarket/storefront-system/pkg/logger"
)

// @title        Storefront System API
// @version      1.0
// @description  Single-store demo: product catalog, cart, admin panel and a single-account login.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("failed to open storage backend")
	}
	defer func() { _ = kv.Close() }()

	repo := storage.NewRecordStore(kv)

	dispatcher := shell.NewDispatcher(0, log)
	dispatcher.Start(ctx)

	store := service.NewStoreService(repo, dispatcher, log)
	store.Initialize(ctx)

	auth := service.NewAuthService(repo, cfg.JWTSecret, 24*time.Hour, log)

	e := api.NewRouter(api.Dependencies{
		Store:         store,
		Auth:          auth,
		KV:            kv,
		Notifications: dispatcher,
		JWTSecret:     cfg.JWTSecret,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Storage.Backend).Msg("starting storefront")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStorage selects and connects the key-value backend holding the state
// records.
func openStorage(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Storage.Backend {
	case "sqlite", "":
		return sqlitestore.NewStore(cfg.Storage.SQLitePath)
	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return redisstore.NewStore(client), nil
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		return mongostore.NewStore(client, db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
