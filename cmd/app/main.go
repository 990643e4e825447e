package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/LootVault_Go/internal/caseopening"
	"github.com/osse101/LootVault_Go/internal/config"
	"github.com/osse101/LootVault_Go/internal/database"
	"github.com/osse101/LootVault_Go/internal/database/postgres"
	"github.com/osse101/LootVault_Go/internal/progression"
	"github.com/osse101/LootVault_Go/internal/rarity"
	"github.com/osse101/LootVault_Go/internal/realtime"
	"github.com/osse101/LootVault_Go/internal/server"
)

const (
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
	shutdownTimeout  = 15 * time.Second
	migrationTimeout = 60 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	// Database
	connString := cfg.GetDBConnString()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), migrationTimeout)
	if err := database.Migrate(migrateCtx, connString); err != nil {
		cancelMigrate()
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
	cancelMigrate()

	pool, err := database.NewPool(context.Background(), connString, cfg.DBMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	catalogRepo := postgres.NewCatalogRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)

	// Realtime hub
	hub := realtime.NewHub()
	hub.Start()
	defer hub.Stop()

	// Services
	caseOpeningService := caseopening.NewService(
		catalogRepo,
		accountRepo,
		caseopening.NewSelector(rarity.Default()),
		progression.NewService(),
		realtime.NewBroadcaster(hub),
		cfg.CaseCacheSize,
		cfg.CaseCacheTTL,
	)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, caseOpeningService, accountRepo, hub)

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}
