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

	"github.com/yjsong/item-simulator/internal/catalog"
	"github.com/yjsong/item-simulator/internal/character"
	"github.com/yjsong/item-simulator/internal/concurrency"
	"github.com/yjsong/item-simulator/internal/config"
	"github.com/yjsong/item-simulator/internal/database"
	"github.com/yjsong/item-simulator/internal/database/postgres"
	"github.com/yjsong/item-simulator/internal/equipment"
	"github.com/yjsong/item-simulator/internal/server"
	"github.com/yjsong/item-simulator/internal/shop"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	log := slog.Default()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	characterRepo := postgres.NewCharacterRepository(dbPool)
	itemRepo := postgres.NewItemRepository(dbPool)

	catalogService := catalog.NewService(itemRepo)

	// Sync the catalog seed files before accepting traffic
	if err := syncCatalog(context.Background(), itemRepo); err != nil {
		log.Error("Failed to sync catalog seed data", "error", err)
		os.Exit(1)
	}

	locks := concurrency.NewLockManager()
	characterService := character.NewService(characterRepo, catalogService, cfg.StarterItemPrefix)
	equipmentService := equipment.NewService(characterRepo, catalogService, locks)
	shopService := shop.NewService(characterRepo, catalogService, locks)

	srv := server.NewServer(cfg.Port, dbPool, characterService, equipmentService, shopService, catalogService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped")
}
