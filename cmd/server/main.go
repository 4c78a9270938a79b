// backend-go/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/api"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/bundle"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/cache"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/config"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/inventory"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/sheets"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/storage"
	"github.com/mediaexclusive/inventory-manager/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetModeLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize spreadsheet client. A missing spreadsheet ID is a
	// per-request failure, not a boot failure; bad credentials are fatal.
	sheetClient, err := sheets.NewClient(context.Background(), cfg.Sheets.CredentialsJSON, cfg.Sheets.SpreadsheetID)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize sheets client")
	}

	// Initialize inventory snapshot cache (noop unless enabled)
	inventoryCache, err := cache.NewInventoryCache(cfg.Cache)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize inventory cache")
	}

	// Initialize services
	services := &api.Services{
		Inventory: inventory.NewService(sheetClient, cfg.Sheets.SheetName, inventoryCache),
		Bundles:   bundle.NewStore(sheetClient, cfg.Sheets.BundleSheetName),
	}

	if cfg.Storage.Enabled {
		objectStorage, err := storage.NewMinioClient(cfg.Storage)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to initialize object storage")
		}
		services.Storage = objectStorage
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
