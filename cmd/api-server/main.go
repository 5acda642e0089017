package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/apiserver"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/config"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/filestore"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store/memstore"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(&cfg.Logging)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var stores store.Stores
	if cfg.Database.Driver == "memory" {
		logger.Warn("using in-memory storage, data will not survive restarts")
		stores = memstore.New().Stores()
	} else {
		db, err := postgres.NewStore(&cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := db.AutoMigrate(); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		stores = db.Stores()
	}

	files := filestore.New(cfg.Storage.Dir, stores.Files, logger)

	server := apiserver.NewServer(stores, files, cfg, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.ReadTimeout * 2,
	}

	go func() {
		logger.Info("Starting API server", zap.Int("port", cfg.Server.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}

func newLogger(cfg *config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
