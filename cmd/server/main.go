// Package main implements the entry point for the banking API server.
// It loads configuration, opens the schema-migrated database connection,
// wires repositories and services, and serves the HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geovannycode/banking-api/internal/config"
	"github.com/geovannycode/banking-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)

	db, err := setupDatabase(&cfg.Database, appLogger)
	if err != nil {
		appLogger.Error("failed to set up database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := runMigrations(db, appLogger); err != nil {
		appLogger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	app := newApplication(cfg, appLogger, db)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-shutdown
	appLogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("graceful shutdown failed", "error", err)
	}
}
