// Package main implements the entry point for the users API server, a small
// CRUD service over a document store.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/zhu4ok/Software-architecture-lab5/internal/config"
	"github.com/zhu4ok/Software-architecture-lab5/internal/platform/logger"
	"github.com/zhu4ok/Software-architecture-lab5/internal/redact"
)

// main loads configuration, sets up logging, connects to the configured store
// and serves HTTP until interrupted. Failing to reach the store is fatal: the
// process exits before it starts listening.
func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("Failed to start application", "error", redact.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		l.Error("Application stopped with error", "error", redact.Error(err))
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)
	l.Debug("Database configuration",
		"url", redact.String(cfg.Database.ConnectionURL()),
		"collection", cfg.Database.Collection)

	return cfg, l, nil
}
