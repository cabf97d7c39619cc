package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/zhu4ok/Software-architecture-lab5/internal/config"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// disconnectTimeout bounds how long cleanup waits for the store to close.
const disconnectTimeout = 5 * time.Second

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Store handles; exactly one is set, depending on the configured driver
	mongoClient *mongo.Client
	db          *sql.DB

	userStore store.UserStore
	registry  *prometheus.Registry
}

// newApplication connects to the configured store and wires the user store
// behind the metrics decorator.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		registry: newRegistry(),
	}

	userStore, err := app.connectStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Database.Driver, err)
	}
	app.userStore = store.NewInstrumentedUserStore(userStore, app.registry)

	logger.Info("Application initialized successfully")
	return app, nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases the store handle.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if app.mongoClient != nil {
		if err := app.mongoClient.Disconnect(ctx); err != nil {
			app.logger.Error("Error disconnecting from MongoDB", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
